package pacing

import (
	"log/slog"
	"time"

	"github.com/rickgao/btn-backfill/internal/api"
)

const (
	// minRequestGap is the search provider's per-second request cap.
	minRequestGap = time.Second
	// gapMargin pads the per-second wait so the next request lands
	// safely past the boundary.
	gapMargin = 100 * time.Millisecond
	// quotaMargin pads the quota-reset wait.
	quotaMargin = 2 * time.Second
)

// Pacer spaces requests to the search provider. Not safe for concurrent
// use; the pipeline is fully sequential.
type Pacer struct {
	logger *slog.Logger
	now    func() time.Time
	sleep  func(time.Duration)
	last   time.Time
}

// New creates a Pacer backed by the wall clock.
func New(logger *slog.Logger) *Pacer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pacer{
		logger: logger,
		now:    time.Now,
		sleep:  time.Sleep,
	}
}

// MarkRequest records the instant a request is issued.
func (p *Pacer) MarkRequest() {
	p.last = p.now()
}

// WaitQuota blocks until the provider's quota resets when no requests
// remain. A nil state means the provider reported no quota; nothing to
// enforce.
func (p *Pacer) WaitQuota(rl *api.RateLimit) {
	if rl == nil {
		return
	}
	p.logger.Debug("quota state", "remaining", rl.Remaining, "reset_at", rl.ResetAt)
	if rl.Remaining > 0 {
		return
	}

	wait := rl.ResetAt.Sub(p.now()) + quotaMargin
	if wait <= 0 {
		return
	}
	p.logger.Info("quota exhausted, sleeping until reset",
		"wait", wait,
		"reset_at", rl.ResetAt,
	)
	p.sleep(wait)
}

// WaitGap sleeps out the remainder of the per-second cap, measured from
// the last MarkRequest.
func (p *Pacer) WaitGap() {
	if p.last.IsZero() {
		return
	}
	elapsed := p.now().Sub(p.last)
	if elapsed >= minRequestGap {
		return
	}

	wait := minRequestGap - elapsed + gapMargin
	p.logger.Debug("per-second cap reached", "wait", wait)
	p.sleep(wait)
}
