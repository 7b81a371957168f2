package pacing

import (
	"log/slog"
	"time"
)

const (
	// burstSize is how many candle requests go out between throughput
	// checks.
	burstSize = 10
	// burstWindow is the wall time burstSize requests are budgeted for.
	burstWindow = 10 * time.Second
	// burstPause is the sleep applied when a burst finishes early.
	burstPause = time.Second
)

// BurstPacer keeps the candle provider's aggregate request rate under
// budget: after every ten requests it sleeps one second unless ten
// seconds of wall time have already passed. Coarser than Pacer since
// the candle provider's rate regime is generous.
type BurstPacer struct {
	logger *slog.Logger
	now    func() time.Time
	sleep  func(time.Duration)

	count       int
	windowStart time.Time
}

// NewBurst creates a BurstPacer backed by the wall clock.
func NewBurst(logger *slog.Logger) *BurstPacer {
	if logger == nil {
		logger = slog.Default()
	}
	b := &BurstPacer{
		logger: logger,
		now:    time.Now,
		sleep:  time.Sleep,
	}
	b.windowStart = b.now()
	return b
}

// MarkRequest counts one issued request and applies the throughput
// check when a burst completes.
func (b *BurstPacer) MarkRequest() {
	b.count++
	if b.count < burstSize {
		return
	}

	elapsed := b.now().Sub(b.windowStart)
	if elapsed < burstWindow {
		b.logger.Debug("burst finished early, pausing",
			"elapsed", elapsed,
			"pause", burstPause,
		)
		b.sleep(burstPause)
	}
	b.count = 0
	b.windowStart = b.now()
}
