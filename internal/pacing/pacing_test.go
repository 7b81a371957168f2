package pacing

import (
	"testing"
	"time"

	"github.com/rickgao/btn-backfill/internal/api"
)

// fakeClock drives a Pacer or BurstPacer without real sleeps. Sleeps
// advance the clock so follow-up checks see time passing.
type fakeClock struct {
	t      time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
}

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestPacer(clock *fakeClock) *Pacer {
	p := New(nil)
	p.now = clock.now
	p.sleep = clock.sleep
	return p
}

func TestPacerWaitQuota(t *testing.T) {
	t.Run("nil state does nothing", func(t *testing.T) {
		clock := newFakeClock()
		newTestPacer(clock).WaitQuota(nil)
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})

	t.Run("remaining quota does nothing", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.WaitQuota(&api.RateLimit{Remaining: 100, ResetAt: clock.now().Add(5 * time.Minute)})
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})

	t.Run("exhausted quota sleeps until reset plus margin", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.WaitQuota(&api.RateLimit{Remaining: 0, ResetAt: clock.now().Add(5 * time.Second)})
		if len(clock.sleeps) != 1 {
			t.Fatalf("sleeps = %v, want one", clock.sleeps)
		}
		if want := 7 * time.Second; clock.sleeps[0] != want {
			t.Errorf("slept %v, want %v", clock.sleeps[0], want)
		}
	})

	t.Run("negative remaining treated as exhausted", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.WaitQuota(&api.RateLimit{Remaining: -1, ResetAt: clock.now().Add(time.Second)})
		if len(clock.sleeps) != 1 {
			t.Fatalf("sleeps = %v, want one", clock.sleeps)
		}
	})

	t.Run("reset already passed does not sleep", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.WaitQuota(&api.RateLimit{Remaining: 0, ResetAt: clock.now().Add(-time.Minute)})
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})
}

func TestPacerWaitGap(t *testing.T) {
	t.Run("no prior request does nothing", func(t *testing.T) {
		clock := newFakeClock()
		newTestPacer(clock).WaitGap()
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})

	t.Run("request within the last second sleeps the remainder plus margin", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.MarkRequest()
		clock.advance(400 * time.Millisecond)
		p.WaitGap()
		if len(clock.sleeps) != 1 {
			t.Fatalf("sleeps = %v, want one", clock.sleeps)
		}
		if want := 700 * time.Millisecond; clock.sleeps[0] != want {
			t.Errorf("slept %v, want %v", clock.sleeps[0], want)
		}
	})

	t.Run("request more than a second ago does nothing", func(t *testing.T) {
		clock := newFakeClock()
		p := newTestPacer(clock)
		p.MarkRequest()
		clock.advance(1500 * time.Millisecond)
		p.WaitGap()
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})
}

func TestBurstPacer(t *testing.T) {
	newTestBurst := func(clock *fakeClock) *BurstPacer {
		b := NewBurst(nil)
		b.now = clock.now
		b.sleep = clock.sleep
		b.windowStart = clock.now()
		return b
	}

	t.Run("fast burst of ten pauses one second", func(t *testing.T) {
		clock := newFakeClock()
		b := newTestBurst(clock)
		for i := 0; i < 10; i++ {
			clock.advance(100 * time.Millisecond)
			b.MarkRequest()
		}
		if len(clock.sleeps) != 1 {
			t.Fatalf("sleeps = %v, want one", clock.sleeps)
		}
		if clock.sleeps[0] != time.Second {
			t.Errorf("slept %v, want 1s", clock.sleeps[0])
		}
	})

	t.Run("slow burst does not pause", func(t *testing.T) {
		clock := newFakeClock()
		b := newTestBurst(clock)
		for i := 0; i < 10; i++ {
			clock.advance(1100 * time.Millisecond)
			b.MarkRequest()
		}
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})

	t.Run("counter resets between bursts", func(t *testing.T) {
		clock := newFakeClock()
		b := newTestBurst(clock)
		for i := 0; i < 20; i++ {
			clock.advance(50 * time.Millisecond)
			b.MarkRequest()
		}
		if len(clock.sleeps) != 2 {
			t.Errorf("sleeps = %v, want two", clock.sleeps)
		}
	})

	t.Run("nine requests never pause", func(t *testing.T) {
		clock := newFakeClock()
		b := newTestBurst(clock)
		for i := 0; i < 9; i++ {
			b.MarkRequest()
		}
		if len(clock.sleeps) != 0 {
			t.Errorf("sleeps = %v, want none", clock.sleeps)
		}
	})
}
