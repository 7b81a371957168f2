package interval

import (
	"reflect"
	"testing"
	"time"
)

func TestDaysInYear(t *testing.T) {
	cases := []struct {
		year int
		want int
	}{
		{2020, 366},
		{2021, 365},
		{2000, 366},
		{1900, 365},
		{2024, 366},
	}
	for _, tc := range cases {
		if got := DaysInYear(tc.year); got != tc.want {
			t.Errorf("DaysInYear(%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}

func TestPlanYear(t *testing.T) {
	t.Run("full leap year", func(t *testing.T) {
		windows := PlanYear(2020, 1, DaysInYear(2020))
		if len(windows) != 366 {
			t.Fatalf("len = %d, want 366", len(windows))
		}
	})

	t.Run("full regular year", func(t *testing.T) {
		windows := PlanYear(2021, 1, DaysInYear(2021))
		if len(windows) != 365 {
			t.Fatalf("len = %d, want 365", len(windows))
		}

		first := windows[0]
		wantStart := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
		if !first.Start.Equal(wantStart) {
			t.Errorf("first.Start = %v, want %v", first.Start, wantStart)
		}
		wantEnd := time.Date(2021, time.January, 1, 23, 59, 59, 999999000, time.UTC)
		if !first.End.Equal(wantEnd) {
			t.Errorf("first.End = %v, want %v", first.End, wantEnd)
		}

		last := windows[364]
		if last.Start.Month() != time.December || last.Start.Day() != 31 {
			t.Errorf("last.Start = %v, want Dec 31", last.Start)
		}
	})

	t.Run("windows ascend by one calendar day", func(t *testing.T) {
		windows := PlanYear(2021, 1, 365)
		for i := 1; i < len(windows); i++ {
			if got := windows[i].Start.Sub(windows[i-1].Start); got != 24*time.Hour {
				t.Fatalf("window %d starts %v after window %d, want 24h", i, got, i-1)
			}
		}
	})

	t.Run("day sub-range", func(t *testing.T) {
		windows := PlanYear(2021, 32, 59)
		if len(windows) != 28 {
			t.Fatalf("len = %d, want 28", len(windows))
		}
		if windows[0].Start.Month() != time.February || windows[0].Start.Day() != 1 {
			t.Errorf("first.Start = %v, want Feb 1", windows[0].Start)
		}
	})

	t.Run("midpoint within window", func(t *testing.T) {
		for _, w := range PlanYear(2021, 1, 3) {
			if !w.Start.Before(w.Mid) || !w.Mid.Before(w.End) {
				t.Errorf("want Start < Mid < End, got %v / %v / %v", w.Start, w.Mid, w.End)
			}
		}
	})
}

func TestPlanDay(t *testing.T) {
	day := PlanYear(2021, 1, 1)[0]

	t.Run("hourly window count", func(t *testing.T) {
		if got := len(PlanDay(day, time.Hour)); got != 24 {
			t.Fatalf("len = %d, want 24", got)
		}
	})

	t.Run("half hour window count", func(t *testing.T) {
		if got := len(PlanDay(day, 30*time.Minute)); got != 48 {
			t.Fatalf("len = %d, want 48", got)
		}
	})

	t.Run("one second buffer between windows", func(t *testing.T) {
		windows := PlanDay(day, 30*time.Minute)
		for i := 1; i < len(windows); i++ {
			if windows[i].Start.Before(windows[i-1].End.Add(time.Second)) {
				t.Fatalf("window %d starts %v, before %v + 1s", i, windows[i].Start, windows[i-1].End)
			}
		}
	})

	t.Run("last end clamped to day end", func(t *testing.T) {
		for _, g := range []time.Duration{time.Hour, 30 * time.Minute} {
			windows := PlanDay(day, g)
			if got := windows[len(windows)-1].End; !got.Equal(day.End) {
				t.Errorf("granularity %v: last End = %v, want %v", g, got, day.End)
			}
		}
	})

	t.Run("first window spans day start to one granularity", func(t *testing.T) {
		windows := PlanDay(day, time.Hour)
		if !windows[0].Start.Equal(day.Start) {
			t.Errorf("first.Start = %v, want %v", windows[0].Start, day.Start)
		}
		if want := day.Start.Add(time.Hour); !windows[0].End.Equal(want) {
			t.Errorf("first.End = %v, want %v", windows[0].End, want)
		}
	})

	t.Run("midpoint is end minus half granularity", func(t *testing.T) {
		windows := PlanDay(day, time.Hour)
		for i, w := range windows {
			if want := w.End.Add(-30 * time.Minute); !w.Mid.Equal(want) {
				t.Fatalf("window %d Mid = %v, want %v", i, w.Mid, want)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		a := PlanDay(day, 30*time.Minute)
		b := PlanDay(day, 30*time.Minute)
		if !reflect.DeepEqual(a, b) {
			t.Error("two identical calls returned different sequences")
		}
	})
}
