package interval

import "time"

// Window is one contiguous time range queried as a single unit of work.
type Window struct {
	Start time.Time // First instant of the window
	End   time.Time // Last instant of the window (inclusive)
	Mid   time.Time // Midpoint, End minus half the granularity
}

// boundaryOffset separates the end of one sub-window from the start of
// the next so boundary records are never fetched twice.
const boundaryOffset = time.Second

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// PlanYear returns one window per calendar day of the given year, from
// dayStart through dayEnd inclusive (1-based day of year). Each window
// spans the day's first microsecond through its last
// (00:00:00.000000 to 23:59:59.999999 UTC).
func PlanYear(year, dayStart, dayEnd int) []Window {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	windows := make([]Window, 0, dayEnd-dayStart+1)
	for d := dayStart; d <= dayEnd; d++ {
		start := jan1.AddDate(0, 0, d-1)
		end := start.AddDate(0, 0, 1).Add(-time.Microsecond)
		windows = append(windows, Window{
			Start: start,
			End:   end,
			Mid:   end.Add(-12 * time.Hour),
		})
	}
	return windows
}

// PlanDay splits a day window into sub-windows of the given granularity.
// Sub-window starts after the first are shifted forward by one second,
// and the final sub-window's end is clamped to the day's last instant.
// The granularity must evenly divide 24 hours; that is a caller
// contract, not validated here.
func PlanDay(day Window, granularity time.Duration) []Window {
	n := int(24 * time.Hour / granularity)

	windows := make([]Window, 0, n)
	start := day.Start
	for i := 1; i <= n; i++ {
		end := day.Start.Add(time.Duration(i) * granularity)
		if i == n {
			end = day.End
		}
		windows = append(windows, Window{
			Start: start,
			End:   end,
			Mid:   end.Add(-granularity / 2),
		})
		start = day.Start.Add(time.Duration(i)*granularity + boundaryOffset)
	}
	return windows
}
