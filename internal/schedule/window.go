package schedule

import "time"

// Window is a half-open publishing range [Start, End). Shift intervals are
// clipped against it before they appear in a payload.
type Window struct {
	Start time.Time
	End   time.Time
}

func at(anchor time.Time, addDays, hour int) time.Time {
	y, m, d := anchor.Date()
	return time.Date(y, m, d+addDays, hour, 0, 0, 0, anchor.Location())
}

// FullDayWindow covers 06:00 on the anchor's civil date to 06:00 the next
// day.
func FullDayWindow(anchor time.Time) Window {
	return Window{Start: at(anchor, 0, 6), End: at(anchor, 1, 6)}
}

// DayWindow covers 06:00 to 18:00 on the anchor's civil date.
func DayWindow(anchor time.Time) Window {
	return Window{Start: at(anchor, 0, 6), End: at(anchor, 0, 18)}
}

// NightWindow covers 18:00 on the anchor's civil date to 06:00 the next day.
func NightWindow(anchor time.Time) Window {
	return Window{Start: at(anchor, 0, 18), End: at(anchor, 1, 6)}
}

// SelectWindow picks the window to publish for an invocation at now: before
// noon the day window, from noon on the night window, both anchored at now's
// civil date. The threshold is wall-clock hour 12, not whichever window
// contains now.
func SelectWindow(now time.Time) Window {
	if now.Hour() < 12 {
		return DayWindow(now)
	}
	return NightWindow(now)
}
