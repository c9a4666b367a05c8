package schedule

import "time"

// Clip intersects the half-open interval [start, end) with the window. The
// third return is false when the intersection is empty or degenerate.
func Clip(start, end time.Time, w Window) (time.Time, time.Time, bool) {
	s, e := start, end
	if s.Before(w.Start) {
		s = w.Start
	}
	if e.After(w.End) {
		e = w.End
	}
	if !s.Before(e) {
		return time.Time{}, time.Time{}, false
	}
	return s, e, true
}
