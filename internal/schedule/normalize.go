package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISO8601 is the instant layout used everywhere in the EN payload: extended
// ISO-8601 with an explicit numeric UTC offset.
const ISO8601 = "2006-01-02T15:04:05-07:00"

// DateLayout is the MM/DD/YYYY calendar-date layout W2W speaks.
const DateLayout = "01/02/2006"

// clockRE accepts "6am", "6 am", "06:00", "6:30pm" and friends: 1-2 digit
// hour, optional :MM, optional am/pm marker.
var clockRE = regexp.MustCompile(`^\s*(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])?\s*$`)

// ParseClock extracts hour and minute from a loosely formatted clock string.
// Text that does not match the grammar degrades to midnight instead of
// failing; W2W feeds contain enough garbage time strings that rejecting them
// would drop otherwise usable rows. Without an am/pm marker the hour is
// taken as already 24-hour.
func ParseClock(text string) (hour, minute int) {
	m := clockRE.FindStringSubmatch(text)
	if m == nil {
		return 0, 0
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	switch strings.ToLower(m[3]) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}
	return hour, minute
}

// NormalizeLocal combines a MM/DD/YYYY date and a clock string into a zoned
// instant. The offset (including DST) comes from the zone database for that
// date. A malformed date is an error; a malformed clock string is not, per
// the midnight fallback in ParseClock.
func NormalizeLocal(mmddyyyy, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(mmddyyyy), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", mmddyyyy, err)
	}
	hh, mm := ParseClock(clock)
	return time.Date(d.Year(), d.Month(), d.Day(), hh, mm, 0, 0, loc), nil
}
