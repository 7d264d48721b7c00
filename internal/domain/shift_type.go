package domain

import (
	"fmt"
	"time"
)

// ShiftType is the closed enumeration of shift tags used by the suite.
type ShiftType string

const (
	ShiftMorning   ShiftType = "MORNING"
	ShiftAfternoon ShiftType = "AFTERNOON"
	ShiftEvening   ShiftType = "EVENING"
	ShiftNight     ShiftType = "NIGHT"
	ShiftOvertime  ShiftType = "OVERTIME"
)

// AllShiftTypes lists every valid shift type in display order.
var AllShiftTypes = []ShiftType{
	ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight, ShiftOvertime,
}

// TimeRange is a start/end pair at HH:MM granularity.
type TimeRange struct {
	Start string
	End   string
}

var defaultRanges = map[ShiftType]TimeRange{
	ShiftMorning:   {Start: "07:00", End: "15:00"},
	ShiftAfternoon: {Start: "15:00", End: "23:00"},
	ShiftEvening:   {Start: "14:00", End: "22:00"},
	ShiftNight:     {Start: "23:00", End: "07:00"}, // crosses midnight
	ShiftOvertime:  {Start: "17:00", End: "20:00"},
}

// Valid reports whether t is one of the known shift types.
func (t ShiftType) Valid() bool {
	_, ok := defaultRanges[t]
	return ok
}

// Overnight reports whether the type's conventional range crosses midnight.
func (t ShiftType) Overnight() bool {
	return t == ShiftNight
}

// DefaultRange returns the conventional time range for the type.
func (t ShiftType) DefaultRange() (TimeRange, bool) {
	r, ok := defaultRanges[t]
	return r, ok
}

// ValidateTimeRange checks that start/end parse as clock times and that
// start precedes end for non-overnight types. NIGHT is exempt because its
// range legitimately crosses midnight.
func (t ShiftType) ValidateTimeRange(start, end string) error {
	if !t.Valid() {
		return fmt.Errorf("unknown shift type %q", string(t))
	}
	s, err := parseClock(start)
	if err != nil {
		return fmt.Errorf("invalid start time %q: %w", start, err)
	}
	e, err := parseClock(end)
	if err != nil {
		return fmt.Errorf("invalid end time %q: %w", end, err)
	}
	if t.Overnight() {
		return nil
	}
	if s >= e {
		return fmt.Errorf("shift type %s requires start (%s) before end (%s)", t, start, end)
	}
	return nil
}

// parseClock accepts "HH:MM" or "HH:MM:SS" and returns minutes since midnight.
func parseClock(v string) (int, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if tm, err := time.Parse(layout, v); err == nil {
			return tm.Hour()*60 + tm.Minute(), nil
		}
	}
	return 0, fmt.Errorf("not a clock time")
}
