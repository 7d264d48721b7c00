package schedule

import "time"

// DateLayout is the ISO date format used across the suite API.
const DateLayout = "2006-01-02"

// WeekWindow is a 7-day view anchored at an arbitrary date. The window is
// anchor, anchor+1, ..., anchor+6; month and year boundaries fall out of
// plain date arithmetic with no special-casing.
type WeekWindow struct {
	anchor time.Time
}

// NewWeekWindow creates a window anchored at the given date. The time-of-day
// component is discarded.
func NewWeekWindow(anchor time.Time) WeekWindow {
	y, m, d := anchor.Date()
	return WeekWindow{anchor: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseWeekWindow creates a window from an ISO date string.
func ParseWeekWindow(anchor string) (WeekWindow, error) {
	t, err := time.Parse(DateLayout, anchor)
	if err != nil {
		return WeekWindow{}, err
	}
	return NewWeekWindow(t), nil
}

// Anchor returns the window's first day.
func (w WeekWindow) Anchor() time.Time {
	return w.anchor
}

// Dates returns the window's 7 ISO date strings in order.
func (w WeekWindow) Dates() []string {
	dates := make([]string, 7)
	for i := 0; i < 7; i++ {
		dates[i] = w.anchor.AddDate(0, 0, i).Format(DateLayout)
	}
	return dates
}

// Range returns the window's first and last date, the inclusive bounds the
// upstream shift endpoint filters on.
func (w WeekWindow) Range() (fromDate, toDate string) {
	return w.anchor.Format(DateLayout), w.anchor.AddDate(0, 0, 6).Format(DateLayout)
}

// ShiftBy returns a window offset by the given number of weeks.
func (w WeekWindow) ShiftBy(weeks int) WeekWindow {
	return NewWeekWindow(w.anchor.AddDate(0, 0, weeks*7))
}

// AlignToCurrentWeekStart returns the Monday of the week containing now,
// ISO style: Sunday belongs to the preceding Monday's week.
func AlignToCurrentWeekStart(now time.Time) time.Time {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	offset := (int(today.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return today.AddDate(0, 0, -offset)
}
