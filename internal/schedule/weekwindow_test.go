package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestWeekWindowDates(t *testing.T) {
	t.Run("seven consecutive days", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		dates := w.Dates()
		expected := []string{
			"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
			"2024-01-05", "2024-01-06", "2024-01-07",
		}
		if !reflect.DeepEqual(dates, expected) {
			t.Errorf("expected %v, got %v", expected, dates)
		}
	})

	t.Run("crosses month and year boundary", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC))
		dates := w.Dates()
		if dates[0] != "2023-12-29" {
			t.Errorf("expected window to start at 2023-12-29, got %s", dates[0])
		}
		if dates[3] != "2024-01-01" {
			t.Errorf("expected fourth day to be 2024-01-01, got %s", dates[3])
		}
		if dates[6] != "2024-01-04" {
			t.Errorf("expected window to end at 2024-01-04, got %s", dates[6])
		}
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2024, 3, 5, 23, 59, 1, 0, time.UTC))
		if got := w.Dates()[0]; got != "2024-03-05" {
			t.Errorf("expected 2024-03-05, got %s", got)
		}
	})
}

func TestWeekWindowShiftBy(t *testing.T) {
	t.Run("round trip reproduces the window", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC))
		roundTrip := w.ShiftBy(1).ShiftBy(-1)
		if !reflect.DeepEqual(roundTrip.Dates(), w.Dates()) {
			t.Errorf("expected %v, got %v", w.Dates(), roundTrip.Dates())
		}
	})

	t.Run("forward by one week", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC))
		if got := w.ShiftBy(1).Dates()[0]; got != "2024-03-04" {
			t.Errorf("expected 2024-03-04, got %s", got)
		}
	})

	t.Run("back by two weeks", func(t *testing.T) {
		w := NewWeekWindow(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
		if got := w.ShiftBy(-2).Dates()[0]; got != "2024-01-01" {
			t.Errorf("expected 2024-01-01, got %s", got)
		}
	})
}

func TestWeekWindowRange(t *testing.T) {
	w := NewWeekWindow(time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC))
	from, to := w.Range()
	if from != "2024-04-08" || to != "2024-04-14" {
		t.Errorf("expected 2024-04-08..2024-04-14, got %s..%s", from, to)
	}
}

func TestAlignToCurrentWeekStart(t *testing.T) {
	// 2024-06-03 is a Monday; walk every weekday of that week plus the
	// following Sunday, which must still align to its own week's Monday.
	for i := 0; i < 7; i++ {
		now := time.Date(2024, 6, 3+i, 13, 45, 0, 0, time.UTC)
		t.Run(now.Weekday().String(), func(t *testing.T) {
			monday := AlignToCurrentWeekStart(now)
			if monday.Weekday() != time.Monday {
				t.Errorf("expected a Monday, got %s", monday.Weekday())
			}
			if monday.After(now) {
				t.Errorf("expected Monday %s <= now %s", monday, now)
			}
			if !monday.After(now.AddDate(0, 0, -7)) {
				t.Errorf("expected Monday %s within 7 days of now %s", monday, now)
			}
		})
	}

	t.Run("Sunday belongs to the preceding Monday", func(t *testing.T) {
		sunday := time.Date(2024, 6, 9, 8, 0, 0, 0, time.UTC)
		if got := AlignToCurrentWeekStart(sunday).Format(DateLayout); got != "2024-06-03" {
			t.Errorf("expected 2024-06-03, got %s", got)
		}
	})
}

func TestParseWeekWindow(t *testing.T) {
	w, err := ParseWeekWindow("2024-05-06")
	if err != nil {
		t.Fatalf("ParseWeekWindow failed: %v", err)
	}
	if got := w.Dates()[0]; got != "2024-05-06" {
		t.Errorf("expected 2024-05-06, got %s", got)
	}

	if _, err := ParseWeekWindow("06/05/2024"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}
