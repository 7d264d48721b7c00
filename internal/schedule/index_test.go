package schedule

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

func TestBuildIndex(t *testing.T) {
	logger.InitLogging("", "error")
	ctx := context.Background()

	t.Run("orphan shift is dropped without failing", func(t *testing.T) {
		employees := []domain.Employee{{ID: 1, Code: "E01", FullName: "Ann"}}
		shifts := []domain.Shift{{ID: 7, Employee: 999, Date: "2024-01-02", Type: domain.ShiftMorning}}

		entries := BuildIndex(ctx, employees, shifts)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		if len(entries[0].Shifts) != 0 {
			t.Errorf("expected no shifts for E01, got %v", entries[0].Shifts)
		}
	})

	t.Run("same-day shifts bucket in arrival order", func(t *testing.T) {
		employees := []domain.Employee{{ID: 1, Code: "E01", FullName: "Ann"}}
		shifts := []domain.Shift{
			{ID: 10, Employee: 1, Date: "2024-01-02", Type: domain.ShiftMorning},
			{ID: 11, Employee: 1, Date: "2024-01-02", Type: domain.ShiftEvening},
			{ID: 12, Employee: 1, Date: "2024-01-03", Type: domain.ShiftNight},
		}

		entries := BuildIndex(ctx, employees, shifts)
		if len(entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(entries))
		}
		sameDay := entries[0].Shifts["2024-01-02"]
		if len(sameDay) != 2 || sameDay[0].ID != 10 || sameDay[1].ID != 11 {
			t.Errorf("expected shifts 10,11 in order, got %v", sameDay)
		}
		if len(entries[0].Shifts["2024-01-03"]) != 1 {
			t.Errorf("expected 1 shift on 2024-01-03, got %v", entries[0].Shifts["2024-01-03"])
		}
	})

	t.Run("zero-shift employee still gets an entry", func(t *testing.T) {
		employees := []domain.Employee{
			{ID: 1, Code: "E01", FullName: "Ann"},
			{ID: 2, Code: "E02", FullName: "Bob"},
		}
		shifts := []domain.Shift{{ID: 10, Employee: 1, Date: "2024-01-02", Type: domain.ShiftMorning}}

		entries := BuildIndex(ctx, employees, shifts)
		if len(entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(entries))
		}
		if entries[1].Code != "E02" {
			t.Errorf("expected second entry for E02, got %s", entries[1].Code)
		}
		if len(entries[1].Shifts) != 0 {
			t.Errorf("expected an empty map for E02, got %v", entries[1].Shifts)
		}
		// "No shift" is the absence of the date key, not an empty slice.
		if _, ok := entries[1].Shifts["2024-01-02"]; ok {
			t.Error("expected no bucket at all for a day without shifts")
		}
	})

	t.Run("end to end scenario", func(t *testing.T) {
		employees := []domain.Employee{{ID: 1, Code: "E01", FullName: "Ann"}}
		shifts := []domain.Shift{{
			ID: 10, Employee: 1, Date: "2024-01-02",
			Type: domain.ShiftMorning, StartTime: "07:00:00", EndTime: "15:00:00",
		}}

		entries := BuildIndex(ctx, employees, shifts)
		expected := []domain.EmployeeSchedule{{
			EmployeeKey:  domain.EmployeeKey{Code: "E01", DBID: 1},
			EmployeeName: "Ann",
			Shifts:       map[string][]domain.Shift{"2024-01-02": {shifts[0]}},
		}}
		if !reflect.DeepEqual(entries, expected) {
			t.Errorf("expected %+v, got %+v", expected, entries)
		}
	})
}

// The UI reads the entry's JSON; both identifier spaces must be present
// under their own keys.
func TestEmployeeScheduleJSONShape(t *testing.T) {
	entry := domain.EmployeeSchedule{
		EmployeeKey:  domain.EmployeeKey{Code: "E01", DBID: 1},
		EmployeeName: "Ann",
		Shifts:       map[string][]domain.Shift{},
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["employee_id"] != "E01" {
		t.Errorf("expected employee_id E01, got %v", decoded["employee_id"])
	}
	if decoded["employee_db_id"] != float64(1) {
		t.Errorf("expected employee_db_id 1, got %v", decoded["employee_db_id"])
	}
	if decoded["employee_name"] != "Ann" {
		t.Errorf("expected employee_name Ann, got %v", decoded["employee_name"])
	}
	if _, ok := decoded["shifts"]; !ok {
		t.Error("expected a shifts key")
	}
}
