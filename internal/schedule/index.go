package schedule

import (
	"context"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

// BuildIndex assembles the per-employee per-date schedule view from the two
// collections the upstream returns for a week. Entries come back in the
// employee collection's order, one per employee — employees with no shifts
// that week still get an entry with an empty map, so they render as empty
// grid rows.
//
// Employees and shifts arrive from separate, unsynchronized requests, so a
// shift may reference an employee that is not in the loaded set. Such
// orphans are dropped with a diagnostic rather than failing the build; the
// mismatch self-heals once both collections are in sync.
func BuildIndex(ctx context.Context, employees []domain.Employee, shifts []domain.Shift) []domain.EmployeeSchedule {
	entries := make([]domain.EmployeeSchedule, 0, len(employees))
	for _, e := range employees {
		entries = append(entries, domain.EmployeeSchedule{
			EmployeeKey:  e.Key(),
			EmployeeName: e.FullName,
			Department:   e.Department,
			Shifts:       make(map[string][]domain.Shift),
		})
	}

	// Shifts carry the numeric DB id, not the employee code.
	byDBID := make(map[int]*domain.EmployeeSchedule, len(entries))
	for i := range entries {
		byDBID[entries[i].DBID] = &entries[i]
	}

	for _, s := range shifts {
		entry, ok := byDBID[s.Employee]
		if !ok {
			logger.WarnLog(ctx, "dropping shift %d: references employee id %d not present in loaded employee set", s.ID, s.Employee)
			continue
		}
		// Append in arrival order; same-day shifts display as the server
		// returned them. A date with no shifts stays absent from the map.
		entry.Shifts[s.Date] = append(entry.Shifts[s.Date], s)
	}

	return entries
}
