package schedule

import (
	"context"
	"fmt"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
)

// WeekSchedule is the fully assembled view of one week: the 7 window dates
// plus one entry per employee. It has no lifecycle of its own — it is
// discarded and rebuilt on every load.
type WeekSchedule struct {
	Window  WeekWindow
	Dates   []string
	Entries []domain.EmployeeSchedule
}

// Service loads and assembles weekly schedules from the upstream API.
type Service struct {
	employees domain.EmployeeDirectory
	shifts    domain.ShiftStore
}

// NewService creates a schedule Service.
func NewService(employees domain.EmployeeDirectory, shifts domain.ShiftStore) *Service {
	return &Service{employees: employees, shifts: shifts}
}

// LoadWeek fetches the employee set and the week's shifts (sequentially —
// two requests, small payloads) and assembles the schedule index.
func (s *Service) LoadWeek(ctx context.Context, w WeekWindow) (*WeekSchedule, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}

	fromDate, toDate := w.Range()
	shifts, err := s.shifts.ListRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("load shifts %s..%s: %w", fromDate, toDate, err)
	}

	logger.DebugLog(ctx, "assembling week %s: %d employees, %d shifts", fromDate, len(employees), len(shifts))
	return &WeekSchedule{
		Window:  w,
		Dates:   w.Dates(),
		Entries: BuildIndex(ctx, employees, shifts),
	}, nil
}
