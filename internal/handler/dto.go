package handler

import (
	"fmt"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/schedule"
	"github.com/locvowork/hospitality_backoffice/pkg/scheduleexcel"
)

// CreateShiftRequest is the create-shift body accepted from the UI.
type CreateShiftRequest struct {
	Employee  int    `json:"employee"`
	ShiftDate string `json:"shift_date"`
	ShiftType string `json:"shift_type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Notes     string `json:"notes"`
}

// UpdateShiftRequest is the partial-update body. Employee and date are not
// accepted here — they are immutable once a shift exists.
type UpdateShiftRequest struct {
	ShiftType *string `json:"shift_type"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     *string `json:"notes"`
}

// WeekScheduleResponse is the assembled grid returned to the UI.
type WeekScheduleResponse struct {
	WeekStart string                    `json:"week_start"`
	Dates     []string                  `json:"dates"`
	Schedule  []domain.EmployeeSchedule `json:"schedule"`
}

func toWeekResponse(ws *schedule.WeekSchedule) WeekScheduleResponse {
	return WeekScheduleResponse{
		WeekStart: ws.Dates[0],
		Dates:     ws.Dates,
		Schedule:  ws.Entries,
	}
}

// toGrid projects an assembled week onto the excel renderer's input. Date
// buckets are checked for existence before indexing — an absent bucket is
// the "no shift" representation, not an empty slice.
func toGrid(ws *schedule.WeekSchedule) scheduleexcel.Grid {
	rows := make([]scheduleexcel.Row, 0, len(ws.Entries))
	for _, entry := range ws.Entries {
		cells := make(map[string][]string)
		for _, date := range ws.Dates {
			bucket, ok := entry.Shifts[date]
			if !ok {
				continue
			}
			lines := make([]string, 0, len(bucket))
			for _, s := range bucket {
				lines = append(lines, formatShiftLine(s))
			}
			cells[date] = lines
		}
		rows = append(rows, scheduleexcel.Row{
			Code:  entry.Code,
			Name:  entry.EmployeeName,
			Cells: cells,
		})
	}
	return scheduleexcel.Grid{Dates: ws.Dates, Rows: rows}
}

func formatShiftLine(s domain.Shift) string {
	return fmt.Sprintf("%s-%s %s", clockShort(s.StartTime), clockShort(s.EndTime), s.Type)
}

// clockShort trims "HH:MM:SS" down to the "HH:MM" granularity the grid shows.
func clockShort(v string) string {
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
