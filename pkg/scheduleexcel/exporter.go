// Package scheduleexcel renders a weekly schedule grid to an xlsx
// workbook: a frozen employee column on the left, one column per date, one
// row per employee, shift lines stacked inside each cell.
package scheduleexcel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Grid is the renderer's input: the ordered week dates and one row per
// employee. Cells maps a date to the pre-rendered shift lines for that day;
// a date absent from the map renders as an empty cell.
type Grid struct {
	Dates []string
	Rows  []Row
}

// Row is one employee line of the grid.
type Row struct {
	Code  string
	Name  string
	Cells map[string][]string
}

// Exporter writes grids as xlsx workbooks.
type Exporter struct {
	layout Layout
}

// NewExporter creates an Exporter with the given layout.
func NewExporter(layout Layout) *Exporter {
	return &Exporter{layout: layout}
}

// Export renders the grid and returns the workbook bytes.
func (e *Exporter) Export(g Grid) ([]byte, error) {
	f := excelize.NewFile()
	sheet := e.layout.SheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerRow := 1
	if e.layout.Title != "" {
		if err := f.SetCellValue(sheet, "A1", e.layout.Title); err != nil {
			return nil, err
		}
		headerRow = 2
	}

	// Header: employee column then the 7 dates.
	if err := e.setCell(f, sheet, 1, headerRow, "Employee"); err != nil {
		return nil, err
	}
	for i, date := range g.Dates {
		if err := e.setCell(f, sheet, i+2, headerRow, date); err != nil {
			return nil, err
		}
	}

	for r, row := range g.Rows {
		rowNum := headerRow + 1 + r
		label := row.Name
		if row.Code != "" {
			label = fmt.Sprintf("%s (%s)", row.Name, row.Code)
		}
		if err := e.setCell(f, sheet, 1, rowNum, label); err != nil {
			return nil, err
		}
		for i, date := range g.Dates {
			lines, ok := row.Cells[date]
			if !ok {
				continue
			}
			if err := e.setCell(f, sheet, i+2, rowNum, strings.Join(lines, "\n")); err != nil {
				return nil, err
			}
		}
	}

	if err := e.applyStyles(f, sheet, headerRow, len(g.Dates), len(g.Rows)); err != nil {
		return nil, err
	}

	// Freeze the employee column so it stays visible while scrolling days.
	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		TopLeftCell: "B1",
		ActivePane:  "topRight",
	}); err != nil {
		return nil, fmt.Errorf("freeze employee column: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) setCell(f *excelize.File, sheet string, col, row int, value string) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func (e *Exporter) applyStyles(f *excelize.File, sheet string, headerRow, days, rows int) error {
	if err := f.SetColWidth(sheet, "A", "A", e.layout.EmployeeColWidth); err != nil {
		return err
	}
	if days > 0 {
		lastCol, err := excelize.ColumnNumberToName(days + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "B", lastCol, e.layout.DayColWidth); err != nil {
			return err
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	first, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(days+1, headerRow)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, first, last, headerStyle); err != nil {
		return err
	}

	if rows == 0 {
		return nil
	}
	// Multi-shift cells hold newline-separated lines; wrap so they show.
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}
	firstData, err := excelize.CoordinatesToCellName(2, headerRow+1)
	if err != nil {
		return err
	}
	lastData, err := excelize.CoordinatesToCellName(days+1, headerRow+rows)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, firstData, lastData, wrapStyle)
}
