package scheduleexcel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testGrid() Grid {
	return Grid{
		Dates: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
		Rows: []Row{
			{
				Code: "E01", Name: "Ann",
				Cells: map[string][]string{
					"2024-01-01": {"07:00-15:00 MORNING"},
					"2024-01-02": {"07:00-15:00 MORNING", "17:00-20:00 OVERTIME"},
				},
			},
			{Code: "E02", Name: "Bob", Cells: map[string][]string{}},
		},
	}
}

func TestExportDefaultLayout(t *testing.T) {
	raw, err := NewExporter(DefaultLayout()).Export(testGrid())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	sheet := "Weekly Schedule"
	sheets := f.GetSheetList()
	require.Equal(t, []string{sheet}, sheets)

	// No title: row 1 is the header.
	for cell, want := range map[string]string{
		"A1": "Employee",
		"B1": "2024-01-01",
		"C1": "2024-01-02",
		"D1": "2024-01-03",
		"A2": "Ann (E01)",
		"B2": "07:00-15:00 MORNING",
		"C2": "07:00-15:00 MORNING\n17:00-20:00 OVERTIME",
		"D2": "",
		"A3": "Bob (E02)",
		"B3": "",
	} {
		got, err := f.GetCellValue(sheet, cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestExportWithTitleShiftsHeader(t *testing.T) {
	layout := DefaultLayout()
	layout.Title = "Staff shift schedule"

	raw, err := NewExporter(layout).Export(testGrid())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Weekly Schedule", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Staff shift schedule", title)

	header, err := f.GetCellValue("Weekly Schedule", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Employee", header)

	first, err := f.GetCellValue("Weekly Schedule", "A3")
	require.NoError(t, err)
	assert.Equal(t, "Ann (E01)", first)
}

func TestExportFreezesEmployeeColumn(t *testing.T) {
	raw, err := NewExporter(DefaultLayout()).Export(testGrid())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer f.Close()

	panes, err := f.GetPanes("Weekly Schedule")
	require.NoError(t, err)
	assert.True(t, panes.Freeze)
	assert.Equal(t, 1, panes.XSplit)
}

func TestLoadLayout(t *testing.T) {
	t.Run("partial config keeps defaults", func(t *testing.T) {
		layout, err := LoadLayout("title: Rota\nday_col_width: 22\n")
		require.NoError(t, err)
		assert.Equal(t, "Rota", layout.Title)
		assert.Equal(t, 22.0, layout.DayColWidth)
		assert.Equal(t, "Weekly Schedule", layout.SheetName)
		assert.Equal(t, 28.0, layout.EmployeeColWidth)
	})

	t.Run("empty config is the default layout", func(t *testing.T) {
		layout, err := LoadLayout("")
		require.NoError(t, err)
		assert.Equal(t, DefaultLayout(), layout)
	})

	t.Run("broken yaml errors", func(t *testing.T) {
		_, err := LoadLayout("title: [unclosed")
		assert.Error(t, err)
	})
}
