package scheduleexcel

import (
	"fmt"

	yaml "gopkg.in/yaml.v2"
)

// Layout controls the look of the exported workbook. All fields are
// optional; zero values fall back to the defaults.
type Layout struct {
	SheetName        string  `yaml:"sheet_name"`
	Title            string  `yaml:"title"`
	EmployeeColWidth float64 `yaml:"employee_col_width"`
	DayColWidth      float64 `yaml:"day_col_width"`
}

// DefaultLayout returns the built-in workbook layout.
func DefaultLayout() Layout {
	return Layout{
		SheetName:        "Weekly Schedule",
		EmployeeColWidth: 28,
		DayColWidth:      18,
	}
}

// LoadLayout parses a YAML layout config, filling unset fields from the
// defaults.
func LoadLayout(yamlConfig string) (Layout, error) {
	layout := DefaultLayout()
	if err := yaml.Unmarshal([]byte(yamlConfig), &layout); err != nil {
		return Layout{}, fmt.Errorf("parse layout config: %w", err)
	}
	if layout.SheetName == "" {
		layout.SheetName = DefaultLayout().SheetName
	}
	if layout.EmployeeColWidth <= 0 {
		layout.EmployeeColWidth = DefaultLayout().EmployeeColWidth
	}
	if layout.DayColWidth <= 0 {
		layout.DayColWidth = DefaultLayout().DayColWidth
	}
	return layout, nil
}
