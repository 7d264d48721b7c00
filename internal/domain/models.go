package domain

// ==================== SCHEDULING ====================

// EmployeeKey carries both identifier spaces the suite uses for an employee.
// Code is the human-readable employee code used for grouping and display;
// DBID is the numeric primary key the mutation endpoints require. The two
// must never be conflated.
type EmployeeKey struct {
	Code string `json:"employee_id"`
	DBID int    `json:"employee_db_id"`
}

// Employee represents an employee record from the upstream suite API
type Employee struct {
	ID         int    `json:"id"`
	Code       string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

// Key returns the dual identifier for the employee.
func (e Employee) Key() EmployeeKey {
	return EmployeeKey{Code: e.Code, DBID: e.ID}
}

// Shift represents a single shift record from the upstream suite API.
// A date may hold zero or more shifts per employee; overlapping shifts
// are permitted (split shifts are a normal hospitality pattern).
type Shift struct {
	ID        int       `json:"id"`
	Employee  int       `json:"employee"`
	Date      string    `json:"shift_date"`
	Type      ShiftType `json:"shift_type"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
	Notes     string    `json:"notes,omitempty"`
}

// CreateShift is the body for POST /shifts-manage/. Start/end may be left
// empty to take the shift type's default range.
type CreateShift struct {
	Employee  int       `json:"employee"`
	Date      string    `json:"shift_date"`
	Type      ShiftType `json:"shift_type"`
	StartTime string    `json:"start_time,omitempty"`
	EndTime   string    `json:"end_time,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// ShiftPatch is the partial-update body for PATCH /shifts-manage/<id>/.
// Employee and date are immutable once created; only type, times and notes
// can change.
type ShiftPatch struct {
	Type      *ShiftType `json:"shift_type,omitempty"`
	StartTime *string    `json:"start_time,omitempty"`
	EndTime   *string    `json:"end_time,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// EmployeeSchedule is the derived per-employee view of a week. It is
// rebuilt on every fetch and owned exclusively by the presenting side.
// Shifts maps ISO date -> shifts in server-returned order; a date with no
// shifts is simply absent from the map (not an empty slice), so presenters
// must check for the bucket before indexing.
type EmployeeSchedule struct {
	EmployeeKey
	EmployeeName string             `json:"employee_name"`
	Department   string             `json:"department,omitempty"`
	Shifts       map[string][]Shift `json:"shifts"`
}

// ==================== RECIPES / BOM ====================

// Ingredient is one BOM line of a recipe.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	UnitCost float64 `json:"unit_cost"`
}

// Recipe represents a recipe record with its bill of materials.
type Recipe struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Servings     int          `json:"servings"`
	SellingPrice float64      `json:"selling_price"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// RecipeCost is the derived cost/margin breakdown for a recipe.
type RecipeCost struct {
	RecipeID       int     `json:"recipe_id"`
	RecipeName     string  `json:"recipe_name"`
	TotalCost      float64 `json:"total_cost"`
	CostPerServing float64 `json:"cost_per_serving"`
	SellingPrice   float64 `json:"selling_price"`
	GrossMargin    float64 `json:"gross_margin"`
	MarginPct      float64 `json:"margin_pct"`
}
