package domain

import "context"

// EmployeeDirectory defines read access to the upstream employee collection.
// Employees are fetched fresh per week-view load; nothing is cached.
type EmployeeDirectory interface {
	List(ctx context.Context) ([]Employee, error)
}

// ShiftStore defines access to the upstream shift collection.
type ShiftStore interface {
	// ListRange fetches all shifts whose date falls inside [fromDate, toDate]
	// (ISO date strings, inclusive on both ends).
	ListRange(ctx context.Context, fromDate, toDate string) ([]Shift, error)
	Create(ctx context.Context, in *CreateShift) (*Shift, error)
	Update(ctx context.Context, id int, patch *ShiftPatch) error
	Delete(ctx context.Context, id int) error
}

// RecipeStore defines read access to the upstream recipe collection.
type RecipeStore interface {
	List(ctx context.Context) ([]Recipe, error)
}
