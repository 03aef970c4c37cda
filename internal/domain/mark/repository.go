package mark

import (
	"context"
	"time"
)

// Filter narrows List. Zero values mean "no constraint". Date is a local
// calendar day in YYYY-MM-DD.
type Filter struct {
	EmployeeID string
	Type       Type
	Date       string
	OpenOnly   bool
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]Mark, error)
	GetByID(ctx context.Context, id string) (Mark, error)
	Create(ctx context.Context, m Mark) (Mark, error)
	// Close stamps closedAt on an open mark. ErrMarkAlreadyClosed when the
	// mark is not open.
	Close(ctx context.Context, id string, closedAt time.Time) (Mark, error)
	Update(ctx context.Context, m Mark) (Mark, error)
	// GetOpenByType returns the employee's open mark of the given type, or
	// ErrMarkNotFound.
	GetOpenByType(ctx context.Context, employeeID string, t Type) (Mark, error)
	// GetOpenBreak returns the employee's open break of the given break
	// type, or ErrMarkNotFound.
	GetOpenBreak(ctx context.Context, employeeID, breakType string) (Mark, error)
	// HasTypeOnDate reports whether the employee already has a mark of type
	// t created on the local day (open or closed).
	HasTypeOnDate(ctx context.Context, employeeID string, t Type, date string) (bool, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Mark, error)
	// ListByEmployeeBetween returns marks with CreatedAt in [from, to],
	// inclusive on both ends, ordered by CreatedAt.
	ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]Mark, error)
}
