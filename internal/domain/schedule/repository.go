package schedule

import "context"

// Repository defines data access for schedule assignments.
type Repository interface {
	List(ctx context.Context) ([]Schedule, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Schedule, error)
	GetByID(ctx context.Context, id string) (Schedule, error)
	Create(ctx context.Context, sch Schedule) (Schedule, error)
	Update(ctx context.Context, sch Schedule) (Schedule, error)
	Delete(ctx context.Context, id string) error
}
