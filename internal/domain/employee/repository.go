package employee

import "context"

type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	// ClearPosition detaches every employee referencing the position.
	ClearPosition(ctx context.Context, positionID string) error
	Count(ctx context.Context) (int, error)
}
