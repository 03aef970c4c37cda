package turn

import "context"

// Repository defines data access for the turn catalog.
type Repository interface {
	List(ctx context.Context) ([]Turn, error)
	GetByID(ctx context.Context, id string) (Turn, error)
	Create(ctx context.Context, t Turn) (Turn, error)
	Update(ctx context.Context, t Turn) (Turn, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
