package master

import "context"

type PositionRepository interface {
	List(ctx context.Context) ([]Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	Create(ctx context.Context, p Position) (Position, error)
	Update(ctx context.Context, p Position) (Position, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}
