package report

import "context"

type Repository interface {
	List(ctx context.Context) ([]Report, error)
	GetByID(ctx context.Context, id string) (Report, error)
	// Replace upserts by employee id: the store keeps at most one report
	// per employee, whichever consolidation wrote last.
	Replace(ctx context.Context, r Report) (Report, error)
	UpdateNotes(ctx context.Context, id, notes string) (Report, error)
	Clear(ctx context.Context) error
}
