package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
)

type PositionRepository struct {
	s *Store
}

func NewPositionRepository(s *Store) *PositionRepository {
	return &PositionRepository{s: s}
}

func (r *PositionRepository) List(ctx context.Context) ([]master.Position, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]master.Position, 0, len(r.s.positions))
	for _, p := range r.s.positions {
		out = append(out, p)
	}
	sortStable(out,
		func(p master.Position) int64 { return p.CreatedAt.UnixNano() },
		func(p master.Position) string { return p.ID })
	return out, nil
}

func (r *PositionRepository) GetByID(ctx context.Context, id string) (master.Position, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.positions[id]
	if !ok {
		return master.Position{}, master.ErrPositionNotFound
	}
	return p, nil
}

func (r *PositionRepository) Create(ctx context.Context, p master.Position) (master.Position, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == "" {
		p.ID = newID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
	r.s.positions[p.ID] = p
	return p, nil
}

func (r *PositionRepository) Update(ctx context.Context, p master.Position) (master.Position, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.positions[p.ID]
	if !ok {
		return master.Position{}, master.ErrPositionNotFound
	}
	p.CreatedAt = existing.CreatedAt
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}
	r.s.positions[p.ID] = p
	return p, nil
}

func (r *PositionRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.positions[id]; !ok {
		return master.ErrPositionNotFound
	}
	delete(r.s.positions, id)
	return nil
}

func (r *PositionRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.positions), nil
}
