package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
)

type TurnRepository struct {
	s *Store
}

func NewTurnRepository(s *Store) *TurnRepository {
	return &TurnRepository{s: s}
}

func (r *TurnRepository) List(ctx context.Context) ([]turn.Turn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]turn.Turn, 0, len(r.s.turns))
	for _, t := range r.s.turns {
		out = append(out, t)
	}
	sortStable(out,
		func(t turn.Turn) int64 { return t.CreatedAt.UnixNano() },
		func(t turn.Turn) string { return t.ID })
	return out, nil
}

func (r *TurnRepository) GetByID(ctx context.Context, id string) (turn.Turn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.turns[id]
	if !ok {
		return turn.Turn{}, turn.ErrTurnNotFound
	}
	return t, nil
}

func (r *TurnRepository) Create(ctx context.Context, t turn.Turn) (turn.Turn, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if t.ID == "" {
		t.ID = newID()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	t.UpdatedAt = t.CreatedAt
	r.s.turns[t.ID] = t
	return t, nil
}

func (r *TurnRepository) Update(ctx context.Context, t turn.Turn) (turn.Turn, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.turns[t.ID]
	if !ok {
		return turn.Turn{}, turn.ErrTurnNotFound
	}
	t.CreatedAt = existing.CreatedAt
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = time.Now()
	}
	r.s.turns[t.ID] = t
	return t, nil
}

func (r *TurnRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.turns[id]; !ok {
		return turn.ErrTurnNotFound
	}
	delete(r.s.turns, id)
	return nil
}

func (r *TurnRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.turns), nil
}
