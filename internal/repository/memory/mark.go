package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
)

type MarkRepository struct {
	s *Store
}

func NewMarkRepository(s *Store) *MarkRepository {
	return &MarkRepository{s: s}
}

func (r *MarkRepository) List(ctx context.Context, f mark.Filter) ([]mark.Mark, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []mark.Mark
	for _, m := range r.s.marks {
		if !matches(m, f) {
			continue
		}
		out = append(out, m)
	}
	sortByCreatedAt(out)
	return out, nil
}

func matches(m mark.Mark, f mark.Filter) bool {
	if f.EmployeeID != "" && m.EmployeeID != f.EmployeeID {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.Date != "" && calendar.DateOf(m.CreatedAt) != f.Date {
		return false
	}
	if f.OpenOnly && !m.IsOpen() {
		return false
	}
	return true
}

func (r *MarkRepository) GetByID(ctx context.Context, id string) (mark.Mark, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.marks[id]
	if !ok {
		return mark.Mark{}, mark.ErrMarkNotFound
	}
	return m, nil
}

func (r *MarkRepository) Create(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if m.ID == "" {
		m.ID = newID()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.s.marks[m.ID] = m
	return m, nil
}

func (r *MarkRepository) Close(ctx context.Context, id string, closedAt time.Time) (mark.Mark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.marks[id]
	if !ok {
		return mark.Mark{}, mark.ErrMarkNotFound
	}
	if m.ClosedAt != nil {
		return mark.Mark{}, mark.ErrMarkAlreadyClosed
	}
	m.ClosedAt = &closedAt
	r.s.marks[id] = m
	return m, nil
}

func (r *MarkRepository) Update(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.marks[m.ID]; !ok {
		return mark.Mark{}, mark.ErrMarkNotFound
	}
	r.s.marks[m.ID] = m
	return m, nil
}

func (r *MarkRepository) GetOpenByType(ctx context.Context, employeeID string, t mark.Type) (mark.Mark, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *mark.Mark
	for _, m := range r.s.marks {
		if m.EmployeeID != employeeID || m.Type != t || !m.IsOpen() {
			continue
		}
		m := m
		if found == nil || m.CreatedAt.After(found.CreatedAt) {
			found = &m
		}
	}
	if found == nil {
		return mark.Mark{}, mark.ErrMarkNotFound
	}
	return *found, nil
}

func (r *MarkRepository) GetOpenBreak(ctx context.Context, employeeID, breakType string) (mark.Mark, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.marks {
		if m.EmployeeID != employeeID || m.Type != mark.TypeBreakStart || !m.IsOpen() {
			continue
		}
		if m.Meta != nil && m.Meta.BreakType == breakType {
			return m, nil
		}
	}
	return mark.Mark{}, mark.ErrMarkNotFound
}

func (r *MarkRepository) HasTypeOnDate(ctx context.Context, employeeID string, t mark.Type, date string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, m := range r.s.marks {
		if m.EmployeeID == employeeID && m.Type == t && calendar.DateOf(m.CreatedAt) == date {
			return true, nil
		}
	}
	return false, nil
}

func (r *MarkRepository) ListByEmployee(ctx context.Context, employeeID string) ([]mark.Mark, error) {
	return r.List(ctx, mark.Filter{EmployeeID: employeeID})
}

func (r *MarkRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]mark.Mark, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []mark.Mark
	for _, m := range r.s.marks {
		if m.EmployeeID != employeeID {
			continue
		}
		if m.CreatedAt.Before(from) || m.CreatedAt.After(to) {
			continue
		}
		out = append(out, m)
	}
	sortByCreatedAt(out)
	return out, nil
}

func sortByCreatedAt(marks []mark.Mark) {
	sortStable(marks,
		func(m mark.Mark) int64 { return m.CreatedAt.UnixNano() },
		func(m mark.Mark) string { return m.ID })
}
