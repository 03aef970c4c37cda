package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
)

type EmployeeRepository struct {
	s *Store
}

func NewEmployeeRepository(s *Store) *EmployeeRepository {
	return &EmployeeRepository{s: s}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]employee.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		out = append(out, e)
	}
	sortStable(out,
		func(e employee.Employee) int64 { return e.CreatedAt.UnixNano() },
		func(e employee.Employee) string { return e.ID })
	return out, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if e.ID == "" {
		e.ID = newID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.UpdatedAt = e.CreatedAt
	r.s.employees[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.employees[e.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	e.CreatedAt = existing.CreatedAt
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = time.Now()
	}
	r.s.employees[e.ID] = e
	return e, nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.s.employees, id)
	return nil
}

func (r *EmployeeRepository) ClearPosition(ctx context.Context, positionID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, e := range r.s.employees {
		if e.PositionID != nil && *e.PositionID == positionID {
			e.PositionID = nil
			r.s.employees[id] = e
		}
	}
	return nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.employees), nil
}
