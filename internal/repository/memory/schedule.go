package memory

import (
	"context"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
)

type ScheduleRepository struct {
	s *Store
}

func NewScheduleRepository(s *Store) *ScheduleRepository {
	return &ScheduleRepository{s: s}
}

func (r *ScheduleRepository) List(ctx context.Context) ([]schedule.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]schedule.Schedule, 0, len(r.s.schedules))
	for _, sch := range r.s.schedules {
		out = append(out, sch)
	}
	sortStable(out,
		func(s schedule.Schedule) int64 { return s.CreatedAt.UnixNano() },
		func(s schedule.Schedule) string { return s.ID })
	return out, nil
}

func (r *ScheduleRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []schedule.Schedule
	for _, sch := range r.s.schedules {
		if sch.EmployeeID == employeeID {
			out = append(out, sch)
		}
	}
	sortStable(out,
		func(s schedule.Schedule) int64 { return s.CreatedAt.UnixNano() },
		func(s schedule.Schedule) string { return s.ID })
	return out, nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	sch, ok := r.s.schedules[id]
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return sch, nil
}

func (r *ScheduleRepository) Create(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if sch.ID == "" {
		sch.ID = newID()
	}
	if sch.CreatedAt.IsZero() {
		sch.CreatedAt = time.Now()
	}
	sch.UpdatedAt = sch.CreatedAt
	r.s.schedules[sch.ID] = sch
	return sch, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.schedules[sch.ID]
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	sch.CreatedAt = existing.CreatedAt
	if sch.UpdatedAt.IsZero() {
		sch.UpdatedAt = time.Now()
	}
	r.s.schedules[sch.ID] = sch
	return sch, nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.schedules[id]; !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(r.s.schedules, id)
	return nil
}
