package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.Repository
	employeeRepo employee.Repository
	turnRepo     turn.Repository
}

func NewScheduleService(
	scheduleRepo schedule.Repository,
	employeeRepo employee.Repository,
	turnRepo turn.Repository,
) *ScheduleServiceImpl {
	return &ScheduleServiceImpl{
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		turnRepo:     turnRepo,
	}
}

func (s *ScheduleServiceImpl) List(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	if employeeID != "" {
		return s.scheduleRepo.ListByEmployee(ctx, employeeID)
	}
	return s.scheduleRepo.List(ctx)
}

func (s *ScheduleServiceImpl) Create(ctx context.Context, req *schedule.CreateScheduleRequest) (schedule.Schedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.Schedule{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.Schedule{}, err
	}
	if req.TurnID != nil {
		if _, err := s.turnRepo.GetByID(ctx, *req.TurnID); err != nil {
			return schedule.Schedule{}, err
		}
	}

	sch := schedule.Schedule{
		EmployeeID: req.EmployeeID,
		TurnID:     req.TurnID,
		Days:       req.Days,
		FreeDay:    req.FreeDay,
	}
	var err error
	if sch.StartDate, err = parseDatePtr(req.StartDate); err != nil {
		return schedule.Schedule{}, err
	}
	if sch.EndDate, err = parseDatePtr(req.EndDate); err != nil {
		return schedule.Schedule{}, err
	}

	created, err := s.scheduleRepo.Create(ctx, sch)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return created, nil
}

func (s *ScheduleServiceImpl) Update(ctx context.Context, req *schedule.UpdateScheduleRequest) (schedule.Schedule, error) {
	if err := req.Validate(); err != nil {
		return schedule.Schedule{}, err
	}

	existing, err := s.scheduleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return schedule.Schedule{}, err
	}

	if req.TurnID != nil {
		if _, err := s.turnRepo.GetByID(ctx, *req.TurnID); err != nil {
			return schedule.Schedule{}, err
		}
		existing.TurnID = req.TurnID
	}
	if req.Days != nil {
		existing.Days = req.Days
	}
	if req.FreeDay != nil {
		existing.FreeDay = req.FreeDay
	}
	if req.StartDate != nil {
		if existing.StartDate, err = parseDatePtr(req.StartDate); err != nil {
			return schedule.Schedule{}, err
		}
	}
	if req.EndDate != nil {
		if existing.EndDate, err = parseDatePtr(req.EndDate); err != nil {
			return schedule.Schedule{}, err
		}
	}

	updated, err := s.scheduleRepo.Update(ctx, existing)
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return updated, nil
}

func (s *ScheduleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.scheduleRepo.Delete(ctx, id)
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := calendar.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &d, nil
}
