package mark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/calendar"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/clock"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/sse"
)

type MarkServiceImpl struct {
	markRepo     mark.Repository
	employeeRepo employee.Repository
	scheduleRepo schedule.Repository
	turnRepo     turn.Repository
	reportSvc    report.Service
	clk          clock.Clock
	hub          *sse.Hub
}

func NewMarkService(
	markRepo mark.Repository,
	employeeRepo employee.Repository,
	scheduleRepo schedule.Repository,
	turnRepo turn.Repository,
	reportSvc report.Service,
	clk clock.Clock,
	hub *sse.Hub,
) mark.Service {
	return &MarkServiceImpl{
		markRepo:     markRepo,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		turnRepo:     turnRepo,
		reportSvc:    reportSvc,
		clk:          clk,
		hub:          hub,
	}
}

// MarkShiftIn implements mark.Service. The nil, nil return is the silent
// no-op: the kiosk pre-disables illegal actions, so an illegal transition is
// not an error.
func (s *MarkServiceImpl) MarkShiftIn(ctx context.Context, employeeID string) (*mark.Mark, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	now := s.clk.Now()
	today := calendar.DateOf(now)

	// A shift_in today, open or closed, means the day is spoken for.
	started, err := s.markRepo.HasTypeOnDate(ctx, employeeID, mark.TypeShiftIn, today)
	if err != nil {
		return nil, fmt.Errorf("failed to check shift marks: %w", err)
	}
	if started {
		return nil, nil
	}

	absent, err := s.markRepo.HasTypeOnDate(ctx, employeeID, mark.TypeAbsent, today)
	if err != nil {
		return nil, fmt.Errorf("failed to check absent marks: %w", err)
	}
	if absent {
		return nil, nil
	}

	var turnID *string
	if t := s.activeTurn(ctx, employeeID, now); t != nil {
		turnID = &t.ID
	}

	created, err := s.markRepo.Create(ctx, mark.Mark{
		EmployeeID: employeeID,
		TurnID:     turnID,
		Label:      mark.LabelShiftIn,
		Type:       mark.TypeShiftIn,
		CreatedAt:  now,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create shift mark: %w", err)
	}

	s.publish(sse.EventMarkCreated, created)
	return &created, nil
}

// MarkShiftOut implements mark.Service.
func (s *MarkServiceImpl) MarkShiftOut(ctx context.Context, employeeID string) (*mark.CloseResult, error) {
	open, err := s.markRepo.GetOpenByType(ctx, employeeID, mark.TypeShiftIn)
	if err != nil {
		if errors.Is(err, mark.ErrMarkNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open shift: %w", err)
	}

	res, err := s.close(ctx, open)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ToggleBreak implements mark.Service.
func (s *MarkServiceImpl) ToggleBreak(ctx context.Context, employeeID, breakType string) (mark.Mark, error) {
	if breakType != mark.BreakAlmuerzoCena && breakType != mark.BreakDesayunoCafe {
		return mark.Mark{}, mark.ErrInvalidBreakType
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return mark.Mark{}, err
	}

	now := s.clk.Now()

	open, err := s.markRepo.GetOpenBreak(ctx, employeeID, breakType)
	if err == nil {
		closed, err := s.markRepo.Close(ctx, open.ID, now)
		if err != nil {
			return mark.Mark{}, fmt.Errorf("failed to close break: %w", err)
		}
		s.publish(sse.EventMarkClosed, closed)
		return closed, nil
	}
	if !errors.Is(err, mark.ErrMarkNotFound) {
		return mark.Mark{}, fmt.Errorf("failed to get open break: %w", err)
	}

	var turnID *string
	if t := s.activeTurn(ctx, employeeID, now); t != nil {
		turnID = &t.ID
	}

	created, err := s.markRepo.Create(ctx, mark.Mark{
		EmployeeID: employeeID,
		TurnID:     turnID,
		Label:      breakType,
		Type:       mark.TypeBreakStart,
		CreatedAt:  now,
		Meta: &mark.Meta{
			BreakType:   breakType,
			DurationMin: mark.DefaultBreakMinutes(breakType),
		},
	})
	if err != nil {
		return mark.Mark{}, fmt.Errorf("failed to create break mark: %w", err)
	}

	s.publish(sse.EventMarkCreated, created)
	return created, nil
}

// RecordGenericMark implements mark.Service.
func (s *MarkServiceImpl) RecordGenericMark(ctx context.Context, employeeID, label string) (mark.Mark, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return mark.Mark{}, err
	}

	now := s.clk.Now()

	var turnID *string
	if t := s.activeTurn(ctx, employeeID, now); t != nil {
		turnID = &t.ID
	}

	created, err := s.markRepo.Create(ctx, mark.Mark{
		EmployeeID: employeeID,
		TurnID:     turnID,
		Label:      label,
		Type:       mark.TypeGeneric,
		CreatedAt:  now,
	})
	if err != nil {
		return mark.Mark{}, fmt.Errorf("failed to create generic mark: %w", err)
	}

	s.publish(sse.EventMarkCreated, created)
	return created, nil
}

// CloseMark implements mark.Service.
func (s *MarkServiceImpl) CloseMark(ctx context.Context, id string) (mark.CloseResult, error) {
	m, err := s.markRepo.GetByID(ctx, id)
	if err != nil {
		return mark.CloseResult{}, err
	}
	if !m.IsOpen() {
		return mark.CloseResult{}, mark.ErrMarkAlreadyClosed
	}
	return s.close(ctx, m)
}

// close commits the close, then consolidates. The consolidation is
// best-effort: its failure flags the result stale but never rolls back the
// mark.
func (s *MarkServiceImpl) close(ctx context.Context, m mark.Mark) (mark.CloseResult, error) {
	closed, err := s.markRepo.Close(ctx, m.ID, s.clk.Now())
	if err != nil {
		return mark.CloseResult{}, fmt.Errorf("failed to close mark: %w", err)
	}

	res := mark.CloseResult{Mark: closed}

	switch closed.Type {
	case mark.TypeShiftIn:
		if _, err := s.reportSvc.ConsolidateShift(ctx, closed); err != nil {
			slog.Error("Shift consolidation failed, report stale",
				"mark_id", closed.ID, "employee_id", closed.EmployeeID, "error", err)
			res.ReportStale = true
		}
	case mark.TypeAbsent, mark.TypeLate:
		if _, err := s.reportSvc.ConsolidateSnapshot(ctx, closed.EmployeeID); err != nil {
			slog.Error("Snapshot consolidation failed, report stale",
				"mark_id", closed.ID, "employee_id", closed.EmployeeID, "error", err)
			res.ReportStale = true
		}
	}

	s.publish(sse.EventMarkClosed, closed)
	return res, nil
}

// StatusOf implements mark.Service.
func (s *MarkServiceImpl) StatusOf(ctx context.Context, employeeID string, now time.Time) (mark.Status, error) {
	today := calendar.DateOf(now)

	if _, err := s.markRepo.GetOpenByType(ctx, employeeID, mark.TypeShiftIn); err == nil {
		return mark.StatusOnShift, nil
	} else if !errors.Is(err, mark.ErrMarkNotFound) {
		return "", fmt.Errorf("failed to get open shift: %w", err)
	}

	started, err := s.markRepo.HasTypeOnDate(ctx, employeeID, mark.TypeShiftIn, today)
	if err != nil {
		return "", fmt.Errorf("failed to check shift marks: %w", err)
	}
	if started {
		// The day's shift existed and is no longer open.
		return mark.StatusClosed, nil
	}

	absent, err := s.markRepo.HasTypeOnDate(ctx, employeeID, mark.TypeAbsent, today)
	if err != nil {
		return "", fmt.Errorf("failed to check absent marks: %w", err)
	}
	if absent {
		return mark.StatusAbsent, nil
	}

	if t := s.activeTurn(ctx, employeeID, now); t != nil {
		if elapsed, ok := t.ElapsedSinceStart(now); ok {
			switch {
			case elapsed >= mark.AbsentThresholdMinutes:
				return mark.StatusAbsent, nil
			case elapsed >= mark.LateThresholdMinutes:
				return mark.StatusLate, nil
			}
		}
	}

	return mark.StatusIdle, nil
}

// ListBoard implements mark.Service.
func (s *MarkServiceImpl) ListBoard(ctx context.Context) ([]mark.BoardRow, error) {
	now := s.clk.Now()

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var rows []mark.BoardRow
	for _, emp := range employees {
		t := s.activeTurn(ctx, emp.ID, now)

		openMarks, err := s.markRepo.List(ctx, mark.Filter{EmployeeID: emp.ID, OpenOnly: true})
		if err != nil {
			return nil, fmt.Errorf("failed to list open marks: %w", err)
		}

		// A row surfaces while the schedule is active or a shift stays open.
		if t == nil && !hasOpenShift(openMarks) {
			continue
		}

		status, err := s.StatusOf(ctx, emp.ID, now)
		if err != nil {
			return nil, err
		}

		rows = append(rows, mark.BoardRow{
			Employee:  emp,
			Turn:      t,
			Status:    status,
			OpenMarks: openMarks,
		})
	}

	return rows, nil
}

func hasOpenShift(marks []mark.Mark) bool {
	for _, m := range marks {
		if m.Type == mark.TypeShiftIn {
			return true
		}
	}
	return false
}

// ListMarks implements mark.Service.
func (s *MarkServiceImpl) ListMarks(ctx context.Context, f mark.Filter) ([]mark.Mark, error) {
	return s.markRepo.List(ctx, f)
}

// UpdateMark implements mark.Service.
func (s *MarkServiceImpl) UpdateMark(ctx context.Context, req *mark.UpdateMarkRequest) (mark.Mark, error) {
	if err := req.Validate(); err != nil {
		return mark.Mark{}, err
	}

	m, err := s.markRepo.GetByID(ctx, req.ID)
	if err != nil {
		return mark.Mark{}, err
	}

	m.Label = req.Label
	updated, err := s.markRepo.Update(ctx, m)
	if err != nil {
		return mark.Mark{}, fmt.Errorf("failed to update mark: %w", err)
	}

	return updated, nil
}

// activeTurn resolves the turn of the employee's currently active schedule.
func (s *MarkServiceImpl) activeTurn(ctx context.Context, employeeID string, now time.Time) *turn.Turn {
	schedules, err := s.scheduleRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		slog.Error("Failed to list schedules", "employee_id", employeeID, "error", err)
		return nil
	}

	for _, sch := range schedules {
		if sch.TurnID == nil {
			continue
		}
		t, err := s.turnRepo.GetByID(ctx, *sch.TurnID)
		if err != nil {
			continue
		}
		if schedule.IsActive(sch, &t, now) {
			return &t
		}
	}
	return nil
}

func (s *MarkServiceImpl) publish(event string, m mark.Mark) {
	if s.hub != nil {
		s.hub.Publish(sse.Event{Event: event, Data: m})
	}
}
