package cron

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

// AutoTagJobs tags employees late or absent when their turn started and no
// shift-in arrived. Every decision re-reads the store, so repeated runs at
// the same instant are no-ops.
type AutoTagJobs struct {
	employeeRepo employee.Repository
	scheduleRepo schedule.Repository
	turnRepo     turn.Repository
	markRepo     mark.Repository
	reportSvc    report.Service
	clk          clock.Clock
	hub          *sse.Hub
}

func NewAutoTagJobs(
	employeeRepo employee.Repository,
	scheduleRepo schedule.Repository,
	turnRepo turn.Repository,
	markRepo mark.Repository,
	reportSvc report.Service,
	clk clock.Clock,
	hub *sse.Hub,
) *AutoTagJobs {
	return &AutoTagJobs{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		turnRepo:     turnRepo,
		markRepo:     markRepo,
		reportSvc:    reportSvc,
		clk:          clk,
		hub:          hub,
	}
}

func (j *AutoTagJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("auto_tag_attendance", interval, j.AutoTagAttendance)
}

func (j *AutoTagJobs) AutoTagAttendance(ctx context.Context) error {
	now := j.clk.Now()
	today := calendar.DateOf(now)

	employees, err := j.employeeRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	taggedLate, taggedAbsent := 0, 0

	for _, emp := range employees {
		started, err := j.markRepo.HasTypeOnDate(ctx, emp.ID, mark.TypeShiftIn, today)
		if err != nil {
			slog.Error("Cron: Failed to check shift marks", "employee_id", emp.ID, "error", err)
			continue
		}
		if started {
			continue
		}
		// Overnight turns: the open shift may carry yesterday's date.
		if _, err := j.markRepo.GetOpenByType(ctx, emp.ID, mark.TypeShiftIn); err == nil {
			continue
		} else if !errors.Is(err, mark.ErrMarkNotFound) {
			slog.Error("Cron: Failed to get open shift", "employee_id", emp.ID, "error", err)
			continue
		}
		absent, err := j.markRepo.HasTypeOnDate(ctx, emp.ID, mark.TypeAbsent, today)
		if err != nil || absent {
			continue
		}

		t := j.activeTurn(ctx, emp.ID, now)
		if t == nil {
			continue
		}
		elapsed, ok := t.ElapsedSinceStart(now)
		if !ok || elapsed < mark.LateThresholdMinutes {
			continue
		}

		if elapsed >= mark.AbsentThresholdMinutes {
			if err := j.tag(ctx, emp.ID, t.ID, mark.TypeAbsent, mark.LabelAbsent, now); err != nil {
				slog.Error("Cron: Failed to tag absent", "employee_id", emp.ID, "error", err)
				continue
			}
			taggedAbsent++
			if _, err := j.reportSvc.ConsolidateSnapshot(ctx, emp.ID); err != nil {
				slog.Error("Cron: Snapshot consolidation failed, report stale",
					"employee_id", emp.ID, "error", err)
			}
			continue
		}

		late, err := j.markRepo.HasTypeOnDate(ctx, emp.ID, mark.TypeLate, today)
		if err != nil || late {
			continue
		}
		if err := j.tag(ctx, emp.ID, t.ID, mark.TypeLate, mark.LabelLate, now); err != nil {
			slog.Error("Cron: Failed to tag late", "employee_id", emp.ID, "error", err)
			continue
		}
		taggedLate++
	}

	if taggedLate > 0 || taggedAbsent > 0 {
		slog.Info("Cron: Auto-tagged attendance", "late", taggedLate, "absent", taggedAbsent)
	}
	return nil
}

// tag creates an immediately-closed administrative mark.
func (j *AutoTagJobs) tag(ctx context.Context, employeeID, turnID string, t mark.Type, label string, now time.Time) error {
	closedAt := now
	created, err := j.markRepo.Create(ctx, mark.Mark{
		EmployeeID: employeeID,
		TurnID:     &turnID,
		Label:      label,
		Type:       t,
		CreatedAt:  now,
		ClosedAt:   &closedAt,
	})
	if err != nil {
		return err
	}
	if j.hub != nil {
		j.hub.Publish(sse.Event{Event: sse.EventMarkCreated, Data: created})
	}
	return nil
}

// activeTurn resolves the turn of the employee's currently active schedule.
func (j *AutoTagJobs) activeTurn(ctx context.Context, employeeID string, now time.Time) *turn.Turn {
	schedules, err := j.scheduleRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		slog.Error("Cron: Failed to list schedules", "employee_id", employeeID, "error", err)
		return nil
	}

	for _, sch := range schedules {
		if sch.TurnID == nil {
			continue
		}
		t, err := j.turnRepo.GetByID(ctx, *sch.TurnID)
		if err != nil {
			continue
		}
		if schedule.IsActive(sch, &t, now) {
			return &t
		}
	}
	return nil
}
