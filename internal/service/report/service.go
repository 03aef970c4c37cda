package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/clock"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/sse"
)

type ReportServiceImpl struct {
	reportRepo   report.Repository
	markRepo     mark.Repository
	employeeRepo employee.Repository
	positionRepo master.PositionRepository
	turnRepo     turn.Repository
	clk          clock.Clock
	hub          *sse.Hub
}

func NewReportService(
	reportRepo report.Repository,
	markRepo mark.Repository,
	employeeRepo employee.Repository,
	positionRepo master.PositionRepository,
	turnRepo turn.Repository,
	clk clock.Clock,
	hub *sse.Hub,
) report.Service {
	return &ReportServiceImpl{
		reportRepo:   reportRepo,
		markRepo:     markRepo,
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
		turnRepo:     turnRepo,
		clk:          clk,
		hub:          hub,
	}
}

// ConsolidateShift implements report.Service.
func (s *ReportServiceImpl) ConsolidateShift(ctx context.Context, shiftIn mark.Mark) (report.Report, error) {
	if shiftIn.ClosedAt == nil {
		return report.Report{}, fmt.Errorf("cannot consolidate an open shift mark %s", shiftIn.ID)
	}

	start := shiftIn.CreatedAt
	end := *shiftIn.ClosedAt
	durationMin := int(end.Sub(start).Round(time.Minute) / time.Minute)

	session, err := s.markRepo.ListByEmployeeBetween(ctx, shiftIn.EmployeeID, start, end)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to collect session marks: %w", err)
	}

	items := toItems(session)

	rep := report.Report{
		Type:        report.TypeShiftReport,
		EmployeeID:  shiftIn.EmployeeID,
		Employee:    s.employeeSnapshot(ctx, shiftIn.EmployeeID),
		TurnID:      shiftIn.TurnID,
		Turn:        s.turnSnapshot(ctx, shiftIn.TurnID),
		Start:       &start,
		End:         &end,
		DurationMin: &durationMin,
		Items:       items,
		Breaks:      summarizeBreaks(session),
		Timestamp:   s.clk.Now(),
	}

	return s.replace(ctx, rep)
}

// ConsolidateSnapshot implements report.Service.
func (s *ReportServiceImpl) ConsolidateSnapshot(ctx context.Context, employeeID string) (report.Report, error) {
	history, err := s.markRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to collect mark history: %w", err)
	}

	// Display the turn of the most recent mark that carried one.
	var turnID *string
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].TurnID != nil {
			turnID = history[i].TurnID
			break
		}
	}

	rep := report.Report{
		Type:       report.TypeRowSnapshot,
		EmployeeID: employeeID,
		Employee:   s.employeeSnapshot(ctx, employeeID),
		TurnID:     turnID,
		Turn:       s.turnSnapshot(ctx, turnID),
		Items:      toItems(history),
		Timestamp:  s.clk.Now(),
	}

	return s.replace(ctx, rep)
}

// List implements report.Service.
func (s *ReportServiceImpl) List(ctx context.Context) ([]report.Report, error) {
	return s.reportRepo.List(ctx)
}

// UpdateNotes implements report.Service.
func (s *ReportServiceImpl) UpdateNotes(ctx context.Context, req *report.UpdateReportRequest) (report.Report, error) {
	if err := req.Validate(); err != nil {
		return report.Report{}, err
	}

	rep, err := s.reportRepo.UpdateNotes(ctx, req.ID, req.Notes)
	if err != nil {
		return report.Report{}, err
	}

	s.publish(rep)
	return rep, nil
}

// Clear implements report.Service.
func (s *ReportServiceImpl) Clear(ctx context.Context) error {
	return s.reportRepo.Clear(ctx)
}

func (s *ReportServiceImpl) replace(ctx context.Context, rep report.Report) (report.Report, error) {
	stored, err := s.reportRepo.Replace(ctx, rep)
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to replace report: %w", err)
	}

	s.publish(stored)
	return stored, nil
}

// employeeSnapshot freezes the employee with their resolved position name.
// A missing employee renders as a nil snapshot, never an error.
func (s *ReportServiceImpl) employeeSnapshot(ctx context.Context, employeeID string) *employee.Snapshot {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil
	}

	var positionName *string
	if emp.PositionID != nil {
		if pos, err := s.positionRepo.GetByID(ctx, *emp.PositionID); err == nil {
			positionName = &pos.Name
		}
	}

	snap := employee.SnapshotOf(emp, positionName)
	return &snap
}

func (s *ReportServiceImpl) turnSnapshot(ctx context.Context, turnID *string) *turn.Snapshot {
	if turnID == nil {
		return nil
	}
	t, err := s.turnRepo.GetByID(ctx, *turnID)
	if err != nil {
		return nil
	}
	snap := turn.SnapshotOf(t)
	return &snap
}

func (s *ReportServiceImpl) publish(rep report.Report) {
	if s.hub != nil {
		s.hub.Publish(sse.Event{Event: sse.EventReportUpdated, Data: rep})
	}
}

func toItems(marks []mark.Mark) []report.MarkItem {
	items := make([]report.MarkItem, 0, len(marks))
	for _, m := range marks {
		items = append(items, report.MarkItem{
			ID:        m.ID,
			Label:     m.Label,
			Type:      m.Type,
			CreatedAt: m.CreatedAt,
			ClosedAt:  m.ClosedAt,
		})
	}
	return items
}

func summarizeBreaks(marks []mark.Mark) []report.BreakSummary {
	var breaks []report.BreakSummary
	for _, m := range marks {
		if m.Type != mark.TypeBreakStart {
			continue
		}
		summary := report.BreakSummary{
			StartedAt: m.CreatedAt,
			EndedAt:   m.ClosedAt,
		}
		if m.Meta != nil {
			summary.BreakType = m.Meta.BreakType
		}
		if d, ok := m.DurationMinutes(); ok {
			summary.DurationMin = &d
		}
		breaks = append(breaks, summary)
	}
	return breaks
}
