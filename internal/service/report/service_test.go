package report

import (
	"context"
	"testing"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/clock"
	"github.com/Joseph2303/ProyectoPSS/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.Local)
}

type env struct {
	clk        *clock.Fixed
	markRepo   *memory.MarkRepository
	reportRepo *memory.ReportRepository
	svc        report.Service
}

func newEnv(t *testing.T) *env {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewFixed(at(14, 0))

	turnRepo := memory.NewTurnRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	markRepo := memory.NewMarkRepository(store)
	reportRepo := memory.NewReportRepository(store)

	ctx := context.Background()

	_, err := turnRepo.Create(ctx, turn.Turn{
		ID: "t1", Name: "Matutino (06:00-14:00)", StartTime: "06:00", EndTime: "14:00", Fixed: true,
	})
	require.NoError(t, err)

	pos, err := positionRepo.Create(ctx, master.Position{ID: "p1", Name: "Operativo"})
	require.NoError(t, err)

	code := "OP-001"
	_, err = employeeRepo.Create(ctx, employee.Employee{
		ID: "e1", Name: "Juan Pérez", PositionID: &pos.ID, Code: &code,
	})
	require.NoError(t, err)

	svc := NewReportService(reportRepo, markRepo, employeeRepo, positionRepo, turnRepo, clk, nil)

	return &env{clk: clk, markRepo: markRepo, reportRepo: reportRepo, svc: svc}
}

// seedShiftSession stores a closed 06:00-14:00 shift with one closed lunch
// break and returns the shift mark.
func seedShiftSession(t *testing.T, e *env) mark.Mark {
	t.Helper()
	ctx := context.Background()

	turnID := "t1"
	shiftEnd := at(14, 0)
	shiftIn, err := e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", TurnID: &turnID, Label: mark.LabelShiftIn,
		Type: mark.TypeShiftIn, CreatedAt: at(6, 0), ClosedAt: &shiftEnd,
	})
	require.NoError(t, err)

	breakEnd := at(13, 0)
	_, err = e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", TurnID: &turnID, Label: mark.BreakAlmuerzoCena,
		Type: mark.TypeBreakStart, CreatedAt: at(12, 0), ClosedAt: &breakEnd,
		Meta: &mark.Meta{BreakType: mark.BreakAlmuerzoCena, DurationMin: mark.BreakAlmuerzoLimit},
	})
	require.NoError(t, err)

	return shiftIn
}

func TestConsolidateShift(t *testing.T) {
	e := newEnv(t)
	shiftIn := seedShiftSession(t, e)

	rep, err := e.svc.ConsolidateShift(context.Background(), shiftIn)
	require.NoError(t, err)

	assert.Equal(t, report.TypeShiftReport, rep.Type)
	assert.Equal(t, "e1", rep.EmployeeID)
	require.NotNil(t, rep.DurationMin)
	assert.Equal(t, 480, *rep.DurationMin)

	require.NotNil(t, rep.Employee)
	assert.Equal(t, "Juan Pérez", rep.Employee.Name)
	require.NotNil(t, rep.Employee.Position)
	assert.Equal(t, "Operativo", *rep.Employee.Position)

	require.NotNil(t, rep.Turn)
	assert.Equal(t, "Matutino (06:00-14:00)", rep.Turn.Name)

	require.Len(t, rep.Items, 2)
	require.Len(t, rep.Breaks, 1)
	assert.Equal(t, mark.BreakAlmuerzoCena, rep.Breaks[0].BreakType)
	require.NotNil(t, rep.Breaks[0].DurationMin)
	assert.Equal(t, 60, *rep.Breaks[0].DurationMin)
}

func TestConsolidateShift_OpenMarkRejected(t *testing.T) {
	e := newEnv(t)

	open := mark.Mark{ID: "m1", EmployeeID: "e1", Type: mark.TypeShiftIn, CreatedAt: at(6, 0)}
	_, err := e.svc.ConsolidateShift(context.Background(), open)
	assert.Error(t, err)
}

func TestConsolidateSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	turnID := "t1"
	taggedAt := at(6, 16)
	_, err := e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", TurnID: &turnID, Label: mark.LabelAbsent,
		Type: mark.TypeAbsent, CreatedAt: taggedAt, ClosedAt: &taggedAt,
	})
	require.NoError(t, err)

	rep, err := e.svc.ConsolidateSnapshot(ctx, "e1")
	require.NoError(t, err)

	assert.Equal(t, report.TypeRowSnapshot, rep.Type)
	assert.Nil(t, rep.DurationMin)
	require.NotNil(t, rep.TurnID)
	assert.Equal(t, "t1", *rep.TurnID)
	require.NotNil(t, rep.Turn)
	require.Len(t, rep.Items, 1)
	assert.Equal(t, mark.LabelAbsent, rep.Items[0].Label)
}

func TestOneReportPerEmployee(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	shiftIn := seedShiftSession(t, e)

	first, err := e.svc.ConsolidateShift(ctx, shiftIn)
	require.NoError(t, err)

	second, err := e.svc.ConsolidateSnapshot(ctx, "e1")
	require.NoError(t, err)

	reports, err := e.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, second.Type, reports[0].Type)
	assert.NotEqual(t, first.Type, reports[0].Type)
}

func TestUpdateNotes(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	shiftIn := seedShiftSession(t, e)

	rep, err := e.svc.ConsolidateShift(ctx, shiftIn)
	require.NoError(t, err)

	updated, err := e.svc.UpdateNotes(ctx, &report.UpdateReportRequest{ID: rep.ID, Notes: "salió antes"})
	require.NoError(t, err)
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "salió antes", *updated.Notes)

	_, err = e.svc.UpdateNotes(ctx, &report.UpdateReportRequest{ID: "missing", Notes: "x"})
	assert.ErrorIs(t, err, report.ErrReportNotFound)

	_, err = e.svc.UpdateNotes(ctx, &report.UpdateReportRequest{ID: rep.ID, Notes: ""})
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	shiftIn := seedShiftSession(t, e)

	_, err := e.svc.ConsolidateShift(ctx, shiftIn)
	require.NoError(t, err)

	require.NoError(t, e.svc.Clear(ctx))

	reports, err := e.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
