package mark

import (
	"context"
	"testing"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/clock"
	"github.com/Joseph2303/ProyectoPSS/internal/repository/memory"
	reportService "github.com/Joseph2303/ProyectoPSS/internal/service/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds an instant on Monday 2025-11-03 at the given wall-clock time.
func at(hour, minute int) time.Time {
	return time.Date(2025, 11, 3, hour, minute, 0, 0, time.Local)
}

type env struct {
	clk        *clock.Fixed
	markRepo   *memory.MarkRepository
	reportRepo *memory.ReportRepository
	svc        mark.Service
}

// newEnv seeds one employee on the morning turn, scheduled every day.
func newEnv(t *testing.T) *env {
	t.Helper()

	store := memory.NewStore()
	clk := clock.NewFixed(at(6, 0))

	turnRepo := memory.NewTurnRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	markRepo := memory.NewMarkRepository(store)
	reportRepo := memory.NewReportRepository(store)

	ctx := context.Background()

	_, err := turnRepo.Create(ctx, turn.Turn{
		ID: "t1", Name: "Matutino (06:00-14:00)", StartTime: "06:00", EndTime: "14:00", Fixed: true,
	})
	require.NoError(t, err)

	_, err = employeeRepo.Create(ctx, employee.Employee{ID: "e1", Name: "Juan Pérez"})
	require.NoError(t, err)

	turnID := "t1"
	_, err = scheduleRepo.Create(ctx, schedule.Schedule{ID: "s1", EmployeeID: "e1", TurnID: &turnID})
	require.NoError(t, err)

	reportSvc := reportService.NewReportService(reportRepo, markRepo, employeeRepo, positionRepo, turnRepo, clk, nil)
	svc := NewMarkService(markRepo, employeeRepo, scheduleRepo, turnRepo, reportSvc, clk, nil)

	return &env{clk: clk, markRepo: markRepo, reportRepo: reportRepo, svc: svc}
}

func TestShiftLifecycle(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	opened, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, opened)
	assert.Equal(t, mark.TypeShiftIn, opened.Type)
	assert.Equal(t, mark.LabelShiftIn, opened.Label)
	require.NotNil(t, opened.TurnID)
	assert.Equal(t, "t1", *opened.TurnID)
	assert.True(t, opened.IsOpen())

	// Only one open shift per employee.
	again, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, again)

	e.clk.Set(at(12, 0))
	br, err := e.svc.ToggleBreak(ctx, "e1", mark.BreakAlmuerzoCena)
	require.NoError(t, err)
	assert.Equal(t, mark.TypeBreakStart, br.Type)
	assert.True(t, br.IsOpen())
	require.NotNil(t, br.Meta)
	assert.Equal(t, mark.BreakAlmuerzoCena, br.Meta.BreakType)
	assert.Equal(t, mark.BreakAlmuerzoLimit, br.Meta.DurationMin)

	e.clk.Set(at(13, 0))
	brClosed, err := e.svc.ToggleBreak(ctx, "e1", mark.BreakAlmuerzoCena)
	require.NoError(t, err)
	assert.Equal(t, br.ID, brClosed.ID)
	require.NotNil(t, brClosed.ClosedAt)

	e.clk.Set(at(14, 0))
	res, err := e.svc.MarkShiftOut(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.ReportStale)
	assert.Equal(t, opened.ID, res.Mark.ID)
	require.NotNil(t, res.Mark.ClosedAt)

	reports, err := e.reportRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	rep := reports[0]
	assert.Equal(t, report.TypeShiftReport, rep.Type)
	assert.Equal(t, "e1", rep.EmployeeID)
	require.NotNil(t, rep.DurationMin)
	assert.Equal(t, 480, *rep.DurationMin)
	require.Len(t, rep.Breaks, 1)
	require.NotNil(t, rep.Breaks[0].DurationMin)
	assert.Equal(t, 60, *rep.Breaks[0].DurationMin)
	assert.Equal(t, mark.BreakAlmuerzoCena, rep.Breaks[0].BreakType)
	assert.Len(t, rep.Items, 2)

	// The day is spoken for after closing.
	e.clk.Set(at(14, 5))
	reopened, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, reopened)

	out, err := e.svc.MarkShiftOut(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMarkShiftIn_BlockedByAbsentTag(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	closedAt := at(6, 16)
	_, err := e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", Label: mark.LabelAbsent, Type: mark.TypeAbsent,
		CreatedAt: closedAt, ClosedAt: &closedAt,
	})
	require.NoError(t, err)

	e.clk.Set(at(6, 30))
	opened, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, opened)
}

func TestMarkShiftIn_UnknownEmployee(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.MarkShiftIn(context.Background(), "nope")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestToggleBreak_InvalidType(t *testing.T) {
	e := newEnv(t)

	_, err := e.svc.ToggleBreak(context.Background(), "e1", "siesta")
	assert.ErrorIs(t, err, mark.ErrInvalidBreakType)
}

func TestCloseMark_AlreadyClosed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	closedAt := at(7, 0)
	m, err := e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", Label: "visita", Type: mark.TypeGeneric,
		CreatedAt: at(6, 30), ClosedAt: &closedAt,
	})
	require.NoError(t, err)

	_, err = e.svc.CloseMark(ctx, m.ID)
	assert.ErrorIs(t, err, mark.ErrMarkAlreadyClosed)
}

func TestStatusOf_TimeDerived(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want mark.Status
	}{
		{"within grace period", at(6, 4), mark.StatusIdle},
		{"past late threshold", at(6, 6), mark.StatusLate},
		{"at absent threshold", at(6, 15), mark.StatusAbsent},
		{"well past start", at(6, 40), mark.StatusAbsent},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newEnv(t)
			got, err := e.svc.StatusOf(context.Background(), "e1", c.now)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStatusOf_MarkDriven(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	opened, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, opened)

	got, err := e.svc.StatusOf(ctx, "e1", at(6, 30))
	require.NoError(t, err)
	assert.Equal(t, mark.StatusOnShift, got)

	e.clk.Set(at(14, 0))
	_, err = e.svc.MarkShiftOut(ctx, "e1")
	require.NoError(t, err)

	got, err = e.svc.StatusOf(ctx, "e1", at(14, 30))
	require.NoError(t, err)
	assert.Equal(t, mark.StatusClosed, got)
}

func TestListBoard(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	rows, err := e.svc.ListBoard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "e1", rows[0].Employee.ID)
	require.NotNil(t, rows[0].Turn)
	assert.Equal(t, "t1", rows[0].Turn.ID)
	assert.Equal(t, mark.StatusIdle, rows[0].Status)
	assert.Empty(t, rows[0].OpenMarks)

	_, err = e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)

	rows, err = e.svc.ListBoard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mark.StatusOnShift, rows[0].Status)
	assert.Len(t, rows[0].OpenMarks, 1)
}

func TestListBoard_OpenShiftOutlivesWindow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	_, err := e.svc.MarkShiftIn(ctx, "e1")
	require.NoError(t, err)

	// Past the window and its buffer the schedule is inactive, but the open
	// shift keeps the row on the board.
	e.clk.Set(at(15, 0))
	rows, err := e.svc.ListBoard(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Turn)
	assert.Equal(t, mark.StatusOnShift, rows[0].Status)
}

func TestUpdateMark(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	m, err := e.svc.RecordGenericMark(ctx, "e1", "visita médica")
	require.NoError(t, err)

	updated, err := e.svc.UpdateMark(ctx, &mark.UpdateMarkRequest{ID: m.ID, Label: "permiso"})
	require.NoError(t, err)
	assert.Equal(t, "permiso", updated.Label)

	_, err = e.svc.UpdateMark(ctx, &mark.UpdateMarkRequest{ID: m.ID, Label: ""})
	assert.Error(t, err)
}
