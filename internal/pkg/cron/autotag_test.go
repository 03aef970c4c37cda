package cron

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

type tagEnv struct {
	clk        *clock.Fixed
	markRepo   *memory.MarkRepository
	reportRepo *memory.ReportRepository
	jobs       *AutoTagJobs
}

func newTagEnv(t *testing.T) *tagEnv {
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
	jobs := NewAutoTagJobs(employeeRepo, scheduleRepo, turnRepo, markRepo, reportSvc, clk, nil)

	return &tagEnv{clk: clk, markRepo: markRepo, reportRepo: reportRepo, jobs: jobs}
}

func (e *tagEnv) marksOf(t *testing.T, typ mark.Type) []mark.Mark {
	t.Helper()
	marks, err := e.markRepo.List(context.Background(), mark.Filter{EmployeeID: "e1", Type: typ})
	require.NoError(t, err)
	return marks
}

func TestAutoTagAttendance_GracePeriod(t *testing.T) {
	e := newTagEnv(t)

	e.clk.Set(at(6, 4))
	require.NoError(t, e.jobs.AutoTagAttendance(context.Background()))

	assert.Empty(t, e.marksOf(t, mark.TypeLate))
	assert.Empty(t, e.marksOf(t, mark.TypeAbsent))
}

func TestAutoTagAttendance_Late(t *testing.T) {
	e := newTagEnv(t)
	ctx := context.Background()

	e.clk.Set(at(6, 6))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))

	lates := e.marksOf(t, mark.TypeLate)
	require.Len(t, lates, 1)
	assert.Equal(t, mark.LabelLate, lates[0].Label)
	assert.False(t, lates[0].IsOpen())
	require.NotNil(t, lates[0].TurnID)
	assert.Equal(t, "t1", *lates[0].TurnID)

	// The same pass repeated never duplicates the tag.
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))
	assert.Len(t, e.marksOf(t, mark.TypeLate), 1)
}

func TestAutoTagAttendance_Absent(t *testing.T) {
	e := newTagEnv(t)
	ctx := context.Background()

	e.clk.Set(at(6, 16))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))

	absents := e.marksOf(t, mark.TypeAbsent)
	require.Len(t, absents, 1)
	assert.Equal(t, mark.LabelAbsent, absents[0].Label)
	assert.False(t, absents[0].IsOpen())

	reports, err := e.reportRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, report.TypeRowSnapshot, reports[0].Type)
	assert.Equal(t, "e1", reports[0].EmployeeID)

	require.NoError(t, e.jobs.AutoTagAttendance(ctx))
	assert.Len(t, e.marksOf(t, mark.TypeAbsent), 1)
}

func TestAutoTagAttendance_LateEscalatesToAbsent(t *testing.T) {
	e := newTagEnv(t)
	ctx := context.Background()

	e.clk.Set(at(6, 6))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))
	require.Len(t, e.marksOf(t, mark.TypeLate), 1)

	e.clk.Set(at(6, 20))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))

	assert.Len(t, e.marksOf(t, mark.TypeLate), 1)
	assert.Len(t, e.marksOf(t, mark.TypeAbsent), 1)
}

func TestAutoTagAttendance_SkipsStartedShift(t *testing.T) {
	e := newTagEnv(t)
	ctx := context.Background()

	_, err := e.markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", Label: mark.LabelShiftIn, Type: mark.TypeShiftIn, CreatedAt: at(6, 1),
	})
	require.NoError(t, err)

	e.clk.Set(at(6, 30))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))

	assert.Empty(t, e.marksOf(t, mark.TypeLate))
	assert.Empty(t, e.marksOf(t, mark.TypeAbsent))
}

func TestAutoTagAttendance_SkipsInactiveSchedule(t *testing.T) {
	e := newTagEnv(t)
	ctx := context.Background()

	// Far past the window; ElapsedSinceStart reports inside-window only.
	e.clk.Set(at(15, 0))
	require.NoError(t, e.jobs.AutoTagAttendance(ctx))

	assert.Empty(t, e.marksOf(t, mark.TypeLate))
	assert.Empty(t, e.marksOf(t, mark.TypeAbsent))
}

func TestAutoTagAttendance_OvernightOpenShiftNotTagged(t *testing.T) {
	store := memory.NewStore()
	clk := clock.NewFixed(at(22, 0))

	turnRepo := memory.NewTurnRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	employeeRepo := memory.NewEmployeeRepository(store)
	positionRepo := memory.NewPositionRepository(store)
	markRepo := memory.NewMarkRepository(store)
	reportRepo := memory.NewReportRepository(store)

	ctx := context.Background()

	_, err := turnRepo.Create(ctx, turn.Turn{
		ID: "t2", Name: "Nocturno (22:00-06:00)", StartTime: "22:00", EndTime: "06:00", Fixed: true,
	})
	require.NoError(t, err)

	_, err = employeeRepo.Create(ctx, employee.Employee{ID: "e1", Name: "Juan Pérez"})
	require.NoError(t, err)

	turnID := "t2"
	_, err = scheduleRepo.Create(ctx, schedule.Schedule{ID: "s1", EmployeeID: "e1", TurnID: &turnID})
	require.NoError(t, err)

	// Clocked in Monday 22:00; the shift is still open Tuesday morning.
	_, err = markRepo.Create(ctx, mark.Mark{
		EmployeeID: "e1", TurnID: &turnID, Label: mark.LabelShiftIn,
		Type: mark.TypeShiftIn, CreatedAt: at(22, 0),
	})
	require.NoError(t, err)

	reportSvc := reportService.NewReportService(reportRepo, markRepo, employeeRepo, positionRepo, turnRepo, clk, nil)
	jobs := NewAutoTagJobs(employeeRepo, scheduleRepo, turnRepo, markRepo, reportSvc, clk, nil)

	clk.Set(time.Date(2025, 11, 4, 5, 30, 0, 0, time.Local))
	require.NoError(t, jobs.AutoTagAttendance(ctx))

	marks, err := markRepo.List(ctx, mark.Filter{EmployeeID: "e1"})
	require.NoError(t, err)
	require.Len(t, marks, 1)
	assert.Equal(t, mark.TypeShiftIn, marks[0].Type)

	reports, err := reportRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestRegisterJobs(t *testing.T) {
	e := newTagEnv(t)

	scheduler := NewScheduler()
	e.jobs.RegisterJobs(scheduler, time.Minute)

	e.clk.Set(at(6, 16))
	scheduler.RunOnce(context.Background())

	assert.Len(t, e.marksOf(t, mark.TypeAbsent), 1)
}
