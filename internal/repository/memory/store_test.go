package memory

import (
	"context"
	"testing"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every memory repository satisfies its domain interface.
var (
	_ turn.Repository           = (*TurnRepository)(nil)
	_ schedule.Repository       = (*ScheduleRepository)(nil)
	_ employee.Repository       = (*EmployeeRepository)(nil)
	_ master.PositionRepository = (*PositionRepository)(nil)
	_ mark.Repository           = (*MarkRepository)(nil)
	_ report.Repository         = (*ReportRepository)(nil)
)

func TestCountThroughInterfaces(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	var turnRepo turn.Repository = NewTurnRepository(store)
	var employeeRepo employee.Repository = NewEmployeeRepository(store)
	var positionRepo master.PositionRepository = NewPositionRepository(store)

	turns, err := turnRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, turns)

	_, err = turnRepo.Create(ctx, turn.Turn{Name: "Matutino (06:00-14:00)", StartTime: "06:00", EndTime: "14:00"})
	require.NoError(t, err)
	_, err = employeeRepo.Create(ctx, employee.Employee{Name: "Juan Pérez"})
	require.NoError(t, err)
	_, err = positionRepo.Create(ctx, master.Position{Name: "Operativo"})
	require.NoError(t, err)

	turns, err = turnRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, turns)

	employees, err := employeeRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, employees)

	positions, err := positionRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, positions)
}
