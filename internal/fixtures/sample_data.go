package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
)

func strPtr(s string) *string { return &s }

// fixedTurns is the built-in turn catalog. These rows are immutable through
// the API.
var fixedTurns = []turn.Turn{
	{Name: "Matutino (06:00-14:00)", StartTime: "06:00", EndTime: "14:00", Fixed: true},
	{Name: "Vespertino (14:00-22:00)", StartTime: "14:00", EndTime: "22:00", Fixed: true},
	{Name: "Nocturno (22:00-06:00)", StartTime: "22:00", EndTime: "06:00", Fixed: true},
	{Name: "Extendido (06:00-18:00)", StartTime: "06:00", EndTime: "18:00", Fixed: true},
	{Name: "Extendido Nocturno (18:00-06:00)", StartTime: "18:00", EndTime: "06:00", Fixed: true},
	{Name: "Secundaria (07:00-19:00)", StartTime: "07:00", EndTime: "19:00", Fixed: true},
	{Name: "Secundaria (09:00-18:00)", StartTime: "09:00", EndTime: "18:00", Fixed: true},
	{Name: "Secundaria (10:00-18:00)", StartTime: "10:00", EndTime: "18:00", Fixed: true},
	{Name: "Secundaria (09:00-17:00)", StartTime: "09:00", EndTime: "17:00", Fixed: true},
	{Name: "Secundaria (08:00-19:00)", StartTime: "08:00", EndTime: "19:00", Fixed: true},
	{Name: "Secundaria (09:00-19:00)", StartTime: "09:00", EndTime: "19:00", Fixed: true},
	{Name: "Secundaria (12:00-20:00)", StartTime: "12:00", EndTime: "20:00", Fixed: true},
	{Name: "Secundaria (07:00-17:30)", StartTime: "07:00", EndTime: "17:30", Fixed: true},
	{Name: "Secundaria (05:30-13:30)", StartTime: "05:30", EndTime: "13:30", Fixed: true},
}

// SeedSampleData populates an empty store with the fixed turn catalog plus a
// small set of positions and employees to make a fresh install usable.
func SeedSampleData(
	ctx context.Context,
	turnRepo turn.Repository,
	positionRepo master.PositionRepository,
	employeeRepo employee.Repository,
) error {
	turnCount, err := turnRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count turns: %w", err)
	}

	if turnCount == 0 {
		for _, t := range fixedTurns {
			if _, err := turnRepo.Create(ctx, t); err != nil {
				return fmt.Errorf("failed to seed turn %q: %w", t.Name, err)
			}
		}
		slog.Info("seeded fixed turn catalog", "count", len(fixedTurns))
	}

	employeeCount, err := employeeRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if employeeCount > 0 {
		return nil
	}

	operativo, err := positionRepo.Create(ctx, master.Position{Name: "Operativo"})
	if err != nil {
		return fmt.Errorf("failed to seed position: %w", err)
	}
	supervisor, err := positionRepo.Create(ctx, master.Position{Name: "Supervisor"})
	if err != nil {
		return fmt.Errorf("failed to seed position: %w", err)
	}

	sampleEmployees := []employee.Employee{
		{Name: "Juan Pérez", PositionID: &operativo.ID, Code: strPtr("OP-001")},
		{Name: "María García", PositionID: &operativo.ID, Code: strPtr("OP-002")},
		{Name: "Luis Torres", PositionID: &supervisor.ID, Code: strPtr("SP-001")},
	}

	for _, e := range sampleEmployees {
		if _, err := employeeRepo.Create(ctx, e); err != nil {
			return fmt.Errorf("failed to seed employee %q: %w", e.Name, err)
		}
	}
	slog.Info("seeded sample positions and employees", "employees", len(sampleEmployees))

	return nil
}
