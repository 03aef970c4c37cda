package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

const scheduleColumns = `id, employee_id, turn_id, days, free_day, start_date, end_date, created_at, updated_at`

func scanSchedule(row pgx.Row) (schedule.Schedule, error) {
	var sch schedule.Schedule
	err := row.Scan(
		&sch.ID,
		&sch.EmployeeID,
		&sch.TurnID,
		&sch.Days,
		&sch.FreeDay,
		&sch.StartDate,
		&sch.EndDate,
		&sch.CreatedAt,
		&sch.UpdatedAt,
	)
	return sch, err
}

// List implements schedule.Repository.
func (r *scheduleRepositoryImpl) List(ctx context.Context) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return schedules, nil
}

// ListByEmployee implements schedule.Repository.
func (r *scheduleRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE employee_id = $1 ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		sch, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule: %w", err)
		}
		schedules = append(schedules, sch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return schedules, nil
}

// GetByID implements schedule.Repository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE id = $1`

	sch, err := scanSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}

	return sch, nil
}

// Create implements schedule.Repository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (id, employee_id, turn_id, days, free_day, start_date, end_date, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + scheduleColumns

	result, err := scanSchedule(q.QueryRow(ctx, query,
		sch.EmployeeID, sch.TurnID, sch.Days, sch.FreeDay, sch.StartDate, sch.EndDate))
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}

	return result, nil
}

// Update implements schedule.Repository.
func (r *scheduleRepositoryImpl) Update(ctx context.Context, sch schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE schedules
		SET turn_id = $1, days = $2, free_day = $3, start_date = $4, end_date = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + scheduleColumns

	result, err := scanSchedule(q.QueryRow(ctx, query,
		sch.TurnID, sch.Days, sch.FreeDay, sch.StartDate, sch.EndDate, sch.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to update schedule: %w", err)
	}

	return result, nil
}

// Delete implements schedule.Repository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM schedules WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
