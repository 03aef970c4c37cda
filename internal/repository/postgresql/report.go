package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

const reportColumns = `id, type, employee_id, employee, turn_id, turn, start_at, end_at, duration_min, items, breaks, notes, created_at`

func scanReport(row pgx.Row) (report.Report, error) {
	var rep report.Report
	err := row.Scan(
		&rep.ID,
		&rep.Type,
		&rep.EmployeeID,
		&rep.Employee,
		&rep.TurnID,
		&rep.Turn,
		&rep.Start,
		&rep.End,
		&rep.DurationMin,
		&rep.Items,
		&rep.Breaks,
		&rep.Notes,
		&rep.Timestamp,
	)
	return rep, err
}

// List implements report.Repository.
func (r *reportRepositoryImpl) List(ctx context.Context) ([]report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return reports, nil
}

// GetByID implements report.Repository.
func (r *reportRepositoryImpl) GetByID(ctx context.Context, id string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1`

	rep, err := scanReport(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to get report: %w", err)
	}

	return rep, nil
}

// Replace implements report.Repository. The employee_id unique constraint
// keeps at most one report per employee; each consolidation overwrites the
// previous one.
func (r *reportRepositoryImpl) Replace(ctx context.Context, rep report.Report) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO reports (id, type, employee_id, employee, turn_id, turn, start_at, end_at, duration_min, items, breaks, notes, created_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (employee_id) DO UPDATE SET
			type = EXCLUDED.type,
			employee = EXCLUDED.employee,
			turn_id = EXCLUDED.turn_id,
			turn = EXCLUDED.turn,
			start_at = EXCLUDED.start_at,
			end_at = EXCLUDED.end_at,
			duration_min = EXCLUDED.duration_min,
			items = EXCLUDED.items,
			breaks = EXCLUDED.breaks,
			notes = EXCLUDED.notes,
			created_at = EXCLUDED.created_at
		RETURNING ` + reportColumns

	result, err := scanReport(q.QueryRow(ctx, query,
		rep.Type, rep.EmployeeID, rep.Employee, rep.TurnID, rep.Turn,
		rep.Start, rep.End, rep.DurationMin, rep.Items, rep.Breaks, rep.Notes))
	if err != nil {
		return report.Report{}, fmt.Errorf("failed to replace report: %w", err)
	}

	return result, nil
}

// UpdateNotes implements report.Repository.
func (r *reportRepositoryImpl) UpdateNotes(ctx context.Context, id, notes string) (report.Report, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reports
		SET notes = $1
		WHERE id = $2
		RETURNING ` + reportColumns

	rep, err := scanReport(q.QueryRow(ctx, query, notes, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.Report{}, report.ErrReportNotFound
		}
		return report.Report{}, fmt.Errorf("failed to update report notes: %w", err)
	}

	return rep, nil
}

// Clear implements report.Repository.
func (r *reportRepositoryImpl) Clear(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM reports`); err != nil {
		return fmt.Errorf("failed to clear reports: %w", err)
	}

	return nil
}
