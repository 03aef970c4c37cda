package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type markRepositoryImpl struct {
	db *database.DB
}

func NewMarkRepository(db *database.DB) mark.Repository {
	return &markRepositoryImpl{db: db}
}

const markColumns = `id, employee_id, turn_id, label, type, created_at, closed_at, meta`

func scanMark(row pgx.Row) (mark.Mark, error) {
	var m mark.Mark
	err := row.Scan(
		&m.ID,
		&m.EmployeeID,
		&m.TurnID,
		&m.Label,
		&m.Type,
		&m.CreatedAt,
		&m.ClosedAt,
		&m.Meta,
	)
	return m, err
}

func collectMarks(rows pgx.Rows) ([]mark.Mark, error) {
	defer rows.Close()

	var marks []mark.Mark
	for rows.Next() {
		m, err := scanMark(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mark: %w", err)
		}
		marks = append(marks, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return marks, nil
}

// List implements mark.Repository.
func (r *markRepositoryImpl) List(ctx context.Context, f mark.Filter) ([]mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}

	if f.EmployeeID != "" {
		args = append(args, f.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if f.Type != "" {
		args = append(args, f.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.Date != "" {
		args = append(args, f.Date)
		conditions = append(conditions, fmt.Sprintf("created_at::date = $%d::date", len(args)))
	}
	if f.OpenOnly {
		conditions = append(conditions, "closed_at IS NULL")
	}

	query := `SELECT ` + markColumns + ` FROM marks`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks: %w", err)
	}

	return collectMarks(rows)
}

// GetByID implements mark.Repository.
func (r *markRepositoryImpl) GetByID(ctx context.Context, id string) (mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + markColumns + ` FROM marks WHERE id = $1`

	m, err := scanMark(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mark.Mark{}, mark.ErrMarkNotFound
		}
		return mark.Mark{}, fmt.Errorf("failed to get mark: %w", err)
	}

	return m, nil
}

// Create implements mark.Repository.
func (r *markRepositoryImpl) Create(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO marks (id, employee_id, turn_id, label, type, created_at, closed_at, meta)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + markColumns

	result, err := scanMark(q.QueryRow(ctx, query,
		m.EmployeeID, m.TurnID, m.Label, m.Type, m.CreatedAt, m.ClosedAt, m.Meta))
	if err != nil {
		return mark.Mark{}, fmt.Errorf("failed to create mark: %w", err)
	}

	return result, nil
}

// Close implements mark.Repository. The update and the follow-up read used
// to distinguish missing from already closed run in one transaction.
func (r *markRepositoryImpl) Close(ctx context.Context, id string, closedAt time.Time) (mark.Mark, error) {
	var result mark.Mark

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		query := `
			UPDATE marks
			SET closed_at = $1
			WHERE id = $2 AND closed_at IS NULL
			RETURNING ` + markColumns

		m, err := scanMark(q.QueryRow(txCtx, query, closedAt, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				if _, getErr := r.GetByID(txCtx, id); getErr == nil {
					return mark.ErrMarkAlreadyClosed
				}
				return mark.ErrMarkNotFound
			}
			return fmt.Errorf("failed to close mark: %w", err)
		}

		result = m
		return nil
	})
	if err != nil {
		return mark.Mark{}, err
	}

	return result, nil
}

// Update implements mark.Repository.
func (r *markRepositoryImpl) Update(ctx context.Context, m mark.Mark) (mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE marks
		SET label = $1, meta = $2
		WHERE id = $3
		RETURNING ` + markColumns

	result, err := scanMark(q.QueryRow(ctx, query, m.Label, m.Meta, m.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mark.Mark{}, mark.ErrMarkNotFound
		}
		return mark.Mark{}, fmt.Errorf("failed to update mark: %w", err)
	}

	return result, nil
}

// GetOpenByType implements mark.Repository.
func (r *markRepositoryImpl) GetOpenByType(ctx context.Context, employeeID string, t mark.Type) (mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + markColumns + `
		FROM marks
		WHERE employee_id = $1 AND type = $2 AND closed_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`

	m, err := scanMark(q.QueryRow(ctx, query, employeeID, t))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mark.Mark{}, mark.ErrMarkNotFound
		}
		return mark.Mark{}, fmt.Errorf("failed to get open mark: %w", err)
	}

	return m, nil
}

// GetOpenBreak implements mark.Repository.
func (r *markRepositoryImpl) GetOpenBreak(ctx context.Context, employeeID, breakType string) (mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + markColumns + `
		FROM marks
		WHERE employee_id = $1 AND type = $2 AND closed_at IS NULL AND meta->>'break_type' = $3
		ORDER BY created_at DESC
		LIMIT 1
	`

	m, err := scanMark(q.QueryRow(ctx, query, employeeID, mark.TypeBreakStart, breakType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mark.Mark{}, mark.ErrMarkNotFound
		}
		return mark.Mark{}, fmt.Errorf("failed to get open break: %w", err)
	}

	return m, nil
}

// HasTypeOnDate implements mark.Repository.
func (r *markRepositoryImpl) HasTypeOnDate(ctx context.Context, employeeID string, t mark.Type, date string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM marks
			WHERE employee_id = $1 AND type = $2 AND created_at::date = $3::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, t, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check marks on date: %w", err)
	}

	return exists, nil
}

// ListByEmployee implements mark.Repository.
func (r *markRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]mark.Mark, error) {
	return r.List(ctx, mark.Filter{EmployeeID: employeeID})
}

// ListByEmployeeBetween implements mark.Repository.
func (r *markRepositoryImpl) ListByEmployeeBetween(ctx context.Context, employeeID string, from, to time.Time) ([]mark.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + markColumns + `
		FROM marks
		WHERE employee_id = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list marks between: %w", err)
	}

	return collectMarks(rows)
}
