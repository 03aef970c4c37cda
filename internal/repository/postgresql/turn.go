package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type turnRepositoryImpl struct {
	db *database.DB
}

func NewTurnRepository(db *database.DB) turn.Repository {
	return &turnRepositoryImpl{db: db}
}

// List implements turn.Repository.
func (r *turnRepositoryImpl) List(ctx context.Context) ([]turn.Turn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, fixed, created_at, updated_at
		FROM turns
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	var turns []turn.Turn
	for rows.Next() {
		var t turn.Turn
		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.StartTime,
			&t.EndTime,
			&t.Fixed,
			&t.CreatedAt,
			&t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turns = append(turns, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return turns, nil
}

// GetByID implements turn.Repository.
func (r *turnRepositoryImpl) GetByID(ctx context.Context, id string) (turn.Turn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, start_time, end_time, fixed, created_at, updated_at
		FROM turns
		WHERE id = $1
	`

	var t turn.Turn
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID,
		&t.Name,
		&t.StartTime,
		&t.EndTime,
		&t.Fixed,
		&t.CreatedAt,
		&t.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return turn.Turn{}, turn.ErrTurnNotFound
		}
		return turn.Turn{}, fmt.Errorf("failed to get turn: %w", err)
	}

	return t, nil
}

// Create implements turn.Repository.
func (r *turnRepositoryImpl) Create(ctx context.Context, t turn.Turn) (turn.Turn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO turns (id, name, start_time, end_time, fixed, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, name, start_time, end_time, fixed, created_at, updated_at
	`

	var result turn.Turn
	err := q.QueryRow(ctx, query, t.Name, t.StartTime, t.EndTime, t.Fixed).Scan(
		&result.ID,
		&result.Name,
		&result.StartTime,
		&result.EndTime,
		&result.Fixed,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return turn.Turn{}, fmt.Errorf("failed to create turn: %w", err)
	}

	return result, nil
}

// Update implements turn.Repository.
func (r *turnRepositoryImpl) Update(ctx context.Context, t turn.Turn) (turn.Turn, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE turns
		SET name = $1, start_time = $2, end_time = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, start_time, end_time, fixed, created_at, updated_at
	`

	var result turn.Turn
	err := q.QueryRow(ctx, query, t.Name, t.StartTime, t.EndTime, t.ID).Scan(
		&result.ID,
		&result.Name,
		&result.StartTime,
		&result.EndTime,
		&result.Fixed,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return turn.Turn{}, turn.ErrTurnNotFound
		}
		return turn.Turn{}, fmt.Errorf("failed to update turn: %w", err)
	}

	return result, nil
}

// Delete implements turn.Repository.
func (r *turnRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM turns WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete turn: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return turn.ErrTurnNotFound
	}

	return nil
}

// Count implements turn.Repository.
func (r *turnRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM turns`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count turns: %w", err)
	}

	return count, nil
}
