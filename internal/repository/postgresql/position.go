package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type positionRepositoryImpl struct {
	db *database.DB
}

func NewPositionRepository(db *database.DB) master.PositionRepository {
	return &positionRepositoryImpl{db: db}
}

// List implements master.PositionRepository.
func (r *positionRepositoryImpl) List(ctx context.Context) ([]master.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM positions
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var positions []master.Position
	for rows.Next() {
		var p master.Position
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return positions, nil
}

// GetByID implements master.PositionRepository.
func (r *positionRepositoryImpl) GetByID(ctx context.Context, id string) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, created_at, updated_at
		FROM positions
		WHERE id = $1
	`

	var p master.Position
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.CreatedAt,
		&p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Position{}, master.ErrPositionNotFound
		}
		return master.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return p, nil
}

// Create implements master.PositionRepository.
func (r *positionRepositoryImpl) Create(ctx context.Context, p master.Position) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, name, created_at, updated_at)
		VALUES (uuidv7(), $1, NOW(), NOW())
		RETURNING id, name, created_at, updated_at
	`

	var result master.Position
	err := q.QueryRow(ctx, query, p.Name).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		return master.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return result, nil
}

// Update implements master.PositionRepository.
func (r *positionRepositoryImpl) Update(ctx context.Context, p master.Position) (master.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE positions
		SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, created_at, updated_at
	`

	var result master.Position
	err := q.QueryRow(ctx, query, p.Name, p.ID).Scan(
		&result.ID,
		&result.Name,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return master.Position{}, master.ErrPositionNotFound
		}
		return master.Position{}, fmt.Errorf("failed to update position: %w", err)
	}

	return result, nil
}

// Delete implements master.PositionRepository.
func (r *positionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM positions WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return master.ErrPositionNotFound
	}

	return nil
}

// Count implements master.PositionRepository.
func (r *positionRepositoryImpl) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM positions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count positions: %w", err)
	}

	return count, nil
}
