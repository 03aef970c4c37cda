// Package master implements the catalog services: the turn catalog and the
// position list.
package master

import (
	"context"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
)

type MasterServiceImpl struct {
	turnRepo     turn.Repository
	positionRepo master.PositionRepository
	employeeRepo employee.Repository
}

func NewMasterService(
	turnRepo turn.Repository,
	positionRepo master.PositionRepository,
	employeeRepo employee.Repository,
) *MasterServiceImpl {
	return &MasterServiceImpl{
		turnRepo:     turnRepo,
		positionRepo: positionRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *MasterServiceImpl) ListTurns(ctx context.Context) ([]turn.Turn, error) {
	return s.turnRepo.List(ctx)
}

func (s *MasterServiceImpl) GetTurn(ctx context.Context, id string) (turn.Turn, error) {
	return s.turnRepo.GetByID(ctx, id)
}

func (s *MasterServiceImpl) CreateTurn(ctx context.Context, req *turn.CreateTurnRequest) (turn.Turn, error) {
	if err := req.Validate(); err != nil {
		return turn.Turn{}, err
	}

	created, err := s.turnRepo.Create(ctx, turn.Turn{
		Name:      req.Name,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		return turn.Turn{}, fmt.Errorf("failed to create turn: %w", err)
	}

	return created, nil
}

func (s *MasterServiceImpl) UpdateTurn(ctx context.Context, req *turn.UpdateTurnRequest) (turn.Turn, error) {
	if err := req.Validate(); err != nil {
		return turn.Turn{}, err
	}

	existing, err := s.turnRepo.GetByID(ctx, req.ID)
	if err != nil {
		return turn.Turn{}, err
	}
	if existing.Fixed {
		return turn.Turn{}, turn.ErrTurnFixed
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.StartTime != nil {
		existing.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		existing.EndTime = *req.EndTime
	}

	updated, err := s.turnRepo.Update(ctx, existing)
	if err != nil {
		return turn.Turn{}, fmt.Errorf("failed to update turn: %w", err)
	}

	return updated, nil
}

func (s *MasterServiceImpl) DeleteTurn(ctx context.Context, id string) error {
	existing, err := s.turnRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Fixed {
		return turn.ErrTurnFixed
	}

	return s.turnRepo.Delete(ctx, id)
}

func (s *MasterServiceImpl) ListPositions(ctx context.Context) ([]master.Position, error) {
	return s.positionRepo.List(ctx)
}

func (s *MasterServiceImpl) CreatePosition(ctx context.Context, req *master.CreatePositionRequest) (master.Position, error) {
	if err := req.Validate(); err != nil {
		return master.Position{}, err
	}

	created, err := s.positionRepo.Create(ctx, master.Position{Name: req.Name})
	if err != nil {
		return master.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return created, nil
}

func (s *MasterServiceImpl) UpdatePosition(ctx context.Context, req *master.UpdatePositionRequest) (master.Position, error) {
	if err := req.Validate(); err != nil {
		return master.Position{}, err
	}

	existing, err := s.positionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return master.Position{}, err
	}
	existing.Name = req.Name

	updated, err := s.positionRepo.Update(ctx, existing)
	if err != nil {
		return master.Position{}, fmt.Errorf("failed to update position: %w", err)
	}

	return updated, nil
}

// DeletePosition removes the position and detaches it from every employee
// that referenced it.
func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string) error {
	if err := s.positionRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.employeeRepo.ClearPosition(ctx, id); err != nil {
		return fmt.Errorf("failed to clear position references: %w", err)
	}

	return nil
}
