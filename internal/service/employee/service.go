package employee

import (
	"context"
	"fmt"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.Repository
	positionRepo master.PositionRepository
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	positionRepo master.PositionRepository,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		positionRepo: positionRepo,
	}
}

func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	return s.employeeRepo.List(ctx)
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req *employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	if req.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *req.PositionID); err != nil {
			return employee.Employee{}, err
		}
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:       req.Name,
		PositionID: req.PositionID,
		Code:       req.Code,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req *employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	if req.PositionID != nil {
		if _, err := s.positionRepo.GetByID(ctx, *req.PositionID); err != nil {
			return employee.Employee{}, err
		}
	}

	existing.Name = req.Name
	existing.PositionID = req.PositionID
	existing.Code = req.Code

	updated, err := s.employeeRepo.Update(ctx, existing)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
