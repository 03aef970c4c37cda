package employee

import "github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name       string  `json:"name"`
	PositionID *string `json:"position_id,omitempty"`
	Code       *string `json:"code,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       string  `json:"name"`
	PositionID *string `json:"position_id,omitempty"`
	Code       *string `json:"code,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PositionID *string `json:"position_id,omitempty"`
	Code       *string `json:"code,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
