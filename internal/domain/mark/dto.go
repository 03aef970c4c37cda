package mark

import "github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"

type ShiftMarkRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *ShiftMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ToggleBreakRequest struct {
	EmployeeID string `json:"employee_id"`
	BreakType  string `json:"break_type"`
}

func (r *ToggleBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.BreakType, []string{BreakAlmuerzoCena, BreakDesayunoCafe}) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_type",
			Message: "break_type must be almuerzo_cena or desayuno_cafe",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GenericMarkRequest struct {
	EmployeeID string `json:"employee_id"`
	Label      string `json:"label"`
}

func (r *GenericMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateMarkRequest struct {
	ID    string `json:"-"`
	Label string `json:"label"`
}

func (r *UpdateMarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MarkResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	TurnID     *string `json:"turn_id,omitempty"`
	Label      string  `json:"label"`
	Type       Type    `json:"type"`
	CreatedAt  string  `json:"created_at"`
	ClosedAt   *string `json:"closed_at,omitempty"`
	Meta       *Meta   `json:"meta,omitempty"`
}
