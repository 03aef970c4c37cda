package report

import (
	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"
)

type UpdateReportRequest struct {
	ID    string `json:"-"`
	Notes string `json:"notes"`
}

func (r *UpdateReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Notes) {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReportResponse struct {
	ID          string             `json:"id"`
	Type        Type               `json:"type"`
	EmployeeID  string             `json:"employee_id"`
	Employee    *employee.Snapshot `json:"employee,omitempty"`
	TurnID      *string            `json:"turn_id,omitempty"`
	Turn        *turn.Snapshot     `json:"turn,omitempty"`
	Start       *string            `json:"start,omitempty"`
	End         *string            `json:"end,omitempty"`
	DurationMin *int               `json:"duration_min,omitempty"`
	Items       []MarkItem         `json:"items"`
	Breaks      []BreakSummary     `json:"breaks"`
	Notes       *string            `json:"notes,omitempty"`
	Timestamp   string             `json:"timestamp"`
}
