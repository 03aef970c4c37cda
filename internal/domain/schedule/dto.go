package schedule

import (
	"time"

	"github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"
)

type CreateScheduleRequest struct {
	EmployeeID string  `json:"employee_id"`
	TurnID     *string `json:"turn_id,omitempty"`
	Days       []int   `json:"days,omitempty"`
	FreeDay    *int    `json:"free_day,omitempty"`
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	for _, day := range r.Days {
		if !validator.IsValidISOWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must contain ISO weekdays (1=Monday .. 7=Sunday)",
			})
			break
		}
	}

	if r.FreeDay != nil && !validator.IsValidISOWeekday(*r.FreeDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "free_day",
			Message: "free_day must be an ISO weekday (1=Monday .. 7=Sunday)",
		})
	}

	var start, end time.Time
	var okStart, okEnd bool
	if r.StartDate != nil && *r.StartDate != "" {
		if start, okStart = validator.IsValidDate(*r.StartDate); !okStart {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if end, okEnd = validator.IsValidDate(*r.EndDate); !okEnd {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateScheduleRequest struct {
	ID        string  `json:"-"`
	TurnID    *string `json:"turn_id,omitempty"`
	Days      []int   `json:"days,omitempty"`
	FreeDay   *int    `json:"free_day,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *UpdateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	for _, day := range r.Days {
		if !validator.IsValidISOWeekday(day) {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must contain ISO weekdays (1=Monday .. 7=Sunday)",
			})
			break
		}
	}

	if r.FreeDay != nil && !validator.IsValidISOWeekday(*r.FreeDay) {
		errs = append(errs, validator.ValidationError{
			Field:   "free_day",
			Message: "free_day must be an ISO weekday (1=Monday .. 7=Sunday)",
		})
	}

	if r.StartDate != nil && *r.StartDate != "" {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil && *r.EndDate != "" {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	TurnID     *string `json:"turn_id,omitempty"`
	Days       []int   `json:"days"`
	FreeDay    *int    `json:"free_day,omitempty"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}
