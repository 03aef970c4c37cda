package response

import (
	"errors"
	"net/http"

	"github.com/Joseph2303/ProyectoPSS/internal/domain/auth"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/employee"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/mark"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/master"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/report"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/schedule"
	"github.com/Joseph2303/ProyectoPSS/internal/domain/turn"
	"github.com/Joseph2303/ProyectoPSS/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidPasscode):
		Unauthorized(w, "Invalid terminal passcode")

	// Missing references
	case errors.Is(err, turn.ErrTurnNotFound):
		NotFound(w, "Turn not found")
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, master.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, mark.ErrMarkNotFound):
		NotFound(w, "Mark not found")
	case errors.Is(err, report.ErrReportNotFound):
		NotFound(w, "Report not found")

	// Illegal transitions
	case errors.Is(err, turn.ErrTurnFixed):
		Conflict(w, "Fixed turns cannot be modified")
	case errors.Is(err, mark.ErrMarkAlreadyClosed):
		Conflict(w, "Mark already closed")
	case errors.Is(err, mark.ErrInvalidBreakType):
		BadRequest(w, "Invalid break type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
