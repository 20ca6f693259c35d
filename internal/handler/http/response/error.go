package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fleetworks/timesheet-backend-go/internal/domain/auth"
	"github.com/fleetworks/timesheet-backend-go/internal/domain/equipment"
	"github.com/fleetworks/timesheet-backend-go/internal/domain/operator"
	"github.com/fleetworks/timesheet-backend-go/internal/domain/timesheet"
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Day-ceiling rejection carries the figures the user needs to adjust.
	var ceiling *timesheet.CeilingViolationError
	if errors.As(err, &ceiling) {
		UnprocessableEntity(w, "DAY_CEILING_EXCEEDED", ceiling.Error(), map[string]string{
			"date":          ceiling.DateKey,
			"current_total": fmt.Sprintf("%.2f", ceiling.CurrentTotal),
			"attempted":     fmt.Sprintf("%.2f", ceiling.Attempted),
			"limit":         fmt.Sprintf("%.2f", ceiling.Limit),
		})
		return
	}

	// Pre-flight save validation lists every offending cell.
	var missing *timesheet.MissingAssigneesError
	if errors.As(err, &missing) {
		details := make(map[string]string, len(missing.Cells))
		for _, c := range missing.Cells {
			details[c.DateKey+"/"+c.WorkTypeID] = "assignee is required"
		}
		UnprocessableEntity(w, "ASSIGNEE_REQUIRED", "One or more cells are missing an assignee", details)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, operator.ErrOperatorInactive):
		Forbidden(w, "Operator is inactive")
	case errors.Is(err, operator.ErrOperatorNotFound):
		NotFound(w, "Operator not found")

	// Equipment domain errors
	case errors.Is(err, equipment.ErrEquipmentNotFound):
		NotFound(w, "Equipment not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrSessionNotFound):
		NotFound(w, "Timesheet session not found")
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Work entry not found")
	case errors.Is(err, timesheet.ErrSaveInFlight):
		Conflict(w, "A save is already in progress for this session")
	case errors.Is(err, timesheet.ErrWorkTypeNotSupported):
		BadRequest(w, "Work type is not supported by this equipment", nil)
	case errors.Is(err, timesheet.ErrDateOutsideYear):
		BadRequest(w, "Date is outside the loaded year", nil)
	case errors.Is(err, timesheet.ErrUnknownViewMode):
		BadRequest(w, "Unknown view mode", nil)
	case errors.Is(err, timesheet.ErrWindowOutOfRange):
		BadRequest(w, "View window segment is out of range for the month", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
