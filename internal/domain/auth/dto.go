package auth

import (
	"github.com/fleetworks/timesheet-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	OperatorCode string `json:"operator_code"`
	PIN          string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OperatorCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "operator_code",
			Message: "operator_code is required",
		})
	} else if !validator.IsValidOperatorCode(r.OperatorCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "operator_code",
			Message: "operator_code must be 4-16 characters of A-Z, 0-9 or dash",
		})
	}

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	} else if !validator.IsNumeric(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must contain digits only",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"`
	OperatorID   string `json:"operator_id"`
	OperatorName string `json:"operator_name"`
}
