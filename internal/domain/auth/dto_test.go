package auth

import (
	"testing"

	"github.com/fleetworks/timesheet-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	t.Parallel()

	req := LoginRequest{OperatorCode: "OP-7A", PIN: "4321"}
	assert.NoError(t, req.Validate())
}

func TestLoginRequest_Validate_MissingFields(t *testing.T) {
	t.Parallel()

	req := LoginRequest{}
	err := req.Validate()

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Equal(t, "operator_code is required", details["operator_code"])
	assert.Equal(t, "pin is required", details["pin"])
}

func TestLoginRequest_Validate_BadFormats(t *testing.T) {
	t.Parallel()

	req := LoginRequest{OperatorCode: "op 7", PIN: "12ab"}
	err := req.Validate()

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details["operator_code"], "4-16 characters")
	assert.Contains(t, details["pin"], "digits only")
}
