package response

import (
	"errors"
	"net/http"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/contract"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/employee"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/insurance"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/payroll"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/schedule"
	"github.com/lachong-labs/payroll-backend-go/internal/domain/user"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/validator"
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
	// User domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordAlreadyExists):
		Conflict(w, "Payroll record already exists for this period")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Master data errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")
	case errors.Is(err, schedule.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract history not found")
	case errors.Is(err, insurance.ErrPolicyNotFound):
		NotFound(w, "Insurance policy not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
