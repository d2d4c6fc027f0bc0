package response

import (
	"errors"
	"net/http"

	"github.com/corehr/workforce-backend-go/internal/domain/account"
	"github.com/corehr/workforce-backend-go/internal/domain/department"
	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/request"
	"github.com/corehr/workforce-backend-go/internal/domain/workflow"
	"github.com/corehr/workforce-backend-go/internal/pkg/validator"
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
	// Not-found errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, account.ErrAccountNotFound):
		NotFound(w, "Account does not exist. Please create an account first.")
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, workflow.ErrWorkflowNotFound):
		NotFound(w, "Workflow not found")

	// Conflict errors
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee ID is already taken")
	case errors.Is(err, employee.ErrAccountAlreadyAssigned):
		Conflict(w, "This account is already assigned to an employee")
	case errors.Is(err, employee.ErrSameDepartment):
		Conflict(w, "Cannot transfer to the same department")
	case errors.Is(err, account.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, request.ErrRequestAlreadyApproved):
		Conflict(w, "Request is already approved")
	case errors.Is(err, request.ErrRequestAlreadyRejected):
		Conflict(w, "Request is already rejected")
	case errors.Is(err, workflow.ErrWorkflowFinalized):
		Conflict(w, "Workflow status can no longer revert to pending")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
