package employee

import "github.com/corehr/workforce-backend-go/internal/domain/workflow"

type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employeeId"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"departmentId,omitempty"`
	HireDate     string  `json:"hireDate"`
	AccountID    string  `json:"accountId"`
}

type UpdateEmployeeRequest struct {
	Position     *string `json:"position,omitempty"`
	DepartmentID *string `json:"departmentId,omitempty"`
	HireDate     *string `json:"hireDate,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type TransferEmployeeRequest struct {
	DepartmentID string `json:"departmentId"`
}

// EmployeeResponse is the hydrated detail view. Department and Account carry
// the related department name and account email; a missing relation is nil.
type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeId"`
	Position     string  `json:"position"`
	DepartmentID *string `json:"departmentId"`
	Department   *string `json:"department"`
	HireDate     string  `json:"hireDate"`
	IsActive     bool    `json:"isActive"`
	AccountID    string  `json:"accountId"`
	Account      *string `json:"account"`
}

type CreateEmployeeResponse struct {
	EmployeeResponse
	Onboarding workflow.WorkflowResponse `json:"onboardingWorkflow"`
}

type TransferEmployeeResponse struct {
	EmployeeResponse
	Message string `json:"message"`
}
