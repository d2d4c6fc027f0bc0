package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// CreateEmployee creates the employee and its onboarding workflow in one
	// transaction
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (CreateEmployeeResponse, error)

	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	// TransferEmployee moves the employee to another department and records a
	// transfer workflow. The identifier may be the surrogate id or the
	// business employee id.
	TransferEmployee(ctx context.Context, identifier string, newDepartmentID string) (TransferEmployeeResponse, error)
}
