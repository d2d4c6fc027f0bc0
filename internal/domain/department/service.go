package department

import "context"

// DepartmentService defines business logic for department operations
type DepartmentService interface {
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error

	// DepartmentCounts returns every department with its employee headcount
	DepartmentCounts(ctx context.Context) ([]DepartmentCountResponse, error)
}
