package department

import "context"

type DepartmentRepository interface {
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, newDepartment Department) (Department, error)
	Update(ctx context.Context, updated Department) (Department, error)
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context) ([]DepartmentCount, error)
}
