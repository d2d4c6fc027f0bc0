package workflow

import "context"

type WorkflowRepository interface {
	GetByID(ctx context.Context, id string) (Workflow, error)
	List(ctx context.Context) ([]Workflow, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Workflow, error)
	Create(ctx context.Context, newWorkflow Workflow) (Workflow, error)
	Update(ctx context.Context, updated Workflow) (Workflow, error)
	Delete(ctx context.Context, id string) error
}
