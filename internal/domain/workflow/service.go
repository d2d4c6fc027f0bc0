package workflow

import "context"

// WorkflowService defines business logic for workflow operations
type WorkflowService interface {
	GetWorkflow(ctx context.Context, id string) (WorkflowResponse, error)
	ListWorkflows(ctx context.Context) ([]WorkflowResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]WorkflowResponse, error)

	CreateWorkflow(ctx context.Context, req CreateWorkflowRequest) (WorkflowResponse, error)
	UpdateWorkflow(ctx context.Context, id string, req UpdateWorkflowRequest) (WorkflowResponse, error)

	// UpdateStatus changes the workflow status; reaching the completed status
	// stamps the end date
	UpdateStatus(ctx context.Context, id string, status string) (WorkflowResponse, error)

	DeleteWorkflow(ctx context.Context, id string) error

	// CreateOnboarding records the fixed five-step onboarding workflow for a
	// freshly created employee. Runs against the caller's transaction when
	// one is on the context.
	CreateOnboarding(ctx context.Context, employeeID string, employeeCode string) (Workflow, error)

	// CreateTransfer records the fixed four-step transfer workflow, with the
	// old and new department names snapshotted into the metadata.
	CreateTransfer(ctx context.Context, employeeID string, oldDepartmentID *string, newDepartmentID string) (Workflow, error)
}
