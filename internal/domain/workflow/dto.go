package workflow

import "time"

type CreateWorkflowRequest struct {
	EmployeeID  string    `json:"employeeId"`
	Type        string    `json:"type"`
	StartDate   string    `json:"startDate"`
	Description string    `json:"description,omitempty"`
	TotalSteps  int       `json:"totalSteps"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

type UpdateWorkflowRequest struct {
	Type        *string   `json:"type,omitempty"`
	StartDate   *string   `json:"startDate,omitempty"`
	EndDate     *string   `json:"endDate,omitempty"`
	Description *string   `json:"description,omitempty"`
	CurrentStep *int      `json:"currentStep,omitempty"`
	TotalSteps  *int      `json:"totalSteps,omitempty"`
	Metadata    *Metadata `json:"metadata,omitempty"`
}

type UpdateWorkflowStatusRequest struct {
	Status string `json:"status"`
}

// WorkflowEmployee is the employee summary attached to a workflow view.
type WorkflowEmployee struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeId"`
	Position     string  `json:"position"`
	Department   *string `json:"department"`
}

type WorkflowResponse struct {
	ID          string            `json:"id"`
	EmployeeID  string            `json:"employeeId"`
	Type        WorkflowType      `json:"type"`
	Status      WorkflowStatus    `json:"status"`
	StartDate   time.Time         `json:"startDate"`
	EndDate     *time.Time        `json:"endDate"`
	Description string            `json:"description"`
	CurrentStep int               `json:"currentStep"`
	TotalSteps  int               `json:"totalSteps"`
	Metadata    Metadata          `json:"metadata"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	Employee    *WorkflowEmployee `json:"employee"`
}
