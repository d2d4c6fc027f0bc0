package workflow

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Workflow struct {
	ID          string
	EmployeeID  string
	Type        WorkflowType
	Status      WorkflowStatus
	StartDate   time.Time
	EndDate     *time.Time
	Description string
	CurrentStep int
	TotalSteps  int
	Metadata    Metadata
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type WorkflowType string

const (
	WorkflowTypeOnboarding  WorkflowType = "onboarding"
	WorkflowTypeOffboarding WorkflowType = "offboarding"
	WorkflowTypeTransfer    WorkflowType = "transfer"
	WorkflowTypePromotion   WorkflowType = "promotion"
)

type WorkflowStatus string

const (
	WorkflowStatusPending   WorkflowStatus = "pending"
	WorkflowStatusApproved  WorkflowStatus = "approved"
	WorkflowStatusRejected  WorkflowStatus = "rejected"
	WorkflowStatusCompleted WorkflowStatus = "completed"
)

// Metadata is the JSONB payload. OldDepartment and NewDepartment hold the
// department names snapshotted at transfer time, not live references.
type Metadata struct {
	Checklist     []string `json:"checklist,omitempty"`
	OldDepartment string   `json:"oldDepartment,omitempty"`
	NewDepartment string   `json:"newDepartment,omitempty"`
}

// Value implements driver.Valuer for database storage
func (m Metadata) Value() (driver.Value, error) {
	if len(m.Checklist) == 0 && m.OldDepartment == "" && m.NewDepartment == "" {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan workflow metadata: invalid type")
	}

	return json.Unmarshal(bytes, m)
}
