package workflow

import "errors"

var (
	ErrWorkflowNotFound  = errors.New("workflow not found")
	ErrWorkflowFinalized = errors.New("workflow status can no longer revert to pending")
)
