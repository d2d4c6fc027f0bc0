package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corehr/workforce-backend-go/internal/domain/department"
	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/workflow"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/corehr/workforce-backend-go/internal/pkg/validator"
)

// Checklists are fixed per workflow type.
var onboardingChecklist = []string{
	"IT Setup",
	"HR Documentation",
	"Department Introduction",
	"Training Schedule",
	"Final Review",
}

var transferChecklist = []string{
	"Complete handover in current department",
	"Update system access and permissions",
	"New department orientation",
	"Final transfer confirmation",
}

// unassignedDepartment renders a transfer from an employee without a
// department assignment.
const unassignedDepartment = "Unassigned"

type WorkflowServiceImpl struct {
	db             *database.DB
	workflowRepo   workflow.WorkflowRepository
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
}

func NewWorkflowService(
	db *database.DB,
	workflowRepo workflow.WorkflowRepository,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
) workflow.WorkflowService {
	return &WorkflowServiceImpl{
		db:             db,
		workflowRepo:   workflowRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// GetWorkflow implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) GetWorkflow(ctx context.Context, id string) (workflow.WorkflowResponse, error) {
	w, err := s.workflowRepo.GetByID(ctx, id)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}
	return s.toResponse(ctx, w)
}

// ListWorkflows implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) ListWorkflows(ctx context.Context) ([]workflow.WorkflowResponse, error) {
	workflows, err := s.workflowRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	return s.toResponses(ctx, workflows)
}

// GetByEmployeeID implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]workflow.WorkflowResponse, error) {
	workflows, err := s.workflowRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows by employee: %w", err)
	}
	return s.toResponses(ctx, workflows)
}

// CreateWorkflow implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) CreateWorkflow(ctx context.Context, req workflow.CreateWorkflowRequest) (workflow.WorkflowResponse, error) {
	var validationErrs validator.ValidationErrors
	if validator.IsEmpty(req.EmployeeID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is required"})
	}
	if !validator.IsOneOf(req.Type,
		string(workflow.WorkflowTypeOnboarding), string(workflow.WorkflowTypeOffboarding),
		string(workflow.WorkflowTypeTransfer), string(workflow.WorkflowTypePromotion)) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "type", Message: "Invalid workflow type"})
	}
	if req.TotalSteps < 1 {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "totalSteps", Message: "Total steps must be at least 1"})
	}
	if len(validationErrs) > 0 {
		return workflow.WorkflowResponse{}, validationErrs
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return workflow.WorkflowResponse{}, err
	}

	startDate := time.Now()
	if !validator.IsEmpty(req.StartDate) {
		parsed, ok := validator.IsValidDate(req.StartDate)
		if !ok {
			return workflow.WorkflowResponse{}, validator.ValidationErrors{
				{Field: "startDate", Message: "Start date must be YYYY-MM-DD"},
			}
		}
		startDate = parsed
	}

	newWorkflow := workflow.Workflow{
		EmployeeID:  req.EmployeeID,
		Type:        workflow.WorkflowType(req.Type),
		Status:      workflow.WorkflowStatusPending,
		StartDate:   startDate,
		Description: req.Description,
		CurrentStep: 1,
		TotalSteps:  req.TotalSteps,
	}
	if req.Metadata != nil {
		newWorkflow.Metadata = *req.Metadata
	}

	created, err := s.workflowRepo.Create(ctx, newWorkflow)
	if err != nil {
		return workflow.WorkflowResponse{}, fmt.Errorf("failed to create workflow: %w", err)
	}
	return s.toResponse(ctx, created)
}

// UpdateWorkflow implements workflow.WorkflowService. Status is not touched
// here; status changes go through UpdateStatus.
func (s *WorkflowServiceImpl) UpdateWorkflow(ctx context.Context, id string, req workflow.UpdateWorkflowRequest) (workflow.WorkflowResponse, error) {
	w, err := s.workflowRepo.GetByID(ctx, id)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}

	if req.Type != nil {
		w.Type = workflow.WorkflowType(*req.Type)
	}
	if req.StartDate != nil {
		parsed, ok := validator.IsValidDate(*req.StartDate)
		if !ok {
			return workflow.WorkflowResponse{}, validator.ValidationErrors{
				{Field: "startDate", Message: "Start date must be YYYY-MM-DD"},
			}
		}
		w.StartDate = parsed
	}
	if req.EndDate != nil {
		parsed, ok := validator.IsValidDate(*req.EndDate)
		if !ok {
			return workflow.WorkflowResponse{}, validator.ValidationErrors{
				{Field: "endDate", Message: "End date must be YYYY-MM-DD"},
			}
		}
		w.EndDate = &parsed
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.CurrentStep != nil {
		w.CurrentStep = *req.CurrentStep
	}
	if req.TotalSteps != nil {
		w.TotalSteps = *req.TotalSteps
	}
	if req.Metadata != nil {
		w.Metadata = *req.Metadata
	}

	updated, err := s.workflowRepo.Update(ctx, w)
	if err != nil {
		return workflow.WorkflowResponse{}, fmt.Errorf("failed to update workflow: %w", err)
	}
	return s.toResponse(ctx, updated)
}

// UpdateStatus implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) UpdateStatus(ctx context.Context, id string, status string) (workflow.WorkflowResponse, error) {
	if !validator.IsOneOf(status,
		string(workflow.WorkflowStatusPending), string(workflow.WorkflowStatusApproved),
		string(workflow.WorkflowStatusRejected), string(workflow.WorkflowStatusCompleted)) {
		return workflow.WorkflowResponse{}, validator.ValidationErrors{
			{Field: "status", Message: "Invalid workflow status"},
		}
	}

	w, err := s.workflowRepo.GetByID(ctx, id)
	if err != nil {
		return workflow.WorkflowResponse{}, err
	}

	newStatus := workflow.WorkflowStatus(status)
	if w.Status != workflow.WorkflowStatusPending && newStatus == workflow.WorkflowStatusPending {
		return workflow.WorkflowResponse{}, workflow.ErrWorkflowFinalized
	}

	w.Status = newStatus
	if newStatus == workflow.WorkflowStatusCompleted {
		now := time.Now()
		w.EndDate = &now
	}

	updated, err := s.workflowRepo.Update(ctx, w)
	if err != nil {
		return workflow.WorkflowResponse{}, fmt.Errorf("failed to update workflow status: %w", err)
	}
	return s.toResponse(ctx, updated)
}

// DeleteWorkflow implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) DeleteWorkflow(ctx context.Context, id string) error {
	return s.workflowRepo.Delete(ctx, id)
}

// CreateOnboarding implements workflow.WorkflowService.
func (s *WorkflowServiceImpl) CreateOnboarding(ctx context.Context, employeeID string, employeeCode string) (workflow.Workflow, error) {
	newWorkflow := workflow.Workflow{
		EmployeeID:  employeeID,
		Type:        workflow.WorkflowTypeOnboarding,
		Status:      workflow.WorkflowStatusPending,
		StartDate:   time.Now(),
		Description: fmt.Sprintf("Onboarding workflow for %s", employeeCode),
		CurrentStep: 1,
		TotalSteps:  len(onboardingChecklist),
		Metadata:    workflow.Metadata{Checklist: onboardingChecklist},
	}

	created, err := s.workflowRepo.Create(ctx, newWorkflow)
	if err != nil {
		return workflow.Workflow{}, fmt.Errorf("failed to create onboarding workflow: %w", err)
	}
	return created, nil
}

// CreateTransfer implements workflow.WorkflowService. Department names are
// resolved once here and stored in the metadata as a historical snapshot.
func (s *WorkflowServiceImpl) CreateTransfer(ctx context.Context, employeeID string, oldDepartmentID *string, newDepartmentID string) (workflow.Workflow, error) {
	oldName := unassignedDepartment
	if oldDepartmentID != nil {
		oldDept, err := s.departmentRepo.GetByID(ctx, *oldDepartmentID)
		if err != nil {
			return workflow.Workflow{}, err
		}
		oldName = oldDept.Name
	}

	newDept, err := s.departmentRepo.GetByID(ctx, newDepartmentID)
	if err != nil {
		return workflow.Workflow{}, err
	}

	newWorkflow := workflow.Workflow{
		EmployeeID:  employeeID,
		Type:        workflow.WorkflowTypeTransfer,
		Status:      workflow.WorkflowStatusPending,
		StartDate:   time.Now(),
		Description: fmt.Sprintf("Department transfer from %s to %s", oldName, newDept.Name),
		CurrentStep: 1,
		TotalSteps:  len(transferChecklist),
		Metadata: workflow.Metadata{
			Checklist:     transferChecklist,
			OldDepartment: oldName,
			NewDepartment: newDept.Name,
		},
	}

	created, err := s.workflowRepo.Create(ctx, newWorkflow)
	if err != nil {
		return workflow.Workflow{}, fmt.Errorf("failed to create transfer workflow: %w", err)
	}
	return created, nil
}

func (s *WorkflowServiceImpl) toResponses(ctx context.Context, workflows []workflow.Workflow) ([]workflow.WorkflowResponse, error) {
	responses := make([]workflow.WorkflowResponse, 0, len(workflows))
	for _, w := range workflows {
		resp, err := s.toResponse(ctx, w)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// toResponse hydrates the workflow view. A missing employee or department is
// rendered as an absent relation, not an error.
func (s *WorkflowServiceImpl) toResponse(ctx context.Context, w workflow.Workflow) (workflow.WorkflowResponse, error) {
	resp := workflow.WorkflowResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		Type:        w.Type,
		Status:      w.Status,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Description: w.Description,
		CurrentStep: w.CurrentStep,
		TotalSteps:  w.TotalSteps,
		Metadata:    w.Metadata,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}

	emp, err := s.employeeRepo.GetByID(ctx, w.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return resp, nil
		}
		return workflow.WorkflowResponse{}, err
	}

	summary := workflow.WorkflowEmployee{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Position:     emp.Position,
	}
	if emp.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *emp.DepartmentID)
		if err == nil {
			summary.Department = &dept.Name
		} else if !errors.Is(err, department.ErrDepartmentNotFound) {
			return workflow.WorkflowResponse{}, err
		}
	}
	resp.Employee = &summary

	return resp, nil
}
