package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/workflow"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workflowRepositoryImpl struct {
	db *database.DB
}

func NewWorkflowRepository(db *database.DB) workflow.WorkflowRepository {
	return &workflowRepositoryImpl{db: db}
}

const workflowColumns = `id, employee_id, type, status, start_date, end_date, description, current_step, total_steps, metadata, created_at, updated_at`

func scanWorkflow(row pgx.Row) (workflow.Workflow, error) {
	var w workflow.Workflow
	err := row.Scan(
		&w.ID, &w.EmployeeID, &w.Type, &w.Status, &w.StartDate, &w.EndDate,
		&w.Description, &w.CurrentStep, &w.TotalSteps, &w.Metadata,
		&w.CreatedAt, &w.UpdatedAt,
	)
	return w, err
}

// GetByID implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) GetByID(ctx context.Context, id string) (workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workflowColumns + ` FROM workflows WHERE id = $1`
	w, err := scanWorkflow(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workflow.Workflow{}, workflow.ErrWorkflowNotFound
		}
		return workflow.Workflow{}, fmt.Errorf("failed to get workflow by id: %w", err)
	}
	return w, nil
}

// List implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) List(ctx context.Context) ([]workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workflowColumns + ` FROM workflows ORDER BY created_at DESC`
	return r.queryWorkflows(ctx, q, query)
}

// GetByEmployeeID implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workflowColumns + `
		FROM workflows
		WHERE employee_id = $1
		ORDER BY created_at DESC
	`
	return r.queryWorkflows(ctx, q, query, employeeID)
}

func (r *workflowRepositoryImpl) queryWorkflows(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]workflow.Workflow, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workflows []workflow.Workflow
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, w)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workflows, nil
}

// Create implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) Create(ctx context.Context, newWorkflow workflow.Workflow) (workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workflows (id, employee_id, type, status, start_date, description, current_step, total_steps, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + workflowColumns

	currentStep := newWorkflow.CurrentStep
	if currentStep < 1 {
		currentStep = 1
	}

	created, err := scanWorkflow(q.QueryRow(ctx, query,
		uuid.NewString(), newWorkflow.EmployeeID, newWorkflow.Type, newWorkflow.Status,
		newWorkflow.StartDate, newWorkflow.Description, currentStep,
		newWorkflow.TotalSteps, newWorkflow.Metadata,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return workflow.Workflow{}, employee.ErrEmployeeNotFound
		}
		return workflow.Workflow{}, fmt.Errorf("failed to create workflow: %w", err)
	}
	return created, nil
}

// Update implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) Update(ctx context.Context, updated workflow.Workflow) (workflow.Workflow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workflows
		SET type = $1, status = $2, start_date = $3, end_date = $4, description = $5,
			current_step = $6, total_steps = $7, metadata = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING ` + workflowColumns

	w, err := scanWorkflow(q.QueryRow(ctx, query,
		updated.Type, updated.Status, updated.StartDate, updated.EndDate, updated.Description,
		updated.CurrentStep, updated.TotalSteps, updated.Metadata, updated.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workflow.Workflow{}, workflow.ErrWorkflowNotFound
		}
		return workflow.Workflow{}, fmt.Errorf("failed to update workflow: %w", err)
	}
	return w, nil
}

// Delete implements workflow.WorkflowRepository.
func (r *workflowRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM workflows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workflow: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return workflow.ErrWorkflowNotFound
	}
	return nil
}
