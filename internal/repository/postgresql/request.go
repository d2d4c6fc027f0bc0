package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/request"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

const requestColumns = `id, type, status, description, employee_id, is_active, created_at, updated_at`

func scanRequest(row pgx.Row) (request.Request, error) {
	var req request.Request
	err := row.Scan(
		&req.ID, &req.Type, &req.Status, &req.Description,
		&req.EmployeeID, &req.IsActive, &req.CreatedAt, &req.UpdatedAt,
	)
	return req, err
}

// GetByID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests WHERE id = $1`
	req, err := scanRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to get request by id: %w", err)
	}
	return req, nil
}

// List implements request.RequestRepository.
func (r *requestRepositoryImpl) List(ctx context.Context) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + ` FROM requests ORDER BY created_at DESC`
	return r.queryRequests(ctx, q, query)
}

// GetActiveByEmployeeID implements request.RequestRepository.
func (r *requestRepositoryImpl) GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + requestColumns + `
		FROM requests
		WHERE employee_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC
	`
	return r.queryRequests(ctx, q, query, employeeID)
}

func (r *requestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]request.Request, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// Create implements request.RequestRepository.
func (r *requestRepositoryImpl) Create(ctx context.Context, newRequest request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO requests (id, type, status, description, employee_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + requestColumns

	created, err := scanRequest(q.QueryRow(ctx, query,
		uuid.NewString(), newRequest.Type, newRequest.Status,
		newRequest.Description, newRequest.EmployeeID, newRequest.IsActive,
	))
	if err != nil {
		if isForeignKeyViolation(err) {
			return request.Request{}, employee.ErrEmployeeNotFound
		}
		return request.Request{}, fmt.Errorf("failed to create request: %w", err)
	}
	return created, nil
}

// Update implements request.RequestRepository.
func (r *requestRepositoryImpl) Update(ctx context.Context, updated request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET type = $1, description = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + requestColumns

	req, err := scanRequest(q.QueryRow(ctx, query,
		updated.Type, updated.Description, updated.IsActive, updated.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, fmt.Errorf("failed to update request: %w", err)
	}
	return req, nil
}

// UpdateStatus implements request.RequestRepository.
func (r *requestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status request.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, status, id).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return nil
}

// Delete implements request.RequestRepository.
func (r *requestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}
