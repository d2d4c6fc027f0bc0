package postgresql

import (
	"context"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/request"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type requestItemRepositoryImpl struct {
	db *database.DB
}

func NewRequestItemRepository(db *database.DB) request.RequestItemRepository {
	return &requestItemRepositoryImpl{db: db}
}

// GetByRequestID implements request.RequestItemRepository.
func (r *requestItemRepositoryImpl) GetByRequestID(ctx context.Context, requestID string) ([]request.RequestItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, description, quantity, request_id
		FROM request_items
		WHERE request_id = $1
		ORDER BY id
	`
	rows, err := q.Query(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []request.RequestItem
	for rows.Next() {
		var item request.RequestItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Quantity, &item.RequestID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Create implements request.RequestItemRepository.
func (r *requestItemRepositoryImpl) Create(ctx context.Context, newItem request.RequestItem) (request.RequestItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO request_items (id, description, quantity, request_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, description, quantity, request_id
	`

	var created request.RequestItem
	err := q.QueryRow(ctx, query,
		uuid.NewString(), newItem.Description, newItem.Quantity, newItem.RequestID,
	).Scan(&created.ID, &created.Description, &created.Quantity, &created.RequestID)
	if err != nil {
		return request.RequestItem{}, fmt.Errorf("failed to create request item: %w", err)
	}
	return created, nil
}

// DeleteByRequestID implements request.RequestItemRepository.
func (r *requestItemRepositoryImpl) DeleteByRequestID(ctx context.Context, requestID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM request_items WHERE request_id = $1`, requestID); err != nil {
		return fmt.Errorf("failed to delete request items: %w", err)
	}
	return nil
}
