package request

import "context"

// RequestService defines business logic for request operations
type RequestService interface {
	GetRequest(ctx context.Context, id string) (RequestResponse, error)
	ListRequests(ctx context.Context) ([]RequestResponse, error)

	// GetByEmployeeID returns the employee's active requests, newest first
	GetByEmployeeID(ctx context.Context, employeeID string) ([]RequestResponse, error)

	CreateRequest(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// UpdateRequest merges non-status fields; when req.Items is set, the
	// existing items are replaced by the new list in one transaction
	UpdateRequest(ctx context.Context, id string, req UpdateRequestRequest) (RequestResponse, error)

	ApproveRequest(ctx context.Context, id string) (RequestResponse, error)
	RejectRequest(ctx context.Context, id string) (RequestResponse, error)

	DeleteRequest(ctx context.Context, id string) error
}
