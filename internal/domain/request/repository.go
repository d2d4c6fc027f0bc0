package request

import "context"

type RequestRepository interface {
	GetByID(ctx context.Context, id string) (Request, error)
	List(ctx context.Context) ([]Request, error)
	GetActiveByEmployeeID(ctx context.Context, employeeID string) ([]Request, error)
	Create(ctx context.Context, newRequest Request) (Request, error)
	Update(ctx context.Context, updated Request) (Request, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
	Delete(ctx context.Context, id string) error
}

type RequestItemRepository interface {
	GetByRequestID(ctx context.Context, requestID string) ([]RequestItem, error)
	Create(ctx context.Context, newItem RequestItem) (RequestItem, error)
	DeleteByRequestID(ctx context.Context, requestID string) error
}
