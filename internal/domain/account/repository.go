package account

import "context"

type AccountRepository interface {
	GetByID(ctx context.Context, id string) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, newAccount Account) (Account, error)
}
