package user

import "context"

// UserRepository defines data access methods for back-office users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
}
