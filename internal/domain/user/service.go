package user

import "context"

// AuthService defines authentication logic for back-office users.
type AuthService interface {
	// Login verifies the credentials and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
