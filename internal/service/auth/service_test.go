package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/lachong-labs/payroll-backend-go/internal/domain/user"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/jwt"
	"github.com/lachong-labs/payroll-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService(t *testing.T) user.AuthService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pw"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]user.User{
		"payroll.admin@example.com": {
			ID:           "usr-1",
			Email:        "payroll.admin@example.com",
			PasswordHash: string(hash),
			FullName:     "Payroll Admin",
		},
	}}
	return NewAuthService(repo, jwt.NewJWTService("test-secret-key-for-jwt", "1h"))
}

func TestLogin_Success(t *testing.T) {
	svc := newTestAuthService(t)

	resp, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "payroll.admin@example.com",
		Password: "s3cret-pw",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, "usr-1", resp.UserID)
	assert.Equal(t, "Payroll Admin", resp.FullName)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "payroll.admin@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pw",
	})
	// Unknown users get the same error as a bad password
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLogin_InvalidRequest(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.True(t, errors.As(err, &validationErrs))
	assert.Contains(t, validationErrs.ToMap(), "email")
	assert.Contains(t, validationErrs.ToMap(), "password")
}
