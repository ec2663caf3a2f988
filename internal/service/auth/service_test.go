package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lawding/leavecalc-api/internal/config"
	"github.com/lawding/leavecalc-api/internal/domain/auth"
	"github.com/lawding/leavecalc-api/internal/pkg/jwt"
)

func newTestService(t *testing.T, password string) *AuthServiceImpl {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := config.AdminConfig{
		Email:        "admin@lawding.io",
		PasswordHash: string(hash),
	}
	jwtService := jwt.NewJWTService("test-secret-key", "1h")
	return NewAuthService(admin, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, "correct horse battery staple")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@lawding.io",
		Password: "correct horse battery staple",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "correct horse battery staple")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@lawding.io",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t, "correct horse battery staple")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "someone@else.io",
		Password: "correct horse battery staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InvalidRequest(t *testing.T) {
	svc := newTestService(t, "correct horse battery staple")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "not-an-email",
		Password: "",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_TokenIsValid(t *testing.T) {
	svc := newTestService(t, "pw")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "admin@lawding.io",
		Password: "pw",
	})
	require.NoError(t, err)

	email, err := svc.jwtService.ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@lawding.io", email)
}
