package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/auth"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/jwt"
)

const (
	testSecret    = "test-secret-key-for-jwt"
	testAccessExp = "1h"
)

func newTestService(t *testing.T, username, password string) auth.AuthService {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp)
	return NewAuthService(jwtService, username, string(hash))
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t, "reviewer", "correct-horse")

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "reviewer",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t, "reviewer", "correct-horse")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "reviewer",
		Password: "battery-staple",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongUsername(t *testing.T) {
	svc := newTestService(t, "reviewer", "correct-horse")

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
