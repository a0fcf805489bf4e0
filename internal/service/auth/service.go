package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/punchsheet/punchsheet-backend-go/internal/domain/auth"
	"github.com/punchsheet/punchsheet-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	jwt.Service
	reviewerUsername     string
	reviewerPasswordHash string
}

func NewAuthService(jwtService jwt.Service, reviewerUsername, reviewerPasswordHash string) auth.AuthService {
	return &AuthServiceImpl{
		Service:              jwtService,
		reviewerUsername:     reviewerUsername,
		reviewerPasswordHash: reviewerPasswordHash,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(a.reviewerUsername)) != 1 {
		// Run the comparison anyway so a wrong username costs as much as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(a.reviewerPasswordHash), []byte(req.Password))
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.reviewerPasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	var tokenResponse auth.TokenResponse
	var err error
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.GenerateAccessToken(req.Username)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return tokenResponse, nil
}
