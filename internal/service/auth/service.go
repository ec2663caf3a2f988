package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/lawding/leavecalc-api/internal/config"
	"github.com/lawding/leavecalc-api/internal/domain/auth"
	"github.com/lawding/leavecalc-api/internal/pkg/jwt"
)

type Service interface {
	Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error)
}

// AuthServiceImpl authenticates the single operator account configured via
// the environment. Feedback review is the only admin surface, so there is no
// user table behind this.
type AuthServiceImpl struct {
	admin      config.AdminConfig
	jwtService jwt.Service
}

func NewAuthService(admin config.AdminConfig, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

// Login implements Service.
func (s *AuthServiceImpl) Login(_ context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.Email)) == 1
	// Compare the hash even on an email mismatch so both failure paths take
	// comparable time.
	hashErr := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(req.Password))
	if !emailMatch || hashErr != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(s.admin.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
	}, nil
}
