package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/legworkmedia/rnotes/api/internal/auth"
	"github.com/legworkmedia/rnotes/api/internal/config"
)

// ErrInvalidCredentials is returned for any failed login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService validates the configured operator credentials and issues tokens.
type AuthService struct {
	operator config.OperatorConfig
	jwt      *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(operator config.OperatorConfig, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{operator: operator, jwt: jwtManager}
}

// Login validates credentials and returns a signed session.
func (s *AuthService) Login(_ context.Context, email, password string) (auth.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return auth.Session{}, errors.New("email and password must not be empty")
	}
	if s.operator.Email == "" || s.operator.PasswordHash == "" {
		return auth.Session{}, ErrInvalidCredentials
	}

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(s.operator.Email)) == 1
	if err := bcrypt.CompareHashAndPassword([]byte(s.operator.PasswordHash), []byte(password)); err != nil || !emailMatch {
		return auth.Session{}, ErrInvalidCredentials
	}

	return s.jwt.IssueSession(s.operator.Email, s.operator.Role)
}
