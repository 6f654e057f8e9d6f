package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/legworkmedia/rnotes/api/internal/auth"
	"github.com/legworkmedia/rnotes/api/internal/config"
)

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("super-secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected bcrypt error: %v", err)
	}
	operator := config.OperatorConfig{Email: "coord@example.com", PasswordHash: string(hashed), Role: "coordinator"}

	tests := map[string]struct {
		operator    config.OperatorConfig
		email       string
		password    string
		expectError error
	}{
		"empty credentials": {
			operator:    operator,
			expectError: errors.New("email and password must not be empty"),
		},
		"operator not configured": {
			email:       "coord@example.com",
			password:    "super-secret",
			expectError: ErrInvalidCredentials,
		},
		"unknown email": {
			operator:    operator,
			email:       "john@example.com",
			password:    "super-secret",
			expectError: ErrInvalidCredentials,
		},
		"password mismatch": {
			operator:    operator,
			email:       "coord@example.com",
			password:    "wrong",
			expectError: ErrInvalidCredentials,
		},
		"success with mixed case email": {
			operator: operator,
			email:    " Coord@Example.com ",
			password: "super-secret",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			jwtManager := auth.NewJWTManager("test-secret", 0)
			service := NewAuthService(tt.operator, jwtManager)

			session, err := service.Login(context.Background(), tt.email, tt.password)
			if tt.expectError != nil {
				if err == nil || err.Error() != tt.expectError.Error() {
					t.Fatalf("expected error %q, got %v", tt.expectError, err)
				}
				if session.Token != "" {
					t.Fatalf("expected empty token on error, got %q", session.Token)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			claims, err := jwtManager.ParseToken(session.Token)
			if err != nil {
				t.Fatalf("issued token does not parse: %v", err)
			}
			if claims.Subject != "coord@example.com" || claims.Role != "coordinator" {
				t.Fatalf("unexpected claims: %+v", claims)
			}
		})
	}
}
