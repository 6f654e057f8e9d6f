package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/legworkmedia/rnotes/api/internal/dto"
	middleware "github.com/legworkmedia/rnotes/api/internal/middleware"
	"github.com/legworkmedia/rnotes/api/internal/service"
)

// AuthHandler exchanges operator credentials for an extension session.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login requests.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return Error(c, http.StatusBadRequest, "email and password are required")
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return Error(c, http.StatusInternalServerError, "unable to authenticate")
	}

	log.Printf("request_id=%s event=operator_login role=%s", middleware.RequestIDFromContext(c), session.Role)
	return Success(c, http.StatusOK, "login successful", dto.LoginResponse{
		AccessToken: session.Token,
		TokenType:   "Bearer",
		Role:        session.Role,
		ExpiresAt:   session.ExpiresAt,
	})
}
