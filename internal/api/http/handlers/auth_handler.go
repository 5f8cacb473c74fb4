package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/api/dto"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/service"
	apperrors "github.com/spec-kit/coffeehouse-cms/pkg/util"
)

// User-facing login messages. Deliberately indistinct about whether the
// username or the password was wrong.
const (
	msgMissingCredentials = "Username and password are required"
	msgInvalidCredentials = "Invalid username or password"
)

// AuthHandler exposes login/logout endpoints.
type AuthHandler struct {
	auth         *service.AuthService
	secureCookie bool
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authService, secureCookie: secureCookie}
}

// Login handles POST /api/auth/login. Success binds the session token to
// the cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, token, expiresAt, err := h.auth.Login(c.UserContext(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return fiber.NewError(http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, service.ErrInvalidCredentials):
		return fiber.NewError(http.StatusUnauthorized, msgInvalidCredentials)
	case err != nil:
		return apperrors.MapError(err)
	}

	auth.SetTokenCookie(c, token, h.secureCookie)
	return c.JSON(fiber.Map{
		"data": dto.SessionResponse{
			Username:  user.Username,
			Role:      string(user.Role),
			ExpiresAt: expiresAt,
		},
	})
}

// Logout handles POST /api/auth/logout. Only the client-held copy of the
// token is removed; there is no server-side revocation.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearTokenCookie(c, h.secureCookie)
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "logged_out"}})
}
