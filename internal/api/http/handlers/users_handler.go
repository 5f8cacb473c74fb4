package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/api/dto"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
	"github.com/spec-kit/coffeehouse-cms/internal/service"
	apperrors "github.com/spec-kit/coffeehouse-cms/pkg/util"
)

// UsersHandler exposes the admin user directory.
type UsersHandler struct {
	directory *service.DirectoryService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(directory *service.DirectoryService) *UsersHandler {
	return &UsersHandler{directory: directory}
}

func userResponse(user *domain.AdminUser) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func mapDirectoryError(err error) error {
	switch {
	case errors.Is(err, auth.ErrForbidden):
		return apperrors.NewForbidden("Unauthorized")
	case errors.Is(err, repository.ErrDuplicateUsername):
		return apperrors.NewConflict("Username already exists", nil)
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound("user", nil)
	case errors.Is(err, service.ErrLastAdminProtected):
		return fiber.NewError(http.StatusBadRequest, "Cannot delete the last admin user")
	case errors.Is(err, service.ErrSelfDeleteForbidden):
		return fiber.NewError(http.StatusBadRequest, "You cannot delete your own account")
	case errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrMissingUserFields),
		errors.Is(err, service.ErrMissingUsernameField):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return apperrors.MapError(err)
	}
}

// List handles GET /api/admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	users, err := h.directory.List(c.UserContext(), caller)
	if err != nil {
		return mapDirectoryError(err)
	}
	resp := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, userResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/admin/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	user, err := h.directory.Get(c.UserContext(), caller, c.Params("id"))
	if err != nil {
		return mapDirectoryError(err)
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Create handles POST /api/admin/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.directory.Create(c.UserContext(), caller, req.Username, req.Password, domain.Role(req.Role))
	if err != nil {
		return mapDirectoryError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userResponse(user)})
}

// Update handles PUT /api/admin/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.directory.Update(c.UserContext(), caller, c.Params("id"), req.Username, domain.Role(req.Role), req.Password)
	if err != nil {
		return mapDirectoryError(err)
	}
	return c.JSON(fiber.Map{"data": userResponse(user)})
}

// Delete handles DELETE /api/admin/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	if err := h.directory.Delete(c.UserContext(), caller, c.Params("id")); err != nil {
		return mapDirectoryError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
