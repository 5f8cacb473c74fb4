package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/api/dto"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/cache"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/service"
)

// StaffHandler exposes staff profile endpoints.
type StaffHandler struct {
	content *service.ContentService
	pages   *cache.PageCache
}

// NewStaffHandler constructs handler.
func NewStaffHandler(content *service.ContentService, pages *cache.PageCache) *StaffHandler {
	return &StaffHandler{content: content, pages: pages}
}

func staffProfileResponse(profile *domain.StaffProfile) dto.StaffProfileResponse {
	return dto.StaffProfileResponse{
		ID:        profile.ID,
		Name:      profile.Name,
		Role:      profile.Role,
		Bio:       profile.Bio,
		Image:     profile.Image,
		Active:    profile.Active,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

// PublicList handles GET /api/staff: active profiles only, cached.
func (h *StaffHandler) PublicList(c *fiber.Ctx) error {
	return sendCachedJSON(c, h.pages, "/api/staff", func() (any, error) {
		profiles, err := h.content.PublicStaff(c.UserContext())
		if err != nil {
			return nil, mapContentError(err)
		}
		resp := make([]dto.StaffProfileResponse, 0, len(profiles))
		for i := range profiles {
			resp = append(resp, staffProfileResponse(&profiles[i]))
		}
		return resp, nil
	})
}

// List handles GET /api/admin/staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	profiles, err := h.content.ListStaff(c.UserContext())
	if err != nil {
		return mapContentError(err)
	}
	resp := make([]dto.StaffProfileResponse, 0, len(profiles))
	for i := range profiles {
		resp = append(resp, staffProfileResponse(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/admin/staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	profile, err := h.content.GetStaffProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": staffProfileResponse(profile)})
}

// Create handles POST /api/admin/staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	var req dto.StaffProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile := &domain.StaffProfile{
		Name:   req.Name,
		Role:   req.Role,
		Bio:    req.Bio,
		Image:  req.Image,
		Active: true,
	}
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.content.CreateStaffProfile(c.UserContext(), caller, profile); err != nil {
		return mapContentError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffProfileResponse(profile)})
}

// Update handles PUT /api/admin/staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	profile, err := h.content.GetStaffProfile(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}

	var req dto.StaffProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile.Name = req.Name
	profile.Role = req.Role
	profile.Bio = req.Bio
	profile.Image = req.Image
	if req.Active != nil {
		profile.Active = *req.Active
	}

	if err := h.content.UpdateStaffProfile(c.UserContext(), caller, profile); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": staffProfileResponse(profile)})
}

// Delete handles DELETE /api/admin/staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	if err := h.content.DeleteStaffProfile(c.UserContext(), caller, c.Params("id")); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
