package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/service"
	apperrors "github.com/spec-kit/coffeehouse-cms/pkg/util"
)

// SeedHandler exposes the first-run bootstrap endpoint.
type SeedHandler struct {
	seeder *service.Seeder
}

// NewSeedHandler constructs handler.
func NewSeedHandler(seeder *service.Seeder) *SeedHandler {
	return &SeedHandler{seeder: seeder}
}

// Seed handles POST /api/seed. Idempotent.
func (h *SeedHandler) Seed(c *fiber.Ctx) error {
	created, err := h.seeder.SeedAdminUser(c.UserContext())
	if err != nil {
		return apperrors.MapError(err)
	}
	message := "Admin user already exists"
	if created {
		message = "Default admin user created successfully"
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"created": created, "message": message}})
}
