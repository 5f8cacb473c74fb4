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

// OffersHandler exposes offer endpoints.
type OffersHandler struct {
	content *service.ContentService
	pages   *cache.PageCache
}

// NewOffersHandler constructs handler.
func NewOffersHandler(content *service.ContentService, pages *cache.PageCache) *OffersHandler {
	return &OffersHandler{content: content, pages: pages}
}

func offerResponse(offer *domain.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		ValidUntil:  offer.ValidUntil,
		Image:       offer.Image,
		Badge:       offer.Badge,
		Active:      offer.Active,
		CreatedAt:   offer.CreatedAt,
		UpdatedAt:   offer.UpdatedAt,
	}
}

// PublicList handles GET /api/offers: active offers only, cached.
func (h *OffersHandler) PublicList(c *fiber.Ctx) error {
	return sendCachedJSON(c, h.pages, "/api/offers", func() (any, error) {
		offers, err := h.content.PublicOffers(c.UserContext())
		if err != nil {
			return nil, mapContentError(err)
		}
		resp := make([]dto.OfferResponse, 0, len(offers))
		for i := range offers {
			resp = append(resp, offerResponse(&offers[i]))
		}
		return resp, nil
	})
}

// List handles GET /api/admin/offers.
func (h *OffersHandler) List(c *fiber.Ctx) error {
	offers, err := h.content.ListOffers(c.UserContext())
	if err != nil {
		return mapContentError(err)
	}
	resp := make([]dto.OfferResponse, 0, len(offers))
	for i := range offers {
		resp = append(resp, offerResponse(&offers[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/admin/offers/:id.
func (h *OffersHandler) Get(c *fiber.Ctx) error {
	offer, err := h.content.GetOffer(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": offerResponse(offer)})
}

// Create handles POST /api/admin/offers.
func (h *OffersHandler) Create(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	offer := &domain.Offer{
		Title:       req.Title,
		Description: req.Description,
		ValidUntil:  req.ValidUntil,
		Image:       req.Image,
		Badge:       req.Badge,
		Active:      true,
	}
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if err := h.content.CreateOffer(c.UserContext(), caller, offer); err != nil {
		return mapContentError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": offerResponse(offer)})
}

// Update handles PUT /api/admin/offers/:id.
func (h *OffersHandler) Update(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	offer, err := h.content.GetOffer(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}

	var req dto.OfferRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	offer.Title = req.Title
	offer.Description = req.Description
	offer.ValidUntil = req.ValidUntil
	offer.Image = req.Image
	offer.Badge = req.Badge
	if req.Active != nil {
		offer.Active = *req.Active
	}

	if err := h.content.UpdateOffer(c.UserContext(), caller, offer); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": offerResponse(offer)})
}

// Delete handles DELETE /api/admin/offers/:id.
func (h *OffersHandler) Delete(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	if err := h.content.DeleteOffer(c.UserContext(), caller, c.Params("id")); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
