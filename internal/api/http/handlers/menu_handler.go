package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/api/dto"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/cache"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
	"github.com/spec-kit/coffeehouse-cms/internal/repository"
	"github.com/spec-kit/coffeehouse-cms/internal/service"
	apperrors "github.com/spec-kit/coffeehouse-cms/pkg/util"
)

// MenuHandler exposes menu endpoints: a cached public listing plus
// dashboard CRUD.
type MenuHandler struct {
	content *service.ContentService
	pages   *cache.PageCache
}

// NewMenuHandler constructs handler.
func NewMenuHandler(content *service.ContentService, pages *cache.PageCache) *MenuHandler {
	return &MenuHandler{content: content, pages: pages}
}

func menuItemResponse(item *domain.MenuItem) dto.MenuItemResponse {
	return dto.MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		Image:       item.Image,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func mapContentError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return apperrors.NewNotFound("record", nil)
	case errors.Is(err, service.ErrMissingContentFields),
		errors.Is(err, service.ErrInvalidCategory):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	default:
		return apperrors.MapError(err)
	}
}

// sendCachedJSON serves route payloads through the page cache: a hit is
// replayed verbatim, a miss renders, stores and serves.
func sendCachedJSON(c *fiber.Ctx, pages *cache.PageCache, route string, render func() (any, error)) error {
	ctx := c.UserContext()
	if payload, ok := pages.Get(ctx, route); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		c.Set("X-Cache", "HIT")
		return c.Send(payload)
	}

	body, err := render()
	if err != nil {
		return err
	}
	payload, err := json.Marshal(fiber.Map{"data": body})
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	pages.Set(ctx, route, payload)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set("X-Cache", "MISS")
	return c.Send(payload)
}

// PublicList handles GET /api/menu: available items only, cached.
func (h *MenuHandler) PublicList(c *fiber.Ctx) error {
	return sendCachedJSON(c, h.pages, "/api/menu", func() (any, error) {
		items, err := h.content.PublicMenu(c.UserContext())
		if err != nil {
			return nil, mapContentError(err)
		}
		resp := make([]dto.MenuItemResponse, 0, len(items))
		for i := range items {
			resp = append(resp, menuItemResponse(&items[i]))
		}
		return resp, nil
	})
}

// List handles GET /api/admin/menu.
func (h *MenuHandler) List(c *fiber.Ctx) error {
	items, err := h.content.ListMenu(c.UserContext())
	if err != nil {
		return mapContentError(err)
	}
	resp := make([]dto.MenuItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, menuItemResponse(&items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /api/admin/menu/:id.
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	item, err := h.content.GetMenuItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": menuItemResponse(item)})
}

// Create handles POST /api/admin/menu.
func (h *MenuHandler) Create(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item := &domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.MenuCategory(req.Category),
		Image:       req.Image,
		Available:   true,
	}
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.content.CreateMenuItem(c.UserContext(), caller, item); err != nil {
		return mapContentError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": menuItemResponse(item)})
}

// Update handles PUT /api/admin/menu/:id.
func (h *MenuHandler) Update(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	item, err := h.content.GetMenuItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return mapContentError(err)
	}

	var req dto.MenuItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	item.Name = req.Name
	item.Description = req.Description
	item.Price = req.Price
	item.Category = domain.MenuCategory(req.Category)
	item.Image = req.Image
	if req.Available != nil {
		item.Available = *req.Available
	}

	if err := h.content.UpdateMenuItem(c.UserContext(), caller, item); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": menuItemResponse(item)})
}

// Delete handles DELETE /api/admin/menu/:id.
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	caller, _ := auth.IdentityFromContext(c)
	if err := h.content.DeleteMenuItem(c.UserContext(), caller, c.Params("id")); err != nil {
		return mapContentError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "deleted"}})
}
