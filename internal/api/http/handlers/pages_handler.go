package handlers

import (
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	apperrors "github.com/spec-kit/coffeehouse-cms/pkg/util"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// PagesHandler renders the admin page shells. Auth for these routes runs in
// the page middleware; by the time a handler executes the caller identity
// is already resolved (except for the login page).
type PagesHandler struct {
	templates *template.Template
}

// NewPagesHandler parses the embedded templates.
func NewPagesHandler() (*PagesHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}
	return &PagesHandler{templates: tmpl}, nil
}

type dashboardData struct {
	Section  string
	Username string
	Role     string
}

func (h *PagesHandler) render(c *fiber.Ctx, name string, data any) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	if err := h.templates.ExecuteTemplate(c.Response().BodyWriter(), name, data); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// Login handles GET /admin/login.
func (h *PagesHandler) Login(c *fiber.Ctx) error {
	return h.render(c, "login.gohtml", nil)
}

// Dashboard handles GET /admin.
func (h *PagesHandler) Dashboard(c *fiber.Ctx) error {
	return h.section(c, "overview")
}

// Section returns a handler rendering the dashboard shell for one section.
func (h *PagesHandler) Section(name string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return h.section(c, name)
	}
}

func (h *PagesHandler) section(c *fiber.Ctx, name string) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	return h.render(c, "dashboard.gohtml", dashboardData{
		Section:  name,
		Username: identity.Username,
		Role:     string(identity.Role),
	})
}
