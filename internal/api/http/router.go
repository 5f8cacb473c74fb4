package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/coffeehouse-cms/internal/api/http/handlers"
	"github.com/spec-kit/coffeehouse-cms/internal/auth"
	"github.com/spec-kit/coffeehouse-cms/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Seed   *handlers.SeedHandler
	Users  *handlers.UsersHandler
	Menu   *handlers.MenuHandler
	Offers *handlers.OffersHandler
	Staff  *handlers.StaffHandler
	Pages  *handlers.PagesHandler
	Gate   *auth.Gate
}

// RegisterRoutes wires HTTP routes. Two auth tiers protect the admin
// surface: the edge filter checks cookie presence for /admin pages, and
// the gate middlewares do full verification per route group.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	// Public storefront API.
	api := app.Group("/api")
	api.Get("/menu", cfg.Menu.PublicList)
	api.Get("/offers", cfg.Offers.PublicList)
	api.Get("/staff", cfg.Staff.PublicList)

	api.Post("/auth/login", cfg.Auth.Login)
	api.Post("/auth/logout", cfg.Auth.Logout)
	api.Post("/seed", cfg.Seed.Seed)

	// Dashboard API: any authenticated role for content, admin for the
	// user directory.
	admin := api.Group("/admin", auth.RequireAPI(cfg.Gate, ""))
	admin.Get("/menu", cfg.Menu.List)
	admin.Post("/menu", cfg.Menu.Create)
	admin.Get("/menu/:id", cfg.Menu.Get)
	admin.Put("/menu/:id", cfg.Menu.Update)
	admin.Delete("/menu/:id", cfg.Menu.Delete)

	admin.Get("/offers", cfg.Offers.List)
	admin.Post("/offers", cfg.Offers.Create)
	admin.Get("/offers/:id", cfg.Offers.Get)
	admin.Put("/offers/:id", cfg.Offers.Update)
	admin.Delete("/offers/:id", cfg.Offers.Delete)

	admin.Get("/staff", cfg.Staff.List)
	admin.Post("/staff", cfg.Staff.Create)
	admin.Get("/staff/:id", cfg.Staff.Get)
	admin.Put("/staff/:id", cfg.Staff.Update)
	admin.Delete("/staff/:id", cfg.Staff.Delete)

	users := admin.Group("/users", auth.RequireAPI(cfg.Gate, domain.RoleAdmin))
	users.Get("/", cfg.Users.List)
	users.Post("/", cfg.Users.Create)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)

	// Admin pages. The edge filter redirects cookie-less requests before
	// any page handler runs; RequirePage then does full verification with
	// a live directory lookup.
	if cfg.Pages != nil {
		app.Use(auth.EdgeFilter())
		app.Get(auth.LoginPath, cfg.Pages.Login)
		app.Get("/admin", auth.RequirePage(cfg.Gate, ""), cfg.Pages.Dashboard)
		app.Get("/admin/menu", auth.RequirePage(cfg.Gate, ""), cfg.Pages.Section("menu"))
		app.Get("/admin/offers", auth.RequirePage(cfg.Gate, ""), cfg.Pages.Section("offers"))
		app.Get("/admin/staff", auth.RequirePage(cfg.Gate, ""), cfg.Pages.Section("staff"))
		app.Get("/admin/users", auth.RequirePage(cfg.Gate, domain.RoleAdmin), cfg.Pages.Section("users"))
	}
}
