package routes

import (
	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/handler"
	"wynngrid/internal/delivery/http/middleware"
)

type Registry struct {
	Health     *handler.HealthHandler
	Auth       *handler.AuthHandler
	Onboarding *handler.OnboardingHandler
	Project    *handler.ProjectHandler
	Contact    *handler.ContactHandler
	Notify     *handler.NotifyHandler
	Listing    *handler.ListingHandler

	AuthMw *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.Health.RegisterRoutes(app)

	api := app.Group("/api")
	r.Auth.RegisterRoutes(api.Group("/auth"))
	r.Contact.RegisterRoutes(api.Group("/contact"))
	r.Notify.RegisterRoutes(api.Group("/notifyuser"))
	r.Listing.RegisterRoutes(api.Group("/pro-users"))

	protected := r.AuthMw.Middleware()
	r.Onboarding.RegisterRoutes(api.Group("/onboarding", protected))
	r.Project.RegisterRoutes(api.Group("/projects", protected), r.AuthMw.RequirePro())
}
