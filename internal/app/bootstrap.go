package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/config"
	"wynngrid/internal/delivery/http/handler"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/delivery/http/routes"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: 32 * 1024 * 1024,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(c.DB),
		Auth:       handler.NewAuthHandler(c.AuthUC),
		Onboarding: handler.NewOnboardingHandler(c.OnboardingUC),
		Project:    handler.NewProjectHandler(c.ProjectUC),
		Contact:    handler.NewContactHandler(c.ContactUC),
		Notify:     handler.NewNotifyHandler(c.NotifyUC),
		Listing:    handler.NewListingHandler(c.ListingUC),
		AuthMw:     middleware.NewAuthMiddleware(c.JWT, c.Users),
	}
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
