package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := "ok"
	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			status = "degraded"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"status": status})
}
