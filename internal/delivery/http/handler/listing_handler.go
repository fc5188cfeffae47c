package handler

import (
	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/usecase"
)

type ListingHandler struct {
	uc usecase.ListingUsecase
}

func NewListingHandler(uc usecase.ListingUsecase) *ListingHandler {
	return &ListingHandler{uc: uc}
}

func (h *ListingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.ListProUsers)
}

func (h *ListingHandler) ListProUsers(c fiber.Ctx) error {
	rows, err := h.uc.ListProUsers(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromProUserRows(rows))
}
