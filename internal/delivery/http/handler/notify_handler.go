package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/domain/contact"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/usecase"
)

type NotifyHandler struct {
	uc usecase.NotifyUsecase
}

type notifyRequest struct {
	Email string `json:"email"`
}

func NewNotifyHandler(uc usecase.NotifyUsecase) *NotifyHandler {
	return &NotifyHandler{uc: uc}
}

func (h *NotifyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/notify-me", h.Subscribe)
}

func (h *NotifyHandler) Subscribe(c fiber.Ctx) error {
	var req notifyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	sub, err := h.uc.Subscribe(c.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidEmail):
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		case errors.Is(err, contact.ErrAlreadySubscribed):
			return middleware.NewAppError(fiber.StatusConflict, "Email already subscribed", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, "Subscription recorded", dto.FromSubscriber(sub))
}
