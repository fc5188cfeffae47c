package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/usecase"
)

type ContactHandler struct {
	uc usecase.ContactUsecase
}

type contactRequest struct {
	Purpose         string `json:"purpose"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	PhoneNumber     string `json:"phoneNumber"`
	Email           string `json:"email"`
	Message         string `json:"message"`
	RequireCallback bool   `json:"requireCallback"`
}

func NewContactHandler(uc usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

func (h *ContactHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contactRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.Submit(c.Context(), usecase.ContactInput{
		Purpose:         req.Purpose,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		PhoneNumber:     req.PhoneNumber,
		Email:           req.Email,
		Message:         req.Message,
		RequireCallback: req.RequireCallback,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingContactFields),
			errors.Is(err, usecase.ErrInvalidPurpose):
			return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, "Message received", dto.FromContact(result))
}
