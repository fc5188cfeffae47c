package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"wynngrid/internal/delivery/http/dto"
	"wynngrid/internal/delivery/http/middleware"
	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/password"
	"wynngrid/internal/pkg/response"
	"wynngrid/internal/usecase"
)

type AuthHandler struct {
	uc usecase.AuthUsecase
}

type signupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type verifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}

type deleteAccountRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type googleAuthRequest struct {
	IDToken string `json:"idToken"`
}

func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/verify-otp", h.VerifyOTP)
	r.Post("/login", h.Login)
	r.Post("/forgot-password", h.ForgotPassword)
	r.Post("/reset-password", h.ResetPassword)
	r.Delete("/delete-account", h.DeleteAccount)
	r.Post("/logout", h.Logout)
	r.Post("/google-auth", h.GoogleAuth)
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Signup(c.Context(), usecase.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "OTP sent to email", nil)
}

func (h *AuthHandler) VerifyOTP(c fiber.Ctx) error {
	var req verifyOTPRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	token, err := h.uc.VerifyOTP(c.Context(), req.Email, req.OTP)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Email verified", map[string]any{"token": token})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	token, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", map[string]any{"token": token})
}

func (h *AuthHandler) ForgotPassword(c fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ForgotPassword(c.Context(), req.Email); err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "OTP sent to email", nil)
}

func (h *AuthHandler) ResetPassword(c fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.ResetPassword(c.Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Password reset successful", nil)
}

func (h *AuthHandler) DeleteAccount(c fiber.Ctx) error {
	var req deleteAccountRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.DeleteAccount(c.Context(), req.Email, req.Password); err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Account deleted", nil)
}

func (h *AuthHandler) Logout(c fiber.Ctx) error {
	var req logoutRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Logout(c.Context(), req.Token); err != nil {
		return mapAuthUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) GoogleAuth(c fiber.Ctx) error {
	var req googleAuthRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	result, err := h.uc.GoogleAuth(c.Context(), req.IDToken)
	if err != nil {
		return mapAuthUsecaseError(err)
	}

	status := fiber.StatusOK
	msg := "Login successful"
	if result.IsNewUser {
		status = fiber.StatusCreated
		msg = "Account created"
	}

	data := map[string]any{
		"token":     result.Token,
		"user":      dto.FromUser(result.User),
		"isNewUser": result.IsNewUser,
	}
	return response.Success(c, status, msg, data)
}

func mapAuthUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, user.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", nil, err)
	case errors.Is(err, usecase.ErrUnverifiedEmail):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email not verified", nil, err)
	case errors.Is(err, usecase.ErrInvalidPassword):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid password", nil, err)
	case errors.Is(err, usecase.ErrInvalidOTP):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid or expired OTP", nil, err)
	case errors.Is(err, usecase.ErrMissingToken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Token is required", nil, err)
	case errors.Is(err, usecase.ErrInvalidGoogleToken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid Google token", nil, err)
	case errors.Is(err, password.ErrPolicy):
		return middleware.NewAppError(fiber.StatusBadRequest, password.ErrPolicy.Error(), nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
