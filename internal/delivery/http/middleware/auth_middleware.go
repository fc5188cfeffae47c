package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"wynngrid/internal/domain/user"
	"wynngrid/internal/pkg/jwt"
)

const (
	CtxUserIDKey   = "user_id"
	CtxUserTypeKey = "user_type"
)

type AuthMiddleware struct {
	jwt   jwt.Service
	users user.Repository
}

func NewAuthMiddleware(jwtSvc jwt.Service, users user.Repository) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc, users: users}
}

// Middleware requires a bearer token. An absent token is unauthorized; a
// token that is present but expired or malformed is forbidden.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusForbidden, "Token expired", nil, err)
			}
			return NewAppError(fiber.StatusForbidden, "Invalid token", nil, err)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxUserTypeKey, claims.UserType)

		return c.Next()
	}
}

// RequirePro gates endpoints reserved for accounts that completed
// onboarding. It must run after Middleware. The account is re-read rather
// than trusting the token claim, since onboarding can promote an account
// after its token was issued.
func (m *AuthMiddleware) RequirePro() fiber.Handler {
	return func(c fiber.Ctx) error {
		id, ok := UserIDFromCtx(c)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		u, err := m.users.GetByID(c.Context(), id)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return NewAppError(fiber.StatusForbidden, "Pro account required", nil, err)
			}
			return err
		}
		if u.UserType != user.TypePro {
			return NewAppError(fiber.StatusForbidden, "Pro account required", nil, nil)
		}
		return c.Next()
	}
}

// UserIDFromCtx returns the authenticated account id set by Middleware.
func UserIDFromCtx(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
