package middleware

import (
	"errors"
	"strings"

	"hirehub/internal/domain/user"
	"hirehub/internal/pkg/jwt"
	"hirehub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const CtxIdentityKey = "identity"

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

func (m *AuthMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerTokenFromHeader(c.Get("Authorization"))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return NewAppError(fiber.StatusUnauthorized, "Token expired", err)
			}
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", err)
		}

		if claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims) {
			return NewAppError(fiber.StatusUnauthorized, "Invalid token", nil)
		}

		c.Locals(CtxIdentityKey, usecase.Identity{
			UserID: claims.UserID,
			Role:   user.Role(claims.Role),
		})

		return c.Next()
	}
}

// CallerIdentity pulls the authenticated identity a previous AuthMiddleware
// stored on the request.
func CallerIdentity(c fiber.Ctx) (usecase.Identity, bool) {
	id, ok := c.Locals(CtxIdentityKey).(usecase.Identity)
	return id, ok
}

func BearerTokenFromHeader(authHeader string) (string, bool) {
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
