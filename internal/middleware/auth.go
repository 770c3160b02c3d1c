package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/stabiliq/internal/utils"
)

const identityContextKey = "currentIdentity"

// AuthMiddleware validates the bearer token and stores the caller identity.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Not authenticated")
		}

		identity, err := utils.ParseToken(jwtSecret, strings.TrimSpace(parts[1]))
		if errors.Is(err, utils.ErrTokenExpired) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has expired")
		}
		if err != nil || identity.Email == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(identityContextKey, identity)
		return c.Next()
	}
}

// GetCurrentIdentity extracts the authenticated caller from context.
func GetCurrentIdentity(c *fiber.Ctx) (utils.Identity, bool) {
	identity, ok := c.Locals(identityContextKey).(utils.Identity)
	return identity, ok
}
