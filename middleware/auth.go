package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tasklab/go-tasks/auth"
)

// UserIDKey is the locals key holding the verified user id.
const UserIDKey = "user_id"

// JWTMiddleware returns a guard that verifies the bearer token and hands the
// resolved user id to the handler via c.Locals before it runs.
func JWTMiddleware(tokens *auth.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "missing token"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.Status(401).JSON(fiber.Map{"error": "invalid token format"})
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return c.Status(401).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}
