package auth

import (
	"strings"

	"github.com/1dhruvsingh/ResumeAI/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const userIDKey = "user_id"

// Authenticator resolves a bearer token to a user id.
type Authenticator interface {
	Authenticate(token string) (kernel.UserID, error)
}

// Middleware rejects requests without a valid bearer token and stores the
// caller's user id in the request locals.
func Middleware(authenticator Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return ErrMissingToken()
		}

		// format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		userID, err := authenticator.Authenticate(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// GetUserID extracts the authenticated user id from the request.
func GetUserID(c *fiber.Ctx) (kernel.UserID, bool) {
	userID, ok := c.Locals(userIDKey).(kernel.UserID)
	return userID, ok
}
