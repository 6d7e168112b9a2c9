package handlers

import "github.com/gofiber/fiber/v2"

const (
	// UserIDHeader carries the signed-in user's id. An absent header means
	// the caller is signed out.
	UserIDHeader = "X-User-ID"

	userIDKey = "userID"
)

// Identity stores the caller id on the request context.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(userIDKey, c.Get(UserIDHeader))
		return c.Next()
	}
}

func currentUser(c *fiber.Ctx) string {
	if id, ok := c.Locals(userIDKey).(string); ok {
		return id
	}
	return ""
}
