package jwt

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalUserID  = "userId"
	LocalIsAdmin = "isAdmin"
)

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"ok": false, "error": msg})
}

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256).
// On success sets user id (subject) into c.Locals("userId").
func NewAuthMiddleware(v *Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return unauthorized(c, "missing Authorization header")
		}
		tokenStr := bearerToken(authHeader)
		if tokenStr == "" {
			return unauthorized(c, "empty token")
		}
		claims, err := v.Verify(tokenStr)
		if err != nil {
			return unauthorized(c, err.Error())
		}
		c.Locals(LocalUserID, claims.Subject)
		if claims.IsAdmin {
			c.Locals(LocalIsAdmin, true)
		}
		return c.Next()
	}
}
