package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if SessionFrom(c) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		return c.Next()
	}
}

// RequireAdmin gates the management surface behind the configured
// admin email allowlist.
func RequireAdmin(adminEmails map[string]struct{}) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFrom(c)
		if sess == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}
		if _, ok := adminEmails[strings.ToLower(sess.Email)]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "forbidden")
		}
		return c.Next()
	}
}

// IsAdmin reports whether the session belongs to a configured admin.
func IsAdmin(sessEmail string, adminEmails map[string]struct{}) bool {
	_, ok := adminEmails[strings.ToLower(sessEmail)]
	return ok
}
