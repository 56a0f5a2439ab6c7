package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stormcreate/stormblog/internal/auth"
)

const SessionLocal = "session"

// WithSession resolves the session token from the cookie or a bearer
// header into Locals. Requests without a valid token pass through as
// anonymous; nothing here rejects.
func WithSession(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(auth.CookieName)
		if tokenStr == "" {
			if h := c.Get("Authorization"); strings.HasPrefix(strings.ToLower(h), "bearer ") {
				tokenStr = strings.TrimSpace(h[7:])
			}
		}
		if tokenStr == "" {
			return c.Next()
		}
		sess, err := auth.ParseToken(secret, tokenStr)
		if err != nil {
			// Expired or tampered token: treat as signed out.
			return c.Next()
		}
		c.Locals(SessionLocal, sess)
		return c.Next()
	}
}

// SessionFrom pulls the resolved session out of Locals, nil when
// anonymous.
func SessionFrom(c *fiber.Ctx) *auth.Session {
	if v := c.Locals(SessionLocal); v != nil {
		if sess, ok := v.(*auth.Session); ok {
			return sess
		}
	}
	return nil
}
