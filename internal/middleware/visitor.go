package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	visitorCookie = "stormblog_visitor"
	VisitorLocal  = "visitor_id"
)

// WithVisitorID assigns each browser a stable anonymous identifier,
// generated once and carried in a long-lived cookie. Likes key on it
// so unauthenticated visitors can toggle exactly one like per post.
func WithVisitorID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(visitorCookie)
		if id == "" {
			id = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     visitorCookie,
				Value:    id,
				Path:     "/",
				Expires:  time.Now().Add(365 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(VisitorLocal, id)
		return c.Next()
	}
}

// VisitorFrom returns the anonymous visitor id for this request.
func VisitorFrom(c *fiber.Ctx) string {
	if v := c.Locals(VisitorLocal); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
