package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stormcreate/stormblog/internal/auth"
)

const (
	themeCookie = "stormblog_theme"
	draftCookie = "stormblog_draft"
)

// wantsJSON distinguishes API callers from plain form posts so the
// same mutation endpoints can serve both.
func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderContentType), "json") ||
		strings.Contains(c.Get(fiber.HeaderAccept), "json")
}

// redirectBack sends form posts back where they came from.
func redirectBack(c *fiber.Ctx, fallback string) error {
	if ref := c.Get(fiber.HeaderReferer); ref != "" {
		return c.Redirect(ref, fiber.StatusSeeOther)
	}
	return c.Redirect(fallback, fiber.StatusSeeOther)
}

func themeFrom(c *fiber.Ctx) string {
	if c.Cookies(themeCookie) == "dark" {
		return "dark"
	}
	return "light"
}

func setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})
}
