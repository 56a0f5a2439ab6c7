package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ToggleTheme flips the light/dark preference cookie and returns to
// the referring page.
// POST /theme
func ToggleTheme(c *fiber.Ctx) error {
	next := "dark"
	if c.Cookies(themeCookie) == "dark" {
		next = "light"
	}
	c.Cookie(&fiber.Cookie{
		Name:     themeCookie,
		Value:    next,
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return redirectBack(c, "/")
}
