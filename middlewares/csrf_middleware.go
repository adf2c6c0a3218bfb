package middlewares

import (
	"strings"
	"time"

	"wallof.love/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
)

// CSRFMiddleware HTML formları için CSRF koruması. Token form alanı "_csrf" veya
// "X-CSRF-Token" başlığı ile gönderilir. Bearer token ile gelen API istekleri ve
// çerez kullanmayan token alma ucu muaftır.
func CSRFMiddleware() fiber.Handler {
	fromForm := csrf.CsrfFromForm("_csrf")
	return csrf.New(csrf.Config{
		Next: func(c *fiber.Ctx) bool {
			if c.Path() == "/auth/token" {
				return true
			}
			viaToken, _ := c.Locals("authViaToken").(bool)
			return viaToken && strings.HasPrefix(c.Path(), "/api/")
		},
		Extractor: func(c *fiber.Ctx) (string, error) {
			if token := c.Get("X-CSRF-Token"); token != "" {
				return token, nil
			}
			return fromForm(c)
		},
		CookieName:     "wallof_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   configs.IsProduction(),
		Expiration:     time.Hour,
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if strings.HasPrefix(c.Path(), "/api/") || c.Accepts("application/json", "text/html") == "application/json" {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "CSRF doğrulaması başarısız"})
			}
			return c.Status(fiber.StatusForbidden).Render("errors/403", fiber.Map{"Title": "İstek Reddedildi"}, "layouts/error_layout")
		},
	})
}
