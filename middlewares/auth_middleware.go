package middlewares

import (
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TokenParser bearer token'dan kullanıcı ID'si çıkarır (services.IAuthService bunu sağlar).
type TokenParser interface {
	ParseToken(token string) (uint, error)
}

// CurrentUserID isteğin kullanıcısını döndürür; yoksa 0.
func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// bindUser kullanıcıyı hem Locals'a hem de isteğin context'ine yazar;
// servisler kullanıcıyı bu context üzerinden alır.
func bindUser(c *fiber.Ctx, userID uint) {
	c.Locals("userID", userID)
	c.SetUserContext(models.WithUserID(c.UserContext(), userID))
}

// BearerTokenMiddleware "Authorization: Bearer" başlığı varsa token'ı doğrular.
// Başlık yoksa istek olduğu gibi devam eder (oturum ile kimlik doğrulama).
func BearerTokenMiddleware(parser TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}
		userID, err := parser.ParseToken(strings.TrimSpace(auth[7:]))
		if err != nil {
			configslog.Log.Debug("Geçersiz bearer token", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "geçersiz token"})
		}
		bindUser(c, userID)
		c.Locals("authViaToken", true)
		return c.Next()
	}
}

// AuthMiddleware giriş yapılmamışsa login sayfasına yönlendirir.
func AuthMiddleware(c *fiber.Ctx) error {
	userID := CurrentUserID(c)
	if userID == 0 {
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	bindUser(c, userID)
	return c.Next()
}

// APIAuthMiddleware JSON uçları için; yönlendirme yerine 401 döner.
func APIAuthMiddleware(c *fiber.Ctx) error {
	userID := CurrentUserID(c)
	if userID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "kimlik doğrulaması gerekli"})
	}
	bindUser(c, userID)
	return c.Next()
}

// GuestMiddleware giriş yapmış kullanıcıyı panele gönderir.
func GuestMiddleware(c *fiber.Ctx) error {
	if CurrentUserID(c) != 0 {
		return c.Redirect("/panel/home", fiber.StatusSeeOther)
	}
	return c.Next()
}
