package routes

import (
	"wallof.love/configs"
	"wallof.love/middlewares"
	"wallof.love/pkg/sessionevents"
	"wallof.love/services"
	"wallof.love/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes tüm uygulama rotalarını ve genel middleware'leri ayarlar.
// Oturum olayları hub üzerinden yayınlanır.
func SetupRoutes(app *fiber.App, hub *sessionevents.Hub) {
	authService := services.NewAuthService(hub)

	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSessionAndLocals())
	app.Use(middlewares.BearerTokenMiddleware(authService))
	app.Use(middlewares.CSRFMiddleware())

	blobs := services.NewLocalBlobStoreFromEnv()
	app.Static(blobs.PublicPath(), blobs.Root())

	registerAuthRoutes(app, authService)
	registerPanelRoutes(app)
	registerAPIRoutes(app)
	registerPublicLinkRoutes(app)

	app.Get("/", rootRedirector)
	app.Use(notFoundHandler)
}

// initializeSessionAndLocals oturumdaki kullanıcıyı isteğe bağlar.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		sess, err := utils.SessionStart(c)
		if err != nil {
			return c.Next()
		}
		if userID, err := utils.GetUserIDFromSession(sess); err == nil {
			c.Locals("userID", userID)
		}
		if userName, ok := sess.Get(utils.SessionUserNameKey).(string); ok {
			c.Locals("userName", userName)
		}
		return c.Next()
	}
}

func rootRedirector(c *fiber.Ctx) error {
	if middlewares.CurrentUserID(c) == 0 {
		return c.Redirect("/auth/login", fiber.StatusTemporaryRedirect)
	}
	return c.Redirect("/panel/home", fiber.StatusFound)
}

func notFoundHandler(c *fiber.Ctx) error {
	switch c.Accepts("application/json", "text/html") {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Kaynak bulunamadı"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": "Sayfa Bulunamadı"}, "layouts/error_layout")
	}
}
