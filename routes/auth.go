package routes

import (
	auth_handlers "wallof.love/handlers/auth"
	"wallof.love/middlewares"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, authService services.IAuthService) {
	authHandler := auth_handlers.NewAuthHandler(authService)
	authGroup := app.Group("/auth")

	authGroup.Post("/token", authHandler.IssueToken)

	// Group("").Use tüm /auth önekine uygulanacağından middleware rota bazında verilir.
	authGroup.Get("/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	authGroup.Post("/login", middlewares.GuestMiddleware, authHandler.Login)
	authGroup.Get("/register", middlewares.GuestMiddleware, authHandler.ShowRegister)
	authGroup.Post("/register", middlewares.GuestMiddleware, authHandler.Register)

	authGroup.Post("/logout", middlewares.AuthMiddleware, authHandler.Logout)
	authGroup.Get("/logout", middlewares.AuthMiddleware, authHandler.Logout)
}
