package routes

import (
	api_handlers "wallof.love/handlers/api"
	"wallof.love/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerAPIRoutes JSON uçları. Duvar herkese açıktır, diğerleri oturum veya bearer token ister.
func registerAPIRoutes(app *fiber.App) {
	apiHandler := api_handlers.NewAPIHandler()

	v1 := app.Group("/api/v1")
	v1.Get("/wall/:key", apiHandler.Wall)

	auth := middlewares.APIAuthMiddleware
	v1.Get("/testimonials", auth, apiHandler.ListTestimonials)
	v1.Post("/testimonials/:id/approve", auth, apiHandler.Approve)
	v1.Post("/testimonials/:id/reject", auth, apiHandler.Reject)
	v1.Get("/analytics", auth, apiHandler.Analytics)
}
