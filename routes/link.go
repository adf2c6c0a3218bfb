package routes

import (
	link_handlers "wallof.love/handlers/link"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes public form ve duvar rotaları. Diğer gruplardan sonra tanımlanmalı.
func registerPublicLinkRoutes(app *fiber.App) {
	publicHandler := link_handlers.NewLinkHandler()

	app.Get("/form/:key", publicHandler.ShowForm)
	app.Post("/form/:key", publicHandler.SubmitForm)
	app.Post("/form/:key/upload", publicHandler.UploadMedia)

	app.Get("/:key", publicHandler.HandleLink)
}
