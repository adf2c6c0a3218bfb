package routes

import (
	panel_handlers "wallof.love/handlers/panel"
	"wallof.love/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes /panel altındaki hesap sahibi ekranları.
func registerPanelRoutes(app *fiber.App) {
	homeHandler := panel_handlers.NewPanelHomeHandler()
	formHandler := panel_handlers.NewPanelFormHandler()
	fieldHandler := panel_handlers.NewPanelFieldHandler()
	testimonialHandler := panel_handlers.NewPanelTestimonialHandler()
	settingsHandler := panel_handlers.NewPanelSettingsHandler()

	panelGroup := app.Group("/panel")
	panelGroup.Use(middlewares.AuthMiddleware)

	panelGroup.Get("/home", homeHandler.PanelHome)
	panelGroup.Get("/analytics", homeHandler.Analytics)

	// Formlar
	panelGroup.Get("/forms", formHandler.ListForms)
	panelGroup.Get("/forms/create", formHandler.ShowCreateForm)
	panelGroup.Post("/forms/create", formHandler.CreateForm)
	panelGroup.Get("/forms/update/:id", formHandler.ShowUpdateForm)
	panelGroup.Post("/forms/update/:id", formHandler.UpdateForm)
	panelGroup.Post("/forms/delete/:id", formHandler.DeleteForm)

	// Form şeması
	panelGroup.Get("/forms/:id/fields", fieldHandler.ListFields)
	panelGroup.Post("/forms/:id/fields", fieldHandler.AddField)
	panelGroup.Post("/forms/:id/fields/:fieldId/update", fieldHandler.UpdateField)
	panelGroup.Post("/forms/:id/fields/:fieldId/delete", fieldHandler.DeleteField)
	panelGroup.Post("/forms/:id/fields/:fieldId/move", fieldHandler.MoveField)

	// Moderasyon ve duvar
	panelGroup.Get("/testimonials", testimonialHandler.ListTestimonials)
	panelGroup.Post("/testimonials/approve/:id", testimonialHandler.Approve)
	panelGroup.Post("/testimonials/reject/:id", testimonialHandler.Reject)
	panelGroup.Get("/wall", testimonialHandler.ShowWall)

	panelGroup.Get("/settings", settingsHandler.ShowSettings)
	panelGroup.Post("/settings", settingsHandler.SaveSettings)
}
