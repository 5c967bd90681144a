package setup

import (
	"pocket-notes/app"
	"pocket-notes/handlers"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers all application routes
func RegisterRoutes(fiberApp *fiber.App, application *app.App) {
	// HTML tabs
	fiberApp.Get("/", handlers.HomePage(application))
	fiberApp.Post("/tabs/notes", handlers.SubmitNoteForm(application))
	fiberApp.Post("/tabs/notes/:id/delete", handlers.DeleteNoteForm(application))
	fiberApp.Post("/tabs/favorites", handlers.SubmitFavoriteForm(application))
	fiberApp.Post("/tabs/favorites/:id/delete", handlers.DeleteFavoriteForm(application))
	fiberApp.Post("/tabs/settings", handlers.SubmitSettingsForm(application))

	fiberApp.Get("/health", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"status": "ok"}) })

	api := fiberApp.Group("/api")

	api.Get("/notes", handlers.GetNotes(application))
	api.Post("/notes", handlers.CreateNote(application))
	api.Delete("/notes/:id", handlers.DeleteNote(application))

	api.Get("/favorites", handlers.GetFavorites(application))
	api.Post("/favorites", handlers.CreateFavorite(application))
	api.Delete("/favorites/:id", handlers.DeleteFavorite(application))

	api.Get("/settings", handlers.GetSettings(application))
	api.Put("/settings", handlers.UpdateSettings(application))

	api.Get("/records", handlers.GetRecords(application))
}
