package handlers

import (
	"pocket-notes/app"
	"pocket-notes/models"
	"pocket-notes/services"

	"github.com/gofiber/fiber/v2"
)

// GetNotes activates the notes screen and returns its list
func GetNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activate(c, a.Notes)

		return success(c, fiber.Map{
			"notes":   a.Notes.Items(),
			"state":   a.Notes.State(),
			"notices": a.Notices.Drain(services.ScreenNotes),
		})
	}
}

// CreateNote adds a note; the save runs in the background
func CreateNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		note, _, err := a.Notes.Add(c.UserContext(), req.Text)
		if isValidation(err) {
			return validationFailed(c, err, a.Notices.Drain(services.ScreenNotes))
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to add note", err)
		}

		return created(c, fiber.Map{
			"note":    note,
			"notes":   a.Notes.Items(),
			"notices": a.Notices.Drain(services.ScreenNotes),
		})
	}
}

// DeleteNote removes a note by id; unknown ids are a no-op
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c)
		if id == "" {
			return badRequest(c, "id is required")
		}

		removed, _ := a.Notes.Remove(c.UserContext(), id)

		return success(c, fiber.Map{
			"removed": removed,
			"notes":   a.Notes.Items(),
			"notices": a.Notices.Drain(services.ScreenNotes),
		})
	}
}
