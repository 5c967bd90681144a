package handlers

import (
	"pocket-notes/app"
	"pocket-notes/models"
	"pocket-notes/services"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activate(c, a.Settings)

		return success(c, fiber.Map{
			"settings": a.Settings.Settings(),
			"state":    a.Settings.State(),
			"notices":  a.Notices.Drain(services.ScreenSettings),
		})
	}
}

// UpdateSettings applies a partial update and saves all three fields
func UpdateSettings(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.UpdateSettingsRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		settings, _, err := a.Settings.Update(c.UserContext(), req)
		if isValidation(err) {
			return validationFailed(c, err, a.Notices.Drain(services.ScreenSettings))
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to update settings", err)
		}

		return success(c, fiber.Map{
			"settings": settings,
			"notices":  a.Notices.Drain(services.ScreenSettings),
		})
	}
}
