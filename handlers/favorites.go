package handlers

import (
	"pocket-notes/app"
	"pocket-notes/models"
	"pocket-notes/services"

	"github.com/gofiber/fiber/v2"
)

func GetFavorites(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		activate(c, a.Favorites)

		return success(c, fiber.Map{
			"favorites": a.Favorites.Items(),
			"state":     a.Favorites.State(),
			"notices":   a.Notices.Drain(services.ScreenFavorites),
		})
	}
}

func CreateFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFavoriteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		fav, _, err := a.Favorites.Add(c.UserContext(), req.Name)
		if isValidation(err) {
			return validationFailed(c, err, a.Notices.Drain(services.ScreenFavorites))
		}
		if err != nil {
			return serverErrorWithDetails(c, "Failed to add favorite", err)
		}

		return created(c, fiber.Map{
			"favorite":  fav,
			"favorites": a.Favorites.Items(),
			"notices":   a.Notices.Drain(services.ScreenFavorites),
		})
	}
}

func DeleteFavorite(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := paramID(c)
		if id == "" {
			return badRequest(c, "id is required")
		}

		removed, _ := a.Favorites.Remove(c.UserContext(), id)

		return success(c, fiber.Map{
			"removed":   removed,
			"favorites": a.Favorites.Items(),
			"notices":   a.Notices.Drain(services.ScreenFavorites),
		})
	}
}
