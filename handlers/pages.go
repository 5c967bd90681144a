package handlers

import (
	"net/url"

	"pocket-notes/app"
	"pocket-notes/models"
	"pocket-notes/services"
	"pocket-notes/templates/pages"

	"github.com/gofiber/fiber/v2"
)

// HomePage renders the tab named by ?tab, activating only that screen
func HomePage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := pages.View{Tab: c.Query("tab", services.ScreenNotes)}

		// The theme follows the saved settings on every tab.
		activate(c, a.Settings)
		view.Settings = a.Settings.Settings()

		switch view.Tab {
		case services.ScreenFavorites:
			activate(c, a.Favorites)
			view.Favorites = a.Favorites.Items()
		case services.ScreenSettings:
		default:
			view.Tab = services.ScreenNotes
			activate(c, a.Notes)
			view.Notes = a.Notes.Items()
		}
		view.Notices = a.Notices.Drain(view.Tab)

		c.Set("Content-Type", "text/html; charset=utf-8")
		return pages.Index(view).Render(c.UserContext(), c.Response().BodyWriter())
	}
}

func backTo(c *fiber.Ctx, tab string) error {
	return c.Redirect("/?tab="+url.QueryEscape(tab), fiber.StatusSeeOther)
}

// Form handlers. Validation and storage outcomes reach the page as notices,
// so every form posts back to its tab.

func SubmitNoteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		_ = c.BodyParser(&req)
		_, _, _ = a.Notes.Add(c.UserContext(), req.Text)
		return backTo(c, services.ScreenNotes)
	}
}

func DeleteNoteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Notes.Remove(c.UserContext(), paramID(c))
		return backTo(c, services.ScreenNotes)
	}
}

func SubmitFavoriteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateFavoriteRequest
		_ = c.BodyParser(&req)
		_, _, _ = a.Favorites.Add(c.UserContext(), req.Name)
		return backTo(c, services.ScreenFavorites)
	}
}

func DeleteFavoriteForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a.Favorites.Remove(c.UserContext(), paramID(c))
		return backTo(c, services.ScreenFavorites)
	}
}

// settingsForm mirrors the settings tab; unchecked boxes are simply absent.
type settingsForm struct {
	Username      string `form:"username"`
	DarkMode      bool   `form:"darkMode"`
	Notifications bool   `form:"notifications"`
}

func SubmitSettingsForm(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form settingsForm
		if err := c.BodyParser(&form); err != nil {
			return badRequest(c, "Invalid form")
		}

		_, _, _ = a.Settings.Update(c.UserContext(), models.UpdateSettingsRequest{
			Username:      &form.Username,
			DarkMode:      &form.DarkMode,
			Notifications: &form.Notifications,
		})
		return backTo(c, services.ScreenSettings)
	}
}
