package models

// Store keys. Each screen owns a disjoint set.
const (
	KeyNotes         = "@notes"
	KeyFavorites     = "@favorites"
	KeyUsername      = "@username"
	KeyDarkMode      = "@darkMode"
	KeyNotifications = "@notifications"
)

type Note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

type Favorite struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Settings is a single record persisted as three independent keys.
type Settings struct {
	Username      string `json:"username"`
	DarkMode      bool   `json:"darkMode"`
	Notifications bool   `json:"notifications"`
}

// DefaultSettings is what a fresh install, or a failed load, starts from.
func DefaultSettings() Settings {
	return Settings{
		Username:      "",
		DarkMode:      false,
		Notifications: true,
	}
}

type CreateNoteRequest struct {
	Text string `json:"text" form:"text" validate:"notblank"`
}

type CreateFavoriteRequest struct {
	Name string `json:"name" form:"name" validate:"notblank"`
}

// UpdateSettingsRequest carries a partial update; nil fields are left alone.
type UpdateSettingsRequest struct {
	Username      *string `json:"username" validate:"omitempty,max=100"`
	DarkMode      *bool   `json:"darkMode"`
	Notifications *bool   `json:"notifications"`
}
