package app

import (
	"log/slog"

	"pocket-notes/notice"
	"pocket-notes/services"
	"pocket-notes/storage"
	"pocket-notes/validator"
	"pocket-notes/writeback"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Store     storage.RecordStore
	Writer    *writeback.Worker
	Notices   *notice.Center
	Validator *validator.Validator
	Logger    *slog.Logger

	Notes     *services.NotesScreen
	Favorites *services.FavoritesScreen
	Settings  *services.SettingsScreen
}

// New wires one controller per screen around store and writer.
func New(store storage.RecordStore, writer *writeback.Worker, dateLayout string, logger *slog.Logger) *App {
	notices := notice.NewCenter(logger)
	v := validator.New()

	deps := services.Deps{
		Store:      store,
		Writer:     writer,
		Notifier:   notices,
		Validator:  v,
		Logger:     logger,
		DateLayout: dateLayout,
	}

	return &App{
		Store:     store,
		Writer:    writer,
		Notices:   notices,
		Validator: v,
		Logger:    logger,
		Notes:     services.NewNotesScreen(deps),
		Favorites: services.NewFavoritesScreen(deps),
		Settings:  services.NewSettingsScreen(deps),
	}
}
