package setup

import (
	"fmt"
	"log/slog"

	"pocket-notes/app"
	"pocket-notes/config"
	"pocket-notes/database"
	"pocket-notes/storage"
	"pocket-notes/writeback"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitStore opens the record store selected by cfg.StoreBackend. The
// returned closer releases backend resources and may be nil.
func InitStore(cfg *config.Config, logger *slog.Logger) (storage.RecordStore, func() error, error) {
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		db, err := InitDatabase(cfg.DBPath, logger)
		if err != nil {
			return nil, nil, err
		}
		return database.NewRepository(db), db.Close, nil

	case config.BackendFile:
		store, err := storage.NewFileStore(cfg.StoreDir)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("file store initialized", "dir", cfg.StoreDir)
		return store, nil, nil

	case config.BackendMemory:
		logger.Warn("memory store selected, nothing will be persisted")
		return storage.NewMemoryStore(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

// InitApp starts the write-back worker and builds the screens around store
func InitApp(store storage.RecordStore, cfg *config.Config, logger *slog.Logger) *app.App {
	writer := writeback.NewWorker(store, logger)
	writer.Start()
	logger.Info("write-back worker started")

	application := app.New(store, writer, cfg.DateLayout, logger)
	logger.Info("application initialized with dependency injection")

	return application
}

// Shutdown flushes pending writes and closes the store
func Shutdown(application *app.App, closeStore func() error, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if application != nil && application.Writer != nil {
		application.Writer.Stop()
	}

	if closeStore != nil {
		if err := closeStore(); err != nil {
			logger.Error("failed to close store", "error", err)
			return
		}
		logger.Info("store closed")
	}
}
