package services

import (
	"context"
	"fmt"

	"pocket-notes/models"
	"pocket-notes/notice"
	"pocket-notes/writeback"
)

// SettingsScreen holds the user settings. Each field is stored under its
// own key as plain text; nothing is written until Save.
type SettingsScreen struct {
	screen
	settings models.Settings
}

func NewSettingsScreen(d Deps) *SettingsScreen {
	d = d.withDefaults()
	s := &SettingsScreen{settings: models.DefaultSettings()}
	s.screen.init(ScreenSettings, d)
	return s
}

// Load reads the three setting keys. Absent keys keep their defaults. Any
// read failure resets every field to its default and raises a notice.
func (s *SettingsScreen) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.State().Loaded() {
		return nil
	}
	s.setState(StateLoading)

	settings, err := s.read(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.settings = models.DefaultSettings()
		s.state = StateLoadFailed
		s.logger.Error("load failed", "error", err)
		s.notify(notice.KindError, "Error", "Could not load settings.")
		return err
	}

	s.settings = settings
	s.state = StateReady
	return nil
}

func (s *SettingsScreen) read(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	username, found, err := s.store.Get(ctx, models.KeyUsername)
	if err != nil {
		return settings, asReadFailure(models.KeyUsername, err)
	}
	if found {
		settings.Username = username
	}

	darkMode, found, err := s.store.Get(ctx, models.KeyDarkMode)
	if err != nil {
		return settings, asReadFailure(models.KeyDarkMode, err)
	}
	if found {
		settings.DarkMode = models.DecodeBool(darkMode)
	}

	notifications, found, err := s.store.Get(ctx, models.KeyNotifications)
	if err != nil {
		return settings, asReadFailure(models.KeyNotifications, err)
	}
	if found {
		settings.Notifications = models.DecodeBool(notifications)
	}

	return settings, nil
}

// Settings returns the in-memory settings.
func (s *SettingsScreen) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// The setters change memory only. They load first so a later Save does not
// clobber stored values the user never saw.

func (s *SettingsScreen) SetUsername(ctx context.Context, username string) {
	_ = s.Load(ctx)

	s.mu.Lock()
	s.settings.Username = username
	s.mu.Unlock()
}

func (s *SettingsScreen) SetDarkMode(ctx context.Context, on bool) {
	_ = s.Load(ctx)

	s.mu.Lock()
	s.settings.DarkMode = on
	s.mu.Unlock()
}

func (s *SettingsScreen) SetNotifications(ctx context.Context, on bool) {
	_ = s.Load(ctx)

	s.mu.Lock()
	s.settings.Notifications = on
	s.mu.Unlock()
}

// Save queues a write of all three keys, username first. The outcome only
// raises a notice.
func (s *SettingsScreen) Save(ctx context.Context) *writeback.Task {
	_ = s.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	writes := []writeback.Write{
		{Key: models.KeyUsername, Value: s.settings.Username},
		{Key: models.KeyDarkMode, Value: models.EncodeBool(s.settings.DarkMode)},
		{Key: models.KeyNotifications, Value: models.EncodeBool(s.settings.Notifications)},
	}
	return s.submit(writes, "Could not save settings.", "Settings saved!")
}

// Update applies the non-nil fields of req and saves.
func (s *SettingsScreen) Update(ctx context.Context, req models.UpdateSettingsRequest) (models.Settings, *writeback.Task, error) {
	if err := s.validator.Validate(req); err != nil {
		s.logger.Info("input rejected", "error", err)
		s.notify(notice.KindValidation, "Validation", err.Error())
		return s.Settings(), nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_ = s.Load(ctx)

	s.mu.Lock()
	if req.Username != nil {
		s.settings.Username = *req.Username
	}
	if req.DarkMode != nil {
		s.settings.DarkMode = *req.DarkMode
	}
	if req.Notifications != nil {
		s.settings.Notifications = *req.Notifications
	}
	s.mu.Unlock()

	task := s.Save(ctx)
	return s.Settings(), task, nil
}
