package services

import (
	"context"
	"strings"

	"pocket-notes/models"
	"pocket-notes/writeback"
)

// FavoritesScreen keeps favorites in insertion order under models.KeyFavorites.
type FavoritesScreen struct {
	listScreen[models.Favorite]
	newID IDGenerator
}

func NewFavoritesScreen(d Deps) *FavoritesScreen {
	d = d.withDefaults()
	s := &FavoritesScreen{newID: d.NewID}
	s.listScreen.init(ScreenFavorites, models.KeyFavorites, d,
		func(f models.Favorite) string { return f.ID },
		false,
		listMessages{
			loadFailed: "Could not load favorites.",
			saveFailed: "Could not save favorites.",
			empty:      "Favorite name cannot be empty.",
		},
	)
	return s
}

func (s *FavoritesScreen) Add(ctx context.Context, name string) (models.Favorite, *writeback.Task, error) {
	req := models.CreateFavoriteRequest{Name: strings.TrimSpace(name)}
	if err := s.validator.Validate(req); err != nil {
		return models.Favorite{}, nil, s.rejectEmpty(err)
	}

	_ = s.Load(ctx)

	fav := models.Favorite{
		ID:   s.newID(),
		Name: req.Name,
	}
	return fav, s.insert(fav), nil
}

func (s *FavoritesScreen) Remove(ctx context.Context, id string) (bool, *writeback.Task) {
	_ = s.Load(ctx)
	return s.remove(id)
}
