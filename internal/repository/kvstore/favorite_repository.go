package kvstore

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
)

type favoriteRepository struct {
	store repository.Store
}

// NewFavoriteRepository creates a FavoriteRepository over store.
func NewFavoriteRepository(store repository.Store) repository.FavoriteRepository {
	return &favoriteRepository{store: store}
}

func (r *favoriteRepository) Load(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("favorite_repo")
	words, err := loadStrings(ctx, r.store, repository.KeyMarkedWords)
	if err != nil {
		log.Error("failed to load marked words: %v", err)
		return nil, err
	}
	log.Debug("loaded %d marked words", len(words))
	return words, nil
}

func (r *favoriteRepository) Save(ctx context.Context, words []string) error {
	log := logger.FromContext(ctx).WithPrefix("favorite_repo")
	log.Debug("saving %d marked words", len(words))
	if err := saveStrings(ctx, r.store, repository.KeyMarkedWords, words); err != nil {
		log.Error("failed to save marked words: %v", err)
		return err
	}
	return nil
}
