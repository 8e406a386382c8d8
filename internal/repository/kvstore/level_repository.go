package kvstore

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
)

type levelRepository struct {
	store repository.Store
}

// NewLevelRepository creates a LevelRepository over store.
func NewLevelRepository(store repository.Store) repository.LevelRepository {
	return &levelRepository{store: store}
}

func (r *levelRepository) Load(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("level_repo")
	names, err := loadStrings(ctx, r.store, repository.KeyUserLevels)
	if err != nil {
		log.Error("failed to load user levels: %v", err)
		return nil, err
	}
	log.Debug("loaded %d user levels", len(names))
	return names, nil
}

func (r *levelRepository) Save(ctx context.Context, names []string) error {
	log := logger.FromContext(ctx).WithPrefix("level_repo")
	log.Debug("saving %d user levels", len(names))
	if err := saveStrings(ctx, r.store, repository.KeyUserLevels, names); err != nil {
		log.Error("failed to save user levels: %v", err)
		return err
	}
	return nil
}
