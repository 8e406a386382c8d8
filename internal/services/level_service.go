package services

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/errors"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/jeebeez/jeebeecard/internal/study"
)

// LevelService backs the level catalog screen.
type LevelService interface {
	ListDefaultLevels() []string
	ListUserLevels(ctx context.Context) ([]string, error)
	Catalog(ctx context.Context) ([]models.Level, error)
	AddUserLevel(ctx context.Context, name string) ([]string, error)
	DeleteUserLevel(ctx context.Context, name string) ([]string, error)
}

type levelService struct {
	levelRepo repository.LevelRepository
}

// NewLevelService creates a new LevelService
func NewLevelService(levelRepo repository.LevelRepository) LevelService {
	return &levelService{levelRepo: levelRepo}
}

func (s *levelService) ListDefaultLevels() []string {
	return study.DefaultLevels()
}

func (s *levelService) ListUserLevels(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing user levels")

	names, err := s.levelRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load user levels: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return names, nil
}

func (s *levelService) Catalog(ctx context.Context) ([]models.Level, error) {
	user, err := s.ListUserLevels(ctx)
	if err != nil {
		return nil, err
	}
	return study.Catalog(user), nil
}

func (s *levelService) AddUserLevel(ctx context.Context, name string) ([]string, error) {
	log := logger.FromContext(ctx).WithField("level", name)

	names, err := s.ListUserLevels(ctx)
	if err != nil {
		return nil, err
	}

	updated, ok := study.AddLevel(names, name)
	if !ok {
		log.Debug("ignoring level with empty name")
		return names, nil
	}

	if err := s.levelRepo.Save(ctx, updated); err != nil {
		log.Error("failed to save user levels: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("user level added")
	return updated, nil
}

func (s *levelService) DeleteUserLevel(ctx context.Context, name string) ([]string, error) {
	log := logger.FromContext(ctx).WithField("level", name)

	names, err := s.ListUserLevels(ctx)
	if err != nil {
		return nil, err
	}

	updated := study.RemoveLevel(names, name)
	if err := s.levelRepo.Save(ctx, updated); err != nil {
		log.Error("failed to save user levels: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("user level deleted, %d removed", len(names)-len(updated))
	return updated, nil
}
