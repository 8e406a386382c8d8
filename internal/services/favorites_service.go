package services

import (
	"context"
	"slices"

	"github.com/jeebeez/jeebeecard/internal/errors"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/jeebeez/jeebeecard/internal/study"
)

// FavoritesService backs the favorites review screen.
type FavoritesService interface {
	ListFavorites(ctx context.Context) ([]string, error)
	Mark(ctx context.Context, word string) ([]string, error)
	Unmark(ctx context.Context, word string) ([]string, error)
}

type favoritesService struct {
	favoriteRepo repository.FavoriteRepository
}

// NewFavoritesService creates a new FavoritesService
func NewFavoritesService(favoriteRepo repository.FavoriteRepository) FavoritesService {
	return &favoritesService{favoriteRepo: favoriteRepo}
}

func (s *favoritesService) ListFavorites(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)
	log.Debug("listing marked words")

	words, err := s.favoriteRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load marked words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return words, nil
}

// Mark adds word unless it is already marked or empty.
func (s *favoritesService) Mark(ctx context.Context, word string) ([]string, error) {
	log := logger.FromContext(ctx).WithField("word", word)

	words, err := s.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	if word == "" || slices.Contains(words, word) {
		log.Debug("word empty or already marked")
		return words, nil
	}

	updated := append(slices.Clone(words), word)
	if err := s.favoriteRepo.Save(ctx, updated); err != nil {
		log.Error("failed to save marked words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("word marked")
	return updated, nil
}

func (s *favoritesService) Unmark(ctx context.Context, word string) ([]string, error) {
	log := logger.FromContext(ctx).WithField("word", word)

	words, err := s.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}

	updated := study.RemoveWord(words, word)
	if err := s.favoriteRepo.Save(ctx, updated); err != nil {
		log.Error("failed to save marked words: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("word unmarked")
	return updated, nil
}
