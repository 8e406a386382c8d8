package services

import (
	"bytes"
	"context"
	"io"

	"github.com/itchyny/json2yaml"
	"github.com/jeebeez/jeebeecard/internal/errors"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/tidwall/sjson"
)

// ExportService dumps every persisted collection as one document keyed by
// the store keys.
type ExportService interface {
	ExportJSON(ctx context.Context) ([]byte, error)
	ExportYAML(ctx context.Context, w io.Writer) error
}

type exportService struct {
	flashcardRepo repository.FlashcardRepository
	favoriteRepo  repository.FavoriteRepository
	levelRepo     repository.LevelRepository
}

// NewExportService creates a new ExportService
func NewExportService(flashcardRepo repository.FlashcardRepository, favoriteRepo repository.FavoriteRepository, levelRepo repository.LevelRepository) ExportService {
	return &exportService{flashcardRepo: flashcardRepo, favoriteRepo: favoriteRepo, levelRepo: levelRepo}
}

func (s *exportService) ExportJSON(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)
	log.Debug("exporting store")

	cards, err := s.flashcardRepo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	words, err := s.favoriteRepo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	levels, err := s.levelRepo.Load(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}

	tuples := make([][]string, 0, len(cards))
	for _, c := range cards {
		tuples = append(tuples, c.Tuple())
	}

	doc := []byte(`{}`)
	for _, field := range []struct {
		key   string
		value any
	}{
		{repository.KeyFlashcards, tuples},
		{repository.KeyMarkedWords, nonNil(words)},
		{repository.KeyUserLevels, nonNil(levels)},
	} {
		if doc, err = sjson.SetBytes(doc, field.key, field.value); err != nil {
			log.Error("failed to set %s: %v", field.key, err)
			return nil, errors.NewInternalError(err)
		}
	}
	return doc, nil
}

func (s *exportService) ExportYAML(ctx context.Context, w io.Writer) error {
	doc, err := s.ExportJSON(ctx)
	if err != nil {
		return err
	}
	if err := json2yaml.Convert(w, bytes.NewReader(doc)); err != nil {
		logger.FromContext(ctx).Error("failed to convert export to yaml: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
