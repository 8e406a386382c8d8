package kvstore

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/repository"
)

type flashcardRepository struct {
	store repository.Store
}

// NewFlashcardRepository creates a FlashcardRepository over store. All
// levels share the single "flashcards" key.
func NewFlashcardRepository(store repository.Store) repository.FlashcardRepository {
	return &flashcardRepository{store: store}
}

func (r *flashcardRepository) Load(ctx context.Context) ([]models.Flashcard, error) {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")

	raw, found, err := r.store.Get(ctx, repository.KeyFlashcards)
	if err != nil {
		log.Error("failed to load flashcards: %v", err)
		return nil, err
	}
	if !found {
		log.Debug("no flashcards stored yet")
		return []models.Flashcard{}, nil
	}
	cards := decodeFlashcards(raw)
	log.Debug("loaded %d flashcards", len(cards))
	return cards, nil
}

func (r *flashcardRepository) Save(ctx context.Context, cards []models.Flashcard) error {
	log := logger.FromContext(ctx).WithPrefix("flashcard_repo")
	log.Debug("saving %d flashcards", len(cards))

	raw, err := encodeFlashcards(cards)
	if err != nil {
		log.Error("failed to encode flashcards: %v", err)
		return err
	}
	if err := r.store.Put(ctx, repository.KeyFlashcards, raw); err != nil {
		log.Error("failed to save flashcards: %v", err)
		return err
	}
	return nil
}
