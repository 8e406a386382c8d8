package services

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/errors"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/jeebeez/jeebeecard/internal/study"
)

// DeckService backs the card deck screen. Navigation and flipping are pure
// transitions on study.Deck; the mutating operations here write the whole
// affected list back to the store before returning.
type DeckService interface {
	Open(ctx context.Context, level string) (study.Deck, error)
	AddCard(ctx context.Context, deck study.Deck, card models.Flashcard) (study.Deck, error)
	DeleteCurrentCard(ctx context.Context, deck study.Deck) (study.Deck, error)
	ToggleFavorite(ctx context.Context, deck study.Deck) (study.Deck, error)
}

type deckService struct {
	flashcardRepo repository.FlashcardRepository
	favoriteRepo  repository.FavoriteRepository
}

// NewDeckService creates a new DeckService
func NewDeckService(flashcardRepo repository.FlashcardRepository, favoriteRepo repository.FavoriteRepository) DeckService {
	return &deckService{flashcardRepo: flashcardRepo, favoriteRepo: favoriteRepo}
}

func (s *deckService) Open(ctx context.Context, level string) (study.Deck, error) {
	log := logger.FromContext(ctx).WithField("level", level)
	log.Debug("opening deck")

	// Every level reads the same global flashcard list.
	cards, err := s.flashcardRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load flashcards: %v", err)
		return study.Deck{}, errors.NewInternalError(err)
	}

	favorites, err := s.favoriteRepo.Load(ctx)
	if err != nil {
		log.Error("failed to load marked words: %v", err)
		return study.Deck{}, errors.NewInternalError(err)
	}

	return study.NewDeck(level, cards, favorites), nil
}

func (s *deckService) AddCard(ctx context.Context, deck study.Deck, card models.Flashcard) (study.Deck, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{"level": deck.Level, "word": card.Word})

	updated, ok := deck.AddCard(card)
	if !ok {
		log.Debug("ignoring card with empty field")
		return deck, nil
	}

	if err := s.flashcardRepo.Save(ctx, updated.Cards); err != nil {
		log.Error("failed to save flashcards: %v", err)
		return deck, errors.NewInternalError(err)
	}
	log.Info("card added at index %d", updated.Cursor)
	return updated, nil
}

func (s *deckService) DeleteCurrentCard(ctx context.Context, deck study.Deck) (study.Deck, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{"level": deck.Level, "cursor": deck.Cursor})

	updated, ok := deck.DeleteCurrent()
	if !ok {
		log.Debug("no current card to delete")
		return deck, nil
	}

	if err := s.flashcardRepo.Save(ctx, updated.Cards); err != nil {
		log.Error("failed to save flashcards: %v", err)
		return deck, errors.NewInternalError(err)
	}
	log.Info("card deleted, %d remaining", len(updated.Cards))
	return updated, nil
}

func (s *deckService) ToggleFavorite(ctx context.Context, deck study.Deck) (study.Deck, error) {
	log := logger.FromContext(ctx).WithFields(map[string]any{"level": deck.Level, "cursor": deck.Cursor})

	updated, ok := deck.ToggleFavorite()
	if !ok {
		log.Debug("no current card to mark")
		return deck, nil
	}

	if err := s.favoriteRepo.Save(ctx, updated.Favorites); err != nil {
		log.Error("failed to save marked words: %v", err)
		return deck, errors.NewInternalError(err)
	}
	log.Debug("favorite toggled, marked=%t", updated.IsFavorite())
	return updated, nil
}
