package repository

import (
	"context"

	"github.com/jeebeez/jeebeecard/internal/models"
)

// Keys under which the three collections are persisted.
const (
	KeyFlashcards  = "flashcards"
	KeyMarkedWords = "markedWords"
	KeyUserLevels  = "userLevels"
)

// Store is a flat key-value store. Values are whole JSON documents; a Put
// overwrites the previous value for the key.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// FlashcardRepository handles the global flashcard list.
type FlashcardRepository interface {
	Load(ctx context.Context) ([]models.Flashcard, error)
	Save(ctx context.Context, cards []models.Flashcard) error
}

// FavoriteRepository handles the marked-words list.
type FavoriteRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, words []string) error
}

// LevelRepository handles user-created level names.
type LevelRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, names []string) error
}
