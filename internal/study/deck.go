// Package study holds the screen state of the flashcard app as plain values.
// Every transition is a function from one state to the next; persistence is
// left to the caller.
package study

import (
	"slices"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/samber/lo"
)

// Face is the visible side of the current card.
type Face int

const (
	Front Face = iota
	Back
)

func (f Face) String() string {
	if f == Back {
		return "back"
	}
	return "front"
}

// ParseFace maps "back" to Back and anything else to Front.
func ParseFace(s string) Face {
	if s == "back" {
		return Back
	}
	return Front
}

// Language selects which meaning the back of a card shows.
type Language int

const (
	Primary Language = iota
	Secondary
)

func (l Language) String() string {
	if l == Secondary {
		return "secondary"
	}
	return "primary"
}

// ParseLanguage maps "secondary" to Secondary and anything else to Primary.
func ParseLanguage(s string) Language {
	if s == "secondary" {
		return Secondary
	}
	return Primary
}

// View is the ephemeral browsing state of a deck. It is never persisted.
type View struct {
	Cursor   int
	Face     Face
	Language Language
}

// Deck is the full state of the card deck screen for one level.
type Deck struct {
	Level     string
	Cards     []models.Flashcard
	Favorites []string
	View
}

// NewDeck returns a deck positioned on the first card, front side up.
func NewDeck(level string, cards []models.Flashcard, favorites []string) Deck {
	if cards == nil {
		cards = []models.Flashcard{}
	}
	if favorites == nil {
		favorites = []string{}
	}
	return Deck{Level: level, Cards: cards, Favorites: favorites}
}

// WithView restores a previously rendered view. The cursor is clamped into
// range; an empty deck always has cursor 0 and shows the front.
func (d Deck) WithView(v View) Deck {
	d.View = v
	switch {
	case len(d.Cards) == 0:
		d.Cursor = 0
		d.Face = Front
	case d.Cursor < 0:
		d.Cursor = 0
	case d.Cursor > len(d.Cards)-1:
		d.Cursor = len(d.Cards) - 1
	}
	return d
}

// Empty reports whether the deck has no cards.
func (d Deck) Empty() bool {
	return len(d.Cards) == 0
}

// Current returns the card under the cursor.
func (d Deck) Current() (models.Flashcard, bool) {
	if d.Cursor < 0 || d.Cursor >= len(d.Cards) {
		return models.Flashcard{}, false
	}
	return d.Cards[d.Cursor], true
}

// CanNext reports whether Next would move the cursor.
func (d Deck) CanNext() bool {
	_, ok := d.Current()
	return ok && d.Cursor < len(d.Cards)-1
}

// CanPrevious reports whether Previous would move the cursor.
func (d Deck) CanPrevious() bool {
	_, ok := d.Current()
	return ok && d.Cursor > 0
}

// Text is what the card currently shows: the word on the front, the meaning
// in the selected language on the back.
func (d Deck) Text() string {
	card, ok := d.Current()
	if !ok {
		return ""
	}
	if d.Face == Front {
		return card.Word
	}
	if d.Language == Secondary {
		return card.MeaningSecondary
	}
	return card.MeaningPrimary
}

// IsFavorite reports whether the current card's word is marked.
func (d Deck) IsFavorite() bool {
	card, ok := d.Current()
	return ok && lo.Contains(d.Favorites, card.Word)
}

// Flip turns the current card over. No-op without a current card.
func (d Deck) Flip() Deck {
	if _, ok := d.Current(); !ok {
		return d
	}
	if d.Face == Front {
		d.Face = Back
	} else {
		d.Face = Front
	}
	return d
}

// ToggleLanguage switches the meaning shown on the back. The choice survives
// navigation.
func (d Deck) ToggleLanguage() Deck {
	if d.Language == Primary {
		d.Language = Secondary
	} else {
		d.Language = Primary
	}
	return d
}

// Next moves to the following card, front side up. At the last card the
// deck is returned unchanged.
func (d Deck) Next() Deck {
	if !d.CanNext() {
		return d
	}
	d.Cursor++
	d.Face = Front
	return d
}

// Previous moves to the preceding card, front side up. At the first card the
// deck is returned unchanged.
func (d Deck) Previous() Deck {
	if !d.CanPrevious() {
		return d
	}
	d.Cursor--
	d.Face = Front
	return d
}

// AddCard appends card and moves the cursor onto it. It reports false and
// leaves the deck unchanged when any field of card is empty.
func (d Deck) AddCard(card models.Flashcard) (Deck, bool) {
	if !card.Complete() {
		return d, false
	}
	d.Cards = append(slices.Clone(d.Cards), card)
	d.Cursor = len(d.Cards) - 1
	d.Face = Front
	return d, true
}

// DeleteCurrent removes the card under the cursor and clamps the cursor.
// Deleting the only card empties the whole list. It reports false when there
// is no current card.
func (d Deck) DeleteCurrent() (Deck, bool) {
	if _, ok := d.Current(); !ok {
		return d, false
	}
	if len(d.Cards) == 1 {
		d.Cards = []models.Flashcard{}
		d.Cursor = 0
	} else {
		d.Cards = slices.Delete(slices.Clone(d.Cards), d.Cursor, d.Cursor+1)
		d.Cursor = min(d.Cursor, len(d.Cards)-1)
	}
	d.Face = Front
	return d, true
}

// ToggleFavorite marks the current word, or unmarks it when already marked.
// It reports false when there is no current card.
func (d Deck) ToggleFavorite() (Deck, bool) {
	card, ok := d.Current()
	if !ok {
		return d, false
	}
	d.Favorites = ToggleWord(d.Favorites, card.Word)
	return d, true
}
