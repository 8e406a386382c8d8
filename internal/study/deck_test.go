package study_test

import (
	"testing"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/study"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bil  = models.Flashcard{Word: "bil", MeaningPrimary: "car", MeaningSecondary: "bil"}
	hus  = models.Flashcard{Word: "hus", MeaningPrimary: "house", MeaningSecondary: "hus"}
	katt = models.Flashcard{Word: "katt", MeaningPrimary: "cat", MeaningSecondary: "gorbe"}
)

func threeCards() study.Deck {
	return study.NewDeck("Level 1", []models.Flashcard{bil, hus, katt}, nil)
}

func TestNewDeck_StartsOnFirstCardFront(t *testing.T) {
	d := threeCards()

	assert.Equal(t, 0, d.Cursor)
	assert.Equal(t, study.Front, d.Face)
	assert.Equal(t, study.Primary, d.Language)
	assert.Equal(t, "bil", d.Text())
	assert.NotNil(t, d.Favorites)
}

func TestFlip_ShowsMeaningInSelectedLanguage(t *testing.T) {
	d := threeCards().Flip()
	assert.Equal(t, study.Back, d.Face)
	assert.Equal(t, "car", d.Text())

	d = d.ToggleLanguage()
	assert.Equal(t, "bil", d.Text())

	d = d.Flip()
	assert.Equal(t, study.Front, d.Face)
	assert.Equal(t, "bil", d.Text())
}

func TestNextAndPrevious(t *testing.T) {
	d := threeCards().Flip()

	d = d.Next()
	assert.Equal(t, 1, d.Cursor)
	assert.Equal(t, study.Front, d.Face, "navigation resets to front")

	d = d.Next()
	assert.Equal(t, 2, d.Cursor)
	assert.False(t, d.CanNext())

	d = d.Previous()
	assert.Equal(t, 1, d.Cursor)
	assert.True(t, d.CanPrevious())
}

func TestNextAtLastIndexIsNoOp(t *testing.T) {
	d := threeCards().WithView(study.View{Cursor: 2, Face: study.Back})

	assert.Equal(t, d, d.Next())
}

func TestPreviousAtFirstIndexIsNoOp(t *testing.T) {
	d := threeCards().Flip()

	assert.False(t, d.CanPrevious())
	assert.Equal(t, d, d.Previous())
}

func TestLanguageSurvivesNavigation(t *testing.T) {
	d := threeCards().ToggleLanguage().Next().Flip()
	assert.Equal(t, study.Secondary, d.Language)
	assert.Equal(t, "hus", d.Text())
}

func TestAddCard(t *testing.T) {
	d := threeCards().Flip()

	added, ok := d.AddCard(models.Flashcard{Word: "hund", MeaningPrimary: "dog", MeaningSecondary: "sag"})
	require.True(t, ok)
	assert.Len(t, added.Cards, 4)
	assert.Equal(t, 3, added.Cursor)
	assert.Equal(t, study.Front, added.Face)
	assert.Equal(t, "hund", added.Text())
	assert.Len(t, d.Cards, 3, "original deck untouched")
}

func TestAddCard_EmptyFieldIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		card models.Flashcard
	}{
		{"empty word", models.Flashcard{MeaningPrimary: "dog", MeaningSecondary: "sag"}},
		{"empty primary", models.Flashcard{Word: "hund", MeaningSecondary: "sag"}},
		{"empty secondary", models.Flashcard{Word: "hund", MeaningPrimary: "dog"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := threeCards().Next()
			got, ok := d.AddCard(tt.card)
			assert.False(t, ok)
			assert.Equal(t, d, got)
		})
	}
}

func TestDeleteCurrent_FirstOfTwo(t *testing.T) {
	d := study.NewDeck("Level 1", []models.Flashcard{bil, hus}, nil)

	got, ok := d.DeleteCurrent()
	require.True(t, ok)
	assert.Equal(t, []models.Flashcard{hus}, got.Cards)
	assert.Equal(t, 0, got.Cursor)
}

func TestDeleteCurrent_LastIndexClampsDown(t *testing.T) {
	d := threeCards().WithView(study.View{Cursor: 2, Face: study.Back})

	got, ok := d.DeleteCurrent()
	require.True(t, ok)
	assert.Equal(t, []models.Flashcard{bil, hus}, got.Cards)
	assert.Equal(t, 1, got.Cursor)
	assert.Equal(t, study.Front, got.Face)
}

func TestDeleteCurrent_OnlyCardEmptiesDeck(t *testing.T) {
	d := study.NewDeck("Level 3", []models.Flashcard{katt}, nil)

	got, ok := d.DeleteCurrent()
	require.True(t, ok)
	assert.Empty(t, got.Cards)
	assert.Equal(t, 0, got.Cursor)
	assert.True(t, got.Empty())
}

func TestEmptyDeck_ControlsAreInert(t *testing.T) {
	d := study.NewDeck("Level 1", nil, []string{"bil"})

	_, ok := d.Current()
	assert.False(t, ok)
	assert.False(t, d.CanNext())
	assert.False(t, d.CanPrevious())
	assert.False(t, d.IsFavorite())
	assert.Equal(t, "", d.Text())
	assert.Equal(t, d, d.Flip())
	assert.Equal(t, d, d.Next())
	assert.Equal(t, d, d.Previous())

	_, deleted := d.DeleteCurrent()
	assert.False(t, deleted)
	got, marked := d.ToggleFavorite()
	assert.False(t, marked)
	assert.Equal(t, []string{"bil"}, got.Favorites)
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	d := study.NewDeck("Level 1", []models.Flashcard{bil, hus}, []string{"katt"})

	once, ok := d.ToggleFavorite()
	require.True(t, ok)
	assert.Equal(t, []string{"katt", "bil"}, once.Favorites)
	assert.True(t, once.IsFavorite())

	twice, ok := once.ToggleFavorite()
	require.True(t, ok)
	assert.Equal(t, []string{"katt"}, twice.Favorites)
	assert.False(t, twice.IsFavorite())
}

func TestWithView_ClampsCursor(t *testing.T) {
	d := threeCards()

	assert.Equal(t, 2, d.WithView(study.View{Cursor: 99}).Cursor)
	assert.Equal(t, 0, d.WithView(study.View{Cursor: -4}).Cursor)

	empty := study.NewDeck("Level 1", nil, nil).WithView(study.View{Cursor: 3, Face: study.Back, Language: study.Secondary})
	assert.Equal(t, 0, empty.Cursor)
	assert.Equal(t, study.Front, empty.Face)
	assert.Equal(t, study.Secondary, empty.Language)
}

func TestParseFaceAndLanguage(t *testing.T) {
	assert.Equal(t, study.Back, study.ParseFace("back"))
	assert.Equal(t, study.Front, study.ParseFace("sideways"))
	assert.Equal(t, study.Secondary, study.ParseLanguage("secondary"))
	assert.Equal(t, study.Primary, study.ParseLanguage(""))
	assert.Equal(t, "back", study.Back.String())
	assert.Equal(t, "secondary", study.Secondary.String())
}
