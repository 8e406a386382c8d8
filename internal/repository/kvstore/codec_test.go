package kvstore

import (
	"testing"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDecodeFlashcards(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []models.Flashcard
	}{
		{
			name: "well formed",
			raw:  `[["bil","car","bil"],["hus","house","hus"]]`,
			want: []models.Flashcard{
				{Word: "bil", MeaningPrimary: "car", MeaningSecondary: "bil"},
				{Word: "hus", MeaningPrimary: "house", MeaningSecondary: "hus"},
			},
		},
		{
			name: "short tuple skipped",
			raw:  `[["bil","car"],["hus","house","hus"]]`,
			want: []models.Flashcard{{Word: "hus", MeaningPrimary: "house", MeaningSecondary: "hus"}},
		},
		{
			name: "extra elements ignored",
			raw:  `[["bil","car","bil","extra"]]`,
			want: []models.Flashcard{{Word: "bil", MeaningPrimary: "car", MeaningSecondary: "bil"}},
		},
		{
			name: "non string field skipped",
			raw:  `[["bil",1,"bil"]]`,
			want: []models.Flashcard{},
		},
		{
			name: "not an array",
			raw:  `{"word":"bil"}`,
			want: []models.Flashcard{},
		},
		{
			name: "garbage",
			raw:  `not json`,
			want: []models.Flashcard{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, decodeFlashcards([]byte(tt.raw)))
		})
	}
}

func TestDecodeStrings(t *testing.T) {
	assert.Equal(t, []string{"bil", "hus"}, decodeStrings([]byte(`["bil",2,"hus",null]`)))
	assert.Equal(t, []string{}, decodeStrings([]byte(`"bil"`)))
	assert.Equal(t, []string{}, decodeStrings([]byte(`[]`)))
}

func TestEncodeWritesEmptyArrays(t *testing.T) {
	raw, err := encodeStrings(nil)
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))

	raw, err = encodeFlashcards(nil)
	assert.NoError(t, err)
	assert.Equal(t, `[]`, string(raw))
}
