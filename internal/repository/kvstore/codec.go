package kvstore

import (
	"context"
	"encoding/json"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/tidwall/gjson"
)

// decodeStrings reads a JSON array of strings. Anything that is not an array
// yields an empty list; non-string elements are skipped.
func decodeStrings(raw []byte) []string {
	out := []string{}
	res := gjson.ParseBytes(raw)
	if !res.IsArray() {
		return out
	}
	res.ForEach(func(_, v gjson.Result) bool {
		if v.Type == gjson.String {
			out = append(out, v.String())
		}
		return true
	})
	return out
}

// decodeFlashcards reads an array of [word, primary, secondary] tuples.
// Tuples with fewer than three strings are skipped; extra elements are ignored.
func decodeFlashcards(raw []byte) []models.Flashcard {
	out := []models.Flashcard{}
	res := gjson.ParseBytes(raw)
	if !res.IsArray() {
		return out
	}
	res.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsArray() {
			return true
		}
		fields := entry.Array()
		if len(fields) < 3 {
			return true
		}
		for _, f := range fields[:3] {
			if f.Type != gjson.String {
				return true
			}
		}
		out = append(out, models.Flashcard{
			Word:             fields[0].String(),
			MeaningPrimary:   fields[1].String(),
			MeaningSecondary: fields[2].String(),
		})
		return true
	})
	return out
}

func encodeFlashcards(cards []models.Flashcard) ([]byte, error) {
	tuples := make([][]string, 0, len(cards))
	for _, c := range cards {
		tuples = append(tuples, c.Tuple())
	}
	return json.Marshal(tuples)
}

func encodeStrings(values []string) ([]byte, error) {
	if values == nil {
		values = []string{}
	}
	return json.Marshal(values)
}

// loadStrings returns the string list under key, or an empty list when the
// key is absent.
func loadStrings(ctx context.Context, store repository.Store, key string) ([]string, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []string{}, nil
	}
	return decodeStrings(raw), nil
}

func saveStrings(ctx context.Context, store repository.Store, key string, values []string) error {
	raw, err := encodeStrings(values)
	if err != nil {
		return err
	}
	return store.Put(ctx, key, raw)
}
