package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/jeebeez/jeebeecard/internal/config"
	"github.com/jeebeez/jeebeecard/internal/db"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func execute(store repository.Store, args ...string) (string, error) {
	cmd := newRootCmd(func(config.Config) (repository.Store, error) { return store, nil })

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--store", "memory", "--log-level", "error"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, store repository.Store, args ...string) string {
	t.Helper()
	out, err := execute(store, args...)
	require.NoError(t, err)
	return out
}

func TestLevelsCommands(t *testing.T) {
	store := db.NewMemoryStore()

	assert.Equal(t, "1 user levels\n", mustExecute(t, store, "levels", "add", "Verbs"))
	mustExecute(t, store, "levels", "add", "Nouns")

	out := mustExecute(t, store, "levels", "list")
	assert.Contains(t, out, "default\tLevel 1\n")
	assert.Contains(t, out, "default\tLevel 10\n")
	assert.Contains(t, out, "user\tVerbs\n")
	assert.Contains(t, out, "user\tNouns\n")

	assert.Equal(t, "1 user levels\n", mustExecute(t, store, "levels", "delete", "Verbs"))
	assert.NotContains(t, mustExecute(t, store, "levels", "list"), "Verbs")
}

func TestCardsCommands(t *testing.T) {
	store := db.NewMemoryStore()

	assert.Contains(t, mustExecute(t, store, "cards", "list"), "No Flashcards! Add one.")

	out := mustExecute(t, store, "cards", "add", "--word", "bil", "--primary", "car", "--secondary", "bil")
	assert.Equal(t, "added \"bil\" at index 0\n", out)
	mustExecute(t, store, "cards", "add", "--word", "hus", "--primary", "house", "--secondary", "hus")
	mustExecute(t, store, "favorites", "mark", "hus")

	out = mustExecute(t, store, "cards", "list")
	assert.Contains(t, out, "bil")
	assert.Contains(t, out, "house")

	out = mustExecute(t, store, "cards", "delete", "--index", "0")
	assert.Equal(t, "deleted \"bil\", 1 cards left\n", out)

	out = mustExecute(t, store, "cards", "list")
	assert.NotContains(t, out, "car ")
	assert.Contains(t, out, "hus")
}

func TestCardsAddRequiresAllFields(t *testing.T) {
	store := db.NewMemoryStore()

	_, err := execute(store, "cards", "add", "--word", "bil")
	assert.Error(t, err)

	_, found, err := store.Get(context.Background(), repository.KeyFlashcards)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCardsDeleteOutOfRange(t *testing.T) {
	store := db.NewMemoryStore()
	mustExecute(t, store, "cards", "add", "--word", "bil", "--primary", "car", "--secondary", "bil")

	_, err := execute(store, "cards", "delete", "--index", "3")
	assert.ErrorContains(t, err, "out of range")
}

func TestFavoritesCommands(t *testing.T) {
	store := db.NewMemoryStore()

	mustExecute(t, store, "favorites", "mark", "bil")
	assert.Equal(t, "1 marked words\n", mustExecute(t, store, "favorites", "mark", "bil"))
	mustExecute(t, store, "favorites", "mark", "hus")
	assert.Equal(t, "bil\nhus\n", mustExecute(t, store, "favorites", "list"))

	assert.Equal(t, "1 marked words\n", mustExecute(t, store, "favorites", "unmark", "bil"))
	assert.Equal(t, "hus\n", mustExecute(t, store, "marked", "list"))
}

func TestExportCommand(t *testing.T) {
	store := db.NewMemoryStore()
	mustExecute(t, store, "cards", "add", "--word", "bil", "--primary", "car", "--secondary", "bil")
	mustExecute(t, store, "favorites", "mark", "bil")

	out := mustExecute(t, store, "export")
	assert.Equal(t, "car", gjson.Get(out, "flashcards.0.1").String())
	assert.Equal(t, "bil", gjson.Get(out, "markedWords.0").String())
	assert.True(t, gjson.Get(out, "userLevels").IsArray())

	out = mustExecute(t, store, "export", "--format", "yaml")
	assert.Contains(t, out, "flashcards:")
	assert.Contains(t, out, "markedWords:")

	_, err := execute(store, "export", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestInvalidStoreFlag(t *testing.T) {
	_, err := execute(db.NewMemoryStore(), "--store", "redis", "levels", "list")
	assert.ErrorContains(t, err, "STORE_DRIVER")
}
