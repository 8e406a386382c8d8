package testutil

import (
	"testing"

	"github.com/jeebeez/jeebeecard/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens an in-memory sqlite store with all migrations applied.
// It is closed when the test finishes.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()
	store, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { MustClose(t, store) })
	return store
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	require.NoError(t, closer.Close())
}
