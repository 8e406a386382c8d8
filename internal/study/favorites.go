package study

import (
	"slices"

	"github.com/samber/lo"
)

// ToggleWord removes every occurrence of word from words when present and
// appends it otherwise. The input is never modified.
func ToggleWord(words []string, word string) []string {
	if lo.Contains(words, word) {
		return RemoveWord(words, word)
	}
	return append(slices.Clone(words), word)
}

// RemoveWord returns words without any occurrence of word.
func RemoveWord(words []string, word string) []string {
	return lo.Without(words, word)
}
