package study

import (
	"fmt"
	"slices"

	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/samber/lo"
)

// DefaultLevelCount is the number of built-in levels.
const DefaultLevelCount = 10

// DefaultLevels returns "Level 1" through "Level 10".
func DefaultLevels() []string {
	return lo.Map(lo.RangeFrom(1, DefaultLevelCount), func(n int, _ int) string {
		return fmt.Sprintf("Level %d", n)
	})
}

// AddLevel appends name to levels. Empty names are rejected; duplicates are
// allowed.
func AddLevel(levels []string, name string) ([]string, bool) {
	if name == "" {
		return levels, false
	}
	return append(slices.Clone(levels), name), true
}

// RemoveLevel drops every level equal to name.
func RemoveLevel(levels []string, name string) []string {
	return lo.Without(levels, name)
}

// Catalog lists the default levels followed by the user levels.
func Catalog(user []string) []models.Level {
	defaults := lo.Map(DefaultLevels(), func(name string, _ int) models.Level {
		return models.Level{Name: name, Default: true}
	})
	return append(defaults, lo.Map(user, func(name string, _ int) models.Level {
		return models.Level{Name: name}
	})...)
}
