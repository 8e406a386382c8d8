package models

// Level is a named grouping of flashcards shown on the catalog.
type Level struct {
	Name    string `json:"name"`
	Default bool   `json:"default"`
}
