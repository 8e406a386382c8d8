package models

// Flashcard is a vocabulary word with its two meanings. The primary meaning
// is shown by default when the card is flipped; the secondary one when the
// deck's language toggle is switched.
type Flashcard struct {
	Word             string `json:"word"`
	MeaningPrimary   string `json:"meaning_primary"`
	MeaningSecondary string `json:"meaning_secondary"`
}

// Complete reports whether all three fields are non-empty.
func (c Flashcard) Complete() bool {
	return c.Word != "" && c.MeaningPrimary != "" && c.MeaningSecondary != ""
}

// Tuple returns the stored shape of the card: [word, primary, secondary].
func (c Flashcard) Tuple() []string {
	return []string{c.Word, c.MeaningPrimary, c.MeaningSecondary}
}
