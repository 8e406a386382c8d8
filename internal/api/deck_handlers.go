package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/jeebeez/jeebeecard/internal/errors"
	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/models"
	"github.com/jeebeez/jeebeecard/internal/study"
)

// openDeck loads the deck for the level named in values and restores the
// view carried alongside it.
func (s *Server) openDeck(r *http.Request, values url.Values) (study.Deck, error) {
	level := values.Get("level")
	if level == "" {
		return study.Deck{}, errors.NewBadRequestError("level is required")
	}
	deck, err := s.DeckService.Open(r.Context(), level)
	if err != nil {
		return study.Deck{}, err
	}
	return deck.WithView(viewFromValues(values)), nil
}

func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	deck, err := s.openDeck(r, r.URL.Query())
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Debug("rendering deck: level=%s, cursor=%d, face=%s", deck.Level, deck.Cursor, deck.Face)

	_, hasCurrent := deck.Current()
	s.render(w, r, "deck.html", pageData{
		"level":        deck.Level,
		"empty":        deck.Empty(),
		"has_current":  hasCurrent,
		"text":         deck.Text(),
		"back":         deck.Face == study.Back,
		"secondary":    deck.Language == study.Secondary,
		"favorite":     deck.IsFavorite(),
		"can_next":     deck.CanNext(),
		"can_previous": deck.CanPrevious(),
		"position":     deck.Cursor + 1,
		"count":        len(deck.Cards),
		"state": pageData{
			"level": deck.Level,
			"i":     deck.Cursor,
			"face":  deck.Face.String(),
			"lang":  deck.Language.String(),
		},
		"self": deckURL(deck),
	})
}

func (s *Server) handleDeckAction(w http.ResponseWriter, r *http.Request) {
	action := chi.URLParam(r, "action")
	log := logger.FromContext(r.Context()).WithField("action", action)

	if err := r.ParseForm(); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid form"))
		return
	}
	deck, err := s.openDeck(r, r.PostForm)
	if err != nil {
		handleError(w, r, err)
		return
	}

	switch action {
	case "flip":
		deck = deck.Flip()
	case "next":
		deck = deck.Next()
	case "previous":
		deck = deck.Previous()
	case "language":
		deck = deck.ToggleLanguage()
	case "favorite":
		deck, err = s.DeckService.ToggleFavorite(r.Context(), deck)
	case "delete":
		deck, err = s.DeckService.DeleteCurrentCard(r.Context(), deck)
	default:
		log.Warn("unknown deck action")
		handleError(w, r, errors.NewBadRequestError("unknown deck action: "+action))
		return
	}
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("deck action applied: cursor=%d, face=%s", deck.Cursor, deck.Face)
	http.Redirect(w, r, deckURL(deck), http.StatusSeeOther)
}

func (s *Server) handleAddCard(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid form"))
		return
	}
	deck, err := s.openDeck(r, r.PostForm)
	if err != nil {
		handleError(w, r, err)
		return
	}

	deck, err = s.DeckService.AddCard(r.Context(), deck, models.Flashcard{
		Word:             r.PostForm.Get("word"),
		MeaningPrimary:   r.PostForm.Get("meaning_primary"),
		MeaningSecondary: r.PostForm.Get("meaning_secondary"),
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	http.Redirect(w, r, deckURL(deck), http.StatusSeeOther)
}
