package api

import (
	"net/http"
	"net/url"

	"github.com/jeebeez/jeebeecard/internal/logger"
)

// handleFavorites always rereads the store so marks made in a deck show up.
func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug("rendering favorites")

	words, err := s.FavoritesService.ListFavorites(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "favorites.html", pageData{
		"words":     words,
		"return_to": safeReturn(r.URL.Query().Get("return_to"), ""),
	})
}

func (s *Server) handleUnmark(w http.ResponseWriter, r *http.Request) {
	word := r.FormValue("word")
	logger.FromContext(r.Context()).Debug("unmark requested: %q", word)

	if _, err := s.FavoritesService.Unmark(r.Context(), word); err != nil {
		handleError(w, r, err)
		return
	}
	target := "/favorites"
	if back := safeReturn(r.FormValue("return_to"), ""); back != "" {
		target += "?" + url.Values{"return_to": {back}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
