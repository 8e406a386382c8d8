package api

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/jeebeez/jeebeecard/internal/logger"
	"github.com/jeebeez/jeebeecard/internal/repository"
	"github.com/jeebeez/jeebeecard/internal/services"
)

type Server struct {
	LevelService       services.LevelService
	DeckService        services.DeckService
	FavoritesService   services.FavoritesService
	Store              repository.Store
	Templates          *template.Template
	CORSAllowedOrigins []string
}

type pageData map[string]any

// render executes the named template into a buffer so a failing template
// never leaves a half-written page behind.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}

	var buf bytes.Buffer
	if err := s.Templates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.FromContext(r.Context()).Error("failed to render template %s: %v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
