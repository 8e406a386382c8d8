package api

import (
	"net/http"

	"github.com/jeebeez/jeebeecard/internal/logger"
)

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("rendering level catalog")

	userLevels, err := s.LevelService.ListUserLevels(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}

	s.render(w, r, "catalog.html", pageData{
		"default_levels": s.LevelService.ListDefaultLevels(),
		"user_levels":    userLevels,
	})
}

func (s *Server) handleAddLevel(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	logger.FromContext(r.Context()).Debug("add level requested: %q", name)

	if _, err := s.LevelService.AddUserLevel(r.Context(), name); err != nil {
		handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteLevel(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	logger.FromContext(r.Context()).Debug("delete level requested: %q", name)

	if _, err := s.LevelService.DeleteUserLevel(r.Context(), name); err != nil {
		handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
