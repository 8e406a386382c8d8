package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Get("/", s.handleCatalog)
	r.Post("/levels", s.handleAddLevel)
	r.Post("/levels/delete", s.handleDeleteLevel)

	r.Get("/deck", s.handleDeck)
	r.Post("/deck/cards", s.handleAddCard)
	r.Post("/deck/{action}", s.handleDeckAction)

	r.Get("/favorites", s.handleFavorites)
	r.Post("/favorites/unmark", s.handleUnmark)

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	if len(s.CORSAllowedOrigins) == 0 {
		return r
	}
	return cors.New(cors.Options{
		AllowedOrigins: s.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
		MaxAge:         86400,
	}).Handler(r)
}
