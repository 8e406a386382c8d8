package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeebeez/jeebeecard/internal/api"
	"github.com/jeebeez/jeebeecard/internal/services"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	log := a.log

	log.Info("===========================================")
	log.Info("JeeBeeCard Server Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", a.cfg.Addr)
	log.Debug("db_path=%s", a.cfg.DBPath)
	log.Debug("cors_allowed_origins=%v", a.cfg.CORSAllowedOrigins)
	log.Debug("shutdown_timeout_seconds=%d", a.cfg.ShutdownTimeoutSeconds)

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}

	srv := &api.Server{
		LevelService:       services.NewLevelService(a.levels),
		DeckService:        services.NewDeckService(a.flashcards, a.favorites),
		FavoritesService:   services.NewFavoritesService(a.favorites),
		Store:              a.store,
		Templates:          tmpl,
		CORSAllowedOrigins: a.cfg.CORSAllowedOrigins,
	}

	httpServer := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening on %s", a.cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		log.Info("shutdown signal received, initiating graceful shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("JeeBeeCard Server Stopped")
	log.Info("===========================================")
	return nil
}
