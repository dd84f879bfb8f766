package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/sgphoto/photoreview-api/internal/config"
	"github.com/sgphoto/photoreview-api/internal/domain/bookmark"
	"github.com/sgphoto/photoreview-api/internal/domain/catalog"
	"github.com/sgphoto/photoreview-api/internal/domain/media"
	"github.com/sgphoto/photoreview-api/internal/domain/review"
	"github.com/sgphoto/photoreview-api/internal/domain/session"
	"github.com/sgphoto/photoreview-api/internal/domain/settings"
	"github.com/sgphoto/photoreview-api/internal/middleware"
	"github.com/sgphoto/photoreview-api/internal/pkg/logger"
	"github.com/sgphoto/photoreview-api/internal/pkg/response"
)

const (
	appName    = "SG Photo Reviewer"
	appVersion = "1.0.0"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting photo review server")

	settingsStore := settings.Open(cfg.SettingsFile)

	bookmarkRepo, err := bookmark.OpenRepository(cfg.BookmarkDB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open bookmark database")
	}
	defer bookmarkRepo.Close()

	mediaService, err := media.NewService(settingsStore, cfg.ThumbnailDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare thumbnail cache")
	}

	// ---------- Services ----------
	catalogService := catalog.NewService(settingsStore)
	reviewService := review.NewService(settingsStore)
	bookmarkService := bookmark.NewService(bookmarkRepo, settingsStore)
	sessionManager := session.NewManager(settingsStore)

	// ---------- Handlers ----------
	catalogHandler := catalog.NewHandler(catalogService)
	reviewHandler := review.NewHandler(reviewService)
	mediaHandler := media.NewHandler(mediaService)
	settingsHandler := settings.NewHandler(settingsStore)
	bookmarkHandler := bookmark.NewHandler(bookmarkService)
	sessionHandler := session.NewHandler(sessionManager)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.OK(w, map[string]string{
			"status":  "ok",
			"version": appVersion,
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", func(w http.ResponseWriter, r *http.Request) {
			response.OK(w, map[string]string{
				"name":    appName,
				"version": appVersion,
			})
		})

		r.Mount("/config", settingsHandler.Routes())
		r.Mount("/bookmarks", bookmarkHandler.Routes())
		r.Mount("/session", sessionHandler.Routes())

		// Flat endpoints: /api/browse, /api/scan, /api/move and friends.
		catalogHandler.Register(r)
		reviewHandler.Register(r)
		mediaHandler.Register(r)
	})

	// Optional bundled UI. The API works headless without it.
	if info, err := os.Stat(cfg.WebDir); err == nil && info.IsDir() {
		r.Handle("/*", http.FileServer(http.Dir(cfg.WebDir)))
		log.Info().Str("dir", cfg.WebDir).Msg("Serving static UI")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}
