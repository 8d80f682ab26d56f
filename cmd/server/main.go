package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prism-rei/vocatag/internal/app"
	"github.com/prism-rei/vocatag/internal/catalog"
	"github.com/prism-rei/vocatag/internal/config"
	httpapp "github.com/prism-rei/vocatag/internal/http"
	"github.com/prism-rei/vocatag/internal/logger"
	"github.com/prism-rei/vocatag/internal/store"
	"github.com/prism-rei/vocatag/internal/worker"
)

func main() {
	cfg := config.Load()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to init DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	identity, err := catalog.IdentityByName(cfg.Catalog)
	if err != nil {
		appLogger.Error("Failed to resolve catalog", "error", err)
		os.Exit(1)
	}

	prefs := catalog.Preferences{
		VAName:                      cfg.VAName,
		Language:                    languagePreference(cfg.Language),
		TranslatedLyrics:            cfg.TranslatedLyrics,
		IncludeFeaturedAlbumArtists: cfg.IncludeFeaturedAlbumArtists,
		IgnoreVideoTracks:           cfg.IgnoreVideoTracks,
	}

	client := catalog.NewClient(identity, prefs, nil, cfg.MaxResults, appLogger)
	provider := catalog.NewCachedProvider(client, catalog.NewStoreCache(db), identity.Name, cfg.CacheTTL)

	syncService := app.NewSyncService(db, appLogger)

	w := worker.NewWorker(db, provider, cfg, appLogger)
	w.Start()
	defer w.Stop()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := httpapp.NewHandler(provider, syncService, appLogger)
	h.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		appLogger.Info("Server listening", "addr", srv.Addr, "catalog", identity.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	appLogger.Info("Server exiting")
}

func languagePreference(lang string) catalog.LanguagePreference {
	switch strings.ToLower(lang) {
	case "japanese":
		return catalog.LangJapanese
	case "romaji":
		return catalog.LangRomaji
	case "default":
		return catalog.LangDefault
	default:
		return catalog.LangEnglish
	}
}
