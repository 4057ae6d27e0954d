package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/memoirhq/memoir-backend/internal/api/http"
	"github.com/memoirhq/memoir-backend/internal/auth"
	"github.com/memoirhq/memoir-backend/internal/config"
	"github.com/memoirhq/memoir-backend/internal/generator"
	"github.com/memoirhq/memoir-backend/internal/generator/gemini"
	"github.com/memoirhq/memoir-backend/internal/health"
	"github.com/memoirhq/memoir-backend/internal/logger"
	"github.com/memoirhq/memoir-backend/internal/services"
	"github.com/memoirhq/memoir-backend/internal/store"
	"github.com/memoirhq/memoir-backend/internal/store/postgres"
	"github.com/memoirhq/memoir-backend/internal/store/sqlite"
)

func main() {
	// Optional build-target flag override (local | cloud-dev | cloud)
	buildTarget := flag.String("build-target", "", "Override BUILD_TARGET (local, cloud-dev, cloud)")
	flag.Parse()

	log := logger.New("memoir-service")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if *buildTarget != "" {
		cfg.BuildTarget = *buildTarget
		cfg.DBDriver = "auto"
		if err := cfg.ResolveDefaults(); err != nil {
			log.Fatal().Err(err).Msg("Invalid build-target override")
		}
	}

	log.Info().
		Str("build_target", cfg.BuildTarget).
		Str("db_driver", cfg.DBDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Memoir service starting")

	ctx := context.Background()

	// -------- Record store ------------------
	var db *sql.DB
	switch cfg.DBDriver {
	case "sqlite":
		db, err = sqlite.Open(cfg.SQLitePath)
		if err == nil {
			err = sqlite.Bootstrap(ctx, db)
		}
	case "postgres":
		db, err = postgres.Open(cfg.PostgresDSN)
		if err == nil {
			err = postgres.Bootstrap(ctx, db)
		}
	default:
		err = fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Record store unavailable")
	}
	defer func() { _ = db.Close() }()

	var recordStore store.Store
	if cfg.DBDriver == "sqlite" {
		recordStore = sqlite.NewWithDB(db)
	} else {
		recordStore = postgres.NewWithDB(db)
	}

	// -------- Generation provider ----------
	gen := gemini.New(cfg.GenBaseURL, cfg.GenModel, cfg.GenAPIKey, cfg.GenTimeout)

	// -------- Identity ----------------------
	var verifier auth.Verifier
	var provider auth.Provider
	if cfg.AuthBaseURL != "" {
		rest := auth.NewRestProvider(cfg.AuthBaseURL, cfg.AuthAPIKey)
		verifier = rest
		provider = rest
	} else {
		log.Warn().Msg("AUTH_BASE_URL not set, using local development verifier")
		verifier = auth.NewMockVerifier()
	}

	// -------- Health monitor ---------------
	storeChecker := store.NewStoreHealthChecker(recordStore, log, 2*time.Second)
	genChecker := generator.NewHealthChecker(gen, log, 2*time.Second)
	serviceHealth := health.NewServiceHealthChecker(log, storeChecker, genChecker)
	go storeChecker.Start(ctx, 30*time.Second)
	go genChecker.Start(ctx, 30*time.Second)
	go serviceHealth.Start(ctx, 30*time.Second)

	// -------- Router & Server --------------
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Store:         recordStore,
		Stories:       services.NewAutobiographyService(recordStore, gen),
		Shares:        services.NewShareService(recordStore, cfg.ShareBaseURL),
		Admin:         services.NewAdminService(recordStore, auth.NewAdmins(cfg.AdminEmails)),
		Verifier:      verifier,
		AuthProvider:  provider,
		ServiceHealth: serviceHealth,
	})
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.GenTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}
