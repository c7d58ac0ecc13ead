// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospitalrun-locale/internal/application"
	"hospitalrun-locale/internal/config"
	"hospitalrun-locale/internal/infra/i18n"
	"hospitalrun-locale/internal/infra/logging"
	"hospitalrun-locale/internal/infra/metrics"
	"hospitalrun-locale/internal/infra/web"
	"hospitalrun-locale/internal/usecase"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (console logs, no redaction)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)

	metrics.MustRegister()
	metrics.SetBuildInfo(version, commit)

	// ---- Document store ----
	store, closeStore, err := application.OpenDocumentStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("document store")
	}
	defer closeStore()

	// ---- Intl ----
	catalog, err := i18n.LoadCatalog(i18n.LocalesFS)
	if err != nil {
		logger.Fatal().Err(err).Msg("translations")
	}
	for _, code := range cfg.Locale.Available {
		if !catalog.Has(code) {
			logger.Warn().Str("language", code).Msg("configured language has no translations")
		}
	}
	intl := i18n.NewIntl(cfg.Locale.Default)
	dir := i18n.NewDocumentDirection()

	// ---- Use cases ----
	langUC := usecase.NewLanguagePreferenceUseCase(web.RequestUser{}, store, intl, dir, usecase.LanguagePreferenceOptions{
		DefaultLanguage: cfg.Locale.Default,
		DocumentID:      cfg.Store.DocumentID,
		RTL:             usecase.NewRTLTable(cfg.Locale.RTL...),
	}, logger)
	langUC.Apply(cfg.Locale.Default)

	// ---- HTTP ----
	var auth *web.AuthManager
	if cfg.Auth.JWTSecret != "" {
		auth = web.NewAuthManager(cfg.Auth.JWTSecret, 12*time.Hour)
	} else {
		logger.Warn().Msg("auth.jwt_secret not set; every request is anonymous")
	}
	srv := web.NewServer(langUC, catalog, auth, logger, cfg.Runtime.Dev)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("http listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("http server error")
			cancel()
		}
	}()

	// ---- Graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigc:
	case <-ctx.Done():
	}
	logger.Info().Msg("shutdown requested")

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
}
