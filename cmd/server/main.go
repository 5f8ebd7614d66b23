// Package main provides the FAQ chatbot server entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/unanda-ft/faqbot/internal/buildinfo"
	"github.com/unanda-ft/faqbot/internal/config"
	"github.com/unanda-ft/faqbot/internal/dialog"
	"github.com/unanda-ft/faqbot/internal/knowledge"
	"github.com/unanda-ft/faqbot/internal/logger"
	"github.com/unanda-ft/faqbot/internal/metrics"
	"github.com/unanda-ft/faqbot/internal/nlu"
	"github.com/unanda-ft/faqbot/internal/ratelimit"
	"github.com/unanda-ft/faqbot/internal/response"
	"github.com/unanda-ft/faqbot/internal/sentry"
	"github.com/unanda-ft/faqbot/internal/session"
	"github.com/unanda-ft/faqbot/internal/web"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "faqbot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:    cfg.BetterStackToken,
		BetterStackEndpoint: cfg.BetterStackEndpoint,
	})
	log = log.WithField("service", "faqbot")
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}
	slog.SetDefault(log.Logger)

	log.WithField("version", buildinfo.Version).Info("Starting FT UNANDA FAQ chatbot")
	if cfg.BetterStackToken != "" {
		log.WithField("endpoint", cfg.BetterStackEndpoint).Info("Better Stack logging enabled")
	}

	if cfg.SentryEnabled {
		if err := sentry.Initialize(sentry.Config{
			Token:       cfg.SentryToken,
			Host:        cfg.SentryHost,
			Environment: cfg.SentryEnvironment,
			Release:     buildinfo.Version,
		}); err != nil {
			return fmt.Errorf("sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
		log.Info("Sentry crash reporting enabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)

	kb := knowledge.Default()
	log.WithField("intents", len(kb.IntentDescriptions)).Info("Knowledge base loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	chain, err := nlu.NewFromConfig(ctx, cfg, kb, log, m)
	if err != nil {
		return fmt.Errorf("nlu: %w", err)
	}
	defer func() { _ = chain.Close() }()
	log.WithField("providers", cfg.NLUProviders).Info("NLU chain initialized")

	store, err := session.NewSQLiteStore(cfg.SQLitePath())
	if err != nil {
		return fmt.Errorf("session store: %w", err)
	}
	defer func() { _ = store.Close() }()
	log.WithField("path", cfg.SQLitePath()).
		WithField("session_ttl", cfg.SessionTTL).
		Info("Session store connected")

	janitor := session.NewJanitor(store, cfg.SessionTTL, config.SessionJanitorInterval, log, m)

	limiter := ratelimit.NewPerKeyLimiter(ratelimit.PerKeyLimiterConfig{
		MaxTokens:     cfg.SessionRateBurst,
		RefillRate:    cfg.SessionRateRefill,
		CleanupPeriod: config.RateLimiterCleanupInterval,
	})
	limiter.OnDrop(func() { m.RecordRateLimiterDrop("session") })
	limiter.OnUpdate(m.SetRateLimiterActive)
	defer limiter.Stop()

	manager := dialog.NewManager(cfg.Dialog, kb, store, chain, response.New(kb), log, m)

	srv := web.NewServer(web.ServerConfig{
		Config:        cfg,
		Manager:       manager,
		Store:         store,
		Classifier:    chain,
		Limiter:       limiter,
		Registry:      registry,
		Logger:        log,
		Metrics:       m,
		SentryEnabled: cfg.SentryEnabled,
	})
	httpServer := srv.HTTPServer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.WithField("port", cfg.Port).Info("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		janitor.Start()
		<-gctx.Done()
		janitor.Stop()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		if err := log.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("Logger shutdown timed out")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Shutdown complete")
	return nil
}
