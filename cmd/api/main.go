package main

import (
	"context"
	"crypto/tls"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/queensauto/brakes-booking/internal/api/router"
	"github.com/queensauto/brakes-booking/internal/availability"
	appconfig "github.com/queensauto/brakes-booking/internal/config"
	"github.com/queensauto/brakes-booking/internal/confirmation"
	"github.com/queensauto/brakes-booking/internal/http/handlers"
	"github.com/queensauto/brakes-booking/internal/i18n"
	"github.com/queensauto/brakes-booking/internal/lead"
	"github.com/queensauto/brakes-booking/internal/observability/metrics"
	"github.com/queensauto/brakes-booking/internal/session"
	"github.com/queensauto/brakes-booking/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.NewWithWriter(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	logger.Info("starting brakes booking API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Shop-local time drives the availability rules.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}
	now := func() time.Time { return time.Now().In(loc) }

	var sessions session.Store = session.NewMemoryStore()
	if cfg.RedisAddr != "" {
		opts := &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		}
		if cfg.RedisTLS {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		sessions = session.NewRedisStore(redis.NewClient(opts))
		logger.Info("using redis session store", "addr", cfg.RedisAddr)
	}

	var repo lead.Repository = lead.NewInMemoryRepository()
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
		repo = lead.NewPostgresRepository(db)
		logger.Info("using postgres lead archive")
	}

	bookingMetrics := metrics.NewBookingMetrics(nil)
	policy := availability.DefaultPolicy()
	prefs := i18n.NewPreferences(sessions)

	pipeline := lead.NewPipeline(lead.PipelineOptions{
		WebhookURL:  cfg.WebhookURL,
		PageVariant: cfg.PageVariant,
		CountryCode: cfg.CountryCode,
		Client:      &http.Client{Timeout: cfg.WebhookTimeout},
		Sessions:    sessions,
		Repo:        repo,
		Metrics:     bookingMetrics,
		Logger:      logger,
		Now:         now,
	})
	page := confirmation.NewPage(sessions, nil, nil)

	routerCfg := &router.Config{
		Logger:             logger,
		Availability:       handlers.NewAvailabilityHandler(policy, logger, now),
		Bookings:           handlers.NewBookingHandler(policy, pipeline, prefs, bookingMetrics, logger, now),
		Confirmation:       handlers.NewConfirmationHandler(page, repo, prefs, logger),
		Preferences:        handlers.NewPreferencesHandler(prefs, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
