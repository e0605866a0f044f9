package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"listkeeper/config"
	_ "listkeeper/docs" // Swagger docs
	"listkeeper/internal/export"
	"listkeeper/internal/httpserver"
	listHTTP "listkeeper/internal/list/delivery/http"
	"listkeeper/internal/list/repository/supabase"
	listUC "listkeeper/internal/list/usecase"
	"listkeeper/internal/middleware"
	"listkeeper/internal/realtime"
	"listkeeper/internal/session"
	sessionHTTP "listkeeper/internal/session/delivery/http"
	"listkeeper/pkg/backend"
	"listkeeper/pkg/kvstore"
	"listkeeper/pkg/log"
)

// @title       ListKeeper API
// @description Tiered list management on a hosted backend: lists, items, sharing, import/export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ListKeeper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Hosted backend client
	client := backend.NewClient(backend.Config{
		URL:     cfg.Backend.URL,
		AnonKey: cfg.Backend.AnonKey,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	})

	// 4. Session manager with file-backed tier cache
	tiers := kvstore.NewFile(cfg.Session.TierCachePath)
	sessions := session.New(client, logger, tiers,
		time.Duration(cfg.Session.PollIntervalSeconds)*time.Second)

	// 5. List store
	repo := supabase.New(client, sessions, logger)
	exporter := export.New(logger, cfg.Export.ChromeBin)
	store := listUC.New(repo, logger, sessions, exporter, cfg.Export.ShareBaseURL)

	// 6. Realtime change notifications
	notifier := realtime.NewNotifier(logger)
	notifier.Subscribe(sessions.HandleChange)
	notifier.Subscribe(store.HandleChange)

	var webhookHandler *realtime.WebhookHandler
	if cfg.Realtime.Enabled && cfg.Realtime.WebhookSecret != "" {
		validator := realtime.NewSecurityValidator(realtime.SecurityConfig{
			Secret:          cfg.Realtime.WebhookSecret,
			AllowedIPs:      cfg.Realtime.AllowedIPs,
			RateLimitPerMin: cfg.Realtime.RateLimitPerMin,
		})
		webhookHandler = realtime.NewWebhookHandler(notifier, validator, logger)
		logger.Info(ctx, "Realtime webhook receiver initialized")
	} else {
		logger.Warn(ctx, "Realtime webhook disabled, relying on tier polling only")
	}

	// Polling fallback keeps the tier fresh when the realtime channel is down.
	go sessions.StartPolling(ctx)

	// 7. HTTP server
	mw := middleware.New(logger, sessions)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ListHandler:    listHTTP.New(logger, store),
		SessionHandler: sessionHTTP.New(logger, sessions),
		WebhookHandler: webhookHandler,
		Middleware:     mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
