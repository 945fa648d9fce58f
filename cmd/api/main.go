package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/strawfields/strawfields-backend/api/routes"
	"github.com/strawfields/strawfields-backend/internal/cart"
	"github.com/strawfields/strawfields-backend/internal/chat"
	"github.com/strawfields/strawfields-backend/internal/leads"
	"github.com/strawfields/strawfields-backend/pkg/config"
	"github.com/strawfields/strawfields-backend/pkg/logger"
	"github.com/strawfields/strawfields-backend/pkg/metrics"
	"github.com/strawfields/strawfields-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	leadMetrics := metrics.NewLeadMetrics(registry)

	cartService, err := cart.NewService(
		cart.NewRedisSnapshotStore(redisClient, cfg.Cart.SnapshotTTL),
		cart.Options{MinAddQty: cfg.Cart.MinAddQty, DefaultStep: cfg.Cart.DefaultStep},
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	chatService, err := chat.NewService(
		chat.NewRedisStateStore(redisClient, cfg.Chat.StateTTL),
		chat.NewResolver(cfg.Chat.FAQPageSize),
		logg,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create chat service", err)
		os.Exit(1)
	}

	forwarder, err := leads.NewWebhookForwarder(
		cfg.Leads.WebhookURL,
		cfg.Leads.WebhookTimeout,
		cfg.Leads.MaxAttempts,
		cfg.Leads.RetryBaseDelay,
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead forwarder", err)
		os.Exit(1)
	}

	backup, err := leads.NewCSVBackup(cfg.Leads.CSVBackupPath)
	if err != nil {
		logg.Error(context.Background(), "failed to create lead csv backup", err)
		os.Exit(1)
	}

	leadsService, err := leads.NewService(forwarder, backup, cfg.WhatsApp.Number, leadMetrics, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create leads service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, redisClient, cartService, chatService, leadsService, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
