package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/haulfront/haulfront-backend/internal/dashboard"
	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/pkg/config"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/metrics"
	"github.com/haulfront/haulfront-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "poller"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "poller",
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

	dashboardMetrics := metrics.NewDashboardMetrics(prometheus.DefaultRegisterer)

	transport, err := tms.NewTransport(cfg.Upstream, tms.WithMetrics(dashboardMetrics))
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream transport", err)
		os.Exit(1)
	}
	client := tms.NewClient(transport)

	poller := dashboard.NewPoller(
		client,
		redisClient,
		logg,
		cfg.Poller.Interval,
		cfg.Poller.SnapshotTTL,
		dashboard.WithPollMetrics(dashboardMetrics),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logg.Info(logg.WithField(ctx, "interval", cfg.Poller.Interval.String()), "starting snapshot poller")
	poller.Run(ctx)
}
