package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/haulfront/haulfront-backend/api/routes"
	"github.com/haulfront/haulfront-backend/internal/alerts"
	"github.com/haulfront/haulfront-backend/internal/dashboard"
	"github.com/haulfront/haulfront-backend/internal/settings"
	"github.com/haulfront/haulfront-backend/internal/tms"
	"github.com/haulfront/haulfront-backend/internal/turvo"
	"github.com/haulfront/haulfront-backend/internal/views"
	"github.com/haulfront/haulfront-backend/pkg/config"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/metrics"
	"github.com/haulfront/haulfront-backend/pkg/redis"
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
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	dashboardMetrics := metrics.NewDashboardMetrics(registry)

	transport, err := tms.NewTransport(cfg.Upstream, tms.WithMetrics(dashboardMetrics))
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream transport", err)
		os.Exit(1)
	}
	client := tms.NewClient(transport)

	hooks := views.FallbackHooks{
		Log:     logg,
		Metrics: dashboardMetrics,
		Notify: func(page string, err error) {
			ctx := logg.WithPage(context.Background(), page)
			logg.Warn(ctx, "page degraded to demo data")
		},
	}

	overviewSvc := dashboard.NewOverviewService(client, hooks, dashboard.WithSnapshotCache(redisClient))
	carriersSvc := dashboard.NewCarriersService(client, hooks)
	shipmentsSvc := dashboard.NewShipmentsService(client, hooks)
	planningSvc := dashboard.NewPlanningService(client, hooks)
	procurementSvc := dashboard.NewProcurementService(client, hooks)
	analyticsSvc := dashboard.NewAnalyticsService(client, hooks)
	alertsSvc := alerts.NewService(alerts.DemoAlerts(time.Now().UTC()))
	settingsStore := settings.NewStore(redisClient)
	turvoClient := turvo.NewClient(cfg.Turvo)

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
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			overviewSvc,
			carriersSvc,
			shipmentsSvc,
			planningSvc,
			procurementSvc,
			analyticsSvc,
			alertsSvc,
			settingsStore,
			turvoClient,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
