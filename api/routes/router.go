package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haulfront/haulfront-backend/api/controllers"
	"github.com/haulfront/haulfront-backend/api/middleware"
	"github.com/haulfront/haulfront-backend/internal/alerts"
	"github.com/haulfront/haulfront-backend/internal/dashboard"
	"github.com/haulfront/haulfront-backend/internal/settings"
	"github.com/haulfront/haulfront-backend/internal/turvo"
	"github.com/haulfront/haulfront-backend/pkg/config"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/redis"
)

// NewRouter wires the dashboard API surface: health probes and metrics in
// the open, page endpoints behind bearer auth.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	overviewSvc *dashboard.OverviewService,
	carriersSvc *dashboard.CarriersService,
	shipmentsSvc *dashboard.ShipmentsService,
	planningSvc *dashboard.PlanningService,
	procurementSvc *dashboard.ProcurementService,
	analyticsSvc *dashboard.AnalyticsService,
	alertsSvc *alerts.Service,
	settingsStore *settings.Store,
	turvoClient *turvo.Client,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.Auth, logg))

		r.Get("/dashboard/overview", controllers.Overview(overviewSvc))
		r.Get("/carriers", controllers.Carriers(carriersSvc))
		r.Get("/shipments", controllers.Shipments(shipmentsSvc))
		r.Get("/planning/load-plans", controllers.LoadPlans(planningSvc))
		r.Get("/procurement", controllers.Procurement(procurementSvc))
		r.Get("/analytics/performance", controllers.AnalyticsPerformance(analyticsSvc))

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", controllers.ListAlerts(alertsSvc))
			r.Post("/{alertId}/resolve", controllers.ResolveAlert(alertsSvc, logg))
			r.Post("/{alertId}/dismiss", controllers.DismissAlert(alertsSvc, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.GetSettings(settingsStore, logg))
			r.Put("/", controllers.PutSettings(settingsStore, logg))
		})

		r.Route("/turvo", func(r chi.Router) {
			r.Post("/test-connection", controllers.TurvoTestConnection(turvoClient, logg))
			r.Post("/create-shipment", controllers.TurvoCreateShipment(turvoClient, logg))
		})
	})

	return r
}
