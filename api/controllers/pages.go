package controllers

import (
	"net/http"
	"strings"

	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/internal/dashboard"
)

// Overview serves the dashboard overview page.
func Overview(svc *dashboard.OverviewService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Load(r.Context()))
	}
}

// Carriers serves the carrier network page. Accepts an optional `q` filter,
// passed through verbatim.
func Carriers(svc *dashboard.CarriersService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Load(r.Context(), r.URL.Query().Get("q")))
	}
}

// Shipments serves the shipment tracking page. Accepts optional `q` and
// `tab` filters.
func Shipments(svc *dashboard.ShipmentsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		tab := dashboard.ShipmentTab(strings.TrimSpace(r.URL.Query().Get("tab")))
		responses.WriteSuccess(w, svc.Load(r.Context(), query, tab))
	}
}

// LoadPlans serves the planning page. Accepts an optional `status` filter.
func LoadPlans(svc *dashboard.PlanningService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		responses.WriteSuccess(w, svc.Load(r.Context(), status))
	}
}

// Procurement serves the strategic procurement page. Accepts an optional
// `q` filter.
func Procurement(svc *dashboard.ProcurementService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, svc.Load(r.Context(), r.URL.Query().Get("q")))
	}
}

// AnalyticsPerformance serves the performance analytics page. Accepts an
// optional `timeframe` filter.
func AnalyticsPerformance(svc *dashboard.AnalyticsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timeframe := strings.TrimSpace(r.URL.Query().Get("timeframe"))
		responses.WriteSuccess(w, svc.Load(r.Context(), timeframe))
	}
}
