package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/internal/alerts"
	"github.com/haulfront/haulfront-backend/pkg/logger"
)

// AlertsPage is the rendered alerts feed.
type AlertsPage struct {
	Alerts []alerts.Alert `json:"alerts"`
	Counts alerts.Counts  `json:"counts"`
}

// ListAlerts serves the alerts feed. Accepts optional `q` and `tab`
// (active/resolved/all) filters.
func ListAlerts(svc *alerts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		tab := alerts.Tab(strings.TrimSpace(r.URL.Query().Get("tab")))
		if tab == "" {
			tab = alerts.TabActive
		}

		responses.WriteSuccess(w, AlertsPage{
			Alerts: svc.List(query, tab),
			Counts: svc.CountsNow(),
		})
	}
}

// ResolveAlert marks an active alert resolved.
func ResolveAlert(svc *alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID := chi.URLParam(r, "alertId")
		alert, err := svc.Resolve(alertID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, alert)
	}
}

// DismissAlert dismisses an active alert.
func DismissAlert(svc *alerts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alertID := chi.URLParam(r, "alertId")
		alert, err := svc.Dismiss(alertID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, alert)
	}
}
