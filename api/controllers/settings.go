package controllers

import (
	"net/http"

	"github.com/haulfront/haulfront-backend/api/middleware"
	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/api/validators"
	"github.com/haulfront/haulfront-backend/internal/settings"
	"github.com/haulfront/haulfront-backend/pkg/logger"
)

// GetSettings returns the caller's settings document. A cache outage
// degrades to the defaults rather than failing the page.
func GetSettings(store *settings.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		doc, err := store.Load(r.Context(), userID)
		if err != nil {
			if logg != nil {
				logg.Warn(r.Context(), "settings load failed, serving defaults: "+err.Error())
			}
			doc = settings.Defaults()
		}
		responses.WriteSuccess(w, doc)
	}
}

// PutSettings replaces the caller's settings document.
func PutSettings(store *settings.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middleware.UserIDFromContext(r.Context())

		var doc settings.Document
		if err := validators.DecodeJSONBody(r, &doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := store.Save(r.Context(), userID, doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, doc)
	}
}
