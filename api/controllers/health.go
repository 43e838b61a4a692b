package controllers

import (
	"net/http"

	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/pkg/config"
	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
	"github.com/haulfront/haulfront-backend/pkg/logger"
	"github.com/haulfront/haulfront-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HaulFront-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the cache connection. The upstream TMS is deliberately
// not part of readiness: the dashboard serves fixture data when it is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, cache redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-HaulFront-Env", cfg.App.Env)

		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "redis not ready"))
				return
			}
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
