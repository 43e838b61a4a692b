package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/haulfront/haulfront-backend/api/responses"
	"github.com/haulfront/haulfront-backend/pkg/config"
	pkgerrors "github.com/haulfront/haulfront-backend/pkg/errors"
	"github.com/haulfront/haulfront-backend/pkg/logger"
)

// DemoUserID is the identity assigned to requests carrying the shared demo
// token instead of a real session JWT.
const DemoUserID = "demo-user"

// Auth accepts either the configured demo bearer token or an HS256 JWT
// signed with the configured secret. The resolved user ID lands in the
// request context.
func Auth(cfg config.AuthConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing bearer token"))
				return
			}

			userID, err := resolveUser(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			ctx := withUserID(r.Context(), userID)
			if logg != nil {
				ctx = logg.WithField(ctx, "user_id", userID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveUser(cfg config.AuthConfig, token string) (string, error) {
	if cfg.DemoToken != "" && token == cfg.DemoToken {
		return DemoUserID, nil
	}
	if cfg.JWTSecret == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid bearer token")
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.JWTIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid bearer token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", pkgerrors.New(pkgerrors.CodeUnauthorized, "token missing subject")
	}
	return subject, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
