package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/eshop-labs/storefront-api/api/responses"
	pkgAuth "github.com/eshop-labs/storefront-api/pkg/auth"
	"github.com/eshop-labs/storefront-api/pkg/auth/session"
	"github.com/eshop-labs/storefront-api/pkg/config"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
	"github.com/eshop-labs/storefront-api/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the
// shopper's claims. Requests without credentials are rejected.
func Auth(cfg config.JWTConfig, checker session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			ctx, err := verifyToken(r, cfg, checker, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			if logg != nil {
				ctx = logg.WithUserID(ctx, UserIDFromContext(ctx).String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth seeds claims when a bearer token is present and lets
// anonymous requests through untouched. A token that is present but invalid
// is still rejected so callers cannot silently fall back to the anonymous
// view with stale credentials.
func OptionalAuth(cfg config.JWTConfig, checker session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := verifyToken(r, cfg, checker, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}

			if logg != nil {
				ctx = logg.WithUserID(ctx, UserIDFromContext(ctx).String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(raw), "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return raw
}

func verifyToken(r *http.Request, cfg config.JWTConfig, checker session.AccessSessionChecker, token string) (context.Context, error) {
	claims, parseErr := pkgAuth.ParseAccessToken(cfg, token)
	if parseErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, parseErr, "invalid token")
	}
	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id")
	}

	if checker != nil {
		ok, checkErr := checker.HasSession(r.Context(), claims.ID)
		if checkErr != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, checkErr, "validate session")
		}
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "session unavailable")
		}
	}

	return WithSession(r.Context(), claims.UserID, claims.ID, claims.Provider), nil
}
