package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
	"github.com/aussiebroadwan/accounts/pkg/slogx"
)

// AuthnMiddleware verifies the bearer session token and injects the account
// identity into the request context for downstream handlers.
func AuthnMiddleware(m *jwtx.SessionMinter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := m.Verify(raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyUserID, claims.Subject)
			ctx = context.WithValue(ctx, CtxKeyEmail, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
