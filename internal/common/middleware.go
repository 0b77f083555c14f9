package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const viewerKey contextKey = "viewer_id"

// Requests that do not carry a session token.
var publicRoutes = map[string]bool{
	"POST /api/users":         true, // register
	"POST /api/users/session": true, // login
	"GET /health":             true,
}

// AuthMiddleware validates the bearer token and injects the viewer id into
// the request context. Every guard downstream takes the viewer id explicitly;
// this is the only place it is pulled out of transport state.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if publicRoutes[r.Method+" "+r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "authorization required", http.StatusUnauthorized)
			return
		}

		// header = Bearer <token>
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			http.Error(w, "invalid auth header", http.StatusUnauthorized)
			return
		}

		claims, err := ValidToken(parts[1])
		if err != nil {
			http.Error(w, "invalid or expired token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), viewerKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ViewerFromContext returns the authenticated viewer id set by
// AuthMiddleware.
func ViewerFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(viewerKey).(int64)
	return id, ok
}

// WithViewer is used by tests to build a context carrying a viewer id.
func WithViewer(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, viewerKey, userID)
}
