package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/greenbasket/storefront/internal/session"
)

const sessionCookieName = "gb_session"

// SessionMiddleware resolves the shopper session from the gb_session cookie,
// minting a cookie on first contact. The session handle is passed through
// the request context; handlers never reach for globals.
func SessionMiddleware(registry *session.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				id = cookie.Value
			} else {
				id = registry.NewID()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			sess := registry.GetOrCreate(id)
			ctx := context.WithValue(r.Context(), "session", sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), "request_id", requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getSessionFromContext(ctx context.Context) *session.Session {
	if sess, ok := ctx.Value("session").(*session.Session); ok {
		return sess
	}
	return nil
}
