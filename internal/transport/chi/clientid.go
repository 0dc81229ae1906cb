package chi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClientIDHeader lets non-browser clients pass their id without cookies.
const ClientIDHeader = "X-Client-ID"

type clientIDKey struct{}

// ClientIDFromContext returns the client id set by ClientIDMiddleware.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}

// ContextWithClientID stores a client id in ctx.
func ContextWithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

// ClientIDMiddleware identifies the caller by a UUID taken from the
// X-Client-ID header or the cookie. Unknown callers get a fresh id and a cookie.
// Only routes under /preferences need the id; other routes pass through untouched.
func ClientIDMiddleware(cookieName string, maxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/preferences") {
				next.ServeHTTP(w, r)
				return
			}

			id := parseClientID(r.Header.Get(ClientIDHeader))
			if id == "" {
				if c, err := r.Cookie(cookieName); err == nil {
					id = parseClientID(c.Value)
				}
			}
			if id == "" {
				id = uuid.NewString()
			}

			// Refresh the cookie on every call so the expiry slides.
			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(maxAge.Seconds()),
				HttpOnly: true,
				Secure:   r.TLS != nil,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(ClientIDHeader, id)

			next.ServeHTTP(w, r.WithContext(ContextWithClientID(r.Context(), id)))
		})
	}
}

// parseClientID returns the canonical form of a UUID, or "" when v is not one.
func parseClientID(v string) string {
	u, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return ""
	}
	return u.String()
}
