package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/strawfields/strawfields-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the visitor's anonymous session identifier. A
// missing or malformed header gets a fresh UUID; the effective value
// is echoed back so the widget can persist it.
func Session(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessID := r.Header.Get(sessionIDHeader)
			if _, err := uuid.Parse(sessID); err != nil {
				sessID = uuid.NewString()
			}

			w.Header().Set(sessionIDHeader, sessID)

			ctx := WithSessionID(r.Context(), sessID)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
