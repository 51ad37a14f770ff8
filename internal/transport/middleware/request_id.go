package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/harviniv9/task-booking-management/pkg/ctxutil"
)

// RequestIDHeader is the header used to propagate request identifiers.
const RequestIDHeader = "X-Request-Id"

// RequestID returns middleware that reuses the incoming request id header or
// generates a fresh UUID, stores it on the context and echoes it back.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
