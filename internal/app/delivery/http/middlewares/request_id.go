package middlewares

import (
	"context"
	"net/http"

	"dermref-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, requestID)
		ctx := context.WithValue(r.Context(), constvars.ContextRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
