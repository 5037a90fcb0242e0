package middleware

import (
	"log/slog"
	"net/http"

	"github.com/tastypoint/account-api/internal/api/shared"
	"github.com/tastypoint/account-api/internal/platform/logger"
)

// TraceMiddleware attaches a trace ID and a request-scoped logger to
// every request so log lines and error responses can be correlated.
type TraceMiddleware struct {
	logger *slog.Logger
}

// NewTraceMiddleware creates a TraceMiddleware using the given base logger.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	m := &TraceMiddleware{logger: log}
	return m.Handler
}

// Handler wraps the next handler with trace-id and logger propagation.
func (m *TraceMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())

		requestLogger := m.logger.With(
			slog.String("trace_id", shared.GetTraceID(ctx)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		ctx = logger.WithLogger(ctx, requestLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
