// Package middleware contains HTTP middleware specific to this API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
)

// TraceMiddleware adds a trace ID and a request logger to the request context.
// A well-formed UUID in the X-Trace-ID request header is reused; otherwise a
// new one is generated. The trace ID is echoed in the response header.
// It should be applied early in the chain so that every handler sees both.
func TraceMiddleware(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(shared.TraceIDHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = ""
			}
			ctx := shared.SetTraceID(r.Context(), traceID)
			traceID = shared.GetTraceID(ctx)

			log := base.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			w.Header().Set(shared.TraceIDHeader, traceID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
