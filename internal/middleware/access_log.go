package middleware

import (
	"net/http"
	"time"

	"petpal/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog loguea una línea por request al terminar.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			fields := map[string]any{
				"request_id":  GetRequestID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"route":       routePattern(r),
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}

			switch {
			case status >= 500:
				log.Error("http request", fields)
			case status >= 400:
				log.Warn("http request", fields)
			default:
				log.Info("http request", fields)
			}
		})
	}
}

// routePattern devuelve el patrón chi (p.ej. /tasks/{taskID}) para no
// explotar la cardinalidad de métricas/logs con ids.
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return "unmatched"
}
