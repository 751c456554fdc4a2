package middleware

import (
	"net/http"
	"runtime/debug"

	"petpal/internal/platform/logger"
)

// Recover convierte un panic en 500 y lo loguea con el request id.
// http.ErrAbortHandler se re-lanza (lo usa net/http para cortar la respuesta).
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				log.Error("panic recovered", map[string]any{
					"request_id": GetRequestID(r.Context()),
					"method":     r.Method,
					"path":       r.URL.Path,
					"panic":      rec,
					"stack":      string(debug.Stack()),
				})

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"detail":"internal error"}` + "\n"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
