package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"vet-clinic/internal/platform/logger"
)

// Recover envuelve chi/middleware.Recoverer: el panic se loguea con el logger
// de la app (vía LogEntry) y el 500 sale con el cuerpo JSON de siempre.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		recoverer := chimw.Recoverer(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &panicResponseWriter{ResponseWriter: w}
			entry := &panicLogEntry{log: log, r: r, w: rw}
			recoverer.ServeHTTP(rw, chimw.WithLogEntry(r, entry))
		})
	}
}

// panicLogEntry solo se usa para Panic; el access log va por AccessLog.
type panicLogEntry struct {
	log logger.Logger
	r   *http.Request
	w   *panicResponseWriter
}

func (e *panicLogEntry) Write(int, int, http.Header, time.Duration, interface{}) {}

func (e *panicLogEntry) Panic(v interface{}, stack []byte) {
	e.w.panicked = true
	e.log.Error("panic recovered", map[string]any{
		"panic":      fmt.Sprint(v),
		"method":     e.r.Method,
		"path":       e.r.URL.Path,
		"request_id": GetRequestID(e.r.Context()),
		"stack":      string(stack),
	})
}

// panicResponseWriter agrega {"error":"internal error"} al 500 que escribe
// Recoverer. Los 500 normales de los handlers pasan sin tocar.
type panicResponseWriter struct {
	http.ResponseWriter
	panicked bool
}

func (w *panicResponseWriter) WriteHeader(code int) {
	if !w.panicked || code != http.StatusInternalServerError {
		w.ResponseWriter.WriteHeader(code)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.ResponseWriter.WriteHeader(code)
	_, _ = w.ResponseWriter.Write([]byte(`{"error":"internal error"}` + "\n"))
}
