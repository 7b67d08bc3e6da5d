package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-vaultage/internal/logger"
)

// redactedKey replaces the remote key in logged paths.
const redactedKey = "[redacted]"

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", redactRemoteKey(r.URL.EscapedPath())).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// redactRemoteKey hides the remote key segment of a vault_api path. The key
// is the server-side credential of the vault and must not reach the logs.
func redactRemoteKey(path string) string {
	segments := strings.Split(path, "/")
	n := len(segments)
	if n >= 4 && segments[n-1] == "vaultage_api" {
		segments[n-2] = redactedKey
		return strings.Join(segments, "/")
	}
	return path
}

// responseWriter records the status code and body size written through it.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
