package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/rezkam/todos/internal/infrastructure/http/response"
)

// MaxBodyBytes creates a middleware that limits request body size.
// Two phases:
// 1. Fast path: reject on a Content-Length above the limit
// 2. Slow path: read the body through http.MaxBytesReader (chunked or missing Content-Length)
//
// Oversized requests get 413 {"error": "..."} and never reach the handler.
func MaxBodyBytes(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				response.Error(w, response.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
				return
			}

			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			buf, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				slog.WarnContext(r.Context(), "Request body size limit exceeded",
					"method", r.Method,
					"path", r.URL.Path,
					"content_length", r.ContentLength,
					"limit", maxBytes,
					"error", err)

				response.Error(w, response.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
				return
			}

			// Body is within limit - replace it so handlers can read it
			r.Body = io.NopCloser(bytes.NewReader(buf))
			next.ServeHTTP(w, r)
		})
	}
}
