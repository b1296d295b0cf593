package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/todos/internal/infrastructure/http/middleware"
)

func echoHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})
}

func TestMaxBodyBytes(t *testing.T) {
	const limit = 16
	handler := middleware.MaxBodyBytes(limit)(echoHandler(t))

	t.Run("body within limit reaches handler intact", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(`{"title":"ok"}`))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"title":"ok"}`, w.Body.String())
	})

	t.Run("content length over limit is rejected early", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(strings.Repeat("a", limit+1)))
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body["error"])
	})

	t.Run("unknown content length is enforced while reading", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/todos", strings.NewReader(strings.Repeat("a", limit*4)))
		req.ContentLength = -1
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("requests without a body pass through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/todos", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
