package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ndewijer/VibeInvestor-Backend/internal/api/middleware"
	"github.com/ndewijer/VibeInvestor-Backend/internal/metrics"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(zap.New(core), m))
	r.Get("/api/users/{id}/profile", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/api/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/api/ok", func(w http.ResponseWriter, _ *http.Request) {})

	t.Run("logs route pattern at warn for client errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/7/profile", nil)
		req.Header.Set(middleware.UserIDHeader, "2")
		r.ServeHTTP(httptest.NewRecorder(), req)

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		entry := entries[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "/api/users/{id}/profile", fields["route"])
		assert.Equal(t, "/api/users/7/profile", fields["path"])
		assert.Equal(t, int64(http.StatusNotFound), fields["status"])
		assert.Equal(t, "2", fields["user_id"])
		assert.NotEmpty(t, fields["request_id"])
	})

	t.Run("logs server errors at error level", func(t *testing.T) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/boom", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	})

	t.Run("logs success at info level", func(t *testing.T) {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/ok", nil))

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
		assert.NotContains(t, entries[0].ContextMap(), "user_id")
	})
}
