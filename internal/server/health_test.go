package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T, sc *ServerContext) (*http.ServeMux, *HealthChecker) {
	t.Helper()
	checker := NewHealthChecker(sc)
	mux := http.NewServeMux()
	checker.RegisterHealthEndpoints(mux)
	return mux, checker
}

func TestHealthEndpoints(t *testing.T) {
	sc, err := NewServerContext(context.Background(), WithK8sClient(testClient()))
	require.NoError(t, err)
	mux, checker := newTestMux(t, sc)

	t.Run("healthz ok", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
		assert.NotEmpty(t, resp.Version)
	})

	t.Run("readyz toggles", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		checker.SetReady(false)
		rec = httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("healthz after shutdown", func(t *testing.T) {
		require.NoError(t, sc.Shutdown())

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "shutting down", resp.Status)
	})
}
