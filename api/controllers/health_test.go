package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naturetrails/naturetrails-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func testConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "dev", Port: "0"}}
}

func TestHealthLive(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()

	HealthLive(testConfig()).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "dev", resp.Header().Get("X-NatureTrails-Env"))
}

func TestHealthReadyAllHealthy(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()

	HealthReady(testConfig(), stubPinger{}, stubPinger{}, nil).ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	require.Contains(t, resp.Body.String(), `"status":"ready"`)
}

func TestHealthReadyReportsEveryFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()

	HealthReady(testConfig(),
		stubPinger{err: errors.New("db down")},
		stubPinger{err: errors.New("redis down")},
		nil,
	).ServeHTTP(resp, req)

	require.Equal(t, http.StatusServiceUnavailable, resp.Code)
	body := resp.Body.String()
	require.Contains(t, body, `"database":"unreachable"`)
	require.Contains(t, body, `"redis":"unreachable"`)
}
