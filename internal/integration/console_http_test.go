//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/radar-console/internal/adapter/httpadapter"
	"github.com/couchcryptid/radar-console/internal/config"
	"github.com/couchcryptid/radar-console/internal/console"
	"github.com/couchcryptid/radar-console/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startStack runs the console on the real clock behind a live HTTP server.
func startStack(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	logger := observability.NewLogger(cfg)
	c := console.FromConfig(cfg, clockwork.NewRealClock(), logger, observability.NewMetricsForTesting())
	ts := httptest.NewServer(httpadapter.NewServer(":0", c, logger))
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		require.NoError(t, <-done)
	})

	require.Eventually(t, func() bool {
		resp, err := http.Get(ts.URL + "/readyz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	return ts
}

func fetchScan(ts *httptest.Server) (console.Snapshot, error) {
	var snap console.Snapshot
	resp, err := http.Get(ts.URL + "/api/v1/scan")
	if err != nil {
		return snap, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return snap, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	err = json.NewDecoder(resp.Body).Decode(&snap)
	return snap, err
}

func getScan(t *testing.T, ts *httptest.Server) console.Snapshot {
	t.Helper()
	snap, err := fetchScan(ts)
	require.NoError(t, err)
	return snap
}

func send(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:        "error",
		LogFormat:       "text",
		PRF:             1000,
		RotationRPM:     60,
		AutoStart:       true,
		IlluminationDeg: 2,
		RefreshInterval: 50 * time.Millisecond,
		TargetCount:     25,
		TargetSeed:      99,
		TargetSeeded:    true,
	}
}

func TestConsole_SweepsInRealTime(t *testing.T) {
	ts := startStack(t, testConfig())

	require.Eventually(t, func() bool {
		snap, err := fetchScan(ts)
		return err == nil && snap.Revolutions >= 1
	}, 10*time.Second, 50*time.Millisecond, "60 rpm completes a revolution every second")

	snap := getScan(t, ts)
	assert.True(t, snap.Running)
	assert.Equal(t, int64(1), snap.TickPeriodMS)
	assert.InDelta(t, 0.36, snap.SweepSpeed, 1e-9)
	assert.Contains(t, []string{console.StatusDetected, console.StatusClear}, snap.Status)
}

func TestConsole_StopAndReconfigure(t *testing.T) {
	ts := startStack(t, testConfig())

	require.Equal(t, http.StatusOK, send(t, ts, http.MethodPost, "/api/v1/scan/stop", "").StatusCode)
	frozen := getScan(t, ts)
	time.Sleep(100 * time.Millisecond)
	after := getScan(t, ts)
	assert.Equal(t, frozen.Ticks, after.Ticks)
	assert.InDelta(t, frozen.SweepAngle, after.SweepAngle, 0)

	// Setting the PRF restarts a stopped scan.
	resp := send(t, ts, http.MethodPut, "/api/v1/scan/prf", `{"hz":50}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Eventually(t, func() bool {
		snap, err := fetchScan(ts)
		return err == nil && snap.Ticks > after.Ticks
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, int64(20), getScan(t, ts).TickPeriodMS)
}

func TestConsole_AnalyzeAndInspect(t *testing.T) {
	ts := startStack(t, testConfig())

	resp := send(t, ts, http.MethodPost, "/api/v1/targets/analyze", `{"count":40}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	snap := getScan(t, ts)
	require.Len(t, snap.Targets, 40)

	for _, row := range snap.Targets[:5] {
		resp := send(t, ts, http.MethodGet, fmt.Sprintf("/api/v1/targets/%s", row.ID), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var detail console.TargetDetail
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&detail))
		assert.Equal(t, row.ID, detail.ID)
		assert.Equal(t, row.TargetType, detail.TargetType)
	}

	assert.Equal(t, http.StatusNotFound, send(t, ts, http.MethodGet, "/api/v1/targets/nope", "").StatusCode)
}
