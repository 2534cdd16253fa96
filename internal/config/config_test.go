package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 100, cfg.PRF)
	assert.Equal(t, 10.0, cfg.RotationRPM)
	assert.True(t, cfg.AutoStart)
	assert.Equal(t, 2.0, cfg.IlluminationDeg)
	assert.Equal(t, time.Second, cfg.RefreshInterval)
	assert.Equal(t, 10, cfg.TargetCount)
	assert.False(t, cfg.TargetSeeded)
	assert.Zero(t, cfg.TargetSeed)
	assert.False(t, cfg.TargetKinematics)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("SCAN_PRF_HZ", "250")
	t.Setenv("SCAN_ROTATION_RPM", "24.5")
	t.Setenv("SCAN_AUTOSTART", "false")
	t.Setenv("SCAN_ILLUMINATION_DEG", "3.5")
	t.Setenv("DISPLAY_REFRESH_INTERVAL", "500ms")
	t.Setenv("TARGET_COUNT", "25")
	t.Setenv("TARGET_SEED", "42")
	t.Setenv("TARGET_KINEMATICS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 250, cfg.PRF)
	assert.Equal(t, 24.5, cfg.RotationRPM)
	assert.False(t, cfg.AutoStart)
	assert.Equal(t, 3.5, cfg.IlluminationDeg)
	assert.Equal(t, 500*time.Millisecond, cfg.RefreshInterval)
	assert.Equal(t, 25, cfg.TargetCount)
	assert.True(t, cfg.TargetSeeded)
	assert.Equal(t, uint64(42), cfg.TargetSeed)
	assert.True(t, cfg.TargetKinematics)
}

func TestLoad_OutOfRangeScanValuesAreKept(t *testing.T) {
	// The engine clamps these; config must not reject them.
	t.Setenv("SCAN_PRF_HZ", "99999")
	t.Setenv("SCAN_ROTATION_RPM", "-4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 99999, cfg.PRF)
	assert.Equal(t, -4.0, cfg.RotationRPM)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid shutdown timeout", "SHUTDOWN_TIMEOUT", "not-a-duration"},
		{"negative shutdown timeout", "SHUTDOWN_TIMEOUT", "-1s"},
		{"non-numeric prf", "SCAN_PRF_HZ", "fast"},
		{"non-numeric rpm", "SCAN_ROTATION_RPM", "ten"},
		{"bad autostart", "SCAN_AUTOSTART", "maybe"},
		{"zero illumination", "SCAN_ILLUMINATION_DEG", "0"},
		{"wide illumination", "SCAN_ILLUMINATION_DEG", "181"},
		{"bad refresh", "DISPLAY_REFRESH_INTERVAL", "soon"},
		{"zero refresh", "DISPLAY_REFRESH_INTERVAL", "0s"},
		{"zero targets", "TARGET_COUNT", "0"},
		{"too many targets", "TARGET_COUNT", "1001"},
		{"bad seed", "TARGET_SEED", "-1"},
		{"bad kinematics", "TARGET_KINEMATICS", "yes please"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
