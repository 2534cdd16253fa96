package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all console settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Scan parameters. PRF and RPM are clamped by the engine, not here.
	PRF             int
	RotationRPM     float64
	AutoStart       bool
	IlluminationDeg float64
	RefreshInterval time.Duration

	// Target generation.
	TargetCount      int
	TargetSeed       uint64
	TargetSeeded     bool
	TargetKinematics bool
}

const maxTargetCount = 1000

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	prf, err := parseInt("SCAN_PRF_HZ", 100)
	if err != nil {
		return nil, err
	}
	rpm, err := parseFloat("SCAN_ROTATION_RPM", 10)
	if err != nil {
		return nil, err
	}
	autoStart, err := parseBool("SCAN_AUTOSTART", true)
	if err != nil {
		return nil, err
	}
	illumination, err := parseFloat("SCAN_ILLUMINATION_DEG", 2)
	if err != nil {
		return nil, err
	}
	refresh, err := time.ParseDuration(sharedcfg.EnvOrDefault("DISPLAY_REFRESH_INTERVAL", "1s"))
	if err != nil || refresh <= 0 {
		return nil, errors.New("invalid DISPLAY_REFRESH_INTERVAL")
	}
	count, err := parseInt("TARGET_COUNT", 10)
	if err != nil {
		return nil, err
	}
	kinematics, err := parseBool("TARGET_KINEMATICS", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		PRF:             prf,
		RotationRPM:     rpm,
		AutoStart:       autoStart,
		IlluminationDeg: illumination,
		RefreshInterval: refresh,

		TargetCount:      count,
		TargetKinematics: kinematics,
	}

	if s := os.Getenv("TARGET_SEED"); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, errors.New("invalid TARGET_SEED")
		}
		cfg.TargetSeed = seed
		cfg.TargetSeeded = true
	}

	if cfg.IlluminationDeg <= 0 || cfg.IlluminationDeg > 180 {
		return nil, errors.New("SCAN_ILLUMINATION_DEG must be in (0, 180]")
	}
	if cfg.TargetCount < 1 || cfg.TargetCount > maxTargetCount {
		return nil, fmt.Errorf("TARGET_COUNT must be between 1 and %d", maxTargetCount)
	}

	return cfg, nil
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
