// Package config loads the simulation settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Sim      SimConfig
	Catalog  CatalogConfig
	Logging  LoggingConfig
}

type DatabaseConfig struct {
	// DSN empty means the daemon runs against the in-memory store.
	DSN            string
	MigrationsPath string
}

type SimConfig struct {
	TickInterval        time.Duration
	TravelSpeedKmPerSec float64
	DevelopmentCost     int64
	BeaconCost          int64
	MinSeparationKm     float64
	// Seed zero draws a fresh seed per run.
	Seed int64
}

type CatalogConfig struct {
	// Path empty falls back to the built-in building-type catalog.
	Path string
}

type LoggingConfig struct {
	Level      string
	JSONFormat bool
}

// Load reads .env (when present) and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Database: DatabaseConfig{
			DSN:            strings.TrimSpace(os.Getenv("TERRAVERSE_DB_DSN")),
			MigrationsPath: stringEnv("TERRAVERSE_MIGRATIONS_PATH", "./migrations"),
		},
		Sim: SimConfig{
			TickInterval:        time.Duration(intEnv("SIM_TICK_INTERVAL_SECONDS", 30)) * time.Second,
			TravelSpeedKmPerSec: floatEnv("SIM_TRAVEL_SPEED_KMPS", 0.05),
			DevelopmentCost:     int64(intEnv("SIM_DEVELOPMENT_COST", 150)),
			BeaconCost:          int64(intEnv("SIM_BEACON_COST", 250)),
			MinSeparationKm:     floatEnv("SIM_MIN_SEPARATION_KM", 0.25),
			Seed:                int64(intEnv("SIM_RAND_SEED", 0)),
		},
		Catalog: CatalogConfig{
			Path: strings.TrimSpace(os.Getenv("TERRAVERSE_CATALOG_PATH")),
		},
		Logging: LoggingConfig{
			Level:      stringEnv("LOG_LEVEL", "info"),
			JSONFormat: boolEnv("LOG_JSON", false),
		},
	}

	if cfg.Sim.TickInterval <= 0 {
		return nil, fmt.Errorf("SIM_TICK_INTERVAL_SECONDS must be positive")
	}
	if cfg.Sim.TravelSpeedKmPerSec <= 0 {
		return nil, fmt.Errorf("SIM_TRAVEL_SPEED_KMPS must be positive")
	}
	if cfg.Sim.DevelopmentCost < 0 || cfg.Sim.BeaconCost < 0 {
		return nil, fmt.Errorf("costs must not be negative")
	}
	return cfg, nil
}

func stringEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func boolEnv(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
