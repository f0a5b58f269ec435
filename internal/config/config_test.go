package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim.TickInterval != 30*time.Second {
		t.Fatalf("expected 30s default tick, got %s", cfg.Sim.TickInterval)
	}
	if cfg.Sim.TravelSpeedKmPerSec != 0.05 {
		t.Fatalf("expected 0.05 km/s default speed, got %g", cfg.Sim.TravelSpeedKmPerSec)
	}
	if cfg.Sim.BeaconCost != 250 || cfg.Sim.DevelopmentCost != 150 {
		t.Fatalf("unexpected default costs: %+v", cfg.Sim)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIM_TICK_INTERVAL_SECONDS", "10")
	t.Setenv("SIM_TRAVEL_SPEED_KMPS", "0.1")
	t.Setenv("SIM_BEACON_COST", "400")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim.TickInterval != 10*time.Second {
		t.Fatalf("override not applied: %s", cfg.Sim.TickInterval)
	}
	if cfg.Sim.TravelSpeedKmPerSec != 0.1 || cfg.Sim.BeaconCost != 400 {
		t.Fatalf("overrides not applied: %+v", cfg.Sim)
	}
	if !cfg.Logging.JSONFormat {
		t.Fatal("expected JSON logging enabled")
	}
}

func TestLoadRejectsZeroSpeed(t *testing.T) {
	t.Setenv("SIM_TRAVEL_SPEED_KMPS", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for zero speed")
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SIM_BEACON_COST", "lots")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Sim.BeaconCost != 250 {
		t.Fatalf("malformed value should fall back to default, got %d", cfg.Sim.BeaconCost)
	}
}
