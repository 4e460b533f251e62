package config

import (
	"reflect"
	"testing"
	"time"
)

// TestLoad_Defaults verifies defaults match the original collector's
// compiled-in constants.
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DATA_DIR", "LOOKBACK_HOURS", "NAV_TIMEOUT_SECONDS", "SETTLE_WAIT_SECONDS", "NWS_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataDir != "data" {
		t.Errorf("DataDir = %q, want data", cfg.DataDir)
	}
	if cfg.LookbackHours != 168 {
		t.Errorf("LookbackHours = %d, want 168", cfg.LookbackHours)
	}
	if cfg.NavTimeout != 60*time.Second {
		t.Errorf("NavTimeout = %v, want 60s", cfg.NavTimeout)
	}
	if cfg.SettleWait != 3*time.Second {
		t.Errorf("SettleWait = %v, want 3s", cfg.SettleWait)
	}
	if cfg.NWSBaseURL != "https://www.weather.gov/wrh/timeseries" {
		t.Errorf("NWSBaseURL = %q", cfg.NWSBaseURL)
	}
	if !cfg.MTAvalancheEnabled {
		t.Error("MTAvalancheEnabled = false, want true")
	}
	if !cfg.Headless {
		t.Error("Headless = false, want true")
	}
}

// TestLoad_EnvOverrides verifies environment variables take precedence.
func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", "/tmp/wx")
	t.Setenv("LOOKBACK_HOURS", "24")
	t.Setenv("MTAVALANCHE_ENABLED", "false")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DataDir != "/tmp/wx" {
		t.Errorf("DataDir = %q, want /tmp/wx", cfg.DataDir)
	}
	if cfg.LookbackHours != 24 {
		t.Errorf("LookbackHours = %d, want 24", cfg.LookbackHours)
	}
	if cfg.MTAvalancheEnabled {
		t.Error("MTAvalancheEnabled = true, want false")
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false, want true")
	}
}

// TestStationRegistry verifies the fixed registry contents and order.
func TestStationRegistry(t *testing.T) {
	wantIDs := []string{"YCTIM", "YCAND", "YCAMS", "YCBAS", "YCGBR"}
	if got := StationIDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Errorf("StationIDs() = %v, want %v", got, wantIDs)
	}

	s, ok := StationByID("YCTIM")
	if !ok {
		t.Fatal("StationByID(YCTIM) not found")
	}
	if s.Name != "Timberline" {
		t.Errorf("Name = %q, want Timberline", s.Name)
	}

	if _, ok := StationByID("NOPE1"); ok {
		t.Error("StationByID(NOPE1) = found, want miss")
	}
}
