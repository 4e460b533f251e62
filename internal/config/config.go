// Package config provides centralized configuration loaded from environment
// variables. Shared by the fetch and serve commands.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Station registry — mirrors the STATIONS table in the original collector
// --------------------------------------------------------------------------

// Station identifies one Yellowstone Club weather station across both
// upstream sources.
type Station struct {
	ID              string // 5-letter MesoWest site code
	Name            string // display name
	MTAvalanchePath string // path segment on the avalanche-center site
}

// StationRegistry lists every station processed per run, in run order.
// Order is observable (per-station files are written as each station
// completes), so this is a slice rather than a map.
var StationRegistry = []Station{
	{ID: "YCTIM", Name: "Timberline", MTAvalanchePath: "yc-timberline"},
	{ID: "YCAND", Name: "Andesite", MTAvalanchePath: "yc-andesite"},
	{ID: "YCAMS", Name: "American Spirit", MTAvalanchePath: "yc-american-spirit"},
	{ID: "YCBAS", Name: "Base", MTAvalanchePath: "yc-base"},
	{ID: "YCGBR", Name: "Great Bear", MTAvalanchePath: "yc-great-bear"},
}

// StationByID returns the registry entry for a site code.
func StationByID(id string) (Station, bool) {
	for _, s := range StationRegistry {
		if s.ID == id {
			return s, true
		}
	}
	return Station{}, false
}

// StationIDs returns all registered site codes in run order.
func StationIDs() []string {
	ids := make([]string, 0, len(StationRegistry))
	for _, s := range StationRegistry {
		ids = append(ids, s.ID)
	}
	return ids
}

// --------------------------------------------------------------------------
// Data directory file names — single source of truth
// --------------------------------------------------------------------------

const (
	AllStationsFile = "all_stations.json"
	MetadataFile    = "metadata.json"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Collection
	DataDir       string
	LookbackHours int // hours of history requested from weather.gov

	// Browser session
	Headless         bool
	NavTimeout       time.Duration // per-page navigation budget
	SettleWait       time.Duration // pause for client-side rendering
	FetchPerMinute   int           // page-load pacing across both sources
	ScreenshotOnMiss bool
	ScreenshotDir    string

	// Upstream endpoints
	NWSBaseURL         string
	MTAvalancheBaseURL string
	MTAvalancheEnabled bool

	// API server (serve command)
	APIHost           string
	APIPort           int
	Environment       string // development, staging, production
	CORSAllowOrigins  []string
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads configuration from environment variables. Every default equals
// the original collector's compiled-in constant, so a bare invocation
// reproduces the original behavior.
func Load() (*Config, error) {
	return &Config{
		DataDir:       envOr("DATA_DIR", "data"),
		LookbackHours: envInt("LOOKBACK_HOURS", 168), // 7 days

		Headless:         envBool("BROWSER_HEADLESS", true),
		NavTimeout:       time.Duration(envInt("NAV_TIMEOUT_SECONDS", 60)) * time.Second,
		SettleWait:       time.Duration(envInt("SETTLE_WAIT_SECONDS", 3)) * time.Second,
		FetchPerMinute:   envInt("FETCH_PER_MINUTE", 12),
		ScreenshotOnMiss: envBool("SCREENSHOT_ON_MISS", true),
		ScreenshotDir:    envOr("SCREENSHOT_DIR", "screenshots"),

		NWSBaseURL:         envOr("NWS_BASE_URL", "https://www.weather.gov/wrh/timeseries"),
		MTAvalancheBaseURL: envOr("MTAVALANCHE_BASE_URL", "https://www.mtavalanche.com/weather/wx-stations"),
		MTAvalancheEnabled: envBool("MTAVALANCHE_ENABLED", true),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
