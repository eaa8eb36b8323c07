// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - New() builds a Config with defaults; Load layers file and env values on top.
// - Every failure is wrapped with one of this package's sentinel errors.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// LiveTickInterval is how often a live match clock advances by one minute.
	LiveTickInterval time.Duration `koanf:"live_tick_interval"`

	// LiveStartMinute is the minute a live match clock shows when the process starts.
	LiveStartMinute int `koanf:"live_start_minute"`

	// CORSAllowedOrigins lists origins allowed to call /api.
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`

	// MetricsEnabled turns Prometheus recording on or off.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// MetricsRefreshInterval is how often the background gauges are refreshed.
	MetricsRefreshInterval time.Duration `koanf:"metrics_refresh_interval"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		RequestTimeout:     10 * time.Second,
		LiveTickInterval:   time.Minute,
		LiveStartMinute:    59,
		CORSAllowedOrigins: []string{"*"},

		MetricsEnabled:         true,
		MetricsRefreshInterval: 10 * time.Second,
	}
}
