package config

import "time"

// Config holds runtime settings for the eldercare CLI.
//
// Fields:
//   - ServerURL: base URL of the REST server, e.g. "http://127.0.0.1:4000".
//   - StorePath: path of the local SQLite file ("local storage").
//   - RequestTimeout: per-request HTTP timeout.
//   - LogLevel: level of the stderr diagnostics log.
type Config struct {
	ServerURL      string
	StorePath      string
	RequestTimeout time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:4000"
	c.StorePath = "eldercare.db"
	c.RequestTimeout = 10 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
