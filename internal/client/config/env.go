package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "ELDERCARE_SERVER_URL"
	EnvStorePath      = "ELDERCARE_STORE_PATH"
	EnvRequestTimeout = "ELDERCARE_REQUEST_TIMEOUT"
	EnvLogLevel       = "ELDERCARE_CLIENT_LOG_LEVEL"
)

// parseEnv overlays Config with ELDERCARE_* variables. A malformed timeout
// panics.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(EnvServerURL); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvStorePath); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
