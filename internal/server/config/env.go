package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr        = "ELDERCARE_HTTP_ADDR"
	EnvDatabaseDSN     = "ELDERCARE_DATABASE_DSN"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvSecretKey       = "ELDERCARE_SECRET_KEY"
	EnvTokenTTL        = "ELDERCARE_TOKEN_TTL"
	EnvBcryptCost      = "ELDERCARE_BCRYPT_COST"
	EnvStaticDir       = "ELDERCARE_STATIC_DIR"
	EnvDBMaxOpen       = "ELDERCARE_DB_MAX_OPEN"
	EnvDBMaxIdle       = "ELDERCARE_DB_MAX_IDLE"
	EnvDBMaxLifetime   = "ELDERCARE_DB_MAX_LIFETIME"
	EnvShutdownTimeout = "ELDERCARE_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "ELDERCARE_LOG_LEVEL"
)

// loadDotenv seeds the process environment from the file named by -env, or
// from ./.env when present. Variables already set in the environment win.
func loadDotenv() {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays Config with ELDERCARE_* variables. DATABASE_URL is
// honoured as a fallback DSN. Malformed numbers or durations panic, like
// malformed JSON does.
func parseEnv(cfg *Config) {
	loadDotenv()

	setString(&cfg.HTTPAddr, EnvHTTPAddr)
	setString(&cfg.DatabaseDSN, EnvDatabaseURL)
	setString(&cfg.DatabaseDSN, EnvDatabaseDSN)
	setString(&cfg.SecretKey, EnvSecretKey)
	setDuration(&cfg.TokenTTL, EnvTokenTTL)
	setInt(&cfg.BcryptCost, EnvBcryptCost)
	setString(&cfg.StaticDir, EnvStaticDir)
	setInt(&cfg.DBMaxOpen, EnvDBMaxOpen)
	setInt(&cfg.DBMaxIdle, EnvDBMaxIdle)
	setDuration(&cfg.DBMaxLifetime, EnvDBMaxLifetime)
	setDuration(&cfg.ShutdownTimeout, EnvShutdownTimeout)
	setString(&cfg.LogLevel, EnvLogLevel)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(err)
	}
	*dst = n
}

func setDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
