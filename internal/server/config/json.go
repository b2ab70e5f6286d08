package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/eldercare/internal/flagx"
	"github.com/dmitrijs2005/eldercare/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations use
// timex.Duration so they can be written as "1h" or as nanoseconds.
type JsonConfig struct {
	HTTPAddr        string         `json:"http_addr"`
	DatabaseDSN     string         `json:"database_dsn"`
	SecretKey       string         `json:"secret_key"`
	TokenTTL        timex.Duration `json:"token_ttl"`
	BcryptCost      int            `json:"bcrypt_cost"`
	StaticDir       string         `json:"static_dir"`
	DBMaxOpen       int            `json:"db_max_open"`
	DBMaxIdle       int            `json:"db_max_idle"`
	DBMaxLifetime   timex.Duration `json:"db_max_lifetime"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays Config with the file named by -c/-config. Fields left
// out of the file keep their current value. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.HTTPAddr != "" {
		cfg.HTTPAddr = jc.HTTPAddr
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.TokenTTL.Duration != 0 {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.BcryptCost != 0 {
		cfg.BcryptCost = jc.BcryptCost
	}
	if jc.StaticDir != "" {
		cfg.StaticDir = jc.StaticDir
	}
	if jc.DBMaxOpen != 0 {
		cfg.DBMaxOpen = jc.DBMaxOpen
	}
	if jc.DBMaxIdle != 0 {
		cfg.DBMaxIdle = jc.DBMaxIdle
	}
	if jc.DBMaxLifetime.Duration != 0 {
		cfg.DBMaxLifetime = jc.DBMaxLifetime.Duration
	}
	if jc.ShutdownTimeout.Duration != 0 {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
