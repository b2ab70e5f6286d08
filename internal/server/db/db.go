// Package db opens the PostgreSQL pool used by the server.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eldercare/internal/server/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// connectTimeout bounds the initial dial so startup fails fast.
const connectTimeout = 5 * time.Second

// Connect parses the DSN, opens a pgx-backed *sqlx.DB, applies the pool
// limits from cfg and pings the database.
func Connect(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	pc, err := pgx.ParseConfig(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
	}
	pc.ConnectTimeout = connectTimeout

	db := sqlx.NewDb(stdlib.OpenDB(*pc), "pgx")

	db.SetMaxOpenConns(cfg.DBMaxOpen)
	db.SetMaxIdleConns(cfg.DBMaxIdle)
	db.SetConnMaxLifetime(cfg.DBMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	return db, nil
}
