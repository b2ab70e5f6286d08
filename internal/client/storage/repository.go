// Package storage is the client's key/value "local storage": a single SQLite
// table holding the session token and the serialized record lists.
package storage

import "context"

// Well-known keys.
const (
	KeyToken        = "token"
	KeyAppointments = "ec_schedule"
	KeyMedications  = "ec_meds"
	KeyHealthLogs   = "ec_health"
	KeyReminders    = "ec_alerts"
)

// Repository stores opaque values by key. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
