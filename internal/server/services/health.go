package services

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// HealthService probes the database.
type HealthService struct {
	db sqlx.QueryerContext
}

func NewHealthService(db sqlx.QueryerContext) *HealthService {
	return &HealthService{db: db}
}

// Check runs a trivial arithmetic query and returns its result (2).
func (s *HealthService) Check(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, s.db, &n, `SELECT 1+1`); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
