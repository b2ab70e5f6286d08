package db

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/eldercare/internal/server/config"
	"github.com/stretchr/testify/require"
)

func TestConnect_BadDSN(t *testing.T) {
	cfg := &config.Config{DatabaseDSN: "postgres://%zz"}

	_, err := Connect(context.Background(), cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse DSN")
}
