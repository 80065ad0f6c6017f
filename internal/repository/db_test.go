package repository

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckFailureDoesNotLogSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// port 1 is never a postgres listener; the lazy pool only dials on Ping
	pool, err := pgxpool.New(context.Background(), "postgres://cv:cv@127.0.0.1:1/cv?sslmode=disable")
	require.NoError(t, err)
	defer pool.Close()

	err = HealthCheck(context.Background(), pool, 500*time.Millisecond, logger)
	require.Error(t, err)
	assert.NotContains(t, buf.String(), "database ping successful")
}
