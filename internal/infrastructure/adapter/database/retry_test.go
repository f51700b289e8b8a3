package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestRetryOnTransientError_RetriesSerializationFailures(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
		calls++
		if calls < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	}, NewErrorMapper(), logger.NewNoopLogger())

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_StopsOnPermanentError(t *testing.T) {
	calls := 0
	permanent := errors.New("syntax error")
	err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
		calls++
		return permanent
	}, NewErrorMapper(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestRetryOnTransientError_GivesUp(t *testing.T) {
	calls := 0
	err := RetryOnTransientError(context.Background(), fastRetryConfig(), func() error {
		calls++
		return &pgconn.PgError{Code: "40P01"}
	}, NewErrorMapper(), logger.NewNoopLogger())

	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	assert.Equal(t, 3, calls)
}

func TestRetryOnTransientError_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := fastRetryConfig()
	cfg.RetryInterval = time.Second
	cfg.MaxInterval = time.Second

	calls := 0
	err := RetryOnTransientError(ctx, cfg, func() error {
		calls++
		cancel()
		return &pgconn.PgError{Code: "40001"}
	}, NewErrorMapper(), logger.NewNoopLogger())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}

	assert.Equal(t, 10*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 40*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, 50*time.Millisecond, calculateBackoffWithJitter(5, cfg))

	cfg.JitterFactor = 0.5
	backoff := calculateBackoffWithJitter(0, cfg)
	assert.GreaterOrEqual(t, backoff, 10*time.Millisecond)
	assert.LessOrEqual(t, backoff, 15*time.Millisecond)
}
