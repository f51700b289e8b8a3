package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
)

func TestBoundContext(t *testing.T) {
	t.Run("no deadline gets the query timeout", func(t *testing.T) {
		ctx, cancel := boundContext(context.Background(), 3*time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(3*time.Second), deadline, time.Second)
	})

	t.Run("earlier caller deadline wins", func(t *testing.T) {
		parent, cancelParent := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancelParent()
		want, _ := parent.Deadline()

		ctx, cancel := boundContext(parent, time.Minute)
		defer cancel()

		deadline, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, want, deadline)
	})

	t.Run("zero timeout leaves context untouched", func(t *testing.T) {
		parent := context.Background()
		ctx, cancel := boundContext(parent, 0)
		defer cancel()

		_, ok := ctx.Deadline()
		assert.False(t, ok)
		assert.Equal(t, parent, ctx)
	})
}

func TestRepositories_QueryContextCarriesDeadline(t *testing.T) {
	log := logger.NewNoopLogger()
	users := NewUserRepository(nil, nil, log, 2*time.Second)
	txns := NewTransactionRepository(nil, log, 2*time.Second)

	tests := []struct {
		name  string
		bound func(context.Context) (context.Context, context.CancelFunc)
	}{
		{"users", users.queryContext},
		{"transactions", txns.queryContext},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.bound(context.Background())

			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(2*time.Second), deadline, time.Second)

			cancel()
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
		})
	}
}
