package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainErr "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"deadline", context.DeadlineExceeded, domainErr.ErrTimeout},
		{"canceled passes through", context.Canceled, context.Canceled},
		{"domain error passes through", domainErr.ErrUserNotFound, domainErr.ErrUserNotFound},
		{"record not found", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, domainErr.ErrDatabaseConnection},
		{"too many connections", &pgconn.PgError{Code: "53300"}, domainErr.ErrDatabaseConnection},
		{"unique violation", &pgconn.PgError{Code: "23505"}, domainErr.ErrConstraintViolation},
		{"check violation", &pgconn.PgError{Code: "23514"}, domainErr.ErrConstraintViolation},
		{"numeric overflow", &pgconn.PgError{Code: "22003"}, domainErr.ErrAmountOverflow},
		{"unknown", errors.New("weird"), domainErr.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapper.MapError(tt.err, "test"), tt.want)
		})
	}

	assert.NoError(t, mapper.MapError(nil, "test"))
}

func TestErrorMapper_MapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeUser), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, EntityTypeTransaction), domainErr.ErrTransactionNotFound)
	assert.ErrorIs(t, mapper.MapEntityNotFoundError(fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound), "other"), domainErr.ErrNotFound)
	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeUser))
}

func TestErrorMapper_IsRetryable(t *testing.T) {
	mapper := NewErrorMapper()

	assert.True(t, mapper.IsRetryable(&pgconn.PgError{Code: "40001"}))
	assert.True(t, mapper.IsRetryable(fmt.Errorf("%w: %w", domainErr.ErrDatabaseConnection, &pgconn.PgError{Code: "40P01"})))
	assert.False(t, mapper.IsRetryable(&pgconn.PgError{Code: "23505"}))
	assert.False(t, mapper.IsRetryable(context.DeadlineExceeded))
	assert.False(t, mapper.IsRetryable(nil))
}
