package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
	mcore "github.com/Akilan7123/DreamPixel/mocks/port/core"
	musecase "github.com/Akilan7123/DreamPixel/mocks/port/usecase"
)

func TestNewReconciler_InvalidSchedule(t *testing.T) {
	_, err := NewReconciler(musecase.NewMockTransactionUseCase(t), logger.NewNoopLogger(), Config{Schedule: "every now and then"})
	assert.Error(t, err)
}

func TestReconciler_RunOnce(t *testing.T) {
	uc := musecase.NewMockTransactionUseCase(t)
	report := &usecase.ReconcileReport{Checked: 3, Settled: 1, Skipped: 2}
	uc.EXPECT().ReconcilePending(mock.MatchedBy(func(ctx context.Context) bool {
		_, hasDeadline := ctx.Deadline()
		return hasDeadline
	})).Return(report, nil).Once()

	r, err := NewReconciler(uc, logger.NewNoopLogger(), Config{Schedule: "@every 5m", SweepTimeout: time.Second})
	require.NoError(t, err)

	got, err := r.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestReconciler_RunOnceLogsFailure(t *testing.T) {
	uc := musecase.NewMockTransactionUseCase(t)
	uc.EXPECT().ReconcilePending(mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Error("Reconciliation sweep failed", mock.Anything).Once()

	r, err := NewReconciler(uc, mockLogger, Config{Schedule: "@every 5m"})
	require.NoError(t, err)

	_, err = r.RunOnce(context.Background())
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}

func TestReconciler_StartStop(t *testing.T) {
	uc := musecase.NewMockTransactionUseCase(t)
	uc.EXPECT().ReconcilePending(mock.Anything).Return(&usecase.ReconcileReport{}, nil).Maybe()

	r, err := NewReconciler(uc, logger.NewNoopLogger(), Config{Schedule: "@every 1h"})
	require.NoError(t, err)

	r.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, r.Stop(ctx))
	assert.ErrorIs(t, r.ctx.Err(), context.Canceled)
}

func TestCronLogAdapter(t *testing.T) {
	mockLogger := mcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug("cron: start", map[string]any{"entries": 1}).Once()
	mockLogger.EXPECT().Error("cron: panic", map[string]any{"error": "boom", "job": "sweep"}).Once()

	a := cronLogAdapter{logger: mockLogger}
	a.Info("start", "entries", 1)
	a.Error(errors.New("boom"), "panic", "job", "sweep", "dangling")
}
