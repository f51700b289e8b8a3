// Package scheduler runs the periodic reconciliation sweep.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
)

// Config controls when sweeps run and how long one may take
type Config struct {
	Schedule     string        // cron spec or descriptor such as "@every 5m"
	SweepTimeout time.Duration // upper bound for a single sweep
}

// Reconciler triggers TransactionUseCase.ReconcilePending on a cron schedule.
// Overlapping runs are skipped rather than queued.
type Reconciler struct {
	cron    *cron.Cron
	useCase usecase.TransactionUseCase
	logger  coreport.Logger
	config  Config
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewReconciler validates the schedule and registers the sweep job
func NewReconciler(useCase usecase.TransactionUseCase, logger coreport.Logger, config Config) (*Reconciler, error) {
	if config.SweepTimeout <= 0 {
		config.SweepTimeout = 2 * time.Minute
	}

	cronLogger := cronLogAdapter{logger: logger}
	ctx, cancel := context.WithCancel(context.Background())

	r := &Reconciler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		useCase: useCase,
		logger:  logger,
		config:  config,
		ctx:     ctx,
		cancel:  cancel,
	}

	if _, err := r.cron.AddFunc(config.Schedule, r.run); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid reconciler schedule %q: %w", config.Schedule, err)
	}
	return r, nil
}

// Start begins running sweeps in the background
func (r *Reconciler) Start() {
	r.logger.Info("Reconciler started", map[string]any{"schedule": r.config.Schedule})
	r.cron.Start()
}

// Stop prevents new sweeps, cancels a running one and waits for it until ctx expires
func (r *Reconciler) Stop(ctx context.Context) error {
	done := r.cron.Stop()
	r.cancel()

	select {
	case <-done.Done():
		r.logger.Info("Reconciler stopped", nil)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("reconciler did not stop in time: %w", ctx.Err())
	}
}

// RunOnce performs a single sweep synchronously
func (r *Reconciler) RunOnce(ctx context.Context) (*usecase.ReconcileReport, error) {
	ctx, cancel := context.WithTimeout(ctx, r.config.SweepTimeout)
	defer cancel()

	report, err := r.useCase.ReconcilePending(ctx)
	if err != nil {
		r.logger.Error("Reconciliation sweep failed", errs.Fields(err))
	}
	return report, err
}

func (r *Reconciler) run() {
	_, _ = r.RunOnce(r.ctx)
}

// cronLogAdapter routes cron's own messages through the application logger
type cronLogAdapter struct {
	logger coreport.Logger
}

func (a cronLogAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Debug("cron: "+msg, kvFields(keysAndValues))
}

func (a cronLogAdapter) Error(err error, msg string, keysAndValues ...interface{}) {
	fields := kvFields(keysAndValues)
	fields["error"] = err.Error()
	a.logger.Error("cron: "+msg, fields)
}

func kvFields(keysAndValues []interface{}) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		fields[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return fields
}
