package transaction

import (
	"context"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/gateway"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// Messages returned on successful settlement
const (
	MessageCreditsAdded   = "Credits Added Successfully"
	MessageAlreadyCredits = "Credits already added"
)

// Config holds the settings the purchase flow needs
type Config struct {
	KeySecret      string        // gateway secret used for callback signatures
	Currency       string        // order currency, defaults to INR
	GatewayTimeout time.Duration // per gateway call
	Reconcile      ReconcileConfig
}

// ReconcileConfig bounds one reconciliation sweep
type ReconcileConfig struct {
	MinAge    time.Duration // leave fresh orders to the client callback
	MaxAge    time.Duration // stop chasing abandoned orders
	BatchSize int
	Workers   int
}

func (c Config) withDefaults() Config {
	if c.Currency == "" {
		c.Currency = entity.DefaultCurrency
	}
	if c.GatewayTimeout <= 0 {
		c.GatewayTimeout = 10 * time.Second
	}
	if c.Reconcile.MinAge <= 0 {
		c.Reconcile.MinAge = 5 * time.Minute
	}
	if c.Reconcile.MaxAge <= 0 {
		c.Reconcile.MaxAge = 72 * time.Hour
	}
	if c.Reconcile.BatchSize <= 0 {
		c.Reconcile.BatchSize = 100
	}
	if c.Reconcile.Workers <= 0 {
		c.Reconcile.Workers = 4
	}
	return c
}

// Service is the purchase flow: order creation, callback verification and settlement
type Service struct {
	uow                persistence.UnitOfWork
	gateway            gateway.PaymentGateway
	validator          *PaymentValidator
	idempotencyHandler *IdempotencyHandler
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	config             Config
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	paymentGateway gateway.PaymentGateway,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	return &Service{
		uow:                uow,
		gateway:            paymentGateway,
		validator:          NewPaymentValidator(),
		idempotencyHandler: NewIdempotencyHandler(uow),
		timeProvider:       timeProvider,
		logger:             logger,
		config:             config.withDefaults(),
	}
}

// ListPlans returns the purchasable plans
func (s *Service) ListPlans() []entity.Plan {
	return entity.Plans()
}

// settle flips the settled flag and credits the buyer inside one unit of work.
// It reports whether this call applied the credits.
func (s *Service) settle(ctx context.Context, txn *entity.Transaction, paymentID string) (bool, int64, error) {
	var credited bool
	var balance int64

	err := s.uow.Execute(ctx, func(txCtx context.Context) error {
		// Execute may re-run this closure after a serialization failure.
		credited = false

		flipped, err := s.uow.GetTransactionRepository(txCtx).
			MarkSettled(txCtx, txn.ID, paymentID, s.timeProvider.Now())
		if err != nil {
			return err
		}
		if !flipped {
			return nil
		}

		balance, err = s.uow.GetUserRepository(txCtx).AddCredits(txCtx, txn.UserID, txn.Credits)
		if err != nil {
			return err
		}
		credited = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return credited, balance, nil
}

// gatewayContext bounds a single gateway call
func (s *Service) gatewayContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.GatewayTimeout)
}

func transactionFields(txn *entity.Transaction) map[string]any {
	return map[string]any{
		"transaction_id": txn.ID.String(),
		"user_id":        txn.UserID.String(),
		"plan":           string(txn.Plan),
		"credits":        txn.Credits,
	}
}

func userField(id uuid.UUID) map[string]any {
	return map[string]any{"user_id": id.String()}
}
