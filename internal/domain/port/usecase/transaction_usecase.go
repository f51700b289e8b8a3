package usecase

import (
	"context"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	"github.com/google/uuid"
)

// OrderResult is what the client needs to open the gateway checkout
type OrderResult struct {
	ID            string `json:"id"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Receipt       string `json:"receipt"`
	TransactionID string `json:"-"`
}

// PaymentCallback is the gateway's confirmation forwarded by the client
type PaymentCallback struct {
	OrderID   string
	PaymentID string
	Signature string
	CallerID  uuid.UUID // authenticated submitter, recorded for audit only
}

// SettlementResult describes the outcome of a successful verification
type SettlementResult struct {
	TransactionID  uuid.UUID
	CreditsAdded   int64
	AlreadySettled bool
	Message        string
}

// ReconcileReport summarises one reconciliation sweep
type ReconcileReport struct {
	Checked int
	Settled int
	Skipped int
	Failed  int
}

// TransactionUseCase defines methods for purchase-related business operations
type TransactionUseCase interface {
	// CreateOrder creates a pending transaction for the plan and opens a gateway order
	CreateOrder(ctx context.Context, userID uuid.UUID, planID string) (*OrderResult, error)

	// VerifyAndSettle authenticates a payment callback and credits the buyer exactly once
	VerifyAndSettle(ctx context.Context, callback PaymentCallback) (*SettlementResult, error)

	// ReconcilePending settles paid orders whose callback never arrived
	ReconcilePending(ctx context.Context) (*ReconcileReport, error)

	// ListPlans returns the purchasable plans
	ListPlans() []entity.Plan
}
