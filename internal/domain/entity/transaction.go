package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	tport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/google/uuid"
)

// DefaultCurrency is used when no currency is configured
const DefaultCurrency = "INR"

// Transaction records one purchase attempt of a plan by a user
type Transaction struct {
	ID               uuid.UUID  // Also sent to the gateway as the order receipt
	UserID           uuid.UUID  // Buyer
	Plan             PlanID     // Plan purchased
	Amount           int64      // Plan price as charged, major units
	Currency         string     // ISO currency code
	Credits          int64      // Credits granted on settlement
	Payment          bool       // Settled flag, false -> true only
	GatewayOrderID   string     // Remote order id, set after order creation
	GatewayPaymentID string     // Remote payment id, set on settlement
	Date             time.Time  // Purchase date
	SettledAt        *time.Time // When credits were applied (nullable)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTransaction creates an unsettled transaction for the given plan
func NewTransaction(userID uuid.UUID, plan Plan, currency string, timeProvider tport.TimeProvider) (*Transaction, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrMissingFields
	}
	if plan.Credits <= 0 || plan.Price <= 0 {
		return nil, fmt.Errorf("%w: plan %s", errs.ErrInvalidAmount, plan.ID)
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	now := timeProvider.Now()
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Plan:      plan.ID,
		Amount:    plan.Price,
		Currency:  currency,
		Credits:   plan.Credits,
		Payment:   false,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Receipt returns the identifier echoed back by the gateway
func (t *Transaction) Receipt() string {
	return t.ID.String()
}

// AmountMinor returns the amount in minor units as sent to the gateway
func (t *Transaction) AmountMinor() (int64, error) {
	return ToMinorUnits(t.Amount)
}

// IsSettled reports whether credits were already applied
func (t *Transaction) IsSettled() bool {
	return t.Payment
}

// MarkSettled flips the settled flag at the given time.
// It returns false and changes nothing if already settled.
func (t *Transaction) MarkSettled(paymentID string, at time.Time) bool {
	if t.Payment {
		return false
	}
	t.Payment = true
	t.GatewayPaymentID = paymentID
	t.SettledAt = &at
	t.UpdatedAt = at
	return true
}

// ParseReceipt turns a gateway receipt back into a transaction id
func ParseReceipt(receipt string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(receipt))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: receipt %q", errs.ErrTransactionNotFound, receipt)
	}
	return id, nil
}
