package entity

import (
	"testing"
	"time"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coremocks "github.com/Akilan7123/DreamPixel/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	userID := uuid.New()
	basic, err := LookupPlan("Basic")
	require.NoError(t, err)

	t.Run("Valid transaction creation", func(t *testing.T) {
		txn, err := NewTransaction(userID, basic, "inr", mockTime)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, txn.ID)
		assert.Equal(t, userID, txn.UserID)
		assert.Equal(t, PlanBasic, txn.Plan)
		assert.Equal(t, int64(10), txn.Amount)
		assert.Equal(t, int64(100), txn.Credits)
		assert.Equal(t, "INR", txn.Currency)
		assert.False(t, txn.Payment)
		assert.Nil(t, txn.SettledAt)
		assert.Equal(t, fixedTime, txn.Date)
		assert.Equal(t, txn.ID.String(), txn.Receipt())

		minor, err := txn.AmountMinor()
		require.NoError(t, err)
		assert.Equal(t, int64(1000), minor)
	})

	t.Run("Empty currency falls back to default", func(t *testing.T) {
		txn, err := NewTransaction(userID, basic, "", mockTime)
		require.NoError(t, err)
		assert.Equal(t, DefaultCurrency, txn.Currency)
	})

	t.Run("Nil user", func(t *testing.T) {
		txn, err := NewTransaction(uuid.Nil, basic, "INR", mockTime)
		assert.ErrorIs(t, err, errs.ErrMissingFields)
		assert.Nil(t, txn)
	})

	t.Run("Zero-credit plan", func(t *testing.T) {
		_, err := NewTransaction(userID, Plan{ID: "Free", Price: 0, Credits: 0}, "INR", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestTransactionMarkSettled(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	settled := created.Add(2 * time.Minute)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()

	plan, err := LookupPlan("Advanced")
	require.NoError(t, err)
	txn, err := NewTransaction(uuid.New(), plan, "INR", mockTime)
	require.NoError(t, err)

	assert.True(t, txn.MarkSettled("pay_1", settled))
	assert.True(t, txn.IsSettled())
	assert.Equal(t, "pay_1", txn.GatewayPaymentID)
	require.NotNil(t, txn.SettledAt)
	assert.Equal(t, settled, *txn.SettledAt)

	// Monotonic: a second settlement is refused and leaves the record untouched.
	assert.False(t, txn.MarkSettled("pay_2", settled.Add(time.Minute)))
	assert.Equal(t, "pay_1", txn.GatewayPaymentID)
	assert.Equal(t, settled, txn.UpdatedAt)
}

func TestParseReceipt(t *testing.T) {
	id := uuid.New()

	parsed, err := ParseReceipt(" " + id.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseReceipt("rcpt_legacy_42")
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestSettledPayment(t *testing.T) {
	payments := []GatewayPayment{
		{ID: "pay_failed", Status: PaymentStatusFailed},
		{ID: "pay_auth", Status: PaymentStatusAuthorized},
		{ID: "pay_cap", Status: PaymentStatusCaptured},
	}

	p, ok := SettledPayment(payments)
	require.True(t, ok)
	assert.Equal(t, "pay_cap", p.ID)

	p, ok = SettledPayment(payments[:2])
	require.True(t, ok)
	assert.Equal(t, "pay_auth", p.ID)

	_, ok = SettledPayment(payments[:1])
	assert.False(t, ok)

	order := &GatewayOrder{Status: OrderStatusAttempted}
	assert.False(t, order.IsPaid())
	order.Status = OrderStatusPaid
	assert.True(t, order.IsPaid())
}
