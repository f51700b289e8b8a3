package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
)

func TestReconcilePending(t *testing.T) {
	m := newServiceMocks(t)

	paid := newTestTransaction(entity.PlanBasic)
	unpaid := newTestTransaction(entity.PlanAdvanced)
	raced := newTestTransaction(entity.PlanBusiness)
	broken := newTestTransaction(entity.PlanBasic)

	m.txns.EXPECT().ListUnsettled(mock.Anything, persistence.UnsettledFilter{
		CreatedBefore: fixedNow.Add(-m.service.config.Reconcile.MinAge),
		CreatedAfter:  fixedNow.Add(-m.service.config.Reconcile.MaxAge),
		Limit:         100,
	}).Return([]*entity.Transaction{paid, unpaid, raced, broken}, nil)

	m.gateway.EXPECT().FetchOrder(mock.Anything, paid.GatewayOrderID).Return(paidOrderFor(paid), nil)
	m.gateway.EXPECT().FetchOrderPayments(mock.Anything, paid.GatewayOrderID).Return([]entity.GatewayPayment{
		{ID: "pay_failed", OrderID: paid.GatewayOrderID, Status: entity.PaymentStatusFailed},
		{ID: "pay_ok", OrderID: paid.GatewayOrderID, Status: entity.PaymentStatusCaptured},
	}, nil)
	m.txns.EXPECT().MarkSettled(mock.Anything, paid.ID, "pay_ok", fixedNow).Return(true, nil)
	m.users.EXPECT().AddCredits(mock.Anything, paid.UserID, int64(100)).Return(int64(105), nil)

	unpaidOrder := paidOrderFor(unpaid)
	unpaidOrder.Status = entity.OrderStatusAttempted
	m.gateway.EXPECT().FetchOrder(mock.Anything, unpaid.GatewayOrderID).Return(unpaidOrder, nil)

	m.gateway.EXPECT().FetchOrder(mock.Anything, raced.GatewayOrderID).Return(paidOrderFor(raced), nil)
	m.gateway.EXPECT().FetchOrderPayments(mock.Anything, raced.GatewayOrderID).Return([]entity.GatewayPayment{
		{ID: "pay_r", OrderID: raced.GatewayOrderID, Status: entity.PaymentStatusCaptured},
	}, nil)
	m.txns.EXPECT().MarkSettled(mock.Anything, raced.ID, "pay_r", fixedNow).Return(false, nil)

	m.gateway.EXPECT().FetchOrder(mock.Anything, broken.GatewayOrderID).Return(nil, errs.ErrGatewayUnavailable)

	report, err := m.service.ReconcilePending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, report.Checked)
	assert.Equal(t, 1, report.Settled)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	m.users.AssertNumberOfCalls(t, "AddCredits", 1)
}

func TestReconcilePending_RejectsForeignReceipt(t *testing.T) {
	m := newServiceMocks(t)
	txn := newTestTransaction(entity.PlanBasic)
	other := newTestTransaction(entity.PlanBasic)

	m.txns.EXPECT().ListUnsettled(mock.Anything, mock.Anything).Return([]*entity.Transaction{txn}, nil)
	order := paidOrderFor(txn)
	order.Receipt = other.Receipt()
	m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(order, nil)

	report, err := m.service.ReconcilePending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)
	m.txns.AssertNotCalled(t, "MarkSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcilePending_Empty(t *testing.T) {
	m := newServiceMocks(t)
	m.txns.EXPECT().ListUnsettled(mock.Anything, mock.Anything).Return(nil, nil)

	report, err := m.service.ReconcilePending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, report.Checked)
}

func TestReconcilePending_ListFailure(t *testing.T) {
	m := newServiceMocks(t)
	m.txns.EXPECT().ListUnsettled(mock.Anything, mock.Anything).Return(nil, errs.ErrDatabaseConnection)

	report, err := m.service.ReconcilePending(context.Background())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
}
