package transaction

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
)

func signedCallback(orderID, paymentID string) usecase.PaymentCallback {
	return usecase.PaymentCallback{
		OrderID:   orderID,
		PaymentID: paymentID,
		Signature: ComputeSignature(orderID, paymentID, testSecret),
	}
}

func TestVerifyAndSettle_CreditsOnce(t *testing.T) {
	m := newServiceMocks(t)
	txn := newTestTransaction(entity.PlanBasic)
	order := paidOrderFor(txn)

	m.gateway.EXPECT().FetchOrder(mock.Anything, order.ID).Return(order, nil)
	m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)
	m.txns.EXPECT().MarkSettled(mock.Anything, txn.ID, "pay_1", fixedNow).Return(true, nil)
	m.users.EXPECT().AddCredits(mock.Anything, txn.UserID, int64(100)).Return(int64(105), nil)

	result, err := m.service.VerifyAndSettle(context.Background(), signedCallback(order.ID, "pay_1"))

	require.NoError(t, err)
	assert.Equal(t, txn.ID, result.TransactionID)
	assert.Equal(t, int64(100), result.CreditsAdded)
	assert.False(t, result.AlreadySettled)
	// The storefront client shows this text verbatim.
	assert.Equal(t, "Credits Added Successfully", result.Message)
}

func TestVerifyAndSettle_AlreadySettled(t *testing.T) {
	m := newServiceMocks(t)
	txn := newTestTransaction(entity.PlanAdvanced)
	txn.Payment = true
	order := paidOrderFor(txn)

	m.gateway.EXPECT().FetchOrder(mock.Anything, order.ID).Return(order, nil)
	m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)

	result, err := m.service.VerifyAndSettle(context.Background(), signedCallback(order.ID, "pay_1"))

	require.NoError(t, err)
	assert.True(t, result.AlreadySettled)
	assert.Zero(t, result.CreditsAdded)
	assert.Equal(t, MessageAlreadyCredits, result.Message)
	m.txns.AssertNotCalled(t, "MarkSettled", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.users.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_LostRace(t *testing.T) {
	m := newServiceMocks(t)
	txn := newTestTransaction(entity.PlanBasic)
	order := paidOrderFor(txn)

	m.gateway.EXPECT().FetchOrder(mock.Anything, order.ID).Return(order, nil)
	m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)
	m.txns.EXPECT().MarkSettled(mock.Anything, txn.ID, "pay_1", fixedNow).Return(false, nil)

	result, err := m.service.VerifyAndSettle(context.Background(), signedCallback(order.ID, "pay_1"))

	require.NoError(t, err)
	assert.True(t, result.AlreadySettled)
	assert.Zero(t, result.CreditsAdded)
	m.users.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyAndSettle_Rejections(t *testing.T) {
	testCases := []struct {
		name          string
		callback      func(txn *entity.Transaction) usecase.PaymentCallback
		mockSetup     func(m *serviceMocks, txn *entity.Transaction)
		expectedError error
		expectedKind  errs.Kind
	}{
		{
			name: "missing signature",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return usecase.PaymentCallback{OrderID: txn.GatewayOrderID, PaymentID: "pay_1"}
			},
			mockSetup:     func(m *serviceMocks, txn *entity.Transaction) {},
			expectedError: errs.ErrMissingFields,
			expectedKind:  errs.KindInvalidArgument,
		},
		{
			name: "tampered payment id",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				cb := signedCallback(txn.GatewayOrderID, "pay_1")
				cb.PaymentID = "pay_2"
				return cb
			},
			mockSetup:     func(m *serviceMocks, txn *entity.Transaction) {},
			expectedError: errs.ErrInvalidSignature,
			expectedKind:  errs.KindUnauthorized,
		},
		{
			name: "signed with another secret",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return usecase.PaymentCallback{
					OrderID:   txn.GatewayOrderID,
					PaymentID: "pay_1",
					Signature: ComputeSignature(txn.GatewayOrderID, "pay_1", "other_secret"),
				}
			},
			mockSetup:     func(m *serviceMocks, txn *entity.Transaction) {},
			expectedError: errs.ErrInvalidSignature,
			expectedKind:  errs.KindUnauthorized,
		},
		{
			name: "order not paid",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				order := paidOrderFor(txn)
				order.Status = entity.OrderStatusCreated
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(order, nil)
			},
			expectedError: errs.ErrPaymentNotCompleted,
			expectedKind:  errs.KindFailedPrecondition,
		},
		{
			name: "order attempted",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				order := paidOrderFor(txn)
				order.Status = entity.OrderStatusAttempted
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(order, nil)
			},
			expectedError: errs.ErrPaymentNotCompleted,
			expectedKind:  errs.KindFailedPrecondition,
		},
		{
			name: "unknown order",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(nil, errs.ErrNotFound)
			},
			expectedError: errs.ErrNotFound,
			expectedKind:  errs.KindNotFound,
		},
		{
			name: "gateway unavailable",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(nil, errs.ErrGatewayUnavailable)
			},
			expectedError: errs.ErrGatewayUnavailable,
			expectedKind:  errs.KindUnavailable,
		},
		{
			name: "receipt is not a transaction",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				order := paidOrderFor(txn)
				order.Receipt = "receipt#42"
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(order, nil)
			},
			expectedError: errs.ErrTransactionNotFound,
			expectedKind:  errs.KindNotFound,
		},
		{
			name: "transaction missing",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(paidOrderFor(txn), nil)
				m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(nil, errs.ErrTransactionNotFound)
			},
			expectedError: errs.ErrTransactionNotFound,
			expectedKind:  errs.KindNotFound,
		},
		{
			name: "amount mismatch",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				order := paidOrderFor(txn)
				order.Amount = 100
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(order, nil)
				m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)
			},
			expectedError: errs.ErrAmountMismatch,
			expectedKind:  errs.KindFailedPrecondition,
		},
		{
			name: "settlement store failure",
			callback: func(txn *entity.Transaction) usecase.PaymentCallback {
				return signedCallback(txn.GatewayOrderID, "pay_1")
			},
			mockSetup: func(m *serviceMocks, txn *entity.Transaction) {
				m.gateway.EXPECT().FetchOrder(mock.Anything, txn.GatewayOrderID).Return(paidOrderFor(txn), nil)
				m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)
				m.txns.EXPECT().MarkSettled(mock.Anything, txn.ID, "pay_1", fixedNow).Return(false, errs.ErrDatabaseConnection)
			},
			expectedError: errs.ErrDatabaseConnection,
			expectedKind:  errs.KindUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			txn := newTestTransaction(entity.PlanBasic)
			tc.mockSetup(m, txn)

			result, err := m.service.VerifyAndSettle(context.Background(), tc.callback(txn))

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expectedError)
			assert.Equal(t, tc.expectedKind, errs.KindOf(err))
			m.users.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}
