package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
)

const foreignCallerMessage = "Payment callback submitted by a user other than the buyer"

func TestVerifyAndSettle_CallerAudit(t *testing.T) {
	tests := []struct {
		name      string
		caller    func(txn *entity.Transaction) uuid.UUID
		wantAudit bool
	}{
		{"buyer submits", func(txn *entity.Transaction) uuid.UUID { return txn.UserID }, false},
		{"other user submits", func(*entity.Transaction) uuid.UUID { return uuid.New() }, true},
		{"no caller", func(*entity.Transaction) uuid.UUID { return uuid.Nil }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newServiceMocks(t)
			observed, logs := observer.New(zap.WarnLevel)
			svc := NewTransactionService(m.uow, m.gateway, m.clock,
				logger.NewFromZap(zap.New(observed), core.LogLevelDebug),
				Config{KeySecret: testSecret, GatewayTimeout: time.Second})

			txn := newTestTransaction(entity.PlanBasic)
			order := paidOrderFor(txn)
			m.gateway.EXPECT().FetchOrder(mock.Anything, order.ID).Return(order, nil)
			m.txns.EXPECT().GetByID(mock.Anything, txn.ID).Return(txn, nil)
			m.txns.EXPECT().MarkSettled(mock.Anything, txn.ID, "pay_1", fixedNow).Return(true, nil)
			// Credits land on the buyer whoever submits the callback.
			m.users.EXPECT().AddCredits(mock.Anything, txn.UserID, int64(100)).Return(int64(105), nil)

			caller := tt.caller(txn)
			callback := signedCallback(order.ID, "pay_1")
			callback.CallerID = caller

			result, err := svc.VerifyAndSettle(context.Background(), callback)
			require.NoError(t, err)
			assert.Equal(t, int64(100), result.CreditsAdded)

			entries := logs.FilterMessage(foreignCallerMessage).All()
			if !tt.wantAudit {
				assert.Empty(t, entries)
				return
			}
			require.Len(t, entries, 1)
			fields := entries[0].ContextMap()
			assert.Equal(t, caller.String(), fields["caller_id"])
			assert.Equal(t, txn.UserID.String(), fields["user_id"])
			assert.Equal(t, order.ID, fields["order_id"])
		})
	}
}
