package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

func TestCreateOrder_Success(t *testing.T) {
	m := newServiceMocks(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Asha"}

	var created *entity.Transaction
	m.users.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	m.txns.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, txn *entity.Transaction) { created = txn }).
		Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.MatchedBy(func(req entity.OrderRequest) bool {
		return req.Amount == 5000 && req.Currency == "INR" && req.PaymentCapture && req.Notes["plan"] == "Advanced"
	})).RunAndReturn(func(_ context.Context, req entity.OrderRequest) (*entity.GatewayOrder, error) {
		return &entity.GatewayOrder{
			ID:       "order_abc",
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Status:   entity.OrderStatusCreated,
		}, nil
	})
	m.txns.EXPECT().AttachGatewayOrder(ctx, mock.Anything, "order_abc").Return(nil)

	result, err := m.service.CreateOrder(ctx, user.ID, "Advanced")

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "order_abc", result.ID)
	assert.Equal(t, int64(5000), result.Amount)
	assert.Equal(t, "INR", result.Currency)
	assert.Equal(t, created.ID.String(), result.Receipt)
	assert.Equal(t, created.ID.String(), result.TransactionID)

	assert.Equal(t, user.ID, created.UserID)
	assert.Equal(t, entity.PlanAdvanced, created.Plan)
	assert.Equal(t, int64(50), created.Amount)
	assert.Equal(t, int64(500), created.Credits)
	assert.False(t, created.Payment)
	assert.Equal(t, fixedNow, created.Date)
}

func TestCreateOrder_Errors(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name          string
		userID        uuid.UUID
		plan          string
		mockSetup     func(m *serviceMocks)
		expectedError error
		expectedKind  errs.Kind
	}{
		{
			name:          "missing plan",
			userID:        userID,
			plan:          "",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrMissingFields,
			expectedKind:  errs.KindInvalidArgument,
		},
		{
			name:          "missing user",
			userID:        uuid.Nil,
			plan:          "Basic",
			mockSetup:     func(m *serviceMocks) {},
			expectedError: errs.ErrMissingFields,
			expectedKind:  errs.KindInvalidArgument,
		},
		{
			name:   "unknown user",
			userID: userID,
			plan:   "Basic",
			mockSetup: func(m *serviceMocks) {
				m.users.EXPECT().GetByID(mock.Anything, userID).Return(nil, errs.ErrUserNotFound)
			},
			expectedError: errs.ErrUserNotFound,
			expectedKind:  errs.KindNotFound,
		},
		{
			name:   "unknown plan",
			userID: userID,
			plan:   "Platinum",
			mockSetup: func(m *serviceMocks) {
				m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
			expectedError: errs.ErrInvalidPlan,
			expectedKind:  errs.KindInvalidArgument,
		},
		{
			name:   "plan ids are case sensitive",
			userID: userID,
			plan:   "basic",
			mockSetup: func(m *serviceMocks) {
				m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
			},
			expectedError: errs.ErrInvalidPlan,
			expectedKind:  errs.KindInvalidArgument,
		},
		{
			name:   "store failure",
			userID: userID,
			plan:   "Basic",
			mockSetup: func(m *serviceMocks) {
				m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				m.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDatabaseConnection)
			},
			expectedError: errs.ErrDatabaseConnection,
			expectedKind:  errs.KindUnavailable,
		},
		{
			name:   "gateway unavailable",
			userID: userID,
			plan:   "Business",
			mockSetup: func(m *serviceMocks) {
				m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
				m.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
				m.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(nil, errs.ErrGatewayUnavailable)
			},
			expectedError: errs.ErrGatewayUnavailable,
			expectedKind:  errs.KindUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newServiceMocks(t)
			tc.mockSetup(m)

			result, err := m.service.CreateOrder(context.Background(), tc.userID, tc.plan)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expectedError)
			assert.Equal(t, tc.expectedKind, errs.KindOf(err))
		})
	}
}

func TestCreateOrder_AttachFailureIsNotFatal(t *testing.T) {
	m := newServiceMocks(t)
	userID := uuid.New()

	m.users.EXPECT().GetByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil)
	m.txns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.gateway.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(&entity.GatewayOrder{
		ID: "order_x", Amount: 1000, Currency: "INR", Status: entity.OrderStatusCreated,
	}, nil)
	m.txns.EXPECT().AttachGatewayOrder(mock.Anything, mock.Anything, "order_x").Return(errs.ErrDatabaseConnection)

	result, err := m.service.CreateOrder(context.Background(), userID, "Basic")

	require.NoError(t, err)
	assert.Equal(t, "order_x", result.ID)
}
