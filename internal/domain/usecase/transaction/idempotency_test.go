package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	mockpersistence "github.com/Akilan7123/DreamPixel/mocks/port/persistence"
)

func TestIdempotencyHandler_CheckSettled(t *testing.T) {
	txnID := uuid.New()

	testCases := []struct {
		name            string
		mockSetup       func(mockTxnRepo *mockpersistence.MockTransactionRepository)
		expectedSettled bool
		expectedError   error
	}{
		{
			name: "settled transaction",
			mockSetup: func(mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockTxnRepo.EXPECT().GetByID(mock.Anything, txnID).Return(&entity.Transaction{ID: txnID, Payment: true}, nil)
			},
			expectedSettled: true,
		},
		{
			name: "unsettled transaction",
			mockSetup: func(mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockTxnRepo.EXPECT().GetByID(mock.Anything, txnID).Return(&entity.Transaction{ID: txnID}, nil)
			},
			expectedSettled: false,
		},
		{
			name: "transaction not found",
			mockSetup: func(mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockTxnRepo.EXPECT().GetByID(mock.Anything, txnID).Return(nil, errs.ErrTransactionNotFound)
			},
			expectedError: errs.ErrTransactionNotFound,
		},
		{
			name: "database error",
			mockSetup: func(mockTxnRepo *mockpersistence.MockTransactionRepository) {
				mockTxnRepo.EXPECT().GetByID(mock.Anything, txnID).Return(nil, errors.New("database connection error"))
			},
			expectedError: errors.New("failed to load transaction: database connection error"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUow := mockpersistence.NewMockUnitOfWork(t)
			mockTxnRepo := mockpersistence.NewMockTransactionRepository(t)
			mockUow.EXPECT().GetTransactionRepository(mock.Anything).Return(mockTxnRepo)
			tc.mockSetup(mockTxnRepo)

			handler := NewIdempotencyHandler(mockUow)
			txn, settled, err := handler.CheckSettled(context.Background(), txnID)

			if tc.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tc.expectedError, errs.ErrTransactionNotFound) {
					assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
				} else {
					assert.EqualError(t, err, tc.expectedError.Error())
				}
				assert.Nil(t, txn)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tc.expectedSettled, settled)
			assert.Equal(t, txnID, txn.ID)
		})
	}
}
