package transaction

import (
	"context"
	"fmt"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// IdempotencyHandler answers "was this purchase already credited?" before any write happens
type IdempotencyHandler struct {
	uow persistence.UnitOfWork
}

// NewIdempotencyHandler creates a new IdempotencyHandler
func NewIdempotencyHandler(uow persistence.UnitOfWork) *IdempotencyHandler {
	return &IdempotencyHandler{
		uow: uow,
	}
}

// CheckSettled loads the transaction and reports whether it is already settled.
// The authoritative guard remains the conditional update inside the unit of work;
// this check only lets re-deliveries return early without opening a transaction.
func (h *IdempotencyHandler) CheckSettled(
	ctx context.Context,
	transactionID uuid.UUID,
) (*entity.Transaction, bool, error) {
	txn, err := h.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load transaction: %w", err)
	}

	return txn, txn.IsSettled(), nil
}
