package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
)

// TransactionRepository is the in-memory transaction store
type TransactionRepository struct {
	store *Store
	ctx   context.Context
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// Create saves a new transaction; the user must exist
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	return r.store.with(pick(r.ctx, ctx), func(st *state) error {
		if _, ok := st.users[txn.UserID]; !ok {
			return errs.ErrUserNotFound
		}
		if _, exists := st.transactions[txn.ID]; exists {
			return fmt.Errorf("%w: transaction %s", errs.ErrDuplicateOrder, txn.ID)
		}
		if txn.GatewayOrderID != "" {
			if _, taken := st.orders[txn.GatewayOrderID]; taken {
				return errs.ErrDuplicateOrder
			}
			st.orders[txn.GatewayOrderID] = txn.ID
		}
		st.transactions[txn.ID] = *txn
		return nil
	})
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txn entity.Transaction
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		t, ok := st.transactions[id]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		txn = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// AttachGatewayOrder records the remote order id; an order id binds to one transaction only
func (r *TransactionRepository) AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderID string) error {
	return r.store.with(pick(r.ctx, ctx), func(st *state) error {
		txn, ok := st.transactions[id]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		if owner, taken := st.orders[orderID]; taken && owner != id {
			return errs.ErrDuplicateOrder
		}
		if txn.GatewayOrderID != "" && txn.GatewayOrderID != orderID {
			delete(st.orders, txn.GatewayOrderID)
		}
		txn.GatewayOrderID = orderID
		txn.UpdatedAt = r.store.timeProvider.Now()
		st.transactions[id] = txn
		st.orders[orderID] = id
		return nil
	})
}

// MarkSettled flips payment to true if it is still false
func (r *TransactionRepository) MarkSettled(ctx context.Context, id uuid.UUID, paymentID string, settledAt time.Time) (bool, error) {
	var won bool
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		txn, ok := st.transactions[id]
		if !ok {
			return errs.ErrTransactionNotFound
		}
		if won = txn.MarkSettled(paymentID, settledAt); won {
			st.transactions[id] = txn
		}
		return nil
	})
	return won, err
}

// ListUnsettled returns unsettled transactions with a gateway order, oldest first
func (r *TransactionRepository) ListUnsettled(ctx context.Context, filter persistence.UnsettledFilter) ([]*entity.Transaction, error) {
	var pending []*entity.Transaction
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		for _, txn := range st.transactions {
			if txn.Payment || txn.GatewayOrderID == "" {
				continue
			}
			if !filter.CreatedBefore.IsZero() && txn.CreatedAt.After(filter.CreatedBefore) {
				continue
			}
			if !filter.CreatedAfter.IsZero() && txn.CreatedAt.Before(filter.CreatedAfter) {
				continue
			}
			t := txn
			pending = append(pending, &t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	if filter.Limit > 0 && len(pending) > filter.Limit {
		pending = pending[:filter.Limit]
	}
	return pending, nil
}
