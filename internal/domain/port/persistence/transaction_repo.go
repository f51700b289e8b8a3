package persistence

import (
	"context"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	"github.com/google/uuid"
)

// UnsettledFilter narrows the reconciliation sweep
type UnsettledFilter struct {
	CreatedBefore time.Time
	CreatedAfter  time.Time
	Limit         int
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new, unsettled transaction
	//
	// Possible errors:
	// - ErrUserNotFound: If referenced user does not exist
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its id (the gateway receipt)
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// AttachGatewayOrder records the remote order id on the transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDuplicateOrder: If the order id is already bound to another transaction
	AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderID string) error

	// MarkSettled flips payment=false to payment=true with a conditional update.
	// Returns true only for the caller whose update changed the row.
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	MarkSettled(ctx context.Context, id uuid.UUID, paymentID string, settledAt time.Time) (bool, error)

	// ListUnsettled returns unsettled transactions that already have a gateway order
	ListUnsettled(ctx context.Context, filter UnsettledFilter) ([]*entity.Transaction, error)
}
