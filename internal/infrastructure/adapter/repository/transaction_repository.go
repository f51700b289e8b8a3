package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    time.Duration
}

// NewTransactionRepository creates a new TransactionRepository instance.
// Every call is bounded by queryTimeout; zero leaves the caller's context as is.
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger, queryTimeout time.Duration) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

func (r *TransactionRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return boundContext(ctx, r.queryTimeout)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *TransactionRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:               txn.ID,
		UserID:           txn.UserID,
		Plan:             string(txn.Plan),
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		Credits:          txn.Credits,
		Payment:          txn.Payment,
		GatewayOrderID:   optionalString(txn.GatewayOrderID),
		GatewayPaymentID: optionalString(txn.GatewayPaymentID),
		Date:             txn.Date,
		SettledAt:        txn.SettledAt,
		CreatedAt:        txn.CreatedAt,
		UpdatedAt:        txn.UpdatedAt,
	}
}

func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		UserID:           m.UserID,
		Plan:             entity.PlanID(m.Plan),
		Amount:           m.Amount,
		Currency:         m.Currency,
		Credits:          m.Credits,
		Payment:          m.Payment,
		GatewayOrderID:   derefString(m.GatewayOrderID),
		GatewayPaymentID: derefString(m.GatewayPaymentID),
		Date:             m.Date,
		SettledAt:        m.SettledAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *TransactionRepository) handleDatabaseError(operation string, err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		r.logger.Warn("Duplicate gateway reference on transaction", map[string]any{
			"transaction_id": id.String(),
			"constraint":     r.errorClassifier.ConstraintName(err),
		})
		return errs.ErrDuplicateOrder
	case ForeignKeyError:
		return errs.ErrUserNotFound
	case ConstraintError:
		return fmt.Errorf("%w: %w", errs.ErrConstraintViolation, err)
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"transaction_id": id.String(),
		"error":          err.Error(),
	})
	return wrapUnavailable(err)
}

// Create saves a new, unsettled transaction
func (r *TransactionRepository) Create(ctx context.Context, txn *entity.Transaction) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	transactionModel := r.entityToModel(txn)

	if err := r.db.WithContext(ctx).Omit("User").Create(&transactionModel).Error; err != nil {
		return r.handleDatabaseError("creating transaction", err, txn.ID)
	}

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": txn.ID.String(),
		"user_id":        txn.UserID.String(),
		"plan":           string(txn.Plan),
	})
	return nil
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var transactionModel model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel).Error; err != nil {
		return nil, r.handleDatabaseError("getting transaction", err, id)
	}

	return r.modelToEntity(&transactionModel), nil
}

// AttachGatewayOrder records the remote order id
func (r *TransactionRepository) AttachGatewayOrder(ctx context.Context, id uuid.UUID, orderID string) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Update("gateway_order_id", orderID)

	if result.Error != nil {
		return r.handleDatabaseError("attaching gateway order", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// MarkSettled flips the settled flag only if it is still false.
// The WHERE clause is the exactly-once guard, so concurrent callers see RowsAffected 1 at most once.
func (r *TransactionRepository) MarkSettled(ctx context.Context, id uuid.UUID, paymentID string, settledAt time.Time) (bool, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	db := r.db.WithContext(ctx)

	result := db.Model(&model.Transaction{}).
		Where("id = ? AND payment = ?", id, false).
		Updates(map[string]any{
			"payment":            true,
			"gateway_payment_id": optionalString(paymentID),
			"settled_at":         settledAt,
			"updated_at":         settledAt,
		})
	if result.Error != nil {
		return false, r.handleDatabaseError("settling transaction", result.Error, id)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	// Zero rows: either already settled or missing.
	var count int64
	if err := db.Model(&model.Transaction{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.handleDatabaseError("checking transaction", err, id)
	}
	if count == 0 {
		return false, errs.ErrTransactionNotFound
	}
	return false, nil
}

// ListUnsettled returns unsettled transactions with a gateway order, oldest first
func (r *TransactionRepository) ListUnsettled(ctx context.Context, filter persistence.UnsettledFilter) ([]*entity.Transaction, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	query := r.db.WithContext(ctx).
		Where("payment = ? AND gateway_order_id IS NOT NULL", false)
	if !filter.CreatedBefore.IsZero() {
		query = query.Where("created_at <= ?", filter.CreatedBefore)
	}
	if !filter.CreatedAfter.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedAfter)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var models []model.Transaction
	if err := query.Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, r.handleDatabaseError("listing unsettled transactions", err, uuid.Nil)
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions, nil
}
