package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	queryTimeout    time.Duration
}

// NewUserRepository creates a new UserRepository instance.
// Every call is bounded by queryTimeout; zero leaves the caller's context as is.
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger, queryTimeout time.Duration) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		queryTimeout:    queryTimeout,
	}
}

func (r *UserRepository) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return boundContext(ctx, r.queryTimeout)
}

func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Name:         userModel.Name,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetCreditBalance(userModel.CreditBalance)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Debug("User not found", fields)
		return errs.ErrUserNotFound
	}

	switch r.errorClassifier.Classify(err) {
	case DuplicateKeyError:
		r.logger.Warn("Duplicate user", fields)
		return errs.ErrDuplicateUser
	case OverflowError:
		return errs.ErrAmountOverflow
	case ConstraintError:
		return fmt.Errorf("%w: %w", errs.ErrConstraintViolation, err)
	}

	logFields := map[string]any{"error": err.Error()}
	for k, v := range fields {
		logFields[k] = v
	}
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)
	return wrapUnavailable(err)
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var userModel model.User
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, map[string]any{"user_id": id.String()})
	}

	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by normalised email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", entity.NormalizeEmail(email)).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, nil)
	}

	return r.modelToEntity(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	userModel := model.User{
		ID:            user.ID,
		Name:          user.Name,
		Email:         entity.NormalizeEmail(user.Email),
		PasswordHash:  user.PasswordHash,
		CreditBalance: user.CreditBalance(),
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, map[string]any{"user_id": user.ID.String()})
	}

	r.logger.Debug("User created successfully", map[string]any{
		"user_id": user.ID.String(),
		"credits": user.CreditBalance(),
	})
	return nil
}

// AddCredits increments the balance in a single statement and returns the new value
func (r *UserRepository) AddCredits(ctx context.Context, userID uuid.UUID, credits int64) (int64, error) {
	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	if credits <= 0 {
		return 0, fmt.Errorf("%w: credits must be positive", errs.ErrInvalidAmount)
	}

	var updated []model.User
	result := r.db.WithContext(ctx).Model(&updated).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "credit_balance"}}}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"credit_balance": gorm.Expr("credit_balance + ?", credits),
			"updated_at":     r.timeProvider.Now(),
		})

	fields := map[string]any{
		"user_id": userID.String(),
		"credits": credits,
	}
	if result.Error != nil {
		return 0, r.handleDatabaseError("adding credits", result.Error, fields)
	}
	if result.RowsAffected == 0 || len(updated) == 0 {
		r.logger.Warn("User not found while adding credits", fields)
		return 0, errs.ErrUserNotFound
	}

	fields["credit_balance"] = updated[0].CreditBalance
	r.logger.Debug("Credits added to user", fields)
	return updated[0].CreditBalance, nil
}
