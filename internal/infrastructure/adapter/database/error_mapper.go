package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// EntityType represents the type of entity for errors mapping
type EntityType string

const (
	// EntityTypeUser represents the user entity
	EntityTypeUser EntityType = "user"
	// EntityTypeTransaction represents the transaction entity
	EntityTypeTransaction EntityType = "transaction"
)

// ErrorMapper maps database errors that escape the repositories (begin, commit, retry exhaustion) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// isDomainError reports whether err already carries a domain classification
func isDomainError(err error) bool {
	return domainErr.ErrorCode(err) != domainErr.CodeInternalServer || errors.Is(err, domainErr.ErrInternalServer)
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation timed out", domainErr.ErrTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if isDomainError(err) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	switch m.classifier.Classify(err) {
	case repository.LockError, repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrDatabaseConnection, operation, err)
	case repository.DuplicateKeyError, repository.ForeignKeyError, repository.ConstraintError:
		return fmt.Errorf("%w: %s: %w", domainErr.ErrConstraintViolation, operation, err)
	case repository.OverflowError:
		return domainErr.ErrAmountOverflow
	}

	return fmt.Errorf("%w: %s: %w", domainErr.ErrInternalServer, operation, err)
}

// MapEntityNotFoundError maps database errors to specific entity not found errors
func (m *ErrorMapper) MapEntityNotFoundError(err error, entityType EntityType) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		switch entityType {
		case EntityTypeUser:
			return domainErr.ErrUserNotFound
		case EntityTypeTransaction:
			return domainErr.ErrTransactionNotFound
		default:
			return domainErr.ErrNotFound
		}
	}

	return m.MapError(err, string(entityType))
}

// IsRetryable reports whether a unit of work failing with err may be re-run
func (m *ErrorMapper) IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return m.classifier.IsRetryable(err)
}
