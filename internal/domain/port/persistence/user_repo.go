package persistence

import (
	"context"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	"github.com/google/uuid"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetByEmail retrieves a user by normalised email, used by login
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// AddCredits increments the credit balance atomically and returns the new balance.
	// Must run inside the unit of work that flips the transaction's settled flag.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrAmountOverflow: If the balance would overflow
	// - ErrDatabaseConnection: If database connection fails
	AddCredits(ctx context.Context, userID uuid.UUID, credits int64) (int64, error)
}
