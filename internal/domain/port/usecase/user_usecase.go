package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthResult is returned by register and login
type AuthResult struct {
	Token  string
	UserID uuid.UUID
	Name   string
}

// CreditsResult is the balance view of a user
type CreditsResult struct {
	Credits int64
	Name    string
}

// UserUseCase defines methods for account-related business operations
type UserUseCase interface {
	// Register creates an account and returns a session token
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)

	// Login checks credentials and returns a session token
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// CurrentUser resolves a session token to a user id
	CurrentUser(ctx context.Context, token string) (uuid.UUID, error)

	// GetCredits returns the user's credit balance
	GetCredits(ctx context.Context, userID uuid.UUID) (*CreditsResult, error)
}
