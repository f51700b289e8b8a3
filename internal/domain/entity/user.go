package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/google/uuid"
)

// User represents an account holding a credit balance
type User struct {
	ID            uuid.UUID // Unique identifier for the user
	Name          string
	Email         string    // Normalised: trimmed and lower-case
	PasswordHash  string    // bcrypt hash, never the plaintext
	creditBalance int64     // Non-negative; changed only through AddCredits (private)
	CreatedAt     time.Time // When the user was created
	UpdatedAt     time.Time // When the user was last updated
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewUser creates a new user with the given identity and sign-up credits
func NewUser(name, email, passwordHash string, initialCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || passwordHash == "" {
		return nil, errs.ErrMissingFields
	}
	if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidEmail, email)
	}
	if initialCredits < 0 {
		return nil, fmt.Errorf("%w: initial credits %d", errs.ErrInvalidAmount, initialCredits)
	}

	now := timeProvider.Now()
	return &User{
		ID:            uuid.New(),
		Name:          name,
		Email:         email,
		PasswordHash:  passwordHash,
		creditBalance: initialCredits,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CreditBalance returns the current number of credits
func (u *User) CreditBalance() int64 {
	return u.creditBalance
}

// SetCreditBalance restores the balance from storage (for repositories only)
func (u *User) SetCreditBalance(credits int64) {
	u.creditBalance = credits
}

// AddCredits increases the balance by a positive number of credits
func (u *User) AddCredits(credits int64, timeProvider coreport.TimeProvider) error {
	if credits <= 0 {
		return fmt.Errorf("%w: credits %d", errs.ErrInvalidAmount, credits)
	}
	balance, err := AddChecked(u.creditBalance, credits)
	if err != nil {
		return err
	}

	u.creditBalance = balance
	u.UpdatedAt = timeProvider.Now()
	return nil
}
