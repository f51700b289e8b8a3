package user

import (
	"context"
	"errors"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/security"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// DefaultSignupCredits is granted to every new account unless configured otherwise
const DefaultSignupCredits int64 = 5

// UserUseCase handles account-related business logic
type UserUseCase struct {
	userRepo      persistence.UserRepository
	hasher        security.PasswordHasher
	tokens        security.TokenIssuer
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	signupCredits int64
}

var _ usecase.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	tokens security.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	signupCredits int64,
) *UserUseCase {
	if signupCredits < 0 {
		signupCredits = DefaultSignupCredits
	}
	return &UserUseCase{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		timeProvider:  timeProvider,
		logger:        logger,
		signupCredits: signupCredits,
	}
}

// CurrentUser resolves a session token to the id it was issued for
func (u *UserUseCase) CurrentUser(_ context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, errs.ErrUnauthorized
	}

	userID, err := u.tokens.Parse(token)
	if err != nil {
		if !errors.Is(err, errs.ErrInvalidToken) {
			err = errors.Join(errs.ErrInvalidToken, err)
		}
		return uuid.Nil, &errs.AuthError{Operation: "parse token", Err: err}
	}
	return userID, nil
}

// GetCredits returns the credit balance and display name of a user
func (u *UserUseCase) GetCredits(ctx context.Context, userID uuid.UUID) (*usecase.CreditsResult, error) {
	if userID == uuid.Nil {
		return nil, errs.ErrUnauthorized
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		u.logger.Error("Failed to get user", map[string]any{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return &usecase.CreditsResult{
		Credits: user.CreditBalance(),
		Name:    user.Name,
	}, nil
}
