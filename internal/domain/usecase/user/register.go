package user

import (
	"context"
	"errors"
	"strings"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
)

// Register creates a new account with the sign-up credit grant and returns a session token
func (u *UserUseCase) Register(ctx context.Context, name, email, password string) (*usecase.AuthResult, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, errs.ErrMissingFields
	}
	email = entity.NormalizeEmail(email)

	// Check if user already exists; the unique index still decides under a race
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, errs.ErrDuplicateUser
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidRequest) {
			return nil, err
		}
		u.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(name, email, hash, u.signupCredits, u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID.String(),
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	u.logger.Info("User registered", map[string]any{
		"user_id": user.ID.String(),
		"credits": user.CreditBalance(),
	})

	return &usecase.AuthResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
	}, nil
}
