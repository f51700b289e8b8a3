package user

import (
	"context"
	"strings"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
)

// Login checks the password for an email and returns a fresh session token
func (u *UserUseCase) Login(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errs.ErrMissingFields
	}

	user, err := u.userRepo.GetByEmail(ctx, entity.NormalizeEmail(email))
	if err != nil {
		return nil, &errs.AuthError{Operation: "login", Err: err}
	}

	if err := u.hasher.Compare(user.PasswordHash, password); err != nil {
		u.logger.Info("Login rejected", map[string]any{"user_id": user.ID.String()})
		return nil, &errs.AuthError{Operation: "login", Err: errs.ErrInvalidCredentials}
	}

	token, err := u.tokens.Issue(user.ID)
	if err != nil {
		u.logger.Error("Failed to issue token", map[string]any{
			"user_id": user.ID.String(),
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &usecase.AuthResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
	}, nil
}
