package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
)

// UserRepository is the in-memory user store
type UserRepository struct {
	store *Store
	ctx   context.Context
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		u, ok := st.users[id]
		if !ok {
			return errs.ErrUserNotFound
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by normalised email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		id, ok := st.emails[entity.NormalizeEmail(email)]
		if !ok {
			return errs.ErrUserNotFound
		}
		user = st.users[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create stores a new user; email must be unique
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.store.with(pick(r.ctx, ctx), func(st *state) error {
		email := entity.NormalizeEmail(user.Email)
		if _, exists := st.emails[email]; exists {
			return errs.ErrDuplicateUser
		}
		if _, exists := st.users[user.ID]; exists {
			return fmt.Errorf("%w: user id %s", errs.ErrDuplicateUser, user.ID)
		}

		stored := *user
		stored.Email = email
		st.users[user.ID] = stored
		st.emails[email] = user.ID

		r.store.logger.Debug("User created", map[string]any{"user_id": user.ID.String()})
		return nil
	})
}

// AddCredits increments the balance and returns the new value
func (r *UserRepository) AddCredits(ctx context.Context, userID uuid.UUID, credits int64) (int64, error) {
	var balance int64
	err := r.store.with(pick(r.ctx, ctx), func(st *state) error {
		user, ok := st.users[userID]
		if !ok {
			return errs.ErrUserNotFound
		}
		if err := user.AddCredits(credits, r.store.timeProvider); err != nil {
			return err
		}
		st.users[userID] = user
		balance = user.CreditBalance()
		return nil
	})
	return balance, err
}
