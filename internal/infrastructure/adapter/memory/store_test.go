package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/logger"
	timeprovider "github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(logger.NewNoopLogger(), timeprovider.NewRealTimeProvider())
}

func seedUser(t *testing.T, s *Store, email string, credits int64) *entity.User {
	t.Helper()
	user, err := entity.NewUser("Test", email, "hash", credits, s.timeProvider)
	require.NoError(t, err)
	require.NoError(t, s.GetUserRepository(context.Background()).Create(context.Background(), user))
	return user
}

func seedTransaction(t *testing.T, s *Store, userID uuid.UUID, plan string) *entity.Transaction {
	t.Helper()
	p, err := entity.LookupPlan(plan)
	require.NoError(t, err)
	txn, err := entity.NewTransaction(userID, p, entity.DefaultCurrency, s.timeProvider)
	require.NoError(t, err)
	require.NoError(t, s.GetTransactionRepository(context.Background()).Create(context.Background(), txn))
	return txn
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.GetUserRepository(ctx)

	user := seedUser(t, s, "Alice@Example.com", 5)

	got, err := repo.GetByEmail(ctx, "  alice@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.EqualValues(t, 5, got.CreditBalance())

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	dup, err := entity.NewUser("Other", "alice@example.com", "hash", 5, s.timeProvider)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, dup), errs.ErrDuplicateUser)

	balance, err := repo.AddCredits(ctx, user.ID, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 105, balance)

	_, err = repo.AddCredits(ctx, uuid.New(), 1)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	// Returned entities are copies
	got.SetCreditBalance(0)
	again, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 105, again.CreditBalance())
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.GetTransactionRepository(ctx)
	user := seedUser(t, s, "bob@example.com", 0)

	t.Run("create requires user", func(t *testing.T) {
		p, _ := entity.LookupPlan("Basic")
		txn, err := entity.NewTransaction(uuid.New(), p, entity.DefaultCurrency, s.timeProvider)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, txn), errs.ErrUserNotFound)
	})

	t.Run("order id binds once", func(t *testing.T) {
		a := seedTransaction(t, s, user.ID, "Basic")
		b := seedTransaction(t, s, user.ID, "Basic")

		require.NoError(t, repo.AttachGatewayOrder(ctx, a.ID, "order_a"))
		assert.ErrorIs(t, repo.AttachGatewayOrder(ctx, b.ID, "order_a"), errs.ErrDuplicateOrder)
		assert.ErrorIs(t, repo.AttachGatewayOrder(ctx, uuid.New(), "order_x"), errs.ErrTransactionNotFound)

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "order_a", got.GatewayOrderID)
	})

	t.Run("mark settled flips once", func(t *testing.T) {
		txn := seedTransaction(t, s, user.ID, "Advanced")
		now := time.Now().UTC()

		won, err := repo.MarkSettled(ctx, txn.ID, "pay_1", now)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = repo.MarkSettled(ctx, txn.ID, "pay_2", now)
		require.NoError(t, err)
		assert.False(t, won)

		got, err := repo.GetByID(ctx, txn.ID)
		require.NoError(t, err)
		assert.True(t, got.Payment)
		assert.Equal(t, "pay_1", got.GatewayPaymentID)
		require.NotNil(t, got.SettledAt)

		_, err = repo.MarkSettled(ctx, uuid.New(), "pay_3", now)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestTransactionRepository_ListUnsettled(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	repo := s.GetTransactionRepository(ctx)
	user := seedUser(t, s, "carol@example.com", 0)

	noOrder := seedTransaction(t, s, user.ID, "Basic")
	first := seedTransaction(t, s, user.ID, "Basic")
	second := seedTransaction(t, s, user.ID, "Business")
	settled := seedTransaction(t, s, user.ID, "Basic")

	require.NoError(t, repo.AttachGatewayOrder(ctx, first.ID, "order_1"))
	require.NoError(t, repo.AttachGatewayOrder(ctx, second.ID, "order_2"))
	require.NoError(t, repo.AttachGatewayOrder(ctx, settled.ID, "order_3"))
	_, err := repo.MarkSettled(ctx, settled.ID, "pay_3", time.Now())
	require.NoError(t, err)

	pending, err := repo.ListUnsettled(ctx, persistence.UnsettledFilter{})
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(pending))
	for _, p := range pending {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)
	assert.NotContains(t, ids, noOrder.ID)

	limited, err := repo.ListUnsettled(ctx, persistence.UnsettledFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	none, err := repo.ListUnsettled(ctx, persistence.UnsettledFilter{CreatedBefore: time.Now().Add(-time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ExecuteRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user := seedUser(t, s, "dave@example.com", 5)
	txn := seedTransaction(t, s, user.ID, "Basic")
	boom := errors.New("boom")

	err := s.Execute(ctx, func(txCtx context.Context) error {
		won, err := s.GetTransactionRepository(txCtx).MarkSettled(txCtx, txn.ID, "pay_1", time.Now())
		require.NoError(t, err)
		require.True(t, won)
		_, err = s.GetUserRepository(txCtx).AddCredits(txCtx, user.ID, 100)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := s.GetTransactionRepository(ctx).GetByID(ctx, txn.ID)
	require.NoError(t, err)
	assert.False(t, got.Payment)

	u, err := s.GetUserRepository(ctx).GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, u.CreditBalance())
}

func TestStore_ExecuteRollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user := seedUser(t, s, "erin@example.com", 5)

	assert.Panics(t, func() {
		_ = s.Execute(ctx, func(txCtx context.Context) error {
			_, _ = s.GetUserRepository(txCtx).AddCredits(txCtx, user.ID, 10)
			panic("kaboom")
		})
	})

	// The lock must have been released
	u, err := s.GetUserRepository(ctx).GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, u.CreditBalance())
}

func TestStore_BeginCommitRollback(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	assert.ErrorIs(t, s.Commit(ctx), ErrNoTransaction)
	assert.ErrorIs(t, s.Rollback(ctx), ErrNoTransaction)

	txCtx, err := s.Begin(ctx)
	require.NoError(t, err)

	_, err = s.Begin(txCtx)
	assert.ErrorIs(t, err, ErrNestedTransaction)

	require.NoError(t, s.Commit(txCtx))
	assert.ErrorIs(t, s.Commit(txCtx), ErrNoTransaction)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Begin(canceled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_ConcurrentMarkSettled(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	user := seedUser(t, s, "frank@example.com", 0)
	txn := seedTransaction(t, s, user.ID, "Business")

	const workers = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.Execute(ctx, func(txCtx context.Context) error {
				won, err := s.GetTransactionRepository(txCtx).MarkSettled(txCtx, txn.ID, "pay_1", time.Now())
				if err != nil || !won {
					return err
				}
				if _, err := s.GetUserRepository(txCtx).AddCredits(txCtx, user.ID, txn.Credits); err != nil {
					return err
				}
				mu.Lock()
				wins++
				mu.Unlock()
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	u, err := s.GetUserRepository(ctx).GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5000, u.CreditBalance())
}
