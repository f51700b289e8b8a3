// Package memory keeps users and transactions in process memory.
// It backs the memory database driver used in development and tests.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync"

	"github.com/google/uuid"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
)

type contextKey string

const txKey contextKey = "memory-tx"

var (
	// ErrNoTransaction is returned by Commit and Rollback when the context carries no open transaction
	ErrNoTransaction = errors.New("no transaction found in context")
	// ErrNestedTransaction is returned when Begin is called with a context that is already transactional
	ErrNestedTransaction = errors.New("nested transactions are not supported")
)

type state struct {
	users        map[uuid.UUID]entity.User
	emails       map[string]uuid.UUID
	transactions map[uuid.UUID]entity.Transaction
	orders       map[string]uuid.UUID
}

func newState() *state {
	return &state{
		users:        make(map[uuid.UUID]entity.User),
		emails:       make(map[string]uuid.UUID),
		transactions: make(map[uuid.UUID]entity.Transaction),
		orders:       make(map[string]uuid.UUID),
	}
}

func (s *state) clone() *state {
	return &state{
		users:        maps.Clone(s.users),
		emails:       maps.Clone(s.emails),
		transactions: maps.Clone(s.transactions),
		orders:       maps.Clone(s.orders),
	}
}

type memTx struct {
	working *state
	done    bool
}

// Store is an in-memory implementation of the unit of work and both repositories.
// Transactions are fully serialized: Begin takes the store lock and Commit or Rollback releases it.
type Store struct {
	mu           sync.Mutex
	data         *state
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

var _ persistence.UnitOfWork = (*Store)(nil)

// NewStore creates an empty store
func NewStore(logger coreport.Logger, timeProvider coreport.TimeProvider) *Store {
	return &Store{
		data:         newState(),
		logger:       logger,
		timeProvider: timeProvider,
	}
}

func txFromContext(ctx context.Context) (*memTx, bool) {
	tx, ok := ctx.Value(txKey).(*memTx)
	return tx, ok && tx != nil && !tx.done
}

// Begin takes the store lock and returns a context holding a private copy of the data
func (s *Store) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := txFromContext(ctx); ok {
		return ctx, ErrNestedTransaction
	}
	if err := ctx.Err(); err != nil {
		return ctx, err
	}

	s.mu.Lock()
	return context.WithValue(ctx, txKey, &memTx{working: s.data.clone()}), nil
}

// Commit publishes the transaction's copy and releases the lock
func (s *Store) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	s.data = tx.working
	tx.done = true
	s.mu.Unlock()
	return nil
}

// Rollback discards the transaction's copy and releases the lock
func (s *Store) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	tx.done = true
	s.mu.Unlock()
	return nil
}

// Execute runs fn in a transaction. Nothing fn wrote is visible unless it returns nil.
func (s *Store) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	txCtx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		_ = s.Rollback(txCtx)
		return err
	}
	return s.Commit(txCtx)
}

// GetUserRepository returns a user repository bound to ctx
func (s *Store) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return &UserRepository{store: s, ctx: ctx}
}

// GetTransactionRepository returns a transaction repository bound to ctx
func (s *Store) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return &TransactionRepository{store: s, ctx: ctx}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error {
	return nil
}

// Close is a no-op
func (s *Store) Close() error {
	return nil
}

// with runs fn against the transaction's copy when ctx is transactional,
// otherwise against the live data under the lock.
func (s *Store) with(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tx, ok := txFromContext(ctx); ok {
		return fn(tx.working)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

// pick prefers the context passed to a repository method over the one it was created with
func pick(bound, call context.Context) context.Context {
	if _, ok := txFromContext(call); ok {
		return call
	}
	if bound != nil {
		if _, ok := txFromContext(bound); ok {
			return bound
		}
	}
	return call
}
