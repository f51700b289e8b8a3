package entity

import (
	"math"
	"testing"
	"time"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coremocks "github.com/Akilan7123/DreamPixel/mocks/port/core"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Asha ", " Asha@Example.COM ", "$2a$10$hash", 5, mockTime)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "Asha", user.Name)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, int64(5), user.CreditBalance())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Missing fields", func(t *testing.T) {
		testCases := []struct {
			name, email, hash string
		}{
			{"", "a@b.c", "h"},
			{"n", "  ", "h"},
			{"n", "a@b.c", ""},
		}

		for _, tc := range testCases {
			user, err := NewUser(tc.name, tc.email, tc.hash, 0, mockTime)
			assert.ErrorIs(t, err, errs.ErrMissingFields)
			assert.Nil(t, user)
		}
	})

	t.Run("Malformed email", func(t *testing.T) {
		for _, email := range []string{"plainaddress", "@example.com", "user@"} {
			_, err := NewUser("n", email, "h", 0, mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidEmail, email)
		}
	})

	t.Run("Negative initial credits", func(t *testing.T) {
		_, err := NewUser("n", "a@b.c", "h", -1, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUserAddCredits(t *testing.T) {
	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Once()
	mockTime.EXPECT().Now().Return(later).Once()

	user, err := NewUser("n", "a@b.c", "h", 5, mockTime)
	require.NoError(t, err)

	require.NoError(t, user.AddCredits(100, mockTime))
	assert.Equal(t, int64(105), user.CreditBalance())
	assert.Equal(t, later, user.UpdatedAt)

	assert.ErrorIs(t, user.AddCredits(0, mockTime), errs.ErrInvalidAmount)
	assert.ErrorIs(t, user.AddCredits(-10, mockTime), errs.ErrInvalidAmount)
	assert.Equal(t, int64(105), user.CreditBalance())
}

func TestUserAddCredits_Overflow(t *testing.T) {
	user := &User{ID: uuid.New()}
	user.SetCreditBalance(math.MaxInt64 - 1)

	err := user.AddCredits(2, coremocks.NewMockTimeProvider(t))
	assert.ErrorIs(t, err, errs.ErrAmountOverflow)
	assert.Equal(t, int64(math.MaxInt64-1), user.CreditBalance())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.com\t"))
}
