package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/model"
	timeprovider "github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/time"
)

// TestDatabaseURLEnv names the variable that enables Postgres-backed tests
const TestDatabaseURLEnv = "DP_TEST_DATABASE_URL"

// TestDBManager provides utilities for testing with a database
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager creates a test manager, skipping the test when no database is configured
func NewTestDBManager(t *testing.T, logger coreport.Logger) *TestDBManager {
	t.Helper()

	url := os.Getenv(TestDatabaseURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping database test", TestDatabaseURLEnv)
	}

	timeProvider := timeprovider.NewRealTimeProvider()

	config := &Config{
		Driver:          DriverPostgres,
		URL:             url,
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		LogLevel:        "silent",
		RetryAttempts:   1,
		RetryDelay:      time.Second,
	}

	return &TestDBManager{
		Manager:      NewManager(config, logger, timeProvider),
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// Connect connects to the test database and runs all migrations on a clean schema
func (m *TestDBManager) Connect(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	db, err := m.Manager.Connect(ctx)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := dropAllTables(db); err != nil {
		t.Fatalf("Failed to drop tables: %v", err)
	}
	if err := m.Manager.MigrationManager().MigrateAll(ctx); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		if err := m.Manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	return db
}

func dropAllTables(db *gorm.DB) error {
	return db.Exec(`
		DO $$ DECLARE
			r RECORD;
		BEGIN
			FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = current_schema()) LOOP
				EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
			END LOOP;
		END $$;
	`).Error
}

// TruncateAllTables empties every application table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	if err := m.Manager.DB().Exec(`TRUNCATE TABLE transactions, users CASCADE`).Error; err != nil {
		t.Fatalf("Failed to truncate tables: %v", err)
	}
}

// CreateTestUser inserts a user with the given balance and returns its id
func (m *TestDBManager) CreateTestUser(t *testing.T, balance int64) uuid.UUID {
	t.Helper()

	now := m.TimeProvider.Now().UTC()
	user := model.User{
		ID:            uuid.New(),
		Name:          "Test User",
		Email:         uuid.NewString() + "@example.com",
		PasswordHash:  "not-a-real-hash",
		CreditBalance: balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := m.Manager.DB().Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user.ID
}
