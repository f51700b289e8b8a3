package migration

import (
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and constraints
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	// Case-insensitive email lookups on login
	{"idx_users_email_lower", `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower
		ON users (lower(email))
	`},
	// Reconciler sweep: unsettled orders by age
	{"idx_transactions_unsettled", `
		CREATE INDEX IF NOT EXISTS idx_transactions_unsettled
		ON transactions (created_at)
		WHERE payment = false AND gateway_order_id IS NOT NULL
	`},
	{"idx_transactions_user_date", `
		CREATE INDEX IF NOT EXISTS idx_transactions_user_date
		ON transactions (user_id, date DESC)
	`},
	// A captured payment can only settle one transaction
	{"idx_transactions_gateway_payment", `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_transactions_gateway_payment
		ON transactions (gateway_payment_id)
		WHERE gateway_payment_id IS NOT NULL
	`},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes() error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, index := range advancedIndexes {
		if err := m.db.Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreateSettlementConstraints adds the check constraints that keep settled rows consistent
func (m *AdvancedIndexManager) CreateSettlementConstraints() error {
	// settled rows always carry a settlement time
	err := m.db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1 FROM pg_constraint WHERE conname = 'chk_transactions_settled_at'
			) THEN
				ALTER TABLE transactions
				ADD CONSTRAINT chk_transactions_settled_at
				CHECK (payment = false OR settled_at IS NOT NULL);
			END IF;
		END $$
	`).Error
	if err != nil {
		m.logger.Error("Failed to create settlement constraint", map[string]any{
			"error": err.Error(),
		})
		return err
	}
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks
func (m *AdvancedIndexManager) CreatePerformanceTweaks() error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// The settle path updates rows in place
	if err := m.db.Exec(`
		ALTER TABLE transactions SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.Exec(`
		ALTER TABLE users SET (fillfactor = 90)
	`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for users table", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied successfully", nil)
	return nil
}
