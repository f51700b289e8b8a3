package migration

import (
	"context"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"gorm.io/gorm"
)

// settlementColumns are the transaction columns introduced with gateway settlement
var settlementColumns = []struct {
	name string
	ddl  string
}{
	{"gateway_order_id", `ALTER TABLE transactions ADD COLUMN gateway_order_id VARCHAR(64)`},
	{"gateway_payment_id", `ALTER TABLE transactions ADD COLUMN gateway_payment_id VARCHAR(64)`},
	{"settled_at", `ALTER TABLE transactions ADD COLUMN settled_at TIMESTAMPTZ`},
}

// AddSettlementColumns adds the gateway bookkeeping columns to transactions created before 1.1.0
type AddSettlementColumns struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddSettlementColumns creates a new migration instance
func NewAddSettlementColumns(db *gorm.DB, logger coreport.Logger) *AddSettlementColumns {
	return &AddSettlementColumns{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *AddSettlementColumns) Run(ctx context.Context) error {
	m.logger.Info("Adding settlement columns to transactions table", nil)

	existing, err := m.existingColumns(ctx)
	if err != nil {
		return err
	}

	for _, column := range settlementColumns {
		if existing[column.name] {
			continue
		}
		if err := m.db.WithContext(ctx).Exec(column.ddl).Error; err != nil {
			m.logger.Error("Failed to add settlement column", map[string]any{
				"column": column.name,
				"error":  err.Error(),
			})
			return err
		}
	}

	// Rows settled before the gateway columns existed keep a null payment id.
	if err := m.db.WithContext(ctx).Exec(`
		UPDATE transactions SET settled_at = updated_at
		WHERE payment = true AND settled_at IS NULL
	`).Error; err != nil {
		m.logger.Error("Failed to backfill settled_at", map[string]any{"error": err.Error()})
		return err
	}

	m.logger.Info("Successfully added settlement columns to transactions table", nil)
	return nil
}

func (m *AddSettlementColumns) existingColumns(ctx context.Context) (map[string]bool, error) {
	var columns []struct {
		ColumnName string `gorm:"column:column_name"`
	}

	err := m.db.WithContext(ctx).Raw(`
		SELECT column_name
		FROM information_schema.columns
		WHERE table_name = 'transactions' AND column_name IN ('gateway_order_id', 'gateway_payment_id', 'settled_at')
	`).Scan(&columns).Error
	if err != nil {
		m.logger.Error("Failed to check columns existence", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(columns))
	for _, column := range columns {
		existing[column.ColumnName] = true
	}
	return existing, nil
}
