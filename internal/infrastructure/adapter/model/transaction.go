package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents the database model for plan purchases
type Transaction struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	Plan             string    `gorm:"not null;size:50"`
	Amount           int64     `gorm:"not null;check:chk_transactions_amount,amount > 0"`
	Currency         string    `gorm:"not null;size:3"`
	Credits          int64     `gorm:"not null;check:chk_transactions_credits,credits > 0"`
	Payment          bool      `gorm:"not null;default:false"`
	GatewayOrderID   *string   `gorm:"size:64;uniqueIndex:idx_transactions_gateway_order"`
	GatewayPaymentID *string   `gorm:"size:64"`
	Date             time.Time `gorm:"not null"`
	SettledAt        *time.Time
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
