package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents the database model for users
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"not null;size:255"`
	Email         string    `gorm:"not null;size:320;uniqueIndex:idx_users_email"`
	PasswordHash  string    `gorm:"not null;size:255"` // bcrypt hash, never the password
	CreditBalance int64     `gorm:"not null;default:5;check:chk_users_credit_balance,credit_balance >= 0"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
