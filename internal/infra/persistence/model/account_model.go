// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. The unique index on email is the
// authority for email uniqueness; PostgreSQL generates IDs via gen_random_uuid().
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"type:varchar(100);not null;index"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email"`
	Location     string    `gorm:"type:varchar(255)"`
	Contact      string    `gorm:"type:varchar(64)"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(100);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
