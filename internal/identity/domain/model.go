// Package domain contains core types for the identity service.
package domain

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a tradesperson account. Demo identities share the
// table; they carry no email or password and are flagged is_demo.
type User struct {
	ID           string  `gorm:"primaryKey"`
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash *string `gorm:"type:text"`

	BusinessName  string `gorm:"column:business_name"`
	Trade         string
	ServiceArea   string `gorm:"column:service_area"`
	Country       string
	GSTRegistered bool `gorm:"column:gst_registered"`

	// Legacy denormalized flag; organization_users is authoritative.
	Onboarded bool

	TokenBalance int64 `gorm:"column:token_balance"`
	TokenLimit   int64 `gorm:"column:token_limit"`

	IsDemo      bool       `gorm:"column:is_demo"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (User) TableName() string { return "users" }
