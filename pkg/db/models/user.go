package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents the canonical shopper identity. A user is created
// lazily on first successful sign-in (phone/OTP or federated).
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Phone       *string    `gorm:"column:phone;uniqueIndex"`
	Email       *string    `gorm:"column:email;uniqueIndex"`
	Name        *string    `gorm:"column:name"`
	Provider    string     `gorm:"column:provider;not null;default:'phone'"`
	IsActive    bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt *time.Time `gorm:"column:last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
