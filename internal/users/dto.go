package users

import (
	"time"

	"github.com/eshop-labs/storefront-api/pkg/db/models"
	"github.com/google/uuid"
)

// UserDTO is the public projection of a shopper account.
type UserDTO struct {
	ID          uuid.UUID  `json:"id"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	Name        *string    `json:"name,omitempty"`
	Provider    string     `json:"provider"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// FromModel maps the persisted user onto the public DTO.
func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:          u.ID,
		Phone:       u.Phone,
		Email:       u.Email,
		Name:        u.Name,
		Provider:    u.Provider,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}
