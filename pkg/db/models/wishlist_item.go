package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a user to a liked product, with the same product
// snapshot and per-user uniqueness as CartItem but no quantity.
type WishlistItem struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID               uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:wishlist_items_user_id_idx;uniqueIndex:wishlist_items_user_product_key"`
	ProductID            int       `gorm:"column:product_id;not null;uniqueIndex:wishlist_items_user_product_key"`
	ProductName          string    `gorm:"column:product_name;not null"`
	ProductPrice         int       `gorm:"column:product_price;not null"`
	ProductOriginalPrice int       `gorm:"column:product_original_price;not null"`
	ProductDiscount      int       `gorm:"column:product_discount;not null"`
	ProductRating        float64   `gorm:"column:product_rating;not null"`
	ProductImage         string    `gorm:"column:product_image;not null"`
	ProductCategory      string    `gorm:"column:product_category;not null"`
	AddedAt              time.Time `gorm:"column:added_at;autoCreateTime"`
}
