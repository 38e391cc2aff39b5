package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a denormalized cart row. Product fields are snapshotted at
// add time so the row renders without a catalog join. The
// (user_id, product_id) unique key is what turns a second add of the
// same product into a conflict instead of a second row.
type CartItem struct {
	ID                   uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID               uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:cart_items_user_id_idx;uniqueIndex:cart_items_user_product_key"`
	ProductID            int       `gorm:"column:product_id;not null;uniqueIndex:cart_items_user_product_key"`
	ProductName          string    `gorm:"column:product_name;not null"`
	ProductPrice         int       `gorm:"column:product_price;not null"`
	ProductOriginalPrice int       `gorm:"column:product_original_price;not null"`
	ProductDiscount      int       `gorm:"column:product_discount;not null"`
	ProductRating        float64   `gorm:"column:product_rating;not null"`
	ProductImage         string    `gorm:"column:product_image;not null"`
	ProductCategory      string    `gorm:"column:product_category;not null"`
	Quantity             int       `gorm:"column:quantity;not null;default:1"`
	AddedAt              time.Time `gorm:"column:added_at;autoCreateTime"`
}
