package wishlist

import (
	"context"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a wishlist row snapshotting the product. A second insert
// for the same (user, product) pair surfaces the unique violation to the
// caller untouched.
func (r *Repository) AddItem(ctx context.Context, userID uuid.UUID, product catalog.Product) error {
	if userID == uuid.Nil || product.ID == 0 {
		return gorm.ErrInvalidValue
	}

	item := models.WishlistItem{
		ID:                   uuid.New(),
		UserID:               userID,
		ProductID:            product.ID,
		ProductName:          product.Name,
		ProductPrice:         product.Price,
		ProductOriginalPrice: product.OriginalPrice,
		ProductDiscount:      product.Discount,
		ProductRating:        product.Rating,
		ProductImage:         product.Image,
		ProductCategory:      product.Category,
	}
	return r.db.WithContext(ctx).Create(&item).Error
}

// RemoveItem deletes the user-product like if it exists.
func (r *Repository) RemoveItem(ctx context.Context, userID uuid.UUID, productID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).
		Error
}

// ListItems returns the user's wishlist, newest first.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
