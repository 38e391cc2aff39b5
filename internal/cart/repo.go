package cart

import (
	"context"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a cart row with quantity 1, snapshotting the product. A
// second insert for the same (user, product) pair surfaces the unique
// violation to the caller untouched.
func (r *Repository) AddItem(ctx context.Context, userID uuid.UUID, product catalog.Product) error {
	if userID == uuid.Nil || product.ID == 0 {
		return gorm.ErrInvalidValue
	}

	item := models.CartItem{
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
		Quantity:             1,
	}
	return r.db.WithContext(ctx).Create(&item).Error
}

// UpdateQuantity sets the quantity on an existing cart line.
func (r *Repository) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, quantity int) error {
	return r.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).
		Error
}

// RemoveItem deletes the cart line if it exists.
func (r *Repository) RemoveItem(ctx context.Context, userID uuid.UUID, productID int) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).
		Error
}

// ListItems returns the user's cart lines, newest first.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
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
