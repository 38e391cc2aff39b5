package wishlist

import (
	"time"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db/models"
	"github.com/google/uuid"
)

// ItemDTO is one liked product as returned to the client.
type ItemDTO struct {
	ID      uuid.UUID       `json:"id"`
	Product catalog.Product `json:"product"`
	AddedAt time.Time       `json:"added_at"`
}

// WishlistDTO is the full wishlist projection. It is always rebuilt from a
// fresh fetch so the client never renders an optimistic guess.
type WishlistDTO struct {
	Items []ItemDTO `json:"items"`
	Count int       `json:"count"`
}

// ProductIDs returns the liked product IDs, used to mark cards in grids.
func (w WishlistDTO) ProductIDs() []int {
	ids := make([]int, 0, len(w.Items))
	for _, item := range w.Items {
		ids = append(ids, item.Product.ID)
	}
	return ids
}

func itemFromModel(m models.WishlistItem) ItemDTO {
	return ItemDTO{
		ID: m.ID,
		Product: catalog.Product{
			ID:            m.ProductID,
			Name:          m.ProductName,
			Price:         m.ProductPrice,
			OriginalPrice: m.ProductOriginalPrice,
			Discount:      m.ProductDiscount,
			Rating:        m.ProductRating,
			Image:         m.ProductImage,
			Category:      m.ProductCategory,
		},
		AddedAt: m.AddedAt,
	}
}
