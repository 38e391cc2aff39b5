package cart

import (
	"time"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db/models"
	"github.com/google/uuid"
)

// ItemDTO is one cart line as returned to the client.
type ItemDTO struct {
	ID       uuid.UUID       `json:"id"`
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// CartDTO is the full cart projection. Total is the sum of price times
// quantity across lines; Count is the sum of quantities, which is what the
// header badge shows.
type CartDTO struct {
	Items []ItemDTO `json:"items"`
	Total int       `json:"total"`
	Count int       `json:"count"`
}

// ProductIDs returns the carted product IDs, used to mark cards in grids.
func (c CartDTO) ProductIDs() []int {
	ids := make([]int, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.Product.ID)
	}
	return ids
}

func itemFromModel(m models.CartItem) ItemDTO {
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
		Quantity: m.Quantity,
		AddedAt:  m.AddedAt,
	}
}
