package catalog

// Product is a storefront catalog entry. Prices are whole rupees, discount
// is a percentage off the original price.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"original_price"`
	Discount      int     `json:"discount"`
	Rating        float64 `json:"rating"`
	Image         string  `json:"image"`
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
}

// CategorySummary pairs a category name with its product count for the
// home-page showcase.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// NamedFilter is one of the promotional filters reachable from the home
// page banners.
type NamedFilter string

const (
	FilterSale    NamedFilter = "sale"
	FilterFlash   NamedFilter = "flash"
	FilterGift    NamedFilter = "gift"
	FilterWeekend NamedFilter = "weekend"
)

// IsValid reports whether the filter is one of the known promotions.
func (f NamedFilter) IsValid() bool {
	switch f {
	case FilterSale, FilterFlash, FilterGift, FilterWeekend:
		return true
	}
	return false
}

// ResultSet is the outcome of resolving a selection against the catalog.
type ResultSet struct {
	Headline string    `json:"headline"`
	Count    int       `json:"count"`
	Products []Product `json:"products"`
}
