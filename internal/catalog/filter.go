package catalog

import "strings"

const (
	saleMinDiscount    = 40
	flashMinDiscount   = 35
	weekendMinPrice    = 2000
	featuredCount      = 8
	trendingStart      = 8
	trendingEnd        = 12
	headlineAllMatched = "All Products"
)

// flashCategories and giftCategories bound the promotional filters to the
// categories the home page banners advertise.
var flashCategories = map[string]bool{
	"Electronics": true,
	"Fashion":     true,
}

var giftCategories = map[string]bool{
	"Beauty": true,
	"Books":  true,
	"Toys":   true,
}

// matchesFilter reports whether a product qualifies for a named promotion.
func matchesFilter(p Product, f NamedFilter) bool {
	switch f {
	case FilterSale:
		return p.Discount >= saleMinDiscount
	case FilterFlash:
		return p.Discount >= flashMinDiscount && flashCategories[p.Category]
	case FilterGift:
		return giftCategories[p.Category]
	case FilterWeekend:
		return p.Price >= weekendMinPrice
	}
	return false
}

// matchesQuery applies a case-insensitive substring match against the
// product name and category. The query must already be trimmed.
func matchesQuery(p Product, query string) bool {
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Category), needle)
}

// apply narrows the catalog to the products matching every axis of the
// selection. Axes compose with AND, though the selection transitions keep
// at most one active at a time.
func apply(products []Product, sel Selection) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if sel.Category != "" && p.Category != sel.Category {
			continue
		}
		if sel.Query != "" && !matchesQuery(p, sel.Query) {
			continue
		}
		if !matchesAllFilters(p, sel.Filters) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesAllFilters(p Product, filters []NamedFilter) bool {
	for _, f := range filters {
		if !matchesFilter(p, f) {
			return false
		}
	}
	return true
}

// headline returns the heading shown above a result grid. Category wins
// over query, which wins over the promotional filters.
func headline(sel Selection) string {
	if sel.Category != "" {
		return sel.Category
	}
	if sel.Query != "" {
		return `Search Results for "` + sel.Query + `"`
	}
	for _, f := range sel.Filters {
		switch f {
		case FilterSale:
			return "Mega Sale Products"
		case FilterFlash:
			return "Flash Deals"
		case FilterGift:
			return "Gift Sets"
		case FilterWeekend:
			return "Weekend Special Offers"
		}
	}
	return headlineAllMatched
}
