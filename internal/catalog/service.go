package catalog

import (
	"fmt"

	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
)

// Service exposes read operations over the static catalog.
type Service interface {
	ListAll() []Product
	Get(id int) (Product, error)
	Featured() []Product
	Trending() []Product
	Categories() []CategorySummary
	Resolve(sel Selection) ResultSet
}

type service struct {
	products []Product
	byID     map[int]Product
}

// NewService builds a catalog service over the embedded product data.
func NewService() Service {
	byID := make(map[int]Product, len(allProducts))
	for _, p := range allProducts {
		byID[p.ID] = p
	}
	return &service{
		products: allProducts,
		byID:     byID,
	}
}

// ListAll returns the full catalog in its canonical order.
func (s *service) ListAll() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given ID.
func (s *service) Get(id int) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("product %d not found", id))
	}
	return p, nil
}

// Featured returns the products shown in the home page hero grid.
func (s *service) Featured() []Product {
	return s.slice(0, featuredCount)
}

// Trending returns the products in the trending strip.
func (s *service) Trending() []Product {
	return s.slice(trendingStart, trendingEnd)
}

// Categories returns the showcase categories with their product counts.
func (s *service) Categories() []CategorySummary {
	counts := make(map[string]int, len(showcaseCategories))
	for _, p := range s.products {
		counts[p.Category]++
	}
	out := make([]CategorySummary, 0, len(showcaseCategories))
	for _, name := range showcaseCategories {
		out = append(out, CategorySummary{Name: name, Count: counts[name]})
	}
	return out
}

// Resolve filters the catalog by the selection and attaches the result
// headline and count.
func (s *service) Resolve(sel Selection) ResultSet {
	matched := apply(s.products, sel)
	return ResultSet{
		Headline: headline(sel),
		Count:    len(matched),
		Products: matched,
	}
}

func (s *service) slice(from, to int) []Product {
	if from > len(s.products) {
		from = len(s.products)
	}
	if to > len(s.products) {
		to = len(s.products)
	}
	out := make([]Product, to-from)
	copy(out, s.products[from:to])
	return out
}
