package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/eshop-labs/storefront-api/api/responses"
	"github.com/eshop-labs/storefront-api/internal/catalog"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
	"github.com/eshop-labs/storefront-api/pkg/logger"
)

// CatalogList returns the full product catalog.
func CatalogList(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.ListAll())
	}
}

// CatalogProduct returns a single product by id.
func CatalogProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		product, err := svc.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// CatalogFeatured returns the home page featured rail.
func CatalogFeatured(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Featured())
	}
}

// CatalogTrending returns the home page trending rail.
func CatalogTrending(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Trending())
	}
}

// CatalogCategories returns the category showcase with product counts.
func CatalogCategories(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.Categories())
	}
}

// CatalogSearch resolves a browsing selection into a result set. The axes
// are mutually exclusive: supplying more than one of category, q, or filter
// is rejected rather than silently dropping one.
func CatalogSearch(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		sel, err := selectionFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, svc.Resolve(sel))
	}
}

func selectionFromQuery(r *http.Request) (catalog.Selection, error) {
	q := r.URL.Query()
	category := strings.TrimSpace(q.Get("category"))
	query := strings.TrimSpace(q.Get("q"))
	filter := strings.TrimSpace(q.Get("filter"))

	set := 0
	for _, axis := range []string{category, query, filter} {
		if axis != "" {
			set++
		}
	}
	if set > 1 {
		return catalog.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "category, q, and filter are mutually exclusive")
	}

	var sel catalog.Selection
	switch {
	case category != "":
		sel = sel.WithCategory(category)
	case query != "":
		sel = sel.WithQuery(query)
	case filter != "":
		named := catalog.NamedFilter(filter)
		if !named.IsValid() {
			return catalog.Selection{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown filter")
		}
		sel = sel.WithFilter(named)
	}
	return sel, nil
}
