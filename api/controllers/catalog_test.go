package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/eshop-labs/storefront-api/internal/catalog"
)

func catalogRouter(t *testing.T) http.Handler {
	t.Helper()
	svc := catalog.NewService()
	r := chi.NewRouter()
	r.Get("/products", CatalogList(svc, nil))
	r.Get("/products/{productId}", CatalogProduct(svc, nil))
	r.Get("/featured", CatalogFeatured(svc, nil))
	r.Get("/categories", CatalogCategories(svc, nil))
	r.Get("/search", CatalogSearch(svc, nil))
	return r
}

func getJSON(t *testing.T, handler http.Handler, path string, dest any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if dest != nil && rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(dest); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return rec
}

func TestCatalogListReturnsFullCatalog(t *testing.T) {
	var envelope struct {
		Data []catalog.Product `json:"data"`
	}
	rec := getJSON(t, catalogRouter(t), "/products", &envelope)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if len(envelope.Data) != 68 {
		t.Fatalf("expected 68 products, got %d", len(envelope.Data))
	}
}

func TestCatalogProductNotFound(t *testing.T) {
	rec := getJSON(t, catalogRouter(t), "/products/999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestCatalogProductInvalidID(t *testing.T) {
	rec := getJSON(t, catalogRouter(t), "/products/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCatalogSearchByQuery(t *testing.T) {
	var envelope struct {
		Data catalog.ResultSet `json:"data"`
	}
	rec := getJSON(t, catalogRouter(t), "/search?q=rice", &envelope)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if envelope.Data.Headline != `Search Results for "rice"` {
		t.Fatalf("unexpected headline %q", envelope.Data.Headline)
	}
	if envelope.Data.Count != 1 || envelope.Data.Products[0].ID != 61 {
		t.Fatalf("unexpected results: %+v", envelope.Data)
	}
}

func TestCatalogSearchNamedFilter(t *testing.T) {
	var envelope struct {
		Data catalog.ResultSet `json:"data"`
	}
	rec := getJSON(t, catalogRouter(t), "/search?filter=sale", &envelope)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if envelope.Data.Headline != "Mega Sale Products" {
		t.Fatalf("unexpected headline %q", envelope.Data.Headline)
	}
	for _, p := range envelope.Data.Products {
		if p.Discount < 40 {
			t.Fatalf("product %d has discount %d below the sale floor", p.ID, p.Discount)
		}
	}
}

func TestCatalogSearchRejectsStackedAxes(t *testing.T) {
	rec := getJSON(t, catalogRouter(t), "/search?q=rice&filter=sale", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCatalogSearchRejectsUnknownFilter(t *testing.T) {
	rec := getJSON(t, catalogRouter(t), "/search?filter=clearance", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
