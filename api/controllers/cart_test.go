package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eshop-labs/storefront-api/api/middleware"
	cartsvc "github.com/eshop-labs/storefront-api/internal/cart"
	"github.com/eshop-labs/storefront-api/internal/catalog"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
)

type stubCartService struct {
	dto cartsvc.CartDTO
	err error

	gotUser     uuid.UUID
	gotProduct  int
	gotQuantity int
}

func (s *stubCartService) Fetch(_ context.Context, userID uuid.UUID) (cartsvc.CartDTO, error) {
	s.gotUser = userID
	return s.dto, s.err
}

func (s *stubCartService) Add(_ context.Context, userID uuid.UUID, productID int) (cartsvc.CartDTO, error) {
	s.gotUser = userID
	s.gotProduct = productID
	return s.dto, s.err
}

func (s *stubCartService) UpdateQuantity(_ context.Context, userID uuid.UUID, productID, quantity int) (cartsvc.CartDTO, error) {
	s.gotUser = userID
	s.gotProduct = productID
	s.gotQuantity = quantity
	return s.dto, s.err
}

func (s *stubCartService) Remove(_ context.Context, userID uuid.UUID, productID int) (cartsvc.CartDTO, error) {
	s.gotUser = userID
	s.gotProduct = productID
	return s.dto, s.err
}

func cartTestRouter(svc cartsvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/", CartFetch(svc, nil))
	r.Post("/items", CartAdd(svc, nil))
	r.Patch("/items/{productId}", CartUpdateQuantity(svc, nil))
	r.Delete("/items/{productId}", CartRemove(svc, nil))
	return r
}

func TestCartFetchAnonymousPassesNilUser(t *testing.T) {
	svc := &stubCartService{dto: cartsvc.CartDTO{Items: []cartsvc.ItemDTO{}}}
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotUser != uuid.Nil {
		t.Fatalf("expected nil user for anonymous fetch, got %s", svc.gotUser)
	}
}

func TestCartAddForwardsAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	svc := &stubCartService{dto: cartsvc.CartDTO{
		Items: []cartsvc.ItemDTO{{ID: uuid.New(), Product: catalog.Product{ID: 3}, Quantity: 1}},
		Count: 1,
	}}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":3}`))
	req = req.WithContext(middleware.WithSession(req.Context(), userID, "jti-1", "phone"))
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", rec.Code)
	}
	if svc.gotUser != userID || svc.gotProduct != 3 {
		t.Fatalf("service got user=%s product=%d", svc.gotUser, svc.gotProduct)
	}

	var envelope struct {
		Data cartsvc.CartDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 1 {
		t.Fatalf("unexpected cart payload: %+v", envelope.Data)
	}
}

func TestCartAddConflictSurfacesServiceMessage(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeConflict, "already in cart")}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":3}`))
	req = req.WithContext(middleware.WithSession(req.Context(), uuid.New(), "jti-1", "phone"))
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already in cart") {
		t.Fatalf("conflict message missing from body: %s", rec.Body.String())
	}
}

func TestCartUpdateQuantityParsesPathAndBody(t *testing.T) {
	svc := &stubCartService{dto: cartsvc.CartDTO{}}

	req := httptest.NewRequest(http.MethodPatch, "/items/7", strings.NewReader(`{"quantity":4}`))
	req = req.WithContext(middleware.WithSession(req.Context(), uuid.New(), "jti-1", "phone"))
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotProduct != 7 || svc.gotQuantity != 4 {
		t.Fatalf("service got product=%d quantity=%d", svc.gotProduct, svc.gotQuantity)
	}
}

func TestCartAddRejectsMalformedBody(t *testing.T) {
	svc := &stubCartService{}
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":"three"}`))
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartRemoveInvalidProductID(t *testing.T) {
	svc := &stubCartService{}
	req := httptest.NewRequest(http.MethodDelete, "/items/xyz", nil)
	rec := httptest.NewRecorder()
	cartTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}
