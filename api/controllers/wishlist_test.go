package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eshop-labs/storefront-api/api/middleware"
	wishlistsvc "github.com/eshop-labs/storefront-api/internal/wishlist"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
)

type stubWishlistService struct {
	dto wishlistsvc.WishlistDTO
	err error

	gotUser    uuid.UUID
	gotProduct int
}

func (s *stubWishlistService) Fetch(_ context.Context, userID uuid.UUID) (wishlistsvc.WishlistDTO, error) {
	s.gotUser = userID
	return s.dto, s.err
}

func (s *stubWishlistService) Add(_ context.Context, userID uuid.UUID, productID int) (wishlistsvc.WishlistDTO, error) {
	s.gotUser = userID
	s.gotProduct = productID
	return s.dto, s.err
}

func (s *stubWishlistService) Remove(_ context.Context, userID uuid.UUID, productID int) (wishlistsvc.WishlistDTO, error) {
	s.gotUser = userID
	s.gotProduct = productID
	return s.dto, s.err
}

func wishlistTestRouter(svc wishlistsvc.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/", WishlistFetch(svc, nil))
	r.Post("/items", WishlistAdd(svc, nil))
	r.Delete("/items/{productId}", WishlistRemove(svc, nil))
	return r
}

func TestWishlistAddRequiresSessionMessage(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to save items")}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":5}`))
	rec := httptest.NewRecorder()
	wishlistTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "sign in to save items") {
		t.Fatalf("service message missing from body: %s", rec.Body.String())
	}
}

func TestWishlistRemoveForwardsProductID(t *testing.T) {
	userID := uuid.New()
	svc := &stubWishlistService{dto: wishlistsvc.WishlistDTO{Items: []wishlistsvc.ItemDTO{}}}

	req := httptest.NewRequest(http.MethodDelete, "/items/12", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), userID, "jti-1", "phone"))
	rec := httptest.NewRecorder()
	wishlistTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.gotUser != userID || svc.gotProduct != 12 {
		t.Fatalf("service got user=%s product=%d", svc.gotUser, svc.gotProduct)
	}
}

func TestWishlistAddDuplicateConflict(t *testing.T) {
	svc := &stubWishlistService{err: pkgerrors.New(pkgerrors.CodeConflict, "already in wishlist")}

	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"product_id":5}`))
	req = req.WithContext(middleware.WithSession(req.Context(), uuid.New(), "jti-1", "phone"))
	rec := httptest.NewRecorder()
	wishlistTestRouter(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", rec.Code)
	}
}
