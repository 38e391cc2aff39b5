package cart

import (
	"context"
	"time"

	"github.com/eshop-labs/storefront-api/internal/catalog"
	"github.com/eshop-labs/storefront-api/pkg/db"
	dbmodels "github.com/eshop-labs/storefront-api/pkg/db/models"
	pkgerrors "github.com/eshop-labs/storefront-api/pkg/errors"
	"github.com/eshop-labs/storefront-api/pkg/metrics"
	"github.com/google/uuid"
)

const collectionLabel = "cart"

type store interface {
	AddItem(ctx context.Context, userID uuid.UUID, product catalog.Product) error
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, quantity int) error
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]dbmodels.CartItem, error)
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	Repo    store
	Catalog catalog.Service
	Metrics *metrics.StoreMetrics
}

// Service exposes business rules for cart management. Every mutation
// returns the cart as re-read from the store, never a local echo of the
// mutation.
type Service interface {
	Fetch(ctx context.Context, userID uuid.UUID) (CartDTO, error)
	Add(ctx context.Context, userID uuid.UUID, productID int) (CartDTO, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, quantity int) (CartDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, productID int) (CartDTO, error)
}

type service struct {
	repo    store
	catalog catalog.Service
	metrics *metrics.StoreMetrics
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart repo is required")
	}
	if params.Catalog == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog service is required")
	}
	return &service{
		repo:    params.Repo,
		catalog: params.Catalog,
		metrics: params.Metrics,
	}, nil
}

// Fetch returns the cart for a signed-in user. An anonymous caller gets an
// empty cart without touching the store.
func (s *service) Fetch(ctx context.Context, userID uuid.UUID) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{Items: []ItemDTO{}}, nil
	}
	return s.refetch(ctx, userID)
}

// Add puts a product in the cart at quantity 1 and returns the refreshed
// cart. Re-adding a product that is already present is a conflict, not a
// quantity bump.
func (s *service) Add(ctx context.Context, userID uuid.UUID, productID int) (CartDTO, error) {
	if err := s.requireUser(userID); err != nil {
		return CartDTO{}, err
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return CartDTO{}, err
	}

	start := time.Now()
	if err := s.repo.AddItem(ctx, userID, product); err != nil {
		s.metrics.IncFailure(collectionLabel, "add")
		if db.IsUniqueViolation(err) {
			return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "already in cart")
		}
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add cart item")
	}
	s.metrics.IncSuccess(collectionLabel, "add")
	s.metrics.ObserveDuration(collectionLabel, "add", time.Since(start))

	return s.refetch(ctx, userID)
}

// UpdateQuantity sets a cart line to the given quantity. Quantities below
// one are rejected before the store is touched; removal is its own call.
func (s *service) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID, quantity int) (CartDTO, error) {
	if err := s.requireUser(userID); err != nil {
		return CartDTO{}, err
	}
	if quantity < 1 {
		return CartDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	start := time.Now()
	if err := s.repo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		s.metrics.IncFailure(collectionLabel, "update_quantity")
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update cart quantity")
	}
	s.metrics.IncSuccess(collectionLabel, "update_quantity")
	s.metrics.ObserveDuration(collectionLabel, "update_quantity", time.Since(start))

	return s.refetch(ctx, userID)
}

// Remove drops the cart line regardless of prior state and returns the
// refreshed cart. An anonymous caller has nothing to remove: the call is a
// no-op success that never touches the store.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID int) (CartDTO, error) {
	if userID == uuid.Nil {
		return CartDTO{Items: []ItemDTO{}}, nil
	}

	start := time.Now()
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		s.metrics.IncFailure(collectionLabel, "remove")
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove cart item")
	}
	s.metrics.IncSuccess(collectionLabel, "remove")
	s.metrics.ObserveDuration(collectionLabel, "remove", time.Since(start))

	return s.refetch(ctx, userID)
}

// refetch rebuilds the DTO from the store. Concurrent mutations race here
// and the last re-read wins, matching how the storefront always renders the
// latest server state.
func (s *service) refetch(ctx context.Context, userID uuid.UUID) (CartDTO, error) {
	rows, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}

	items := make([]ItemDTO, 0, len(rows))
	total := 0
	count := 0
	for _, row := range rows {
		item := itemFromModel(row)
		items = append(items, item)
		total += item.Product.Price * item.Quantity
		count += item.Quantity
	}
	return CartDTO{Items: items, Total: total, Count: count}, nil
}

func (s *service) requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to manage your cart")
	}
	return nil
}
