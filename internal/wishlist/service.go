package wishlist

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

const collectionLabel = "wishlist"

type store interface {
	AddItem(ctx context.Context, userID uuid.UUID, product catalog.Product) error
	RemoveItem(ctx context.Context, userID uuid.UUID, productID int) error
	ListItems(ctx context.Context, userID uuid.UUID) ([]dbmodels.WishlistItem, error)
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	Repo    store
	Catalog catalog.Service
	Metrics *metrics.StoreMetrics
}

// Service exposes business rules for wishlist management. Every mutation
// returns the collection as re-read from the store, never a local echo of
// the mutation.
type Service interface {
	Fetch(ctx context.Context, userID uuid.UUID) (WishlistDTO, error)
	Add(ctx context.Context, userID uuid.UUID, productID int) (WishlistDTO, error)
	Remove(ctx context.Context, userID uuid.UUID, productID int) (WishlistDTO, error)
}

type service struct {
	repo    store
	catalog catalog.Service
	metrics *metrics.StoreMetrics
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "wishlist repo is required")
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

// Fetch returns the wishlist for a signed-in user. An anonymous caller gets
// an empty wishlist without touching the store.
func (s *service) Fetch(ctx context.Context, userID uuid.UUID) (WishlistDTO, error) {
	if userID == uuid.Nil {
		return WishlistDTO{Items: []ItemDTO{}}, nil
	}
	return s.refetch(ctx, userID)
}

// Add likes a product and returns the refreshed wishlist.
func (s *service) Add(ctx context.Context, userID uuid.UUID, productID int) (WishlistDTO, error) {
	if err := s.requireUser(userID); err != nil {
		return WishlistDTO{}, err
	}

	product, err := s.catalog.Get(productID)
	if err != nil {
		return WishlistDTO{}, err
	}

	start := time.Now()
	if err := s.repo.AddItem(ctx, userID, product); err != nil {
		s.metrics.IncFailure(collectionLabel, "add")
		if db.IsUniqueViolation(err) {
			return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "already in wishlist")
		}
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
	}
	s.metrics.IncSuccess(collectionLabel, "add")
	s.metrics.ObserveDuration(collectionLabel, "add", time.Since(start))

	return s.refetch(ctx, userID)
}

// Remove drops the like regardless of prior state and returns the refreshed
// wishlist. An anonymous caller has nothing to remove: the call is a no-op
// success that never touches the store.
func (s *service) Remove(ctx context.Context, userID uuid.UUID, productID int) (WishlistDTO, error) {
	if userID == uuid.Nil {
		return WishlistDTO{Items: []ItemDTO{}}, nil
	}

	start := time.Now()
	if err := s.repo.RemoveItem(ctx, userID, productID); err != nil {
		s.metrics.IncFailure(collectionLabel, "remove")
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
	}
	s.metrics.IncSuccess(collectionLabel, "remove")
	s.metrics.ObserveDuration(collectionLabel, "remove", time.Since(start))

	return s.refetch(ctx, userID)
}

// refetch rebuilds the DTO from the store. Concurrent mutations race here
// and the last re-read wins, matching how the storefront always renders the
// latest server state.
func (s *service) refetch(ctx context.Context, userID uuid.UUID) (WishlistDTO, error) {
	rows, err := s.repo.ListItems(ctx, userID)
	if err != nil {
		return WishlistDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist")
	}
	items := make([]ItemDTO, 0, len(rows))
	for _, row := range rows {
		items = append(items, itemFromModel(row))
	}
	return WishlistDTO{Items: items, Count: len(items)}, nil
}

func (s *service) requireUser(userID uuid.UUID) error {
	if userID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "sign in to save items")
	}
	return nil
}
