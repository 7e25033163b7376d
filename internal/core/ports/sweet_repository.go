package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SearchFilter carries the optional catalog search parameters. All provided
// filters are ANDed; absent filters impose no constraint.
type SearchFilter struct {
	Name     string   // case-insensitive substring on name
	Category string   // case-insensitive substring on category
	MinPrice *float64 // inclusive lower bound
	MaxPrice *float64 // inclusive upper bound
}

// SweetRepository defines persistence operations for catalog items.
//
// AdjustQuantity is the single atomic read-modify-write the inventory engine
// relies on: implementations must apply the delta and the non-negative floor
// check in one store operation so concurrent purchases cannot lose updates.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	// Update replaces name/category/price/quantity (last-writer-wins).
	Update(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// AdjustQuantity atomically sets quantity = quantity + delta and returns
	// the updated item. A negative delta that would drive quantity below
	// zero fails with domain.ErrInsufficientStock and leaves the item
	// unchanged; a missing id fails with domain.ErrSweetNotFound.
	AdjustQuantity(ctx context.Context, id string, delta int64) (*domain.Sweet, error)
}
