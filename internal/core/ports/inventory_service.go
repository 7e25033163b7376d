package ports

import (
	"context"

	"github.com/sweetshop/inventory-api/internal/core/domain"
)

// SweetInput carries the writable catalog item fields from the transport
// layer to the inventory service.
type SweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
}

// InventoryService defines the catalog and stock use cases. Purchase and
// Restock are delta operations: they must remain correct under concurrent
// calls against the same item.
type InventoryService interface {
	Create(ctx context.Context, input SweetInput) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	Search(ctx context.Context, filter SearchFilter) ([]*domain.Sweet, error)
	Update(ctx context.Context, id string, input SweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	Purchase(ctx context.Context, id string, count int64) (*domain.Sweet, error)
	Restock(ctx context.Context, id string, count int64) (*domain.Sweet, error)
}

// LoginLimiter throttles repeated failed logins per username.
type LoginLimiter interface {
	// Allow reports whether a login attempt may proceed and, when blocked,
	// how long until the block expires.
	Allow(ctx context.Context, username string) (bool, int64, error)
	// Failure records a failed attempt.
	Failure(ctx context.Context, username string) error
	// Success clears the failure counter.
	Success(ctx context.Context, username string) error
}
