package service

import (
	"context"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// InventoryService implements the catalog use cases and the stock
// transaction engine. Purchase and Restock are expressed as deltas handed to
// the repository's single atomic adjust operation, never as a separate read
// followed by a write.
type InventoryService struct {
	repo   ports.SweetRepository
	logger zerolog.Logger
}

func NewInventoryService(repo ports.SweetRepository, logger zerolog.Logger) *InventoryService {
	return &InventoryService{repo: repo, logger: logger}
}

// Create inserts a new catalog item. A duplicate name fails with
// domain.ErrDuplicateSweet.
func (s *InventoryService) Create(ctx context.Context, input ports.SweetInput) (*domain.Sweet, error) {
	now := time.Now().UTC()
	sweet := &domain.Sweet{
		Name:      input.Name,
		Category:  input.Category,
		Price:     roundPrice(input.Price),
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

func (s *InventoryService) List(ctx context.Context) ([]*domain.Sweet, error) {
	return s.repo.List(ctx)
}

func (s *InventoryService) Search(ctx context.Context, filter ports.SearchFilter) ([]*domain.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// Update replaces all writable fields. This is an administrative full
// overwrite; last-writer-wins is acceptable here, unlike purchase/restock.
func (s *InventoryService) Update(ctx context.Context, id string, input ports.SweetInput) (*domain.Sweet, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Category = input.Category
	existing.Price = roundPrice(input.Price)
	existing.Quantity = input.Quantity
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

// Delete removes an item. Deleting a missing id fails with
// domain.ErrSweetNotFound; this policy is applied consistently.
func (s *InventoryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("sweet_id", id).Msg("sweet deleted")
	return nil
}

// Purchase decrements stock by count as one atomic floor-checked delta.
// Two concurrent purchases can never both succeed if their combined count
// would drive quantity negative.
func (s *InventoryService) Purchase(ctx context.Context, id string, count int64) (*domain.Sweet, error) {
	if count < 1 {
		return nil, domain.ErrInvalidCount
	}

	sweet, err := s.repo.AdjustQuantity(ctx, id, -count)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sweet_id", sweet.ID).
		Int64("count", count).
		Int64("remaining", sweet.Quantity).
		Msg("purchase completed")
	return sweet, nil
}

// Restock increments stock by count with the same atomicity as Purchase.
func (s *InventoryService) Restock(ctx context.Context, id string, count int64) (*domain.Sweet, error) {
	if count < 1 {
		return nil, domain.ErrInvalidCount
	}

	sweet, err := s.repo.AdjustQuantity(ctx, id, count)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("sweet_id", sweet.ID).
		Int64("count", count).
		Int64("quantity", sweet.Quantity).
		Msg("restock completed")
	return sweet, nil
}

// roundPrice normalises a price to two fractional digits.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
