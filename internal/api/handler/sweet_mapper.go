package handler

import (
	"github.com/sweetshop/inventory-api/internal/core/domain"
	"github.com/sweetshop/inventory-api/internal/core/ports"
)

// --- Request → Service input ---

func toSweetInput(req sweetRequest) ports.SweetInput {
	return ports.SweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	}
}

// --- Domain → HTTP response ---

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toListResponse(sweets []*domain.Sweet) listSweetsResponse {
	items := make([]sweetResponse, len(sweets))
	for i, s := range sweets {
		items[i] = toSweetResponse(s)
	}
	return listSweetsResponse{Data: items, Total: len(items)}
}
