package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

// sweetRequest is the payload for both create and full-replace update.
type sweetRequest struct {
	Name     string  `json:"name"     validate:"required,max=120"`
	Category string  `json:"category" validate:"required,max=80"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
}

// countRequest carries the delta for purchase and restock. Count is validated
// by the inventory service (count >= 1) so the rule lives in exactly one place.
type countRequest struct {
	Count int64 `json:"count"`
}

// Response-only types owned by the transport layer. These are intentionally
// separate from domain types so the JSON contract is not coupled to internal
// service changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listSweetsResponse struct {
	Data  []sweetResponse `json:"data"`
	Total int             `json:"total"`
}
