package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrDuplicateSweet = errors.New("sweet already exists")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrInvalidCount = errors.New("count must be >= 1")
var ErrForbidden = errors.New("access forbidden")

// Sweet is the core catalog aggregate. Quantity is never negative; all
// quantity changes go through the atomic delta operations on the repository.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
