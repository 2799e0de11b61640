package inventory

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	Location string
	Limit    int
	Offset   int
}

type CreateInput struct {
	SKU         string
	Brand       string
	KeyType     string
	Description string
	Quantity    int
	Price       float64
	Location    string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.KeyInventoryItem, error)
	GetByID(ctx context.Context, id int64) (*domain.KeyInventoryItem, error)
	Create(ctx context.Context, in CreateInput) (*domain.KeyInventoryItem, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.KeyInventoryItem, error)
}
