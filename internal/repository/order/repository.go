package order

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	Status string
	Limit  int
	Offset int
}

type CreateInput struct {
	Description string
	KeyType     string
	Price       float64
	CustomerID  string
	Store       string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Delete(ctx context.Context, id int64) error
	ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error)
}
