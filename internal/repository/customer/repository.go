package customer

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	Limit  int
	Offset int
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, in CreateInput) (*domain.Customer, error)
}
