package billing

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	CustomerID string
	Status     string
	Limit      int
	Offset     int
}

type CreateInput struct {
	CustomerID    string
	Description   string
	Amount        float64
	PaymentMethod *string
}

// UpdateInput carries the partial update; nil fields are left untouched.
// Callers must supply at least one field.
type UpdateInput struct {
	Status        *string
	PaymentMethod *string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.CustomerBillingRecord, error)
	GetByID(ctx context.Context, id int64) (*domain.CustomerBillingRecord, error)
	Create(ctx context.Context, in CreateInput) (*domain.CustomerBillingRecord, error)
	Update(ctx context.Context, id int64, in UpdateInput) (*domain.CustomerBillingRecord, error)
}
