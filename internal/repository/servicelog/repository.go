package servicelog

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	Technician string
	Limit      int
	Offset     int
}

type CreateInput struct {
	Message     string
	ServiceType string
	Technician  string
	JobID       string
	DurationMS  float64
}

// Repository is append-only: logs are never updated or deleted.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.ServiceLog, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceLog, error)
	Create(ctx context.Context, in CreateInput) (*domain.ServiceLog, error)
}
