package appointment

import (
	"context"

	"clees-keys/internal/domain"
)

type ListFilter struct {
	Technician string
	Status     string
	Limit      int
	Offset     int
}

type CreateInput struct {
	AppointmentDate string
	CustomerID      string
	ServiceType     string
	Technician      string
	Notes           *string
	Address         string
}

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Create(ctx context.Context, in CreateInput) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}
