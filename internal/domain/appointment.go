package domain

import "time"

type Appointment struct {
	ID              int64     `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	CustomerID      string    `json:"customer_id"`
	ServiceType     string    `json:"service_type"`
	Technician      string    `json:"technician"`
	Status          string    `json:"status"`
	Notes           *string   `json:"notes"`
	Address         string    `json:"address"`
}

const AppointmentStatusDefault = "scheduled"

var appointmentStatuses = map[string]struct{}{
	"scheduled": {},
	"confirmed": {},
	"completed": {},
	"cancelled": {},
}

func ValidAppointmentStatus(s string) bool {
	_, ok := appointmentStatuses[s]
	return ok
}
