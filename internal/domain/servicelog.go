package domain

import "time"

// ServiceLog entries are append-only; they are never updated or deleted.
type ServiceLog struct {
	ID          int64     `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Message     string    `json:"message"`
	ServiceType string    `json:"service_type"`
	Technician  string    `json:"technician"`
	JobID       string    `json:"job_id"`
	DurationMS  float64   `json:"duration_ms"`
}
