package domain

import "time"

// Customer ids are "cust-" prefixed strings; orders, appointments and billing
// records reference them through their loosely-typed customer_id columns.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}
