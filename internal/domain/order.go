package domain

import "time"

type Order struct {
	ID          int64     `json:"id"`
	OrderDate   time.Time `json:"order_date"`
	Description string    `json:"description"`
	KeyType     string    `json:"key_type"`
	Price       float64   `json:"price"`
	Status      string    `json:"status"`
	CustomerID  string    `json:"customer_id"`
	Store       string    `json:"store"`
}

// OrderStatusDefault is assigned on intake; later transitions are
// caller-directed, only membership in the vocabulary is enforced.
const OrderStatusDefault = "pending"

var orderStatuses = map[string]struct{}{
	"pending":   {},
	"cutting":   {},
	"ready":     {},
	"picked-up": {},
}

func ValidOrderStatus(s string) bool {
	_, ok := orderStatuses[s]
	return ok
}
