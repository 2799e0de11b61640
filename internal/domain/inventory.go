package domain

import "time"

type KeyInventoryItem struct {
	ID          int64     `json:"id"`
	SKU         string    `json:"sku"`
	Brand       string    `json:"brand"`
	KeyType     string    `json:"key_type"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	UpdatedAt   time.Time `json:"updated_at"`
}
