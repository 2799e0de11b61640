package search

import (
	"context"
	"errors"
	"time"

	"clees-keys/internal/domain"
)

// ErrUnavailable indicates the selected search backend could not be reached.
// There is no fallback between backends; requests fail closed.
var ErrUnavailable = errors.New("search backend unavailable")

type OrderSuggestion struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	KeyType     string `json:"key_type"`
}

// InventoryFilters are exact-match facets combined with the text term via
// logical AND. Empty fields are ignored.
type InventoryFilters struct {
	KeyType string
	Brand   string
}

// LogWindow bounds a service-log search: since inclusive, until exclusive.
type LogWindow struct {
	Since *time.Time
	Until *time.Time
}

type TechnicianHit struct {
	Technician string `json:"technician"`
	Jobs       int64  `json:"jobs"`
}

type PerformanceRow struct {
	Technician    string    `json:"technician"`
	ServiceType   string    `json:"service_type"`
	Week          time.Time `json:"week"`
	JobsCompleted int64     `json:"jobs_completed"`
	AvgDurationMS float64   `json:"avg_duration_ms"`
	FastestJob    float64   `json:"fastest_job"`
	SlowestJob    float64   `json:"slowest_job"`
}

type LeaderboardEntry struct {
	Technician    string `json:"technician"`
	JobsCompleted int64  `json:"jobs_completed"`
}

type UtilizationRow struct {
	Technician       string  `json:"technician"`
	Jobs             int64   `json:"jobs"`
	TotalDurationMS  float64 `json:"total_duration_ms"`
	MedianDurationMS float64 `json:"median_duration_ms"`
	P95DurationMS    float64 `json:"p95_duration_ms"`
}

type RevenueBucket struct {
	Week          time.Time `json:"week"`
	Store         string    `json:"store"`
	KeyType       string    `json:"key_type"`
	OrderCount    int64     `json:"order_count"`
	Revenue       float64   `json:"revenue"`
	AvgOrderValue float64   `json:"avg_order_value"`
}

type ServiceBucket struct {
	ServiceType     string  `json:"service_type"`
	Jobs            int64   `json:"jobs"`
	TotalDurationMS float64 `json:"total_duration_ms"`
	AvgDurationMS   float64 `json:"avg_duration_ms"`
}

type InventoryFacet struct {
	Brand         string  `json:"brand"`
	KeyType       string  `json:"key_type"`
	Items         int64   `json:"items"`
	TotalQuantity int64   `json:"total_quantity"`
	AvgPrice      float64 `json:"avg_price"`
}

// Backend is the search/aggregation capability shared by the relational and
// document-index paths. Exactly one implementation is selected at startup.
// The two must agree on result semantics even where the matching algorithm
// differs (pattern match vs. analyzed match, trigram similarity vs. edit
// distance).
type Backend interface {
	AutocompleteOrders(ctx context.Context, prefix string) ([]OrderSuggestion, error)
	SearchInventory(ctx context.Context, term string, filters InventoryFilters) ([]domain.KeyInventoryItem, error)
	SearchServiceLogs(ctx context.Context, term string, window LogWindow) ([]domain.ServiceLog, error)
	FuzzyServiceLogs(ctx context.Context, term string) ([]domain.ServiceLog, error)
	SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error)
	LookupCustomersByPhone(ctx context.Context, prefix string) ([]domain.Customer, error)
	NearbyCustomers(ctx context.Context, address string) ([]domain.Customer, error)

	SearchTechnicians(ctx context.Context, term string) ([]TechnicianHit, error)
	TechnicianPerformance(ctx context.Context, since *time.Time) ([]PerformanceRow, error)
	TechnicianLeaderboard(ctx context.Context) ([]LeaderboardEntry, error)
	TechnicianUtilization(ctx context.Context, since *time.Time, technician string) ([]UtilizationRow, error)

	RevenueBreakdown(ctx context.Context) ([]RevenueBucket, error)
	ServiceBreakdown(ctx context.Context) ([]ServiceBucket, error)
	InventoryFacets(ctx context.Context) ([]InventoryFacet, error)
}
