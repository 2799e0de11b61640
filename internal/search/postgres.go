package search

import (
	"context"
	"io"
	"log"
	"strconv"
	"time"

	"clees-keys/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// trigramFloor is the minimum pg_trgm similarity a fuzzy match must reach.
const trigramFloor = 0.3

type postgresBackend struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres builds the relational search backend. It issues pattern-match,
// trigram-similarity and GROUP BY queries directly against the primary store.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Backend {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresBackend{pool: pool, logger: logger}
}

func (b *postgresBackend) AutocompleteOrders(ctx context.Context, prefix string) ([]OrderSuggestion, error) {
	const q = `
SELECT id, description, key_type FROM orders
WHERE description ILIKE $1 OR key_type ILIKE $1
LIMIT 10`
	rows, err := b.pool.Query(ctx, q, prefix+"%")
	if err != nil {
		b.logger.Printf("search pg: autocomplete error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []OrderSuggestion
	for rows.Next() {
		var s OrderSuggestion
		if err := rows.Scan(&s.ID, &s.Description, &s.KeyType); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (b *postgresBackend) SearchInventory(ctx context.Context, term string, filters InventoryFilters) ([]domain.KeyInventoryItem, error) {
	q := `
SELECT id, sku, brand, key_type, description, quantity, price::float8, location, updated_at
FROM key_inventory
WHERE (sku ILIKE $1 OR brand ILIKE $1 OR description ILIKE $1)`
	args := []interface{}{"%" + term + "%"}
	if filters.KeyType != "" {
		args = append(args, filters.KeyType)
		q += ` AND key_type = $` + strconv.Itoa(len(args))
	}
	if filters.Brand != "" {
		args = append(args, filters.Brand)
		q += ` AND brand = $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY updated_at DESC LIMIT 50`

	rows, err := b.pool.Query(ctx, q, args...)
	if err != nil {
		b.logger.Printf("search pg: inventory term=%q error=%v", term, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.KeyInventoryItem
	for rows.Next() {
		var it domain.KeyInventoryItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.Brand, &it.KeyType, &it.Description, &it.Quantity, &it.Price, &it.Location, &it.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

func (b *postgresBackend) SearchServiceLogs(ctx context.Context, term string, window LogWindow) ([]domain.ServiceLog, error) {
	q := `
SELECT id, timestamp, message, service_type, technician, job_id, duration_ms
FROM service_logs
WHERE message ILIKE $1`
	args := []interface{}{"%" + term + "%"}
	if window.Since != nil {
		args = append(args, *window.Since)
		q += ` AND timestamp >= $` + strconv.Itoa(len(args))
	}
	if window.Until != nil {
		args = append(args, *window.Until)
		q += ` AND timestamp < $` + strconv.Itoa(len(args))
	}
	q += ` ORDER BY timestamp DESC LIMIT 50`

	return b.queryLogs(ctx, q, args...)
}

func (b *postgresBackend) FuzzyServiceLogs(ctx context.Context, term string) ([]domain.ServiceLog, error) {
	const q = `
SELECT id, timestamp, message, service_type, technician, job_id, duration_ms
FROM service_logs
WHERE similarity(message, $1) > $2
ORDER BY similarity(message, $1) DESC, timestamp DESC
LIMIT 50`
	return b.queryLogs(ctx, q, term, trigramFloor)
}

func (b *postgresBackend) queryLogs(ctx context.Context, q string, args ...interface{}) ([]domain.ServiceLog, error) {
	rows, err := b.pool.Query(ctx, q, args...)
	if err != nil {
		b.logger.Printf("search pg: logs error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceLog
	for rows.Next() {
		var l domain.ServiceLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.Message, &l.ServiceType, &l.Technician, &l.JobID, &l.DurationMS); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (b *postgresBackend) SearchCustomers(ctx context.Context, term string) ([]domain.Customer, error) {
	const q = `
SELECT id, name, email, phone, address, created_at FROM customers
WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1 OR address ILIKE $1
ORDER BY created_at DESC LIMIT 50`
	return b.queryCustomers(ctx, q, "%"+term+"%")
}

func (b *postgresBackend) LookupCustomersByPhone(ctx context.Context, prefix string) ([]domain.Customer, error) {
	const q = `
SELECT id, name, email, phone, address, created_at FROM customers
WHERE phone LIKE $1
ORDER BY created_at DESC LIMIT 50`
	return b.queryCustomers(ctx, q, prefix+"%")
}

func (b *postgresBackend) NearbyCustomers(ctx context.Context, address string) ([]domain.Customer, error) {
	const q = `
SELECT id, name, email, phone, address, created_at FROM customers
WHERE similarity(address, $1) > $2
ORDER BY similarity(address, $1) DESC
LIMIT 20`
	return b.queryCustomers(ctx, q, address, trigramFloor)
}

func (b *postgresBackend) queryCustomers(ctx context.Context, q string, args ...interface{}) ([]domain.Customer, error) {
	rows, err := b.pool.Query(ctx, q, args...)
	if err != nil {
		b.logger.Printf("search pg: customers error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (b *postgresBackend) SearchTechnicians(ctx context.Context, term string) ([]TechnicianHit, error) {
	const q = `
SELECT technician, COUNT(*) AS jobs
FROM service_logs
WHERE technician ILIKE $1
GROUP BY technician
ORDER BY jobs DESC`
	rows, err := b.pool.Query(ctx, q, "%"+term+"%")
	if err != nil {
		b.logger.Printf("search pg: technicians term=%q error=%v", term, err)
		return nil, err
	}
	defer rows.Close()

	var result []TechnicianHit
	for rows.Next() {
		var h TechnicianHit
		if err := rows.Scan(&h.Technician, &h.Jobs); err != nil {
			return nil, err
		}
		result = append(result, h)
	}
	return result, rows.Err()
}

func (b *postgresBackend) TechnicianPerformance(ctx context.Context, since *time.Time) ([]PerformanceRow, error) {
	q := `
SELECT
    technician,
    service_type,
    DATE_TRUNC('week', timestamp) AS week,
    COUNT(*) AS jobs_completed,
    AVG(duration_ms) AS avg_duration_ms,
    MIN(duration_ms) AS fastest_job,
    MAX(duration_ms) AS slowest_job
FROM service_logs`
	args := []interface{}{}
	if since != nil {
		args = append(args, *since)
		q += ` WHERE timestamp > $1`
	}
	q += `
GROUP BY technician, service_type, DATE_TRUNC('week', timestamp)
ORDER BY week DESC, technician ASC`

	rows, err := b.pool.Query(ctx, q, args...)
	if err != nil {
		b.logger.Printf("search pg: performance error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []PerformanceRow
	for rows.Next() {
		var p PerformanceRow
		if err := rows.Scan(&p.Technician, &p.ServiceType, &p.Week, &p.JobsCompleted, &p.AvgDurationMS, &p.FastestJob, &p.SlowestJob); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (b *postgresBackend) TechnicianLeaderboard(ctx context.Context) ([]LeaderboardEntry, error) {
	const q = `
SELECT technician, COUNT(*) AS jobs_completed
FROM service_logs
WHERE timestamp >= DATE_TRUNC('month', now())
GROUP BY technician
ORDER BY jobs_completed DESC
LIMIT 10`
	rows, err := b.pool.Query(ctx, q)
	if err != nil {
		b.logger.Printf("search pg: leaderboard error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.Technician, &e.JobsCompleted); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (b *postgresBackend) TechnicianUtilization(ctx context.Context, since *time.Time, technician string) ([]UtilizationRow, error) {
	q := `
SELECT
    technician,
    COUNT(*) AS jobs,
    SUM(duration_ms) AS total_duration_ms,
    PERCENTILE_CONT(0.5) WITHIN GROUP (ORDER BY duration_ms) AS median_duration_ms,
    PERCENTILE_CONT(0.95) WITHIN GROUP (ORDER BY duration_ms) AS p95_duration_ms
FROM service_logs`
	conditions := []string{}
	args := []interface{}{}
	if since != nil {
		args = append(args, *since)
		conditions = append(conditions, `timestamp > $`+strconv.Itoa(len(args)))
	}
	if technician != "" {
		args = append(args, technician)
		conditions = append(conditions, `technician = $`+strconv.Itoa(len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			q += `
WHERE ` + cond
		} else {
			q += ` AND ` + cond
		}
	}
	q += `
GROUP BY technician
ORDER BY total_duration_ms DESC`

	rows, err := b.pool.Query(ctx, q, args...)
	if err != nil {
		b.logger.Printf("search pg: utilization error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []UtilizationRow
	for rows.Next() {
		var u UtilizationRow
		if err := rows.Scan(&u.Technician, &u.Jobs, &u.TotalDurationMS, &u.MedianDurationMS, &u.P95DurationMS); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	return result, rows.Err()
}

func (b *postgresBackend) RevenueBreakdown(ctx context.Context) ([]RevenueBucket, error) {
	const q = `
SELECT
    DATE_TRUNC('week', order_date) AS week,
    store,
    key_type,
    COUNT(*) AS order_count,
    SUM(price)::float8 AS revenue,
    AVG(price)::float8 AS avg_order_value
FROM orders
GROUP BY DATE_TRUNC('week', order_date), store, key_type
ORDER BY week DESC, revenue DESC`
	rows, err := b.pool.Query(ctx, q)
	if err != nil {
		b.logger.Printf("search pg: revenue error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []RevenueBucket
	for rows.Next() {
		var r RevenueBucket
		if err := rows.Scan(&r.Week, &r.Store, &r.KeyType, &r.OrderCount, &r.Revenue, &r.AvgOrderValue); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

func (b *postgresBackend) ServiceBreakdown(ctx context.Context) ([]ServiceBucket, error) {
	const q = `
SELECT
    service_type,
    COUNT(*) AS jobs,
    SUM(duration_ms) AS total_duration_ms,
    AVG(duration_ms) AS avg_duration_ms
FROM service_logs
GROUP BY service_type
ORDER BY jobs DESC`
	rows, err := b.pool.Query(ctx, q)
	if err != nil {
		b.logger.Printf("search pg: service breakdown error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []ServiceBucket
	for rows.Next() {
		var s ServiceBucket
		if err := rows.Scan(&s.ServiceType, &s.Jobs, &s.TotalDurationMS, &s.AvgDurationMS); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

func (b *postgresBackend) InventoryFacets(ctx context.Context) ([]InventoryFacet, error) {
	const q = `
SELECT
    brand,
    key_type,
    COUNT(*) AS items,
    SUM(quantity) AS total_quantity,
    AVG(price)::float8 AS avg_price
FROM key_inventory
GROUP BY brand, key_type
ORDER BY items DESC, brand ASC`
	rows, err := b.pool.Query(ctx, q)
	if err != nil {
		b.logger.Printf("search pg: inventory facets error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []InventoryFacet
	for rows.Next() {
		var f InventoryFacet
		if err := rows.Scan(&f.Brand, &f.KeyType, &f.Items, &f.TotalQuantity, &f.AvgPrice); err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, rows.Err()
}
