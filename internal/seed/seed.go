package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"clees-keys/internal/domain"
	"clees-keys/internal/search"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	keyTypes = []string{"house", "car", "safe", "padlock", "mailbox", "cabinet", "deadbolt"}
	stores   = []string{"main-shop", "downtown", "mobile-van"}
	statuses = []string{"pending", "cutting", "ready", "picked-up"}

	descriptions = []string{
		"House key copy",
		"Schlage deadbolt rekey",
		"Car key duplicate",
		"Padlock key replacement",
		"Mailbox key copy",
		"Safe combination reset and new key",
		"Cabinet lock rekey",
		"Master key system setup",
		"High-security key cut",
		"Transponder key programming",
	}

	serviceTypes = []string{"key-cutting", "lockout", "rekey", "safe-install"}
	technicians  = []string{"tech-001", "tech-002", "tech-003", "tech-004"}

	logMessages = []string{
		"Customer locked out, deadbolt rekey completed",
		"Key cutting for Schlage SC1 blank",
		"Emergency lockout service, picked wafer lock",
		"Safe combination reset and new key cut",
		"Transponder key programming for Honda Civic",
		"Master key system installation for office building",
		"Broken key extraction from Yale deadbolt",
		"High-security Medeco key duplication",
		"Cabinet lock rekey, 4 locks total",
		"Automotive lockout, slim jim entry",
	}

	brands    = []string{"Schlage", "Kwikset", "Yale", "Medeco", "Mul-T-Lock", "ASSA"}
	locations = []string{"main-shop", "downtown", "warehouse"}

	appointmentStatuses = []string{"scheduled", "confirmed", "completed", "cancelled"}
	billingStatuses     = []string{"unpaid", "paid", "overdue"}
	paymentMethods      = []string{"cash", "card", "check"}

	firstNames = []string{"John", "Maria", "Wei", "Aisha", "Carlos", "Elena", "Sam", "Priya"}
	lastNames  = []string{"Smith", "Garcia", "Chen", "Okafor", "Ivanova", "Miller", "Patel", "Brown"}
)

const customerCount = 200

func pick(arr []string) string {
	return arr[rand.Intn(len(arr))]
}

func randomDate(daysBack int) time.Time {
	d := time.Now().UTC().AddDate(0, 0, -rand.Intn(daysBack))
	return d.Add(-time.Duration(rand.Intn(24*60)) * time.Minute)
}

func randomCustomerID() string {
	return "cust-" + strconv.Itoa(rand.Intn(customerCount))
}

// Apply inserts randomized sample data for manual testing and demos.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for i := 0; i < customerCount; i++ {
		name := pick(firstNames) + " " + pick(lastNames)
		_, err := pool.Exec(ctx, `
INSERT INTO customers (id, name, email, phone, address, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`,
			"cust-"+strconv.Itoa(i),
			name,
			fmt.Sprintf("customer%d@example.com", i),
			fmt.Sprintf("555-%04d", rand.Intn(10000)),
			fmt.Sprintf("%d Main St", rand.Intn(9999)),
			randomDate(365),
		)
		if err != nil {
			return fmt.Errorf("seed customers: %w", err)
		}
	}

	for i := 0; i < 1000; i++ {
		_, err := pool.Exec(ctx, `
INSERT INTO orders (order_date, description, key_type, price, status, customer_id, store)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			randomDate(30),
			pick(descriptions),
			pick(keyTypes),
			rand.Float64()*200+5,
			pick(statuses),
			randomCustomerID(),
			pick(stores),
		)
		if err != nil {
			return fmt.Errorf("seed orders: %w", err)
		}
	}

	for i := 0; i < 800; i++ {
		_, err := pool.Exec(ctx, `
INSERT INTO service_logs (timestamp, message, service_type, technician, job_id, duration_ms)
VALUES ($1, $2, $3, $4, $5, $6)`,
			randomDate(30),
			pick(logMessages),
			pick(serviceTypes),
			pick(technicians),
			"job-"+uuid.NewString()[:8],
			rand.Float64()*5000,
		)
		if err != nil {
			return fmt.Errorf("seed service logs: %w", err)
		}
	}

	for i := 0; i < 200; i++ {
		_, err := pool.Exec(ctx, `
INSERT INTO key_inventory (sku, brand, key_type, description, quantity, price, location)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			fmt.Sprintf("SKU-%04d", i),
			pick(brands),
			pick(keyTypes),
			pick(brands)+" "+pick(keyTypes)+" key blank",
			rand.Intn(100),
			rand.Float64()*50+1,
			pick(locations),
		)
		if err != nil {
			return fmt.Errorf("seed inventory: %w", err)
		}
	}

	for i := 0; i < 300; i++ {
		var notes *string
		if rand.Intn(2) == 0 {
			n := "Customer requested morning slot"
			notes = &n
		}
		_, err := pool.Exec(ctx, `
INSERT INTO appointments (appointment_date, customer_id, service_type, technician, status, notes, address)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			randomDate(14),
			randomCustomerID(),
			pick(serviceTypes),
			pick(technicians),
			pick(appointmentStatuses),
			notes,
			fmt.Sprintf("%d Main St", rand.Intn(9999)),
		)
		if err != nil {
			return fmt.Errorf("seed appointments: %w", err)
		}
	}

	for i := 0; i < 500; i++ {
		var method *string
		if rand.Intn(4) != 0 {
			m := pick(paymentMethods)
			method = &m
		}
		_, err := pool.Exec(ctx, `
INSERT INTO customer_billing (invoice_date, customer_id, description, amount, status, payment_method)
VALUES ($1, $2, $3, $4, $5, $6)`,
			randomDate(60),
			randomCustomerID(),
			pick(descriptions),
			rand.Float64()*300+10,
			pick(billingStatuses),
			method,
		)
		if err != nil {
			return fmt.Errorf("seed billing: %w", err)
		}
	}

	return nil
}

// Index mirrors the seeded rows into the document-search indices so the
// elasticsearch backend serves the same data as the relational one.
func Index(ctx context.Context, pool *pgxpool.Pool, client *elasticsearch.Client) error {
	rows, err := pool.Query(ctx, `SELECT id, order_date, description, key_type, price::float8, status, customer_id, store FROM orders`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.Description, &o.KeyType, &o.Price, &o.Status, &o.CustomerID, &o.Store); err != nil {
			return err
		}
		if err := indexDoc(ctx, client, search.IndexOrders, strconv.FormatInt(o.ID, 10), o); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = pool.Query(ctx, `SELECT id, timestamp, message, service_type, technician, job_id, duration_ms FROM service_logs`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var l domain.ServiceLog
		if err := rows.Scan(&l.ID, &l.Timestamp, &l.Message, &l.ServiceType, &l.Technician, &l.JobID, &l.DurationMS); err != nil {
			return err
		}
		if err := indexDoc(ctx, client, search.IndexServiceLogs, strconv.FormatInt(l.ID, 10), l); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = pool.Query(ctx, `SELECT id, sku, brand, key_type, description, quantity, price::float8, location, updated_at FROM key_inventory`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var it domain.KeyInventoryItem
		if err := rows.Scan(&it.ID, &it.SKU, &it.Brand, &it.KeyType, &it.Description, &it.Quantity, &it.Price, &it.Location, &it.UpdatedAt); err != nil {
			return err
		}
		if err := indexDoc(ctx, client, search.IndexInventory, strconv.FormatInt(it.ID, 10), it); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = pool.Query(ctx, `SELECT id, name, email, phone, address, created_at FROM customers`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cu domain.Customer
		if err := rows.Scan(&cu.ID, &cu.Name, &cu.Email, &cu.Phone, &cu.Address, &cu.CreatedAt); err != nil {
			return err
		}
		if err := indexDoc(ctx, client, search.IndexCustomers, cu.ID, cu); err != nil {
			return err
		}
	}
	return rows.Err()
}

func indexDoc(ctx context.Context, client *elasticsearch.Client, index, id string, doc interface{}) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	res, err := client.Index(index, bytes.NewReader(payload),
		client.Index.WithDocumentID(id),
		client.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("index %s/%s: %w", index, id, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index %s/%s: %s", index, id, res.Status())
	}
	return nil
}
