package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"clees-keys/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `id, name, email, phone, address, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, q, filter.Limit, filter.Offset)
	if err != nil {
		r.logger.Printf("customer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	var c domain.Customer
	if err := scanCustomer(r.pool.QueryRow(ctx, q, id), &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("customer repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	// Customer ids are the loose string keys the other tables reference, so
	// they are minted here rather than by a sequence.
	id := "cust-" + uuid.NewString()[:8]
	const q = `
INSERT INTO customers (id, name, email, phone, address)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + customerColumns
	var c domain.Customer
	err := scanCustomer(r.pool.QueryRow(ctx, q, id, in.Name, in.Email, in.Phone, in.Address), &c)
	if err != nil {
		r.logger.Printf("customer repo: create email=%s error=%v", in.Email, err)
		return nil, err
	}
	r.logger.Printf("customer repo: created id=%s", c.ID)
	return &c, nil
}

func scanCustomer(row pgx.Row, c *domain.Customer) error {
	return row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)
}
