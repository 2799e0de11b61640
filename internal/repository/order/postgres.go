package order

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"

	"clees-keys/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, order_date, description, key_type, price::float8, status, customer_id, store`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Order, error) {
	q := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}
	if filter.Status != "" {
		q += ` WHERE status = $1`
		args = append(args, filter.Status)
	}
	q += ` ORDER BY order_date DESC`
	args = append(args, filter.Limit)
	q += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: list status=%q error=%v", filter.Status, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	const q = `
INSERT INTO orders (description, key_type, price, customer_id, store)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + orderColumns
	var o domain.Order
	err := scanOrder(r.pool.QueryRow(ctx, q, in.Description, in.KeyType, in.Price, in.CustomerID, in.Store), &o)
	if err != nil {
		r.logger.Printf("order repo: create customer_id=%s error=%v", in.CustomerID, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%d customer_id=%s", o.ID, o.CustomerID)
	return &o, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const q = `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns
	var o domain.Order
	if err := scanOrder(r.pool.QueryRow(ctx, q, status, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("order repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListRecentByCustomer(ctx context.Context, customerID string, limit int) ([]domain.Order, error) {
	const q = `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, q, customerID, limit)
	if err != nil {
		r.logger.Printf("order repo: recent customer_id=%s error=%v", customerID, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(&o.ID, &o.OrderDate, &o.Description, &o.KeyType, &o.Price, &o.Status, &o.CustomerID, &o.Store)
}
