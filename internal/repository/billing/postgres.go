package billing

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"

	"clees-keys/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const billingColumns = `id, invoice_date, customer_id, description, amount::float8, status, payment_method`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.CustomerBillingRecord, error) {
	q := `SELECT ` + billingColumns + ` FROM customer_billing`
	conditions := []string{}
	args := []interface{}{}
	if filter.CustomerID != "" {
		args = append(args, filter.CustomerID)
		conditions = append(conditions, `customer_id = $`+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		q += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	q += ` ORDER BY invoice_date DESC`
	args = append(args, filter.Limit)
	q += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("billing repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.CustomerBillingRecord
	for rows.Next() {
		var b domain.CustomerBillingRecord
		if err := scanRecord(rows, &b); err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.CustomerBillingRecord, error) {
	const q = `SELECT ` + billingColumns + ` FROM customer_billing WHERE id = $1`
	var b domain.CustomerBillingRecord
	if err := scanRecord(r.pool.QueryRow(ctx, q, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("billing repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.CustomerBillingRecord, error) {
	const q = `
INSERT INTO customer_billing (customer_id, description, amount, payment_method)
VALUES ($1, $2, $3, $4)
RETURNING ` + billingColumns
	var b domain.CustomerBillingRecord
	err := scanRecord(r.pool.QueryRow(ctx, q, in.CustomerID, in.Description, in.Amount, in.PaymentMethod), &b)
	if err != nil {
		r.logger.Printf("billing repo: create customer_id=%s error=%v", in.CustomerID, err)
		return nil, err
	}
	r.logger.Printf("billing repo: created id=%d customer_id=%s", b.ID, b.CustomerID)
	return &b, nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, in UpdateInput) (*domain.CustomerBillingRecord, error) {
	sets := []string{}
	args := []interface{}{}
	if in.Status != nil {
		args = append(args, *in.Status)
		sets = append(sets, `status = $`+strconv.Itoa(len(args)))
	}
	if in.PaymentMethod != nil {
		args = append(args, *in.PaymentMethod)
		sets = append(sets, `payment_method = $`+strconv.Itoa(len(args)))
	}
	args = append(args, id)
	q := `UPDATE customer_billing SET ` + strings.Join(sets, `, `) +
		` WHERE id = $` + strconv.Itoa(len(args)) + ` RETURNING ` + billingColumns

	var b domain.CustomerBillingRecord
	if err := scanRecord(r.pool.QueryRow(ctx, q, args...), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("billing repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return &b, nil
}

func scanRecord(row pgx.Row, b *domain.CustomerBillingRecord) error {
	return row.Scan(&b.ID, &b.InvoiceDate, &b.CustomerID, &b.Description, &b.Amount, &b.Status, &b.PaymentMethod)
}
