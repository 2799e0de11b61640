package inventory

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

const itemColumns = `id, sku, brand, key_type, description, quantity, price::float8, location, updated_at`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.KeyInventoryItem, error) {
	q := `SELECT ` + itemColumns + ` FROM key_inventory`
	args := []interface{}{}
	if filter.Location != "" {
		q += ` WHERE location = $1`
		args = append(args, filter.Location)
	}
	q += ` ORDER BY updated_at DESC`
	args = append(args, filter.Limit)
	q += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("inventory repo: list location=%q error=%v", filter.Location, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.KeyInventoryItem
	for rows.Next() {
		var it domain.KeyInventoryItem
		if err := scanItem(rows, &it); err != nil {
			return nil, err
		}
		result = append(result, it)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.KeyInventoryItem, error) {
	const q = `SELECT ` + itemColumns + ` FROM key_inventory WHERE id = $1`
	var it domain.KeyInventoryItem
	if err := scanItem(r.pool.QueryRow(ctx, q, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("inventory repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &it, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.KeyInventoryItem, error) {
	const q = `
INSERT INTO key_inventory (sku, brand, key_type, description, quantity, price, location)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + itemColumns
	var it domain.KeyInventoryItem
	err := scanItem(r.pool.QueryRow(ctx, q, in.SKU, in.Brand, in.KeyType, in.Description, in.Quantity, in.Price, in.Location), &it)
	if err != nil {
		r.logger.Printf("inventory repo: create sku=%s error=%v", in.SKU, err)
		return nil, err
	}
	r.logger.Printf("inventory repo: created id=%d sku=%s", it.ID, it.SKU)
	return &it, nil
}

func (r *postgresRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.KeyInventoryItem, error) {
	const q = `UPDATE key_inventory SET quantity = $1, updated_at = now() WHERE id = $2 RETURNING ` + itemColumns
	var it domain.KeyInventoryItem
	if err := scanItem(r.pool.QueryRow(ctx, q, quantity, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("inventory repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return &it, nil
}

func scanItem(row pgx.Row, it *domain.KeyInventoryItem) error {
	return row.Scan(&it.ID, &it.SKU, &it.Brand, &it.KeyType, &it.Description, &it.Quantity, &it.Price, &it.Location, &it.UpdatedAt)
}
