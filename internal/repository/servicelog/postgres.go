package servicelog

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

const logColumns = `id, timestamp, message, service_type, technician, job_id, duration_ms`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.ServiceLog, error) {
	q := `SELECT ` + logColumns + ` FROM service_logs`
	args := []interface{}{}
	if filter.Technician != "" {
		q += ` WHERE technician = $1`
		args = append(args, filter.Technician)
	}
	q += ` ORDER BY timestamp DESC`
	args = append(args, filter.Limit)
	q += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("servicelog repo: list technician=%q error=%v", filter.Technician, err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.ServiceLog
	for rows.Next() {
		var l domain.ServiceLog
		if err := scanLog(rows, &l); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.ServiceLog, error) {
	const q = `SELECT ` + logColumns + ` FROM service_logs WHERE id = $1`
	var l domain.ServiceLog
	if err := scanLog(r.pool.QueryRow(ctx, q, id), &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("servicelog repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &l, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.ServiceLog, error) {
	const q = `
INSERT INTO service_logs (message, service_type, technician, job_id, duration_ms)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + logColumns
	var l domain.ServiceLog
	err := scanLog(r.pool.QueryRow(ctx, q, in.Message, in.ServiceType, in.Technician, in.JobID, in.DurationMS), &l)
	if err != nil {
		r.logger.Printf("servicelog repo: create job_id=%s error=%v", in.JobID, err)
		return nil, err
	}
	return &l, nil
}

func scanLog(row pgx.Row, l *domain.ServiceLog) error {
	return row.Scan(&l.ID, &l.Timestamp, &l.Message, &l.ServiceType, &l.Technician, &l.JobID, &l.DurationMS)
}
