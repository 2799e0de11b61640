package appointment

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

const apptColumns = `id, appointment_date, customer_id, service_type, technician, status, notes, address`

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

func (r *postgresRepo) List(ctx context.Context, filter ListFilter) ([]domain.Appointment, error) {
	q := `SELECT ` + apptColumns + ` FROM appointments`
	conditions := []string{}
	args := []interface{}{}
	if filter.Technician != "" {
		args = append(args, filter.Technician)
		conditions = append(conditions, `technician = $`+strconv.Itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, `status = $`+strconv.Itoa(len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			q += ` WHERE ` + cond
		} else {
			q += ` AND ` + cond
		}
	}
	q += ` ORDER BY appointment_date DESC`
	args = append(args, filter.Limit)
	q += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	q += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("appointment repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Appointment
	for rows.Next() {
		var a domain.Appointment
		if err := scanAppointment(rows, &a); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	const q = `SELECT ` + apptColumns + ` FROM appointments WHERE id = $1`
	var a domain.Appointment
	if err := scanAppointment(r.pool.QueryRow(ctx, q, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("appointment repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Appointment, error) {
	const q = `
INSERT INTO appointments (appointment_date, customer_id, service_type, technician, notes, address)
VALUES ($1::timestamptz, $2, $3, $4, $5, $6)
RETURNING ` + apptColumns
	var a domain.Appointment
	err := scanAppointment(r.pool.QueryRow(ctx, q, in.AppointmentDate, in.CustomerID, in.ServiceType, in.Technician, in.Notes, in.Address), &a)
	if err != nil {
		r.logger.Printf("appointment repo: create customer_id=%s error=%v", in.CustomerID, err)
		return nil, err
	}
	r.logger.Printf("appointment repo: created id=%d technician=%s", a.ID, a.Technician)
	return &a, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Appointment, error) {
	const q = `UPDATE appointments SET status = $1 WHERE id = $2 RETURNING ` + apptColumns
	var a domain.Appointment
	if err := scanAppointment(r.pool.QueryRow(ctx, q, status, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("appointment repo: update id=%d error=%v", id, err)
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("appointment repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAppointment(row pgx.Row, a *domain.Appointment) error {
	return row.Scan(&a.ID, &a.AppointmentDate, &a.CustomerID, &a.ServiceType, &a.Technician, &a.Status, &a.Notes, &a.Address)
}
