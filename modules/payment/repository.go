package payment

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelkit/pkg/pg"
)

var (
	// ErrNotFound indicates the payment does not exist.
	ErrNotFound = errors.New("payment not found")
	// ErrDuplicateTransaction indicates the transaction reference was
	// already recorded.
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// Repository persists payments.
type Repository interface {
	Create(ctx context.Context, p Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (Payment, error)
	List(ctx context.Context) ([]Payment, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error)
	SumForBooking(ctx context.Context, bookingID uuid.UUID) (float64, error)
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed payment repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Create(ctx context.Context, p Payment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO payments (id, booking_id, amount, payment_method, transaction_id, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.BookingID, p.Amount, p.Method, p.TransactionID, p.PaidAt, p.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateTransaction
	}
	return err
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (Payment, error) {
	var p Payment
	err := r.pool.QueryRow(ctx, `
		SELECT id, booking_id, amount, payment_method, transaction_id, paid_at, created_at
		FROM payments WHERE id = $1`, id,
	).Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.TransactionID, &p.PaidAt, &p.CreatedAt)
	if pg.IsNotFoundError(err) {
		return Payment{}, ErrNotFound
	}
	return p, err
}

func (r *pgRepository) List(ctx context.Context) ([]Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, booking_id, amount, payment_method, transaction_id, paid_at, created_at
		FROM payments ORDER BY paid_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *pgRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, booking_id, amount, payment_method, transaction_id, paid_at, created_at
		FROM payments WHERE booking_id = $1 ORDER BY paid_at DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *pgRepository) SumForBooking(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(amount), 0) FROM payments WHERE booking_id = $1`, bookingID,
	).Scan(&sum)
	return sum, err
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanPayments(rows pgRows) ([]Payment, error) {
	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.BookingID, &p.Amount, &p.Method, &p.TransactionID, &p.PaidAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
