package meal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelkit/pkg/pg"
)

// ErrNotFound indicates the meal charge does not exist.
var ErrNotFound = errors.New("meal charge not found")

// Repository persists meal charges.
type Repository interface {
	Create(ctx context.Context, tx Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
	ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Transaction, error)
	SumForBooking(ctx context.Context, bookingID uuid.UUID) (float64, error)
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed meal charge repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Create(ctx context.Context, tx Transaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO meal_transactions (id, booking_id, meal_name, category, quantity, price_per_unit, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		tx.ID, tx.BookingID, tx.MealName, tx.Category, tx.Quantity, tx.PricePerUnit, tx.TotalPrice, tx.CreatedAt,
	)
	return err
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (Transaction, error) {
	var tx Transaction
	err := r.pool.QueryRow(ctx, `
		SELECT id, booking_id, meal_name, category, quantity, price_per_unit, total_price, created_at
		FROM meal_transactions WHERE id = $1`, id,
	).Scan(&tx.ID, &tx.BookingID, &tx.MealName, &tx.Category, &tx.Quantity, &tx.PricePerUnit, &tx.TotalPrice, &tx.CreatedAt)
	if pg.IsNotFoundError(err) {
		return Transaction{}, ErrNotFound
	}
	return tx, err
}

func (r *pgRepository) List(ctx context.Context) ([]Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, booking_id, meal_name, category, quantity, price_per_unit, total_price, created_at
		FROM meal_transactions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *pgRepository) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, booking_id, meal_name, category, quantity, price_per_unit, total_price, created_at
		FROM meal_transactions WHERE booking_id = $1 ORDER BY created_at DESC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *pgRepository) SumForBooking(ctx context.Context, bookingID uuid.UUID) (float64, error) {
	var sum float64
	err := r.pool.QueryRow(ctx,
		`SELECT coalesce(sum(total_price), 0) FROM meal_transactions WHERE booking_id = $1`, bookingID,
	).Scan(&sum)
	return sum, err
}

type pgRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTransactions(rows pgRows) ([]Transaction, error) {
	var txs []Transaction
	for rows.Next() {
		var tx Transaction
		if err := rows.Scan(&tx.ID, &tx.BookingID, &tx.MealName, &tx.Category, &tx.Quantity, &tx.PricePerUnit, &tx.TotalPrice, &tx.CreatedAt); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
