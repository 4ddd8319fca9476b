package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelkit/pkg/pg"
)

// ErrNotFound indicates the booking does not exist.
var ErrNotFound = errors.New("booking not found")

// Repository persists bookings.
type Repository interface {
	Create(ctx context.Context, b Booking) error
	Update(ctx context.Context, b Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (Booking, error)
	List(ctx context.Context) ([]Booking, error)

	// FindConflict returns the blocking booking overlapping [checkIn, checkOut)
	// for the room, or nil when the range is free. exclude skips one booking,
	// used when editing an existing reservation.
	FindConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (*Conflict, error)

	// SetPaymentStatus updates the derived payment state.
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed booking repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

const bookingColumns = `id, guest_id, room_id, check_in, check_out, status, payment_status, total_price, notes, created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.GuestID, &b.RoomID, &b.CheckIn, &b.CheckOut,
		&b.Status, &b.PaymentStatus, &b.TotalPrice, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *pgRepository) Create(ctx context.Context, b Booking) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		b.ID, b.GuestID, b.RoomID, b.CheckIn, b.CheckOut, b.Status, b.PaymentStatus, b.TotalPrice, b.Notes, b.CreatedAt, b.UpdatedAt,
	)
	return err
}

func (r *pgRepository) Update(ctx context.Context, b Booking) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings
		SET guest_id = $2, room_id = $3, check_in = $4, check_out = $5,
		    status = $6, payment_status = $7, total_price = $8, notes = $9, updated_at = $10
		WHERE id = $1`,
		b.ID, b.GuestID, b.RoomID, b.CheckIn, b.CheckOut, b.Status, b.PaymentStatus, b.TotalPrice, b.Notes, time.Now(),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (Booking, error) {
	b, err := scanBooking(r.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if pg.IsNotFoundError(err) {
		return Booking{}, ErrNotFound
	}
	return b, err
}

func (r *pgRepository) List(ctx context.Context) ([]Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings ORDER BY check_in DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *pgRepository) FindConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (*Conflict, error) {
	// Overlap: an existing stay blocks the range when it starts before the
	// requested end and ends after the requested start.
	row := r.pool.QueryRow(ctx, `
		SELECT id, check_in, check_out, status
		FROM bookings
		WHERE room_id = $1
		  AND status = ANY($2)
		  AND check_in < $3
		  AND check_out > $4
		  AND ($5::uuid IS NULL OR id <> $5)
		ORDER BY check_in
		LIMIT 1`,
		roomID, blockingStatusStrings(), checkOut, checkIn, exclude,
	)

	var c Conflict
	err := row.Scan(&c.BookingID, &c.CheckIn, &c.CheckOut, &c.Status)
	if pg.IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *pgRepository) SetPaymentStatus(ctx context.Context, id uuid.UUID, status PaymentStatus) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bookings SET payment_status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func blockingStatusStrings() []string {
	out := make([]string, len(BlockingStatuses))
	for i, s := range BlockingStatuses {
		out[i] = string(s)
	}
	return out
}
