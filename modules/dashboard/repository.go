package dashboard

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository runs the aggregate queries behind the dashboard.
type Repository interface {
	Stats(ctx context.Context, recentLimit int) (Stats, error)
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed stats repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Stats(ctx context.Context, recentLimit int) (Stats, error) {
	var s Stats

	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM rooms),
			(SELECT count(DISTINCT room_id) FROM bookings WHERE status = 'Checked In'),
			(SELECT count(*) FROM guests),
			(SELECT count(*) FROM bookings),
			(SELECT coalesce(sum(amount), 0) FROM payments),
			(SELECT count(*) FROM payments WHERE paid_at::date = current_date),
			(SELECT count(*) FROM meal_transactions)`,
	).Scan(
		&s.TotalRooms,
		&s.OccupiedRooms,
		&s.TotalGuests,
		&s.TotalBookings,
		&s.TotalRevenue,
		&s.PaymentsToday,
		&s.MealsOrdered,
	)
	if err != nil {
		return Stats{}, err
	}

	err = r.pool.QueryRow(ctx, `
		SELECT coalesce(sum(b.total_price + coalesce(m.meal_total, 0) - coalesce(p.paid, 0)), 0)
		FROM bookings b
		LEFT JOIN (
			SELECT booking_id, sum(total_price) AS meal_total
			FROM meal_transactions GROUP BY booking_id
		) m ON m.booking_id = b.id
		LEFT JOIN (
			SELECT booking_id, sum(amount) AS paid
			FROM payments GROUP BY booking_id
		) p ON p.booking_id = b.id`,
	).Scan(&s.OutstandingBalance)
	if err != nil {
		return Stats{}, err
	}

	s.VacantRooms = s.TotalRooms - s.OccupiedRooms
	if s.TotalRooms > 0 {
		s.OccupancyRate = math.Round(float64(s.OccupiedRooms)/float64(s.TotalRooms)*10000) / 100
	}

	s.RecentBookings, err = r.recentBookings(ctx, recentLimit)
	if err != nil {
		return Stats{}, err
	}
	return s, nil
}

func (r *pgRepository) recentBookings(ctx context.Context, limit int) ([]RecentBooking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT g.first_name || ' ' || g.last_name, rm.number, b.check_in, b.check_out, b.status
		FROM bookings b
		JOIN guests g ON g.id = b.guest_id
		JOIN rooms rm ON rm.id = b.room_id
		ORDER BY b.check_in DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recent []RecentBooking
	for rows.Next() {
		var rb RecentBooking
		if err := rows.Scan(&rb.GuestName, &rb.RoomNumber, &rb.CheckIn, &rb.CheckOut, &rb.Status); err != nil {
			return nil, err
		}
		recent = append(recent, rb)
	}
	return recent, rows.Err()
}
