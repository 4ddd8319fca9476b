package guest

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelkit/pkg/pg"
)

var (
	// ErrNotFound indicates the guest does not exist.
	ErrNotFound = errors.New("guest not found")
	// ErrDuplicateEmail indicates another guest already uses the email.
	ErrDuplicateEmail = errors.New("guest email already registered")
)

// Repository persists guests.
type Repository interface {
	Create(ctx context.Context, g Guest) error
	Update(ctx context.Context, g Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (Guest, error)
	List(ctx context.Context) ([]Guest, error)
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed guest repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Create(ctx context.Context, g Guest) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO guests (id, first_name, last_name, email, phone, address, date_of_birth, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		g.ID, g.FirstName, g.LastName, g.Email, g.Phone, g.Address, g.DateOfBirth, g.Notes, g.CreatedAt, g.UpdatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *pgRepository) Update(ctx context.Context, g Guest) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    address = $6, date_of_birth = $7, notes = $8, updated_at = $9
		WHERE id = $1`,
		g.ID, g.FirstName, g.LastName, g.Email, g.Phone, g.Address, g.DateOfBirth, g.Notes, time.Now(),
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (Guest, error) {
	var g Guest
	err := r.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, address, date_of_birth, notes, created_at, updated_at
		FROM guests WHERE id = $1`, id,
	).Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.Address, &g.DateOfBirth, &g.Notes, &g.CreatedAt, &g.UpdatedAt)
	if pg.IsNotFoundError(err) {
		return Guest{}, ErrNotFound
	}
	return g, err
}

func (r *pgRepository) List(ctx context.Context) ([]Guest, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, phone, address, date_of_birth, notes, created_at, updated_at
		FROM guests ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []Guest
	for rows.Next() {
		var g Guest
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.Address, &g.DateOfBirth, &g.Notes, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}
