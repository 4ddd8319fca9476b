package room

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hotelops/hotelkit/pkg/pg"
)

var (
	// ErrNotFound indicates the room does not exist.
	ErrNotFound = errors.New("room not found")
	// ErrDuplicateNumber indicates another room already uses the number.
	ErrDuplicateNumber = errors.New("room number already in use")
)

// Repository persists rooms.
type Repository interface {
	Create(ctx context.Context, r Room) error
	Update(ctx context.Context, r Room) error
	GetByID(ctx context.Context, id uuid.UUID) (Room, error)
	List(ctx context.Context) ([]Room, error)
}

type pgRepository struct {
	pool *pgxpool.Pool
}

// NewRepository returns a PostgreSQL-backed room repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

func (r *pgRepository) Create(ctx context.Context, room Room) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO rooms (id, number, room_type, capacity, price, is_available, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		room.ID, room.Number, room.Type, room.Capacity, room.Price, room.IsAvailable, room.Description, room.CreatedAt, room.UpdatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateNumber
	}
	return err
}

func (r *pgRepository) Update(ctx context.Context, room Room) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE rooms
		SET number = $2, room_type = $3, capacity = $4, price = $5,
		    is_available = $6, description = $7, updated_at = $8
		WHERE id = $1`,
		room.ID, room.Number, room.Type, room.Capacity, room.Price, room.IsAvailable, room.Description, time.Now(),
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrDuplicateNumber
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) GetByID(ctx context.Context, id uuid.UUID) (Room, error) {
	var room Room
	err := r.pool.QueryRow(ctx, `
		SELECT id, number, room_type, capacity, price, is_available, description, created_at, updated_at
		FROM rooms WHERE id = $1`, id,
	).Scan(&room.ID, &room.Number, &room.Type, &room.Capacity, &room.Price, &room.IsAvailable, &room.Description, &room.CreatedAt, &room.UpdatedAt)
	if pg.IsNotFoundError(err) {
		return Room{}, ErrNotFound
	}
	return room, err
}

func (r *pgRepository) List(ctx context.Context) ([]Room, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, number, room_type, capacity, price, is_available, description, created_at, updated_at
		FROM rooms ORDER BY number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Room
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Type, &room.Capacity, &room.Price, &room.IsAvailable, &room.Description, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}
