package room_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/modules/room"
	"github.com/hotelops/hotelkit/pkg/validator"
)

type fakeRepo struct {
	rooms   map[uuid.UUID]room.Room
	numbers map[string]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		rooms:   make(map[uuid.UUID]room.Room),
		numbers: make(map[string]uuid.UUID),
	}
}

func (r *fakeRepo) Create(_ context.Context, rm room.Room) error {
	if _, taken := r.numbers[rm.Number]; taken {
		return room.ErrDuplicateNumber
	}
	r.rooms[rm.ID] = rm
	r.numbers[rm.Number] = rm.ID
	return nil
}

func (r *fakeRepo) Update(_ context.Context, rm room.Room) error {
	if owner, taken := r.numbers[rm.Number]; taken && owner != rm.ID {
		return room.ErrDuplicateNumber
	}
	prev, ok := r.rooms[rm.ID]
	if !ok {
		return room.ErrNotFound
	}
	delete(r.numbers, prev.Number)
	r.rooms[rm.ID] = rm
	r.numbers[rm.Number] = rm.ID
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (room.Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return room.Room{}, room.ErrNotFound
	}
	return rm, nil
}

func (r *fakeRepo) List(_ context.Context) ([]room.Room, error) {
	out := make([]room.Room, 0, len(r.rooms))
	for _, rm := range r.rooms {
		out = append(out, rm)
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("persists the normalized room", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := room.NewService(repo, discardLogger())

		rm, err := svc.Create(context.Background(), room.Form{
			Number:      " a-101 ",
			RoomType:    "Double",
			Capacity:    "2",
			Price:       "150.00",
			IsAvailable: true,
		})
		require.NoError(t, err)

		assert.Equal(t, "A-101", rm.Number)
		assert.Equal(t, room.TypeDouble, rm.Type)
		assert.Equal(t, 2, rm.Capacity)
		assert.Equal(t, 150.0, rm.Price)
	})

	t.Run("duplicate number becomes a field error", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := room.NewService(repo, discardLogger())

		f := room.Form{Number: "101", RoomType: "single", Capacity: "1", Price: "90"}
		_, err := svc.Create(context.Background(), f)
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), f)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"is already in use"}, verrs.Get("number"))
	})

	t.Run("invalid form persists nothing", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := room.NewService(repo, discardLogger())

		_, err := svc.Create(context.Background(), room.Form{
			Number: "101", RoomType: "penthouse", Capacity: "2", Price: "150",
		})
		require.Error(t, err)
		assert.Empty(t, repo.rooms)
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := room.NewService(repo, discardLogger())

	rm, err := svc.Create(context.Background(), room.Form{
		Number: "201", RoomType: "suite", Capacity: "4", Price: "400", IsAvailable: true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), rm.ID, room.Form{
		Number: "201", RoomType: "suite", Capacity: "4", Price: "450", IsAvailable: false,
	})
	require.NoError(t, err)
	assert.Equal(t, 450.0, updated.Price)
	assert.False(t, updated.IsAvailable)

	_, err = svc.Update(context.Background(), uuid.New(), room.Form{
		Number: "202", RoomType: "single", Capacity: "1", Price: "90",
	})
	assert.ErrorIs(t, err, room.ErrNotFound)
}
