package guest_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/pkg/validator"
)

type fakeRepo struct {
	guests map[uuid.UUID]guest.Guest
	emails map[string]uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		guests: make(map[uuid.UUID]guest.Guest),
		emails: make(map[string]uuid.UUID),
	}
}

func (r *fakeRepo) Create(_ context.Context, g guest.Guest) error {
	if _, taken := r.emails[g.Email]; taken {
		return guest.ErrDuplicateEmail
	}
	r.guests[g.ID] = g
	r.emails[g.Email] = g.ID
	return nil
}

func (r *fakeRepo) Update(_ context.Context, g guest.Guest) error {
	if _, ok := r.guests[g.ID]; !ok {
		return guest.ErrNotFound
	}
	if owner, taken := r.emails[g.Email]; taken && owner != g.ID {
		return guest.ErrDuplicateEmail
	}
	r.guests[g.ID] = g
	r.emails[g.Email] = g.ID
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (guest.Guest, error) {
	g, ok := r.guests[id]
	if !ok {
		return guest.Guest{}, guest.ErrNotFound
	}
	return g, nil
}

func (r *fakeRepo) List(_ context.Context) ([]guest.Guest, error) {
	out := make([]guest.Guest, 0, len(r.guests))
	for _, g := range r.guests {
		out = append(out, g)
	}
	return out, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("persists normalized values", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := guest.NewService(repo, discardLogger())

		g, err := svc.Create(context.Background(), validForm())
		require.NoError(t, err)

		stored := repo.guests[g.ID]
		assert.Equal(t, "Mary-Jane", stored.FirstName)
		assert.Equal(t, "mary@example.com", stored.Email)
		assert.Equal(t, "(555) 123-4567", stored.Phone)
		require.NotNil(t, stored.DateOfBirth)
		assert.Equal(t, 1990, stored.DateOfBirth.Year())
	})

	t.Run("validation failure returns field errors and persists nothing", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := guest.NewService(repo, discardLogger())

		f := validForm()
		f.Email = "guest@"
		_, err := svc.Create(context.Background(), f)

		require.True(t, validator.IsValidationError(err))
		assert.Empty(t, repo.guests)
	})

	t.Run("duplicate email surfaces as field error", func(t *testing.T) {
		t.Parallel()

		repo := newFakeRepo()
		svc := guest.NewService(repo, discardLogger())

		_, err := svc.Create(context.Background(), validForm())
		require.NoError(t, err)

		_, err = svc.Create(context.Background(), validForm())
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"is already registered"}, verrs.Get("email"))
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := guest.NewService(repo, discardLogger())

	created, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)

	f := guest.FromGuest(created)
	f.Phone = "4155550100"
	updated, err := svc.Update(context.Background(), created.ID, f)
	require.NoError(t, err)
	assert.Equal(t, "(415) 555-0100", updated.Phone)

	_, err = svc.Update(context.Background(), uuid.New(), f)
	assert.ErrorIs(t, err, guest.ErrNotFound)
}
