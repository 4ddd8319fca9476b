package booking_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/modules/booking"
	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/modules/room"
	"github.com/hotelops/hotelkit/pkg/email"
	"github.com/hotelops/hotelkit/pkg/validator"
)

type fakeBookingRepo struct {
	bookings map[uuid.UUID]booking.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]booking.Booking)}
}

func (r *fakeBookingRepo) Create(_ context.Context, b booking.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b booking.Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return booking.ErrNotFound
	}
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return booking.Booking{}, booking.ErrNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) List(_ context.Context) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) FindConflict(_ context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (*booking.Conflict, error) {
	for _, b := range r.bookings {
		if b.RoomID != roomID {
			continue
		}
		if exclude != nil && b.ID == *exclude {
			continue
		}
		blocking := b.Status == booking.StatusPending || b.Status == booking.StatusCheckedIn
		if !blocking {
			continue
		}
		if b.CheckIn.Before(checkOut) && b.CheckOut.After(checkIn) {
			return &booking.Conflict{
				BookingID: b.ID,
				CheckIn:   b.CheckIn,
				CheckOut:  b.CheckOut,
				Status:    b.Status,
			}, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) SetPaymentStatus(_ context.Context, id uuid.UUID, status booking.PaymentStatus) error {
	b, ok := r.bookings[id]
	if !ok {
		return booking.ErrNotFound
	}
	b.PaymentStatus = status
	r.bookings[id] = b
	return nil
}

type fakeRoomGetter struct {
	rooms map[uuid.UUID]room.Room
}

func (f *fakeRoomGetter) Get(_ context.Context, id uuid.UUID) (room.Room, error) {
	r, ok := f.rooms[id]
	if !ok {
		return room.Room{}, room.ErrNotFound
	}
	return r, nil
}

type fakeGuestGetter struct {
	guests map[uuid.UUID]guest.Guest
}

func (f *fakeGuestGetter) Get(_ context.Context, id uuid.UUID) (guest.Guest, error) {
	g, ok := f.guests[id]
	if !ok {
		return guest.Guest{}, guest.ErrNotFound
	}
	return g, nil
}

type recordingSender struct {
	sent []email.SendEmailParams
}

func (s *recordingSender) SendEmail(_ context.Context, params email.SendEmailParams) error {
	s.sent = append(s.sent, params)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fixture struct {
	repo    *fakeBookingRepo
	svc     *booking.Service
	sender  *recordingSender
	guestID uuid.UUID
	roomID  uuid.UUID
	suiteID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	guestID := uuid.New()
	roomID := uuid.New()
	suiteID := uuid.New()

	rooms := &fakeRoomGetter{rooms: map[uuid.UUID]room.Room{
		roomID:  {ID: roomID, Number: "101", Type: room.TypeDouble, Price: 150, IsAvailable: true},
		suiteID: {ID: suiteID, Number: "501", Type: room.TypeSuite, Price: 400, IsAvailable: true},
	}}
	guests := &fakeGuestGetter{guests: map[uuid.UUID]guest.Guest{
		guestID: {ID: guestID, FirstName: "Mary", LastName: "Smith", Email: "mary@example.com"},
	}}

	repo := newFakeBookingRepo()
	availability := booking.NewAvailability(repo, nil, 0, discardLogger())
	sender := &recordingSender{}

	svc := booking.NewService(repo, rooms, guests, availability, sender, confirmationStub, discardLogger())
	return &fixture{repo: repo, svc: svc, sender: sender, guestID: guestID, roomID: roomID, suiteID: suiteID}
}

func confirmationStub(booking.ConfirmationParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>booking confirmed</p>")
		return err
	})
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("prices the stay and sends confirmation", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		f := booking.Form{
			GuestID:  fx.guestID.String(),
			RoomID:   fx.roomID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(8),
		}

		b, err := fx.svc.Create(context.Background(), f)
		require.NoError(t, err)

		assert.Equal(t, 3, b.Nights())
		assert.Equal(t, 450.0, b.TotalPrice)
		assert.Equal(t, booking.StatusPending, b.Status)
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus)

		require.Len(t, fx.sender.sent, 1)
		assert.Equal(t, "mary@example.com", fx.sender.sent[0].SendTo)
	})

	t.Run("rejects overlapping dates with a room_id error", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		first := booking.Form{
			GuestID:  fx.guestID.String(),
			RoomID:   fx.roomID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(8),
		}
		_, err := fx.svc.Create(context.Background(), first)
		require.NoError(t, err)

		overlapping := first
		overlapping.CheckIn, overlapping.CheckOut = futureDate(7), futureDate(10)
		_, err = fx.svc.Create(context.Background(), overlapping)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"room is already booked for the selected dates"}, verrs.Get("room_id"))
	})

	t.Run("back-to-back stays do not conflict", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		first := booking.Form{
			GuestID:  fx.guestID.String(),
			RoomID:   fx.roomID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(8),
		}
		_, err := fx.svc.Create(context.Background(), first)
		require.NoError(t, err)

		// New stay starting on the previous check-out day is fine.
		next := first
		next.CheckIn, next.CheckOut = futureDate(8), futureDate(10)
		_, err = fx.svc.Create(context.Background(), next)
		assert.NoError(t, err)
	})

	t.Run("suites require two nights", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		f := booking.Form{
			GuestID:  fx.guestID.String(),
			RoomID:   fx.suiteID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(6),
		}

		_, err := fx.svc.Create(context.Background(), f)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"suites require a minimum stay of 2 nights"}, verrs.Get("check_out"))
	})

	t.Run("unknown guest rejected", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		f := booking.Form{
			GuestID:  uuid.NewString(),
			RoomID:   fx.roomID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(8),
		}

		_, err := fx.svc.Create(context.Background(), f)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"guest not found"}, verrs.Get("guest_id"))
	})
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	t.Run("edit does not conflict with itself", func(t *testing.T) {
		t.Parallel()

		fx := newFixture(t)
		f := booking.Form{
			GuestID:  fx.guestID.String(),
			RoomID:   fx.roomID.String(),
			CheckIn:  futureDate(5),
			CheckOut: futureDate(8),
		}
		b, err := fx.svc.Create(context.Background(), f)
		require.NoError(t, err)

		// Extending the same stay overlaps its own previous dates.
		f.CheckOut = futureDate(9)
		updated, err := fx.svc.Update(context.Background(), b.ID, f)
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Nights())
		assert.Equal(t, 600.0, updated.TotalPrice)
	})
}

func TestServiceSetStatus(t *testing.T) {
	t.Parallel()

	fx := newFixture(t)
	f := booking.Form{
		GuestID:  fx.guestID.String(),
		RoomID:   fx.roomID.String(),
		CheckIn:  futureDate(5),
		CheckOut: futureDate(8),
	}
	b, err := fx.svc.Create(context.Background(), f)
	require.NoError(t, err)

	checked, err := fx.svc.SetStatus(context.Background(), b.ID, booking.StatusCheckedIn)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCheckedIn, checked.Status)

	// Checked-out stays stop blocking the room.
	_, err = fx.svc.SetStatus(context.Background(), b.ID, booking.StatusCheckedOut)
	require.NoError(t, err)

	again := f
	_, err = fx.svc.Create(context.Background(), again)
	assert.NoError(t, err)
}

// futureDate formats a date n days from now.
func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format(validator.DateLayout)
}
