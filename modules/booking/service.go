package booking

import (
	"context"
	"log/slog"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/modules/room"
	"github.com/hotelops/hotelkit/pkg/email"
	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// suiteMinNights is the minimum stay for suite rooms.
const suiteMinNights = 2

// roomGetter and guestGetter are the slices of the sibling services the
// booking flow needs.
type roomGetter interface {
	Get(ctx context.Context, id uuid.UUID) (room.Room, error)
}

type guestGetter interface {
	Get(ctx context.Context, id uuid.UUID) (guest.Guest, error)
}

// ConfirmationParams feeds the confirmation email template.
type ConfirmationParams struct {
	GuestName  string
	RoomNumber string
	CheckIn    time.Time
	CheckOut   time.Time
	Nights     int
	TotalPrice float64
}

// Service runs the booking flow: validation, availability, pricing,
// persistence and the best-effort confirmation email.
type Service struct {
	repo         Repository
	rooms        roomGetter
	guests       guestGetter
	availability *Availability
	mailer       email.EmailSender
	confirmation func(ConfirmationParams) templ.Component
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a booking service. mailer and confirmation may be nil
// to disable confirmation emails.
func NewService(
	repo Repository,
	rooms roomGetter,
	guests guestGetter,
	availability *Availability,
	mailer email.EmailSender,
	confirmation func(ConfirmationParams) templ.Component,
	log *slog.Logger,
) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:         repo,
		rooms:        rooms,
		guests:       guests,
		availability: availability,
		mailer:       mailer,
		confirmation: confirmation,
		log:          log,
		now:          time.Now,
	}
}

// Create places a new booking. Field failures, the suite minimum stay and
// availability conflicts all come back as validator.ValidationErrors bound
// to the offending field.
func (s *Service) Create(ctx context.Context, form Form) (Booking, error) {
	form.Normalize()
	if err := form.Validate(s.now()); err != nil {
		return Booking{}, err
	}

	guestID := uuid.MustParse(form.GuestID)
	roomID := uuid.MustParse(form.RoomID)
	checkIn, _ := validator.ParseDate(form.CheckIn)
	checkOut, _ := validator.ParseDate(form.CheckOut)

	g, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return Booking{}, validator.ValidationErrors{{Field: "guest_id", Message: "guest not found"}}
	}

	rm, err := s.checkRoom(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return Booking{}, err
	}

	if err := s.checkAvailability(ctx, roomID, checkIn, checkOut, nil); err != nil {
		return Booking{}, err
	}

	nights := validator.WholeDays(checkIn, checkOut)
	b := Booking{
		ID:            uuid.New(),
		GuestID:       guestID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		TotalPrice:    rm.Price * float64(nights),
		Notes:         form.Notes,
		CreatedAt:     s.now(),
		UpdatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return Booking{}, err
	}
	s.availability.Invalidate(ctx, roomID)

	s.log.InfoContext(ctx, "booking placed",
		logger.BookingID(b.ID),
		logger.GuestID(b.GuestID),
		logger.RoomID(b.RoomID),
		slog.Int("nights", nights),
		slog.Float64("total_price", b.TotalPrice),
		logger.Component("booking"),
	)

	s.sendConfirmation(ctx, b, g, rm)
	return b, nil
}

// Update reschedules or edits an existing booking. The availability check
// excludes the booking itself.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (Booking, error) {
	form.Normalize()
	if err := form.Validate(s.now()); err != nil {
		return Booking{}, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}

	guestID := uuid.MustParse(form.GuestID)
	roomID := uuid.MustParse(form.RoomID)
	checkIn, _ := validator.ParseDate(form.CheckIn)
	checkOut, _ := validator.ParseDate(form.CheckOut)

	if _, err := s.guests.Get(ctx, guestID); err != nil {
		return Booking{}, validator.ValidationErrors{{Field: "guest_id", Message: "guest not found"}}
	}

	rm, err := s.checkRoom(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return Booking{}, err
	}

	if err := s.checkAvailability(ctx, roomID, checkIn, checkOut, &id); err != nil {
		return Booking{}, err
	}

	previousRoom := b.RoomID
	nights := validator.WholeDays(checkIn, checkOut)

	b.GuestID = guestID
	b.RoomID = roomID
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.TotalPrice = rm.Price * float64(nights)
	b.Notes = form.Notes
	if form.Status != "" {
		b.Status = Status(form.Status)
	}
	b.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	s.availability.Invalidate(ctx, roomID)
	if previousRoom != roomID {
		s.availability.Invalidate(ctx, previousRoom)
	}

	s.log.InfoContext(ctx, "booking updated",
		logger.BookingID(b.ID),
		logger.Component("booking"),
	)
	return b, nil
}

// checkRoom loads the room and applies the room-dependent stay rules.
func (s *Service) checkRoom(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (room.Room, error) {
	rm, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return room.Room{}, validator.ValidationErrors{{Field: "room_id", Message: "room not found"}}
	}
	if !rm.IsAvailable {
		return room.Room{}, validator.ValidationErrors{{Field: "room_id", Message: "room is out of service"}}
	}
	if rm.Type == room.TypeSuite && validator.WholeDays(checkIn, checkOut) < suiteMinNights {
		return room.Room{}, validator.ValidationErrors{{
			Field:   "check_out",
			Message: "suites require a minimum stay of 2 nights",
		}}
	}
	return rm, nil
}

func (s *Service) checkAvailability(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) error {
	result, err := s.availability.Check(ctx, roomID, checkIn, checkOut, exclude)
	if err != nil {
		return err
	}
	if !result.Available {
		return validator.ValidationErrors{{
			Field:   "room_id",
			Message: "room is already booked for the selected dates",
		}}
	}
	return nil
}

// sendConfirmation emails the guest. Failures are logged, never returned:
// the booking stands regardless.
func (s *Service) sendConfirmation(ctx context.Context, b Booking, g guest.Guest, rm room.Room) {
	if s.mailer == nil || s.confirmation == nil {
		return
	}

	body, err := email.Render(ctx, s.confirmation(ConfirmationParams{
		GuestName:  g.FullName(),
		RoomNumber: rm.Number,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Nights:     b.Nights(),
		TotalPrice: b.TotalPrice,
	}))
	if err != nil {
		s.log.ErrorContext(ctx, "failed to render confirmation email",
			logger.BookingID(b.ID),
			logger.Error(err),
			logger.Component("booking"),
		)
		return
	}

	err = s.mailer.SendEmail(ctx, email.SendEmailParams{
		SendTo:   g.Email,
		Subject:  "Your booking is confirmed",
		BodyHTML: body,
		Tag:      "booking-confirmation",
	})
	if err != nil {
		s.log.ErrorContext(ctx, "failed to send confirmation email",
			logger.BookingID(b.ID),
			logger.Error(err),
			logger.Component("booking"),
		)
	}
}

// SetStatus moves the booking through its lifecycle (check-in, check-out,
// no-show). Checking out re-derives the payment state.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status Status) (Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}

	b.Status = status
	b.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, b); err != nil {
		return Booking{}, err
	}
	s.availability.Invalidate(ctx, b.RoomID)

	s.log.InfoContext(ctx, "booking status changed",
		logger.BookingID(b.ID),
		slog.String("status", string(status)),
		logger.Component("booking"),
	)
	return b, nil
}

// Get returns one booking.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Booking, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all bookings, newest stay first.
func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.repo.List(ctx)
}
