package meal

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/modules/booking"
	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// bookingGetter is the slice of the booking repository the meal flow needs.
type bookingGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (booking.Booking, error)
}

// Service records meal charges against bookings.
type Service struct {
	repo     Repository
	bookings bookingGetter
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a meal charge service.
func NewService(repo Repository, bookings bookingGetter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, bookings: bookings, log: log, now: time.Now}
}

// Create records a meal charge. The total is always quantity times the unit
// price; client-supplied totals are ignored.
func (s *Service) Create(ctx context.Context, form Form) (Transaction, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return Transaction{}, err
	}

	bookingID := uuid.MustParse(form.BookingID)
	quantity, _ := strconv.Atoi(form.Quantity)
	unitPrice, _ := strconv.ParseFloat(form.PricePerUnit, 64)

	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		return Transaction{}, validator.ValidationErrors{{Field: "booking_id", Message: "booking not found"}}
	}

	tx := Transaction{
		ID:           uuid.New(),
		BookingID:    bookingID,
		MealName:     form.MealName,
		Category:     form.Category,
		Quantity:     quantity,
		PricePerUnit: unitPrice,
		TotalPrice:   float64(quantity) * unitPrice,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, tx); err != nil {
		return Transaction{}, err
	}

	s.log.InfoContext(ctx, "meal charge recorded",
		logger.BookingID(bookingID),
		slog.String("meal", tx.MealName),
		slog.Float64("total_price", tx.TotalPrice),
		logger.Component("meal"),
	)
	return tx, nil
}

// Get returns one meal charge.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Transaction, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all meal charges, most recent first.
func (s *Service) List(ctx context.Context) ([]Transaction, error) {
	return s.repo.List(ctx)
}

// ListByBooking returns the meal charges recorded against one booking.
func (s *Service) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Transaction, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}
