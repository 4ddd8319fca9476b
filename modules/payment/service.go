package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/modules/booking"
	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// bookingStore is the slice of the booking repository the payment flow
// needs: the booking being paid and its payment status.
type bookingStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (booking.Booking, error)
	SetPaymentStatus(ctx context.Context, id uuid.UUID, status booking.PaymentStatus) error
}

// Service records payments. Every accepted payment re-derives the booking's
// payment status.
type Service struct {
	repo     Repository
	bookings bookingStore
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a payment service.
func NewService(repo Repository, bookings bookingStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, bookings: bookings, log: log, now: time.Now}
}

// Create records a payment. The running total across all payments for the
// booking must not exceed the booking total; overpayment comes back as a
// field error on amount.
func (s *Service) Create(ctx context.Context, form Form) (Payment, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return Payment{}, err
	}

	bookingID := uuid.MustParse(form.BookingID)
	amount, _ := strconv.ParseFloat(form.Amount, 64)

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return Payment{}, validator.ValidationErrors{{Field: "booking_id", Message: "booking not found"}}
	}

	paid, err := s.repo.SumForBooking(ctx, bookingID)
	if err != nil {
		return Payment{}, err
	}
	if paid+amount > b.TotalPrice {
		remaining := b.TotalPrice - paid
		return Payment{}, validator.ValidationErrors{{
			Field:   "amount",
			Message: fmt.Sprintf("exceeds the remaining balance of %.2f", remaining),
		}}
	}

	p := Payment{
		ID:            uuid.New(),
		BookingID:     bookingID,
		Amount:        amount,
		Method:        form.Method,
		TransactionID: form.TransactionID,
		PaidAt:        s.now(),
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if err == ErrDuplicateTransaction {
			return Payment{}, validator.ValidationErrors{{
				Field:   "transaction_id",
				Message: "has already been recorded",
			}}
		}
		return Payment{}, err
	}

	status := booking.DerivePaymentStatus(b.TotalPrice, paid+amount, b.CheckOut, s.now())
	if err := s.bookings.SetPaymentStatus(ctx, bookingID, status); err != nil {
		return Payment{}, err
	}

	s.log.InfoContext(ctx, "payment recorded",
		logger.PaymentID(p.ID),
		logger.BookingID(bookingID),
		slog.Float64("amount", amount),
		slog.String("payment_status", string(status)),
		logger.Component("payment"),
	)
	return p, nil
}

// Get returns one payment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Payment, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all payments, most recent first.
func (s *Service) List(ctx context.Context) ([]Payment, error) {
	return s.repo.List(ctx)
}

// ListByBooking returns the payments recorded against one booking.
func (s *Service) ListByBooking(ctx context.Context, bookingID uuid.UUID) ([]Payment, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

// Balance reports the booking total, the amount paid so far and the
// outstanding remainder.
func (s *Service) Balance(ctx context.Context, bookingID uuid.UUID) (total, paid, remaining float64, err error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return 0, 0, 0, err
	}
	paid, err = s.repo.SumForBooking(ctx, bookingID)
	if err != nil {
		return 0, 0, 0, err
	}
	return b.TotalPrice, paid, b.TotalPrice - paid, nil
}
