package guest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Service normalizes, validates and persists guest forms.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a guest service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// Create registers a new guest. Validation failures come back as
// validator.ValidationErrors so callers can annotate the form.
func (s *Service) Create(ctx context.Context, form Form) (Guest, error) {
	form.Normalize()
	if err := form.Validate(s.now()); err != nil {
		return Guest{}, err
	}

	g := Guest{
		ID:        uuid.New(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Address:   form.Address,
		Notes:     form.Notes,
		CreatedAt: s.now(),
		UpdatedAt: s.now(),
	}
	if form.DateOfBirth != "" {
		dob, err := validator.ParseDate(form.DateOfBirth)
		if err != nil {
			return Guest{}, validator.ValidationErrors{{Field: "date_of_birth", Message: "must be a valid date"}}
		}
		g.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, g); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Guest{}, validator.ValidationErrors{{Field: "email", Message: "is already registered"}}
		}
		return Guest{}, err
	}

	s.log.InfoContext(ctx, "guest registered",
		logger.GuestID(g.ID),
		logger.Component("guest"),
	)
	return g, nil
}

// Update edits an existing guest profile.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (Guest, error) {
	form.Normalize()
	if err := form.Validate(s.now()); err != nil {
		return Guest{}, err
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Guest{}, err
	}

	g.FirstName = form.FirstName
	g.LastName = form.LastName
	g.Email = form.Email
	g.Phone = form.Phone
	g.Address = form.Address
	g.Notes = form.Notes
	g.DateOfBirth = nil
	if form.DateOfBirth != "" {
		dob, err := validator.ParseDate(form.DateOfBirth)
		if err != nil {
			return Guest{}, validator.ValidationErrors{{Field: "date_of_birth", Message: "must be a valid date"}}
		}
		g.DateOfBirth = &dob
	}
	g.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, g); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return Guest{}, validator.ValidationErrors{{Field: "email", Message: "is already registered"}}
		}
		return Guest{}, err
	}

	s.log.InfoContext(ctx, "guest profile updated",
		logger.GuestID(g.ID),
		logger.Component("guest"),
	)
	return g, nil
}

// Get returns one guest.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Guest, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all guests ordered by name.
func (s *Service) List(ctx context.Context) ([]Guest, error) {
	return s.repo.List(ctx)
}
