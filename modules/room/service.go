package room

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// Service normalizes, validates and persists room forms.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a room service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log, now: time.Now}
}

// fromForm converts validated form values into an entity. The form is
// already normalized and validated, so parse failures cannot happen here.
func fromForm(form Form) (capacity int, price float64) {
	capacity, _ = strconv.Atoi(form.Capacity)
	price, _ = strconv.ParseFloat(form.Price, 64)
	return capacity, price
}

// Create adds a room to the inventory.
func (s *Service) Create(ctx context.Context, form Form) (Room, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return Room{}, err
	}

	capacity, price := fromForm(form)
	r := Room{
		ID:          uuid.New(),
		Number:      form.Number,
		Type:        Type(form.RoomType),
		Capacity:    capacity,
		Price:       price,
		IsAvailable: form.IsAvailable,
		Description: form.Description,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, ErrDuplicateNumber) {
			return Room{}, validator.ValidationErrors{{Field: "number", Message: "is already in use"}}
		}
		return Room{}, err
	}

	s.log.InfoContext(ctx, "room added",
		logger.RoomID(r.ID),
		slog.String("number", r.Number),
		logger.Component("room"),
	)
	return r, nil
}

// Update edits an existing room.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (Room, error) {
	form.Normalize()
	if err := form.Validate(); err != nil {
		return Room{}, err
	}

	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Room{}, err
	}

	capacity, price := fromForm(form)
	r.Number = form.Number
	r.Type = Type(form.RoomType)
	r.Capacity = capacity
	r.Price = price
	r.IsAvailable = form.IsAvailable
	r.Description = form.Description
	r.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, r); err != nil {
		if errors.Is(err, ErrDuplicateNumber) {
			return Room{}, validator.ValidationErrors{{Field: "number", Message: "is already in use"}}
		}
		return Room{}, err
	}

	s.log.InfoContext(ctx, "room updated",
		logger.RoomID(r.ID),
		logger.Component("room"),
	)
	return r, nil
}

// Get returns one room.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (Room, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the room inventory ordered by number.
func (s *Service) List(ctx context.Context) ([]Room, error) {
	return s.repo.List(ctx)
}
