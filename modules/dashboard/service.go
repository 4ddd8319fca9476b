package dashboard

import (
	"context"
	"log/slog"
)

// recentBookingsLimit caps the recent-bookings panel.
const recentBookingsLimit = 5

// Service produces the dashboard snapshot.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates a dashboard service.
func NewService(repo Repository, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, log: log}
}

// Stats returns the current aggregate snapshot. Nothing is cached; every
// call reflects the live tables.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	return s.repo.Stats(ctx, recentBookingsLimit)
}
