package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/hotelops/hotelkit/pkg/logger"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// AvailabilityResult is the answer to a free/busy question.
type AvailabilityResult struct {
	Available bool      `json:"available"`
	Conflict  *Conflict `json:"conflict,omitempty"`
}

// conflictFinder is the slice of the repository availability needs.
type conflictFinder interface {
	FindConflict(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (*Conflict, error)
}

// Availability answers free/busy questions over the bookings table, with a
// short-TTL Redis cache in front. Cache entries carry a per-room version
// that booking writes bump, so stale answers disappear without key scans.
type Availability struct {
	repo  conflictFinder
	cache redis.UniversalClient
	ttl   time.Duration
	log   *slog.Logger
}

// NewAvailability creates the availability service. cache may be nil, in
// which case every check hits the database.
func NewAvailability(repo conflictFinder, cache redis.UniversalClient, ttl time.Duration, log *slog.Logger) *Availability {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Availability{repo: repo, cache: cache, ttl: ttl, log: log}
}

// Check reports whether the room is free for [checkIn, checkOut). exclude
// skips one booking so an edit does not conflict with itself; excluded
// checks bypass the cache.
func (a *Availability) Check(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, exclude *uuid.UUID) (AvailabilityResult, error) {
	if exclude == nil && a.cache != nil {
		if result, ok := a.cached(ctx, roomID, checkIn, checkOut); ok {
			return result, nil
		}
	}

	conflict, err := a.repo.FindConflict(ctx, roomID, checkIn, checkOut, exclude)
	if err != nil {
		return AvailabilityResult{}, err
	}

	result := AvailabilityResult{Available: conflict == nil, Conflict: conflict}

	if exclude == nil && a.cache != nil {
		a.store(ctx, roomID, checkIn, checkOut, result)
	}
	return result, nil
}

// Invalidate bumps the room's cache version after a booking write.
func (a *Availability) Invalidate(ctx context.Context, roomID uuid.UUID) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Incr(ctx, versionKey(roomID)).Err(); err != nil {
		a.log.WarnContext(ctx, "availability cache invalidation failed",
			logger.RoomID(roomID),
			logger.Error(err),
			logger.Component("availability"),
		)
	}
}

func (a *Availability) cached(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (AvailabilityResult, bool) {
	key, err := a.entryKey(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return AvailabilityResult{}, false
	}

	raw, err := a.cache.Get(ctx, key).Bytes()
	if err != nil {
		return AvailabilityResult{}, false
	}

	var result AvailabilityResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return AvailabilityResult{}, false
	}
	return result, true
}

func (a *Availability) store(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time, result AvailabilityResult) {
	key, err := a.entryKey(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}

	if err := a.cache.Set(ctx, key, raw, a.ttl).Err(); err != nil {
		a.log.WarnContext(ctx, "availability cache write failed",
			logger.RoomID(roomID),
			logger.Error(err),
			logger.Component("availability"),
		)
	}
}

func (a *Availability) entryKey(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (string, error) {
	version, err := a.cache.Get(ctx, versionKey(roomID)).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return fmt.Sprintf("availability:%s:v%d:%s:%s",
		roomID,
		version,
		checkIn.Format(validator.DateLayout),
		checkOut.Format(validator.DateLayout),
	), nil
}

func versionKey(roomID uuid.UUID) string {
	return "availability:" + roomID.String() + ":version"
}
