package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
)

const (
	unseenKeyPrefix  = "award:unseen:"
	profileKeyPrefix = "user:profile:system_gifts:"

	// computeTimeout bounds a shared ledger count once it is detached from its first caller
	computeTimeout = 10 * time.Second
)

// UnseenKey returns the cache key of a recipient's unseen award count
func UnseenKey(recipientID domain.UserID) string {
	return unseenKeyPrefix + recipientID.String()
}

// ProfileKey returns the cache key of a recipient's rendered profile award block
func ProfileKey(recipientID domain.UserID) string {
	return profileKeyPrefix + recipientID.String()
}

// Backend is a key-value store with atomic counter updates.
// A missing key is a normal state and never an error.
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Backend=MockCacheBackend,UnseenCounts=MockUnseenCounts,ActiveGrantCounter=MockActiveGrantCounter
type Backend interface {
	// Get returns the counter stored at key and whether it exists
	Get(ctx context.Context, key string) (int64, bool, error)
	// Set stores a counter. A zero TTL uses the backend default.
	Set(ctx context.Context, key string, value int64, ttl time.Duration) error
	// Delete removes a key
	Delete(ctx context.Context, key string) error
	// AddIfExists atomically adds delta to an existing counter, clamping at zero.
	// It reports false without creating the key when the key is absent.
	AddIfExists(ctx context.Context, key string, delta int64) (int64, bool, error)
}

// ActiveGrantCounter is the ledger query used to rebuild a missing count
type ActiveGrantCounter interface {
	CountActiveGrants(ctx context.Context, recipientID domain.UserID) (int, error)
}

// UnseenCounts is a cache-aside counter of each recipient's unacknowledged awards.
// The ledger is the source of truth; every value here can be rebuilt from it.
type UnseenCounts interface {
	// Get looks the count up in the cache only
	Get(ctx context.Context, recipientID domain.UserID) (int, bool, error)
	// GetOrCompute returns the cached count, recomputing it from the ledger on a miss
	GetOrCompute(ctx context.Context, recipientID domain.UserID) (int, error)
	// Increment adds one to a cached count. A missing entry stays missing.
	Increment(ctx context.Context, recipientID domain.UserID) error
	// Decrement subtracts one from a cached count, never below zero. A missing entry stays missing.
	Decrement(ctx context.Context, recipientID domain.UserID) error
	// Invalidate drops the cached count so the next read recomputes it
	Invalidate(ctx context.Context, recipientID domain.UserID) error
	// PurgeProfile drops the recipient's cached profile award block
	PurgeProfile(ctx context.Context, recipientID domain.UserID) error
}

type unseenCounts struct {
	backend Backend
	ledger  ActiveGrantCounter
	ttl     time.Duration
	group   singleflight.Group
}

// NewUnseenCounts creates the unseen award counter over a cache backend
func NewUnseenCounts(backend Backend, ledger ActiveGrantCounter, ttl time.Duration) UnseenCounts {
	return &unseenCounts{
		backend: backend,
		ledger:  ledger,
		ttl:     ttl,
	}
}

// Get looks the count up in the cache only
func (c *unseenCounts) Get(ctx context.Context, recipientID domain.UserID) (int, bool, error) {
	value, ok, err := c.backend.Get(ctx, UnseenKey(recipientID))
	if err != nil {
		return 0, false, fmt.Errorf("%w: failed to read unseen count: %w", domain.ErrUnavailable, err)
	}
	if !ok {
		return 0, false, nil
	}

	logger.DebugCtx(ctx, "Got unseen award count from cache",
		zap.Int64("recipient_id", int64(recipientID)),
		zap.Int64("count", value),
	)
	return int(value), true, nil
}

// GetOrCompute returns the cached count or rebuilds it from the ledger.
// Cache failures degrade to a ledger read; only ledger failures are returned.
func (c *unseenCounts) GetOrCompute(ctx context.Context, recipientID domain.UserID) (int, error) {
	count, ok, err := c.Get(ctx, recipientID)
	if err != nil {
		logger.WarnCtx(ctx, "Unseen count cache read failed, falling back to ledger",
			zap.Int64("recipient_id", int64(recipientID)),
			zap.Error(err),
		)
	} else if ok {
		return count, nil
	}

	// The count is shared by every waiting caller, so one caller giving up must not fail the rest
	ch := c.group.DoChan(recipientID.String(), func() (interface{}, error) {
		computeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), computeTimeout)
		defer cancel()
		return c.compute(computeCtx, recipientID)
	})

	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("failed to compute unseen count: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

func (c *unseenCounts) compute(ctx context.Context, recipientID domain.UserID) (int, error) {
	count, err := c.ledger.CountActiveGrants(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute unseen count: %w", err)
	}

	logger.DebugCtx(ctx, "Got unseen award count from ledger",
		zap.Int64("recipient_id", int64(recipientID)),
		zap.Int("count", count),
	)

	if err := c.backend.Set(ctx, UnseenKey(recipientID), int64(count), c.ttl); err != nil {
		logger.WarnCtx(ctx, "Failed to store unseen count",
			zap.Int64("recipient_id", int64(recipientID)),
			zap.Error(err),
		)
	}

	return count, nil
}

// Increment adds one to a cached count
func (c *unseenCounts) Increment(ctx context.Context, recipientID domain.UserID) error {
	return c.add(ctx, recipientID, 1)
}

// Decrement subtracts one from a cached count
func (c *unseenCounts) Decrement(ctx context.Context, recipientID domain.UserID) error {
	return c.add(ctx, recipientID, -1)
}

func (c *unseenCounts) add(ctx context.Context, recipientID domain.UserID, delta int64) error {
	_, _, err := c.backend.AddIfExists(ctx, UnseenKey(recipientID), delta)
	if err != nil {
		return fmt.Errorf("%w: failed to adjust unseen count: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Invalidate drops the cached count
func (c *unseenCounts) Invalidate(ctx context.Context, recipientID domain.UserID) error {
	if err := c.backend.Delete(ctx, UnseenKey(recipientID)); err != nil {
		return fmt.Errorf("%w: failed to invalidate unseen count: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// PurgeProfile drops the recipient's cached profile award block
func (c *unseenCounts) PurgeProfile(ctx context.Context, recipientID domain.UserID) error {
	if err := c.backend.Delete(ctx, ProfileKey(recipientID)); err != nil {
		return fmt.Errorf("%w: failed to purge profile cache: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// IsUnavailable reports whether a cache error is a backend outage
func IsUnavailable(err error) bool {
	return errors.Is(err, domain.ErrUnavailable)
}
