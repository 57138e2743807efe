package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/store"
)

const (
	DEFAULT_RECONCILE_INTERVAL = 15 * time.Minute
	DEFAULT_RETRY_MAX_ELAPSED  = 5 * time.Minute
)

// GivenCountSweeperConfig holds configuration for the given count sweeper
type GivenCountSweeperConfig struct {
	Interval        time.Duration // Time to sleep between reconcile passes
	RetryMaxElapsed time.Duration // Total retry time for one failing pass
	RetryInitial    time.Duration
}

// givenCountSweeper repairs award given counts left behind by grants whose
// counter increment never ran
type givenCountSweeper struct {
	config    GivenCountSweeperConfig
	ledger    store.Ledger
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewGivenCountSweeper creates a new given count sweeper
func NewGivenCountSweeper(config GivenCountSweeperConfig, ledger store.Ledger, clock adapter.Clock) Sweeper {
	if config.Interval <= 0 {
		config.Interval = DEFAULT_RECONCILE_INTERVAL
	}
	if config.RetryMaxElapsed <= 0 {
		config.RetryMaxElapsed = DEFAULT_RETRY_MAX_ELAPSED
	}
	if config.RetryInitial <= 0 {
		config.RetryInitial = 5 * time.Second
	}

	return &givenCountSweeper{
		config:    config,
		ledger:    ledger,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *givenCountSweeper) Name() string {
	return "given-count-sweeper"
}

// Start runs a reconcile pass, sleeps for the interval and repeats
func (s *givenCountSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting given count sweeper", zap.Duration("interval", s.config.Interval))

	for {
		if err := s.reconcileWithRetry(ctx); err != nil {
			if !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err)
			}
		}

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Given count sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Given count sweeper stop requested")
			return nil
		case <-s.clock.After(s.config.Interval):
		}
	}
}

// Stop signals the loop to exit and waits for it
func (s *givenCountSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping given count sweeper")
	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Given count sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Given count sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// reconcileWithRetry runs one reconcile pass with exponential backoff retry
func (s *givenCountSweeper) reconcileWithRetry(ctx context.Context) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.RetryInitial
	b.MaxElapsedTime = s.config.RetryMaxElapsed
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Given count reconcile failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	err := backoff.RetryNotify(func() error {
		return s.reconcile(ctx)
	}, backoff.WithContext(b, ctx), notifyOnError)
	if err != nil {
		return fmt.Errorf("given count reconcile failed after %d attempts: %w", attemptCount+1, err)
	}

	return nil
}

func (s *givenCountSweeper) reconcile(ctx context.Context) error {
	startTime := s.clock.Now()

	corrections, err := s.ledger.ReconcileGivenCounts(ctx)
	if err != nil {
		return err
	}

	for _, c := range corrections {
		logger.WarnCtx(ctx, "Repaired award given count",
			zap.Int64("award_id", int64(c.AwardID)),
			zap.Int64("previous", c.Previous),
			zap.Int64("corrected", c.Corrected),
			zap.Int64("grant_count", c.GrantCount),
		)
	}

	logger.InfoCtx(ctx, "Given count reconcile completed",
		zap.Int("corrections", len(corrections)),
		zap.Duration("duration", s.clock.Since(startTime)),
	)

	return nil
}
