package award

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/notification"
	"github.com/feral-file/ff-awards/internal/store"
)

// Coordinator orchestrates a single grant or revoke across the ledger, the
// unseen count cache and the notification gateway.
//
//go:generate mockgen -source=coordinator.go -destination=../mocks/coordinator.go -package=mocks -mock_names=Coordinator=MockCoordinator
type Coordinator interface {
	// Grant gives the award to the recipient at most once. It returns granted=false
	// without error when the pair already holds a grant.
	Grant(ctx context.Context, recipientID domain.UserID, displayName string, awardID domain.AwardID, notify bool) (domain.GrantID, bool, error)
	// Revoke marks the grant revoked and drops the recipient's cached unseen count
	Revoke(ctx context.Context, grantID domain.GrantID) error
}

type coordinator struct {
	ledger  store.Ledger
	unseen  cache.UnseenCounts
	gateway notification.Gateway
}

// NewCoordinator creates a new grant coordinator
func NewCoordinator(ledger store.Ledger, unseen cache.UnseenCounts, gateway notification.Gateway) Coordinator {
	return &coordinator{
		ledger:  ledger,
		unseen:  unseen,
		gateway: gateway,
	}
}

// Grant gives the award to the recipient
func (c *coordinator) Grant(ctx context.Context, recipientID domain.UserID, displayName string, awardID domain.AwardID, notify bool) (domain.GrantID, bool, error) {
	held, err := c.ledger.HasActiveGrant(ctx, recipientID, awardID)
	if err != nil {
		return 0, false, criticalError("failed to check existing grant", err)
	}
	if held {
		logger.DebugCtx(ctx, "Award already held",
			zap.Int64("recipient_id", int64(recipientID)),
			zap.Int64("award_id", int64(awardID)))
		return 0, false, nil
	}

	// The grant row and its given_count increment commit together
	var grantID domain.GrantID
	var incrementErr error
	err = c.ledger.Transaction(ctx, func(tx store.Ledger) error {
		id, err := tx.Insert(ctx, recipientID, displayName, awardID)
		if err != nil {
			return err
		}
		if err := tx.IncrementGivenCount(ctx, awardID); err != nil {
			incrementErr = err
			return err
		}
		grantID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logger.DebugCtx(ctx, "Lost grant race, award already granted",
				zap.Int64("recipient_id", int64(recipientID)),
				zap.Int64("award_id", int64(awardID)))
			return 0, false, nil
		}
		if incrementErr != nil {
			return 0, false, criticalError("failed to increment given count", err)
		}
		return 0, false, criticalError("failed to insert grant", err)
	}

	if err := c.unseen.Increment(ctx, recipientID); err != nil {
		logger.WarnCtx(ctx, "Failed to increment unseen award count",
			zap.Int64("recipient_id", int64(recipientID)),
			zap.Error(err))
	}

	if err := c.unseen.PurgeProfile(ctx, recipientID); err != nil {
		logger.WarnCtx(ctx, "Failed to purge profile cache",
			zap.Int64("recipient_id", int64(recipientID)),
			zap.Error(err))
	}

	if notify {
		if err := c.gateway.Notify(ctx, recipientID, awardID, grantID); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("message", "Failed to notify award recipient"),
				zap.Int64("grant_id", int64(grantID)),
				zap.Int64("recipient_id", int64(recipientID)))
		}
	}

	logger.InfoCtx(ctx, "Award granted",
		zap.Int64("grant_id", int64(grantID)),
		zap.Int64("recipient_id", int64(recipientID)),
		zap.Int64("award_id", int64(awardID)))

	return grantID, true, nil
}

// Revoke marks the grant revoked
func (c *coordinator) Revoke(ctx context.Context, grantID domain.GrantID) error {
	grant, err := c.ledger.GetByID(ctx, grantID)
	if err != nil {
		return fmt.Errorf("failed to get grant: %w", err)
	}

	if err := c.ledger.SetStatus(ctx, grantID, domain.GrantStatusRevoked); err != nil {
		return fmt.Errorf("failed to revoke grant: %w", err)
	}

	if err := c.unseen.Invalidate(ctx, grant.RecipientID); err != nil {
		logger.WarnCtx(ctx, "Failed to invalidate unseen award count",
			zap.Int64("recipient_id", int64(grant.RecipientID)),
			zap.Error(err))
	}

	logger.InfoCtx(ctx, "Award revoked",
		zap.Int64("grant_id", int64(grantID)),
		zap.Int64("recipient_id", int64(grant.RecipientID)))

	return nil
}

// criticalError keeps domain errors and classifies any other store failure as unavailable
func criticalError(msg string, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnavailable):
		return fmt.Errorf("%s: %w", msg, err)
	default:
		return fmt.Errorf("%w: %s: %w", domain.ErrUnavailable, msg, err)
	}
}
