package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/store"
)

// EmailConfig holds the configuration for award e-mail delivery
type EmailConfig struct {
	From            string
	SiteName        string
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// EmailDeliverer sends an award e-mail to recipients who opted in
type EmailDeliverer struct {
	directory store.Directory
	catalog   store.Catalog
	mailer    adapter.Mailer
	config    EmailConfig
}

// NewEmailDeliverer creates a deliverer backed by the user directory and award catalog
func NewEmailDeliverer(directory store.Directory, catalog store.Catalog, mailer adapter.Mailer, cfg EmailConfig) *EmailDeliverer {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = time.Second
	}
	if cfg.MaxInterval <= 0 {
		cfg.MaxInterval = 30 * time.Second
	}

	return &EmailDeliverer{
		directory: directory,
		catalog:   catalog,
		mailer:    mailer,
		config:    cfg,
	}
}

// Deliver e-mails the recipient about the award. Recipients without a
// confirmed address or who opted out are skipped without error.
func (d *EmailDeliverer) Deliver(ctx context.Context, event domain.AwardGrantedEvent) error {
	user, err := d.directory.GetUser(ctx, event.RecipientID)
	if err != nil {
		return fmt.Errorf("failed to look up recipient: %w", err)
	}

	if !user.WantsAwardEmail() {
		logger.DebugCtx(ctx, "Recipient does not receive award e-mail",
			zap.Int64("recipient_id", int64(user.ID)),
			zap.Bool("email_confirmed", user.EmailConfirmed),
			zap.Bool("notify_awards", user.NotifyAwards))
		return nil
	}

	award, err := d.catalog.GetAward(ctx, event.AwardID)
	if err != nil {
		return fmt.Errorf("failed to look up award: %w", err)
	}

	mail, err := renderAwardMail(d.config.From, d.config.SiteName, user, award)
	if err != nil {
		return fmt.Errorf("failed to render award e-mail: %w", err)
	}

	return d.sendWithRetry(ctx, mail, event)
}

func (d *EmailDeliverer) sendWithRetry(ctx context.Context, mail adapter.Mail, event domain.AwardGrantedEvent) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = d.config.InitialInterval
	b.MaxInterval = d.config.MaxInterval
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	policy := backoff.WithContext(backoff.WithMaxRetries(b, d.config.MaxRetries), ctx)

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Award e-mail failed, retrying",
			zap.String("event_id", event.EventID),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration))
	}

	err := backoff.RetryNotify(func() error {
		return d.mailer.Send(mail)
	}, policy, notifyOnError)
	if err != nil {
		return fmt.Errorf("%w: failed after %d attempts: %w", domain.ErrNotification, attemptCount+1, err)
	}

	logger.InfoCtx(ctx, "Award e-mail sent",
		zap.String("event_id", event.EventID),
		zap.Int64("recipient_id", int64(event.RecipientID)),
		zap.Int("attempts", attemptCount+1))

	return nil
}
