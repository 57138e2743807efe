package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
)

// PublisherConfig holds the configuration for the JetStream gateway
type PublisherConfig struct {
	URL            string
	StreamName     string
	Subject        string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	MaxAge         time.Duration
}

// Publisher is a Gateway that publishes award.granted events to NATS JetStream
type Publisher struct {
	nc     adapter.NatsConn
	js     adapter.JetStream
	json   adapter.JSON
	clock  adapter.Clock
	config PublisherConfig
}

// NewPublisher connects to NATS and makes sure the award stream exists
func NewPublisher(
	ctx context.Context,
	cfg PublisherConfig,
	natsJS adapter.NatsJetStream,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) (*Publisher, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	p := &Publisher{
		nc:     nc,
		js:     js,
		json:   jsonAdapter,
		clock:  clock,
		config: cfg,
	}

	if err := p.ensureStream(ctx); err != nil {
		nc.Close()
		return nil, err
	}

	return p, nil
}

func (p *Publisher) ensureStream(ctx context.Context) error {
	err := p.js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:       p.config.StreamName,
		Subjects:   []string{p.config.Subject},
		Retention:  jetstream.LimitsPolicy,
		Storage:    jetstream.FileStorage,
		MaxAge:     p.config.MaxAge,
		Duplicates: 2 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update stream %s: %w", p.config.StreamName, err)
	}
	return nil
}

// Notify publishes an award.granted event. The event id doubles as the
// JetStream message id so a retried publish is deduplicated by the server.
func (p *Publisher) Notify(ctx context.Context, recipientID domain.UserID, awardID domain.AwardID, grantID domain.GrantID) error {
	now := p.clock.Now()
	event := domain.AwardGrantedEvent{
		EventID:     ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		EventType:   domain.EVENT_TYPE_AWARD_GRANTED,
		Timestamp:   now.UTC(),
		RecipientID: recipientID,
		AwardID:     awardID,
		GrantID:     grantID,
	}

	data, err := p.json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %w", domain.ErrNotification, err)
	}

	ack, err := p.js.Publish(ctx, p.config.Subject, data, jetstream.WithMsgID(event.EventID))
	if err != nil {
		return fmt.Errorf("%w: failed to publish event: %w", domain.ErrNotification, err)
	}

	logger.DebugCtx(ctx, "Published award event",
		zap.String("event_id", event.EventID),
		zap.Int64("grant_id", int64(grantID)),
		zap.Uint64("sequence", ack.Sequence),
		zap.Bool("duplicate", ack.Duplicate),
	)

	return nil
}

// Close drains and closes the NATS connection
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}

	if err := p.nc.Drain(); err != nil {
		logger.Warn("Failed to drain NATS connection", zap.Error(err))
		p.nc.Close()
	}
}

func connectionOptions(name string, maxReconnects int, reconnectWait time.Duration) []nats.Option {
	return []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(maxReconnects),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}
}
