package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/domain"
	"github.com/feral-file/ff-awards/internal/logger"
)

const (
	DEFAULT_WORKER_POOL_SIZE  = 4
	DEFAULT_WORKER_QUEUE_SIZE = 64
	DEFAULT_RETRY_DELAY       = 30 * time.Second
)

// ConsumerConfig holds the configuration for the award event consumer
type ConsumerConfig struct {
	URL             string
	StreamName      string
	ConsumerName    string
	Subject         string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
	RetryDelay      time.Duration
}

// Consumer reads award.granted events and hands them to a Deliverer
type Consumer interface {
	// Run consumes until the context is cancelled
	Run(ctx context.Context) error
	// Close closes the NATS connection
	Close()
}

type consumer struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	deliverer Deliverer
	json      adapter.JSON
	config    ConsumerConfig
}

// NewConsumer connects to NATS and creates the award event consumer
func NewConsumer(
	cfg ConsumerConfig,
	natsJS adapter.NatsJetStream,
	deliverer Deliverer,
	jsonAdapter adapter.JSON,
) (Consumer, error) {
	nc, js, err := natsJS.Connect(cfg.URL, connectionOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = DEFAULT_WORKER_POOL_SIZE
	}
	if cfg.WorkerQueueSize <= 0 {
		cfg.WorkerQueueSize = DEFAULT_WORKER_QUEUE_SIZE
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DEFAULT_RETRY_DELAY
	}

	return &consumer{
		nc:        nc,
		js:        js,
		deliverer: deliverer,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run starts consuming award events
func (c *consumer) Run(ctx context.Context) error {
	logger.InfoCtx(ctx, "Starting award notifier",
		zap.String("stream", c.config.StreamName),
		zap.String("consumer", c.config.ConsumerName))

	cons, err := c.js.CreateOrUpdateConsumer(ctx, c.config.StreamName, jetstream.ConsumerConfig{
		Durable:       c.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.config.AckWaitTimeout,
		MaxDeliver:    c.config.MaxDeliver,
		FilterSubject: c.config.Subject,
	})
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	info, err := cons.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.InfoCtx(ctx, "Consumer created/retrieved",
		zap.String("consumer", info.Name),
		zap.Uint64("pending", info.NumPending))

	pool := pond.NewPool(
		c.config.WorkerPoolSize,
		pond.WithQueueSize(c.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)
	defer func() {
		pool.StopAndWait()
		logger.InfoCtx(ctx, "Notifier worker pool shutdown complete",
			zap.Uint64("total_submitted", pool.SubmittedTasks()),
			zap.Uint64("total_completed", pool.CompletedTasks()),
			zap.Uint64("total_failed", pool.FailedTasks()))
	}()

	sub, err := cons.Consume(func(msg adapter.Message) {
		pool.Submit(func() {
			c.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.InfoCtx(ctx, "Started consuming award events")

	<-ctx.Done()
	logger.InfoCtx(ctx, "Shutting down award notifier")
	return nil
}

// handleMessage delivers one award event and settles the message
func (c *consumer) handleMessage(ctx context.Context, msg adapter.Message) {
	var event domain.AwardGrantedEvent
	if err := c.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to unmarshal award event"))
		settle(ctx, "terminate", msg.Term())
		return
	}

	var delivered uint64
	if metadata, err := msg.Metadata(); err == nil && metadata != nil {
		delivered = metadata.NumDelivered
	}

	logger.InfoCtx(ctx, "Received award event",
		zap.String("event_id", event.EventID),
		zap.Int64("grant_id", int64(event.GrantID)),
		zap.Int64("recipient_id", int64(event.RecipientID)),
		zap.Uint64("delivery_count", delivered))

	if err := c.deliverer.Deliver(ctx, event); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.WarnCtx(ctx, "Dropping award event for missing user or award",
				zap.String("event_id", event.EventID),
				zap.Error(err))
			settle(ctx, "terminate", msg.Term())
			return
		}

		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to deliver award event"), zap.String("event_id", event.EventID))
		settle(ctx, "nak", msg.NakWithDelay(c.config.RetryDelay))
		return
	}

	settle(ctx, "ack", msg.Ack())
}

func settle(ctx context.Context, action string, err error) {
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("message", "Failed to settle message"), zap.String("action", action))
	}
}

// Close closes the NATS connection
func (c *consumer) Close() {
	if c.nc == nil {
		return
	}

	c.nc.Close()
}
