package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/config"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/notification"
	"github.com/feral-file/ff-awards/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadNotifierConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "awards-notifier",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Awards Notifier")

	// Connect to database
	db, err := store.Open(cfg.Database.OpenOptions(cfg.Debug))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	directory := store.NewDirectory(db)
	catalog := store.NewCatalog(db)

	mailer := adapter.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)
	deliverer := notification.NewEmailDeliverer(directory, catalog, mailer, notification.EmailConfig{
		From:       cfg.SMTP.From,
		SiteName:   cfg.SMTP.SiteName,
		MaxRetries: cfg.SMTP.MaxRetries,
	})

	consumer, err := notification.NewConsumer(notification.ConsumerConfig{
		URL:             cfg.NATS.URL,
		StreamName:      cfg.NATS.StreamName,
		ConsumerName:    cfg.NATS.ConsumerName,
		Subject:         cfg.NATS.Subject,
		MaxReconnects:   cfg.NATS.MaxReconnects,
		ReconnectWait:   cfg.NATS.ReconnectWait,
		ConnectionName:  cfg.NATS.ConnectionName,
		AckWaitTimeout:  cfg.NATS.AckWait,
		MaxDeliver:      cfg.NATS.MaxDeliver,
		WorkerPoolSize:  cfg.Worker.WorkerPoolSize,
		WorkerQueueSize: cfg.Worker.WorkerQueueSize,
		RetryDelay:      cfg.NATS.RetryDelay,
	}, adapter.NewNatsJetStream(), deliverer, adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create award event consumer", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer consumer.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream",
		zap.String("stream", cfg.NATS.StreamName),
		zap.String("consumer", cfg.NATS.ConsumerName),
	)

	errCh := make(chan error, 1)
	go func() {
		if err := consumer.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.ErrorCtx(ctx, err)
	}

	cancel()

	logger.Info("Awards Notifier stopped")
}
