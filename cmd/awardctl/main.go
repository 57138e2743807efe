package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/award"
	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/config"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/notification"
	"github.com/feral-file/ff-awards/internal/store"
)

var (
	configFile string
	envPath    string
	timeout    time.Duration
)

// app holds the wired dependencies shared by every subcommand
type app struct {
	ledger  store.Ledger
	service award.Service
	closers []func()
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "awardctl",
	Short:         "Administer award grants",
	Long:          `awardctl grants, revokes and deletes awards and repairs award given counts.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if current != nil {
			current.close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Timeout for a single command")

	rootCmd.AddCommand(grantCmd, revokeCmd, deleteCmd, listCmd, reconcileCmd)
}

func setup(ctx context.Context) (*app, error) {
	config.ChdirRepoRoot()
	cfg, err := config.LoadCLIConfig(configFile, envPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "awardctl",
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	a := &app{}
	a.closers = append(a.closers, func() { logger.Flush(2 * time.Second) })

	db, err := store.Open(cfg.Database.OpenOptions(cfg.Debug))
	if err != nil {
		a.close()
		return nil, err
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		a.close()
		return nil, err
	}

	clock := adapter.NewClock()
	directory := store.NewDirectory(db)
	catalog := store.NewCatalog(db)
	a.ledger = store.NewLedger(db, directory, clock)

	// Without Redis the counts this process touches die with it,
	// so a tiny short-lived backend is enough.
	var backend cache.Backend = cache.NewMemoryBackend(1, time.Second)
	if cfg.Redis.Enabled {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		backend = cache.NewRedisBackend(redisClient, cfg.Cache.TTL)
	}
	unseen := cache.NewUnseenCounts(backend, a.ledger, cfg.Cache.TTL)

	var gateway notification.Gateway = notification.NewNoopGateway()
	if cfg.NATS.Enabled {
		publisher, err := notification.NewPublisher(ctx, notification.PublisherConfig{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			Subject:        cfg.NATS.Subject,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxAge:         cfg.NATS.MaxAge,
		}, adapter.NewNatsJetStream(), adapter.NewJSON(), clock)
		if err != nil {
			logger.WarnCtx(ctx, "Award events will not be published", zap.Error(err))
		} else {
			a.closers = append(a.closers, publisher.Close)
			gateway = publisher
		}
	}

	coordinator := award.NewCoordinator(a.ledger, unseen, gateway)
	a.service = award.NewService(coordinator, a.ledger, catalog, directory, unseen)
	return a, nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
