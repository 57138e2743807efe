package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/ff-awards/internal/adapter"
	"github.com/feral-file/ff-awards/internal/api/server"
	"github.com/feral-file/ff-awards/internal/award"
	"github.com/feral-file/ff-awards/internal/cache"
	"github.com/feral-file/ff-awards/internal/config"
	"github.com/feral-file/ff-awards/internal/logger"
	"github.com/feral-file/ff-awards/internal/notification"
	"github.com/feral-file/ff-awards/internal/store"
	"github.com/feral-file/ff-awards/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Create or update the database tables before serving")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
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
			"service": "awards-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Awards API")

	// Connect to database
	db, err := store.Open(cfg.Database.OpenOptions(cfg.Debug))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if *migrate {
		if err := store.Migrate(db); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("read_replica", cfg.Database.ReadDSN() != ""),
	)

	clock := adapter.NewClock()
	directory := store.NewDirectory(db)
	catalog := store.NewCatalog(db)
	ledger := store.NewLedger(db, directory, clock)

	// Unseen count cache
	var backend cache.Backend
	if cfg.Redis.Enabled {
		redisClient := adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer func() { _ = redisClient.Close() }()
		if err := redisClient.Ping(ctx); err != nil {
			// Counts fall back to the ledger while Redis is down
			logger.WarnCtx(ctx, "Redis is not reachable", zap.Error(err), zap.String("addr", cfg.Redis.Addr))
		}
		backend = cache.NewRedisBackend(redisClient, cfg.Cache.TTL)
		logger.InfoCtx(ctx, "Using Redis for unseen counts", zap.String("addr", cfg.Redis.Addr))
	} else {
		backend = cache.NewMemoryBackend(cfg.Cache.MemorySize, cfg.Cache.TTL)
		logger.InfoCtx(ctx, "Using in-process memory for unseen counts", zap.Int("size", cfg.Cache.MemorySize))
	}
	unseen := cache.NewUnseenCounts(backend, ledger, cfg.Cache.TTL)

	// Notification gateway
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
			logger.FatalCtx(ctx, "Failed to create award event publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		gateway = publisher
		logger.InfoCtx(ctx, "Publishing award events", zap.String("stream", cfg.NATS.StreamName))
	}

	coordinator := award.NewCoordinator(ledger, unseen, gateway)
	service := award.NewService(coordinator, ledger, catalog, directory, unseen)

	srv := server.New(server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, service)

	var givenCountSweeper sweeper.Sweeper
	if cfg.GivenCountSweeper.Enabled {
		givenCountSweeper = sweeper.NewGivenCountSweeper(sweeper.GivenCountSweeperConfig{
			Interval:        cfg.GivenCountSweeper.Interval,
			RetryMaxElapsed: cfg.GivenCountSweeper.RetryMaxElapsed,
		}, ledger, clock)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.InfoCtx(gctx, "API server listening",
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port),
		)
		return srv.Start()
	})
	if givenCountSweeper != nil {
		g.Go(func() error {
			logger.InfoCtx(gctx, "Starting sweeper", zap.String("name", givenCountSweeper.Name()))
			return givenCountSweeper.Start(gctx)
		})
	}

	// Wait for interrupt signal or a failing component
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case <-gctx.Done():
		logger.WarnCtx(ctx, "A component stopped unexpectedly")
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	if givenCountSweeper != nil {
		if err := givenCountSweeper.Stop(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.ErrorCtx(shutdownCtx, err)
	}

	logger.InfoCtx(shutdownCtx, "Awards API stopped")
}
