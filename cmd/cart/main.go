package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/rental-cart/internal/application/handler"
	"github.com/TemirB/rental-cart/internal/application/service"
	"github.com/TemirB/rental-cart/internal/config"
	"github.com/TemirB/rental-cart/internal/database"
	"github.com/TemirB/rental-cart/internal/httpapi"
	"github.com/TemirB/rental-cart/internal/kafka"
	"github.com/TemirB/rental-cart/internal/nats"
	"github.com/TemirB/rental-cart/internal/observability"
	"github.com/TemirB/rental-cart/internal/pkg/breaker"
	"github.com/TemirB/rental-cart/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Cart service stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("bye")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	metrics := observability.NewInmem(1024)
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i].Close()
		}
	}()

	backend, lister, err := openStorage(ctx, cfg, logger, &closers)
	if err != nil {
		return err
	}

	kv := backend
	if cfg.StorageDriver != config.DriverMemory {
		kv = storage.NewResilient(backend, breaker.New(cfg.Breaker), cfg.Retry, logger)
	}
	var cacheTTL time.Duration
	if cfg.StorageDriver == config.DriverRedis {
		cacheTTL = cfg.Redis.TTL
	}
	cached, err := storage.NewCached(kv, cfg.CacheCap, cacheTTL, metrics)
	if err != nil {
		return fmt.Errorf("storage cache: %w", err)
	}

	publisher, err := openPublisher(ctx, cfg, logger, &closers)
	if err != nil {
		return err
	}

	svc, err := service.NewService(cached, publisher, service.Options{
		CheckoutURL: cfg.CheckoutURL,
		SessionCap:  cfg.SessionCap,
	}, logger, metrics)
	if err != nil {
		return fmt.Errorf("session service: %w", err)
	}

	if lister != nil {
		cached.Warm(ctx, warmSource{KV: kv, SessionLister: lister})
		svc.Warm(ctx, lister)
	}

	server, err := httpapi.New(svc, logger, metrics)
	if err != nil {
		return fmt.Errorf("http server: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if cfg.IngestItems {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, cfg.Kafka.ItemsTopic, 1, 1, logger); err != nil {
			logger.Warn("Could not ensure items topic", zap.Error(err))
		}
		reader := kafka.NewReader(cfg.Kafka)
		closers = append(closers, reader)

		h := handler.NewHandler(svc, breaker.New(cfg.Breaker), cfg.Retry, logger)
		consumer := kafka.NewConsumer(h, reader, cfg.Kafka.Workers, logger, metrics)

		wg.Add(1)
		go func() {
			defer wg.Done()
			consumer.Start(ctx)
		}()
	}

	logger.Info("Cart service listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("storage", cfg.StorageDriver),
		zap.String("checkout_bus", cfg.CheckoutBus),
		zap.Bool("ingest_items", cfg.IngestItems),
	)
	err = server.ListenAndServe(ctx, cfg.HTTPAddr)
	cancel()
	wg.Wait()

	t := metrics.Totals()
	logger.Info("Shutdown complete",
		zap.Int("checkouts", t.Checkouts),
		zap.Int("cache_hits", t.CacheHits),
		zap.Int("cache_misses", t.CacheMiss),
	)
	return err
}

// warmSource pairs the wrapped store with the backend that can list sessions.
type warmSource struct {
	storage.KV
	storage.SessionLister
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func openStorage(ctx context.Context, cfg config.Config, logger *zap.Logger, closers *[]io.Closer) (storage.KV, storage.SessionLister, error) {
	switch cfg.StorageDriver {
	case config.DriverRedis:
		client, err := storage.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		*closers = append(*closers, client)
		return storage.NewRedis(client, cfg.Redis.TTL), nil, nil

	case config.DriverPostgres:
		pool, err := database.Connect(ctx, cfg.DSN(), logger)
		if err != nil {
			return nil, nil, err
		}
		*closers = append(*closers, closerFunc(func() error { pool.Close(); return nil }))

		repo := database.New(pool, cfg.Pg)
		schemaCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(schemaCtx); err != nil {
			return nil, nil, err
		}
		return repo, repo, nil

	case config.DriverMemory:
		return storage.NewMemory(), nil, nil
	}
	return nil, nil, errors.New("unknown storage driver " + cfg.StorageDriver)
}

func openPublisher(_ context.Context, cfg config.Config, logger *zap.Logger, closers *[]io.Closer) (service.Publisher, error) {
	switch cfg.CheckoutBus {
	case config.BusKafka:
		p := kafka.NewPublisher(kafka.NewWriter(cfg.Kafka))
		*closers = append(*closers, p)
		return p, nil

	case config.BusNATS:
		nc, err := nats.Connect(cfg.NATS, logger)
		if err != nil {
			return nil, err
		}
		*closers = append(*closers, closerFunc(func() error { return nc.Drain() }))
		return nats.NewPublisher(nc, cfg.NATS.Subject), nil
	}
	return nil, nil
}
