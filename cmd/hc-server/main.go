package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	apicontract "github.com/tuanvumaihuynh/hvac-catalog/api-contract"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/http"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/log"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/model"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/notify"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/query"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/repository"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/service"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/db"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/storage/mq"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/store"
	"github.com/tuanvumaihuynh/hvac-catalog/internal/telemetry"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/cmdutil"
	"github.com/tuanvumaihuynh/hvac-catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running server application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log     config.Log
		HTTP    config.HTTP
		Catalog config.Catalog
		Notify  config.Notify
		Otel    config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	products, err := loadProducts(cfg.Catalog)
	if err != nil {
		return fmt.Errorf("error loading products: %w", err)
	}
	productStore := store.NewProductStore()
	productStore.Seed(products)
	logger.InfoContext(ctx, "product store seeded", slog.Int("products", productStore.Len()))

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	var (
		inquiryRepo    repository.InquiryRepository
		healthCheckers []db.HealthChecker
	)
	switch cfg.Catalog.InquiryStore {
	case config.InquiryStorePostgres:
		pgCfg, err := config.New[config.Postgres]()
		if err != nil {
			return fmt.Errorf("error loading postgres config: %w", err)
		}

		pgxPool, err := db.NewPgxPool(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("error creating pgx pool: %w", err)
		}
		defer pgxPool.Close()

		dbClient := db.NewClient(pgxPool)
		inquiryRepo = repository.NewPostgresInquiryRepository(dbClient)
		healthCheckers = append(healthCheckers, dbClient)
	default:
		inquiryRepo = repository.NewMemoryInquiryRepository()
	}

	var notifier notify.Notifier
	switch cfg.Catalog.NotifyDriver {
	case config.NotifyDriverKafka:
		kafkaCfg, err := config.New[config.Kafka]()
		if err != nil {
			return fmt.Errorf("error loading kafka config: %w", err)
		}

		kafkaProducer, err := mq.NewKafkaProducer(ctx, kafkaCfg)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		notifier = notify.NewKafkaNotifier(kafkaProducer, cfg.Notify.MaxRetries, cfg.Notify.RetryBase)
	default:
		notifier = notify.NewLogNotifier(logger)
	}

	doc, err := apicontract.Load(ctx)
	if err != nil {
		return fmt.Errorf("error loading api contract: %w", err)
	}

	productService := service.NewProductService(productStore)
	inquiryService := service.NewInquiryService(logger, v, productStore, inquiryRepo, notifier, cfg.Catalog.NotifyTimeout)

	svc := http.New(
		cfg.HTTP,
		logger,
		doc,
		productService,
		inquiryService,
		query.NewParser(v, cfg.Catalog.DefaultLimit),
		healthCheckers...,
	)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started",
		slog.String("inquiry_store", cfg.Catalog.InquiryStore.String()),
		slog.String("notify_driver", cfg.Catalog.NotifyDriver.String()),
	)

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Catalog.NotifyTimeout)
	defer shutdownCancel()
	if err := inquiryService.Shutdown(shutdownCtx); err != nil {
		logger.ErrorContext(ctx, "error draining inquiry notifications", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}

func loadProducts(cfg config.Catalog) ([]model.Product, error) {
	if cfg.SeedFile != "" {
		return store.LoadFixturesFile(cfg.SeedFile)
	}
	return store.DefaultFixtures()
}
