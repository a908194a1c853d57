package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bibbank/mortgage-service/internal/application/usecase"
	"github.com/bibbank/mortgage-service/internal/infrastructure/config"
	"github.com/bibbank/mortgage-service/internal/infrastructure/kafka"
	pgRepo "github.com/bibbank/mortgage-service/internal/infrastructure/postgres"
	grpcPresentation "github.com/bibbank/mortgage-service/internal/presentation/grpc"
	"github.com/bibbank/mortgage-service/internal/presentation/rest"
	"github.com/bibbank/mortgage-service/pkg/auth"
	pkgkafka "github.com/bibbank/mortgage-service/pkg/kafka"
	"github.com/bibbank/mortgage-service/pkg/observability"
	pkgpostgres "github.com/bibbank/mortgage-service/pkg/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.ServiceName,
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	rounding, err := cfg.Rounding()
	if err != nil {
		logger.Error("invalid rounding configuration", "error", err)
		os.Exit(1)
	}
	settings := usecase.EngineSettings{
		Rounding:          rounding,
		MaxMonthsFactor:   cfg.Engine.MaxMonthsFactor,
		WhatIfConcurrency: cfg.Engine.WhatIfConcurrency,
	}

	logger.Info("starting mortgage-service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"rounding", rounding.String(),
	)

	// Metrics.
	meterProvider, metricsHandler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort flush
	engineMetrics, err := observability.NewEngineMetrics(meterProvider)
	if err != nil {
		logger.Error("failed to register engine metrics", "error", err)
		os.Exit(1)
	}

	// Database connection.
	dbCtx, dbCancel := context.WithTimeout(ctx, 10*time.Second)
	defer dbCancel()

	pool, err := pkgpostgres.NewPool(dbCtx, cfg.Postgres())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("connected to database")

	// Run database migrations.
	if err := migrate(cfg); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	// Wire infrastructure adapters.
	mortgageRepo := pgRepo.NewMortgageRepo(pool)
	amountRepo := pgRepo.NewAmountRepo(pool)

	kafkaProducer, err := pkgkafka.NewProducer(cfg.Producer())
	if err != nil {
		logger.Error("failed to create kafka producer", "error", err)
		os.Exit(1)
	}
	defer func() { _ = kafkaProducer.Close() }() //nolint:errcheck // best-effort close
	publisher := kafka.NewKafkaEventPublisher(kafkaProducer, cfg.Kafka.Topic, logger)

	// Wire use cases.
	handler := grpcPresentation.NewMortgageHandler(grpcPresentation.UseCases{
		Create:           usecase.NewCreateMortgageUseCase(mortgageRepo, publisher, settings),
		Update:           usecase.NewUpdateMortgageUseCase(mortgageRepo, publisher, settings),
		List:             usecase.NewListMortgagesUseCase(mortgageRepo, settings),
		GetLedger:        usecase.NewGetLedgerUseCase(mortgageRepo, amountRepo, engineMetrics, settings),
		GetMonthChoices:  usecase.NewGetMonthChoicesUseCase(mortgageRepo, amountRepo, engineMetrics, settings),
		Speculate:        usecase.NewSpeculateUseCase(mortgageRepo, amountRepo, engineMetrics, settings),
		Duplicate:        usecase.NewDuplicateMortgageUseCase(mortgageRepo, amountRepo, publisher, settings),
		Delete:           usecase.NewDeleteMortgageUseCase(mortgageRepo, publisher),
		SetActualPayment: usecase.NewSetActualPaymentUseCase(mortgageRepo, publisher, settings),
		RecordAmount:     usecase.NewRecordAmountUseCase(mortgageRepo, amountRepo, publisher),
		ClearAmount:      usecase.NewClearAmountUseCase(mortgageRepo, amountRepo, publisher),
	}, logger)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg, err := cfg.JWT()
	if err != nil {
		logger.Error("failed to load JWT configuration", "error", err)
		os.Exit(1)
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server.
	grpcServer, err := grpcPresentation.NewServer(handler, logger, jwtSvc, grpcPresentation.ServerOptions{
		TLSCertFile: cfg.GRPC.TLSCertFile,
		TLSKeyFile:  cfg.GRPC.TLSKeyFile,
		Reflection:  cfg.GRPC.Reflection,
	})
	if err != nil {
		logger.Error("failed to create gRPC server", "error", err)
		os.Exit(1)
	}

	// HTTP server (health checks and metrics).
	mux := http.NewServeMux()
	rest.NewHealthHandler(pool, metricsHandler, logger).RegisterRoutes(mux)

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           rest.LoggingMiddleware(logger)(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start servers.
	errCh := make(chan error, 2)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			errCh <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	grpcServer.GracefulStop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("mortgage-service stopped")
}

// migrate applies the embedded schema, or the files under MIGRATIONS_PATH
// when it is set.
func migrate(cfg config.Config) error {
	dsn := cfg.Postgres().DSN()
	if cfg.MigrationsPath != "" {
		return pkgpostgres.RunMigrations(dsn, "file://"+cfg.MigrationsPath)
	}
	return pkgpostgres.RunMigrationsFS(dsn, pgRepo.Migrations, pgRepo.MigrationsDir)
}
