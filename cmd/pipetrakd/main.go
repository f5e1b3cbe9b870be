package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/pipetrak/pipetrak/gen/proto/pipetrak/v1"
	"github.com/pipetrak/pipetrak/internal/async"
	"github.com/pipetrak/pipetrak/internal/common"
	"github.com/pipetrak/pipetrak/internal/importer"
	repo "github.com/pipetrak/pipetrak/internal/repository"
	"github.com/pipetrak/pipetrak/internal/server"
	"github.com/pipetrak/pipetrak/internal/services/imports"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbResult, err := common.InitDatabase(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer dbResult.Cleanup()

	if err := repo.HealthCheck(ctx, dbResult.Pool, 3*time.Second); err != nil {
		logger.Error("database health check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database health OK")

	entc := dbResult.Client

	// Wire repositories
	projectsRepo := repo.NewProjectRepository(entc, logger)
	jobsRepo := repo.NewImportJobRepository(entc, logger)
	metadataRepo := repo.NewMetadataRepository(entc, logger)
	drawingsRepo := repo.NewDrawingRepository(entc, logger)
	componentsRepo := repo.NewComponentRepository(entc, logger)
	weldsRepo := repo.NewFieldWeldRepository(entc, logger)
	weldersRepo := repo.NewWelderRepository(entc, logger)

	writer := importer.NewBulkWriter(metadataRepo, drawingsRepo, componentsRepo, weldsRepo, weldersRepo, logger)

	svc := imports.NewService(projectsRepo, jobsRepo, metadataRepo, writer, cfg.Import.MaxPayloadBytes, logger)
	queue := async.NewImportQueue(svc, logger,
		async.WithWorkers(cfg.Import.QueueWorkers),
		async.WithQueueSize(cfg.Import.QueueSize),
		async.WithJobTimeout(cfg.Import.WriteTimeout),
	)
	svc.AttachQueue(queue)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryRequestInterceptor(logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterImportServiceServer(grpcServer, server.NewImportService(svc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(drainCtx)
	logger.Info("stopped")
}
