package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	apiv1alpha1 "github.com/KirkDiggler/rpg-forge/internal/api/v1alpha1"
	"github.com/KirkDiggler/rpg-forge/internal/config"
	"github.com/KirkDiggler/rpg-forge/internal/engine"
	"github.com/KirkDiggler/rpg-forge/internal/handlers/grpc/v1alpha1"
	httpv1 "github.com/KirkDiggler/rpg-forge/internal/handlers/http/v1"
	"github.com/KirkDiggler/rpg-forge/internal/orchestrators/encounter"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-forge/internal/telemetry"
)

const shutdownTimeout = 30 * time.Second

var (
	grpcPort int
	httpPort int
	storage  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the encounter service. Configuration comes from RPG_FORGE_* environment variables;
flags override the matching variables.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "grpc-port", 0, "gRPC server port (overrides RPG_FORGE_GRPC_PORT)")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port (overrides RPG_FORGE_HTTP_PORT)")
	serverCmd.Flags().StringVar(&storage, "storage", "", "memory, redis or sqlite (overrides RPG_FORGE_STORAGE)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("grpc-port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if cmd.Flags().Changed("storage") {
		cfg.Storage = storage
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, "rpg-forge", cfg.OTELEndpoint)
	if err != nil {
		return fmt.Errorf("failed to set up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Warn("Telemetry shutdown failed", "error", err)
		}
	}()

	repo, closeRepo, err := buildRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRepo()

	generator, err := buildGenerator(cfg)
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	temperature := cfg.Temperature
	encounterService, err := encounter.NewOrchestrator(&encounter.Config{
		Generator:            generator,
		Engine:               eng,
		Repository:           repo,
		IDGenerator:          idgen.NewUUID("enc"),
		Clock:                clock.New(),
		MaxAttempts:          cfg.MaxAttempts,
		MinSubstantiveLength: cfg.MinSubstantiveLength,
		Temperature:          &temperature,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter orchestrator: %w", err)
	}

	encounterHandler, err := v1alpha1.NewEncounterHandler(&v1alpha1.EncounterHandlerConfig{
		EncounterService: encounterService,
	})
	if err != nil {
		return fmt.Errorf("failed to create encounter handler: %w", err)
	}

	httpHandler, err := httpv1.NewHandler(&httpv1.HandlerConfig{
		Service:            encounterHandler,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})
	if err != nil {
		return fmt.Errorf("failed to create http handler: %w", err)
	}

	grpcServer := newGRPCServer(logger)
	apiv1alpha1.RegisterEncounterServiceServer(grpcServer, encounterHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(apiv1alpha1.EncounterServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           httpHandler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort, "storage", cfg.Storage)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")
	case err := <-errChan:
		slog.Error("Server failed", "error", err)
		shutdown(grpcServer, httpServer, healthServer)
		return err
	}

	shutdown(grpcServer, httpServer, healthServer)
	return nil
}

func shutdown(grpcServer *grpc.Server, httpServer *http.Server, healthServer *health.Server) {
	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown failed", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logOpts := []grpc_logging.Option{
		grpc_logging.WithLogOnEvents(grpc_logging.FinishCall),
	}
	recoveryOpts := []grpc_recovery.Option{
		grpc_recovery.WithRecoveryHandler(func(p any) error {
			slog.Error("Recovered from panic", "panic", p)
			return status.Error(codes.Internal, "internal error")
		}),
	}

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.UnaryServerInterceptor(recoveryOpts...),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger), logOpts...),
			grpc_recovery.StreamServerInterceptor(recoveryOpts...),
		),
	)
}

// interceptorLogger adapts slog to the go-grpc-middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
