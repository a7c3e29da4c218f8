package main

import (
	"chat-gate/auth"
	"chat-gate/contract"
	"chat-gate/domain/event"
	"chat-gate/infrastructure/grpc/server"
	"chat-gate/internal"
	"chat-gate/pipeline"
	"chat-gate/policy"
	pb "chat-gate/proto/chat/v1"
	"chat-gate/repositories"
	"chat-gate/runtime/workers"
	"chat-gate/search"
	"chat-gate/services"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Returning instead of exiting lets the deferred closes flush the stores.
func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	location, err := config.Location()
	if err != nil {
		return exitConfig, err
	}
	bypassRoles, err := config.BypassRoleList()
	if err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Stores
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open bluge writer: %w", err)
	}
	defer func() {
		logger.Info("Closing Bluge...")
		_ = blugeWriter.Close()
	}()

	// 3. Domain
	clock := contract.SystemClock{}
	events := make(chan event.DomainEvent, config.EventBufferSize)
	userRepository := repositories.NewUserRepository(db)
	index := search.NewMessageIndex(blugeWriter, logger)
	chatService := services.NewChatService(logger,
		userRepository,
		repositories.NewConversationRepository(db, logger),
		repositories.NewMessageRepository(db, logger),
		index, clock, events)

	limiter := policy.NewRateLimiter(config.RateLimit, config.RateWindow)
	gate := pipeline.NewDefault(logger, pipeline.Gates{
		TimeWindow:  policy.NewTimeWindowGate(config.FromHour, config.ToHour, location),
		RateLimiter: limiter,
		Role:        policy.NewRoleGate(),
		Resolver:    chatService,
		BypassRoles: bypassRoles,
	}).WithTimeout(config.RequestTimeout)
	logger.Info("Request pipeline ready", "stages", gate.Stages())

	// 4. Background workers
	sup := workers.NewSupervisor(logger, config.RestartInterval)
	health := workers.NewHealthMonitoringWorker(logger, config.MetricInterval, func(s *workers.HealthSnapshot) {
		s.ActiveLedgers = limiter.Len()
		s.ActiveClocks = chatService.ActiveClocks()
		s.WorkerRestarts = sup.Restarts()
	})
	sup.Add(
		workers.NewLedgerJanitor(logger, limiter, clock, config.JanitorInterval),
		workers.NewClockJanitor(logger, chatService, clock, config.JanitorInterval, config.ClockIdle),
		workers.NewMessageIndexer(logger, events, index),
		health,
	)
	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		debug := internal.NewDebugServer(logger, db, config.DebugPort, endpoint, healthStats(health))
		debug.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = debug.Shutdown(shutdownCtx)
		}()
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
	}

	// 5. gRPC Server
	address := net.JoinHostPort(config.Host, fmt.Sprint(config.Port))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	tokens := auth.NewTokens(config.JWTSecret, config.JWTIssuer)
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			server.AuthInterceptor(logger, tokens),
		))
	pb.RegisterConversationServiceServer(s, server.NewChatServer(logger, chatService, chatService, gate, clock))

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	code := exitOK
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errChan:
		code = exitRuntime
	}

	// 7. Graceful shutdown: drain in-flight requests, then the workers.
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	sup.Stop()
	<-supDone
	logger.Info("Program stopped cleanly")
	return code, err
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

func healthStats(health *workers.HealthMonitoringWorker) internal.StatsProvider {
	return func() map[string]any {
		snapshot := health.Latest()
		return map[string]any{
			"sampled_at":      snapshot.At.Format(time.RFC3339),
			"pid":             snapshot.PID,
			"status":          snapshot.Status,
			"cpu_percent":     fmt.Sprintf("%.1f", snapshot.CPUPercent),
			"rss_mb":          snapshot.RSSBytes / (1 << 20),
			"goroutines":      snapshot.Goroutines,
			"active_ledgers":  snapshot.ActiveLedgers,
			"active_clocks":   snapshot.ActiveClocks,
			"worker_restarts": snapshot.WorkerRestarts,
		}
	}
}
