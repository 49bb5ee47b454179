package main

import (
	"chat-relay/bus"
	"chat-relay/infrastructure/gateway"
	"chat-relay/internal"
	"chat-relay/observability"
	"chat-relay/ratelimit"
	"chat-relay/repositories"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until a signal or a server error.
// Returning instead of exiting lets the deferred cleanups run.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := internal.NewLogger(config.LogLevel, config.LogFile)

	// 2. Store (BadgerDB)
	store, err := repositories.Open(config.DataDir, log)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = store.Close()
	}()

	// 3. Bus
	transport, err := bus.New(bus.Kind(config.BusTransport), log)
	if err != nil {
		return err
	}
	publisher, err := transport.Bind(config.BusAddress)
	if err != nil {
		return fmt.Errorf("bus bind failed: %w", err)
	}
	defer func() { _ = publisher.Close() }()

	// 4. Services
	monitor := observability.NewMonitoringManager(log, config.StatsInterval)
	limiter := ratelimit.New(config.RateCapacity, config.RateRefillPerSec)
	rooms := services.NewRoomService(log, store, publisher, monitor)
	presence := services.NewPresenceService(log, store, publisher, monitor,
		config.PresenceSweepInterval, config.PresenceTimeout)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = presence.Start(ctx); err != nil {
		return fmt.Errorf("presence failed to start: %w", err)
	}

	// 6. Background maintenance under supervision
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewRetentionWorker(log, store, config.RetentionDays, config.RetentionInterval),
		workers.NewSnapshotWorker(log, store, config.SnapshotDir, config.SnapshotInterval),
		workers.NewProcessStatsWorker(log, config.StatsInterval),
		monitor,
	)
	supervisorDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervisorDone)
	}()

	// 7. HTTP / WebSocket gateway
	server := gateway.NewServer(log, gateway.Dependencies{
		Rooms:          rooms,
		Presence:       presence,
		Limiter:        limiter,
		Counters:       store,
		Subscriber:     transport,
		BusAddress:     config.BusAddress,
		Monitor:        monitor,
		DefaultRoom:    config.DefaultRoom,
		HistoryLimit:   config.HistoryLimit,
		HeartbeatEvery: config.PresenceTimeout / 2,
	})
	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		// Hijacked WebSocket connections are not tracked by Shutdown,
		// they end when this context is cancelled
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting gateway", "address", httpServer.Addr, "bus", config.BusTransport, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err = <-errChan:
		log.Error("Gateway failed", "error", err)
	}
	// Ends sessions and workers on the error path too
	stop()

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("HTTP shutdown incomplete", "error", shutdownErr)
	}
	if shutdownErr := presence.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Warn("Presence shutdown incomplete", "error", shutdownErr)
	}
	sup.Stop()
	<-supervisorDone
	log.Info("Program stopped cleanly")

	return err
}
