// Silt game server — runs the simulation loop, the websocket gateway, and
// the REST/admin API over a shared PostgreSQL world.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/elliotbonneville/silt/pkg/ai"
	"github.com/elliotbonneville/silt/pkg/api"
	"github.com/elliotbonneville/silt/pkg/cleanup"
	"github.com/elliotbonneville/silt/pkg/combat"
	"github.com/elliotbonneville/silt/pkg/config"
	"github.com/elliotbonneville/silt/pkg/database"
	"github.com/elliotbonneville/silt/pkg/engine"
	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/oracle"
	"github.com/elliotbonneville/silt/pkg/services"
	"github.com/elliotbonneville/silt/pkg/version"
)

const writeTimeout = 10 * time.Second

func setupLogging(env string) {
	if env == config.EnvProduction {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.Env)

	slog.Info("Starting silt", "version", version.Full(), "port", cfg.Port, "env", cfg.Env)

	ctx := context.Background()

	// Database: connect, migrate, and build the world store over ent.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	world := services.NewWorld(dbClient.Client)

	if cfg.WorldFile != "" {
		seed, err := config.LoadWorldSeed(cfg.WorldFile)
		if err != nil {
			slog.Error("Failed to load world file", "path", cfg.WorldFile, "error", err)
			os.Exit(1)
		}
		if err := config.SeedWorld(ctx, world, seed); err != nil {
			slog.Error("Failed to seed world", "error", err)
			os.Exit(1)
		}
	}

	// Retention runs in the background; every replica may run it safely.
	retention := cleanup.NewService(cleanup.Config{
		EventRetentionDays: cfg.EventRetentionDays,
		LogRetentionDays:   cfg.LogRetentionDays,
		Interval:           cfg.CleanupInterval,
	},
		services.NewEventService(dbClient.Client),
		services.NewPlayerLogService(dbClient.Client))
	retention.Start(ctx)
	defer retention.Stop()

	// Simulation plumbing: command queue, listening registry, combat,
	// dispatcher.
	queue := game.NewQueue()
	registry := listening.NewRegistry()
	combatSys := combat.NewSystem(world)
	dispatcher := game.NewDispatcher(world, combatSys, registry)

	// AI agents run only when an oracle is configured; the rest of the
	// server works without one.
	var agents *ai.Manager
	if cfg.OpenAIAPIKey != "" {
		orc, err := oracle.NewOpenAIOracle(oracle.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
		if err != nil {
			slog.Error("Failed to initialize oracle", "error", err)
			os.Exit(1)
		}
		agents = ai.NewManager(world, orc, queue)
		slog.Info("Agent manager initialized", "model", cfg.OpenAIModel)
	} else {
		slog.Warn("OPENAI_API_KEY not set, AI agents disabled")
	}

	// Event fan-out: the connection manager delivers to players, the agent
	// manager perceives, and the admin publisher mirrors through pg_notify.
	connManager := api.NewConnectionManager(world, queue, registry, writeTimeout)

	var agentSink events.AgentSink
	if agents != nil {
		agentSink = agents
	}
	adminPublisher := services.NewAdminEventPublisher(dbClient.DB())
	propagator := events.NewPropagator(world, registry, connManager, agentSink, adminPublisher)
	connManager.SetPropagator(propagator)
	if agents != nil {
		agents.AttachBroadcaster(propagator)
	}

	// Admin mirror listener: a dedicated pgx connection LISTENs on the
	// admin channel and feeds notifications back to admin sockets, so
	// every replica sees every event.
	notifyListener := database.NewNotifyListener(dbConfig.DSN(), connManager)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	connManager.SetSubscriber(notifyListener)

	// Engine: restore persisted clock/pause state, then run the loop.
	eng := engine.New(engine.Deps{
		World:      world,
		Queue:      queue,
		Dispatcher: dispatcher,
		Combat:     combatSys,
		Listening:  registry,
		Propagator: propagator,
		Agents:     agents,
		Outputs:    connManager,
		Deaths:     connManager,
	})
	if err := eng.Restore(ctx); err != nil {
		slog.Error("Failed to restore engine state", "error", err)
		os.Exit(1)
	}

	if agents != nil {
		if err := agents.RefreshSpatialMemories(ctx); err != nil {
			slog.Warn("Spatial memory refresh failed", "error", err)
		}
	}

	loopCtx, stopLoop := context.WithCancel(ctx)
	loopDone := make(chan struct{})
	go func() {
		eng.Run(loopCtx)
		close(loopDone)
	}()

	// HTTP server: REST, admin API, and the websocket endpoint.
	httpServer := api.NewServer(world, dbClient, eng, agents, combatSys, connManager)
	httpServer.SetPlayerLogReader(services.NewPlayerLogService(dbClient.Client))
	httpServer.SetClientURL(cfg.ClientURL)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Silt started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop the simulation first so the final game state is persisted before
	// connections drop.
	stopLoop()
	select {
	case <-loopDone:
		slog.Info("Simulation loop stopped gracefully")
	case <-time.After(5 * time.Second):
		slog.Warn("Simulation loop shutdown timeout exceeded")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
