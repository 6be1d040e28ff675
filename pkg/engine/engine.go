// Package engine drives the simulation: a fixed-rate tick loop invoking the
// registered subsystems in order — command drain, world clock, AI manager,
// combat, event propagation. All world mutation happens inside a tick slot on
// the engine goroutine.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/ai"
	"github.com/elliotbonneville/silt/pkg/combat"
	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// TickRate is the fixed simulation frequency.
const TickRate = 10

// statePersistInterval spaces out game-state writes; pause flips persist
// immediately.
const statePersistInterval = 10 * time.Second

// Tick is the per-tick context handed to every subsystem.
type Tick struct {
	Number uint64
	Delta  float64 // seconds
	Paused bool
}

// Subsystem is one slot in the tick order. Errors are logged, never fatal;
// a panicking subsystem is contained and the tick continues.
type Subsystem interface {
	Name() string
	OnTick(ctx context.Context, tick Tick) error
}

// OutputSink returns command replies to the commanding player's socket.
type OutputSink interface {
	SendOutput(characterID string, output *models.StructuredOutput)
	SendError(characterID string, message string)
}

// DeathSink is notified when a player character dies, so the transport can
// send its death notice and schedule the disconnect.
type DeathSink interface {
	NotifyDeath(characterID string)
}

// Deps carries everything the engine orchestrates.
type Deps struct {
	World      store.World
	Queue      *game.Queue
	Dispatcher *game.Dispatcher
	Combat     *combat.System
	Listening  *listening.Registry
	Propagator *events.Propagator
	Agents     *ai.Manager
	Outputs    OutputSink
	Deaths     DeathSink
}

// Engine owns the loop state. Pause/Resume and Status are safe from other
// goroutines; everything else runs on the engine goroutine.
type Engine struct {
	deps       Deps
	subsystems []Subsystem

	tickNumber  uint64
	gameTime    float64
	paused      atomic.Bool
	lastPersist time.Time

	now func() time.Time
}

// New assembles an engine with the canonical subsystem order.
func New(deps Deps) *Engine {
	e := &Engine{deps: deps, now: time.Now}
	e.subsystems = []Subsystem{
		&commandSubsystem{e},
		&clockSubsystem{e},
		&aiSubsystem{e},
		&combatSubsystem{e},
		&propagatorSubsystem{e},
	}
	return e
}

// Restore loads persisted pause state and game time. Call once before Run.
func (e *Engine) Restore(ctx context.Context) error {
	state, err := e.deps.World.GameState().Get(ctx)
	if err != nil {
		return fmt.Errorf("load game state: %w", err)
	}
	e.paused.Store(state.IsPaused)
	e.gameTime = state.GameTime
	slog.Info("Engine state restored", "paused", state.IsPaused, "game_time", state.GameTime)
	return nil
}

// Run blocks, ticking at the fixed rate until the context is cancelled.
// Wall-clock hiccups clamp delta time instead of replaying a backlog.
func (e *Engine) Run(ctx context.Context) {
	interval := time.Second / TickRate
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	budget := interval.Seconds()
	maxDt := budget * 5
	last := e.now()

	slog.Info("Simulation loop started", "tick_rate", TickRate)
	for {
		select {
		case <-ctx.Done():
			e.persistState(context.WithoutCancel(ctx))
			slog.Info("Simulation loop stopped", "ticks", e.tickNumber)
			return
		case <-ticker.C:
			now := e.now()
			dt := now.Sub(last).Seconds()
			if dt <= 0 {
				dt = budget
			} else if dt > maxDt {
				slog.Warn("Tick delta clamped", "dt_seconds", dt, "max_seconds", maxDt)
				dt = maxDt
			}
			last = now

			start := e.now()
			e.Step(ctx, dt)
			if elapsed := e.now().Sub(start); elapsed > interval {
				slog.Warn("Tick exceeded budget",
					"tick", e.tickNumber,
					"duration_ms", elapsed.Milliseconds(),
					"budget_ms", interval.Milliseconds())
			}
		}
	}
}

// Step executes one tick. Exposed so tests can drive the engine manually.
func (e *Engine) Step(ctx context.Context, dt float64) {
	e.tickNumber++
	tick := Tick{Number: e.tickNumber, Delta: dt, Paused: e.paused.Load()}
	for _, sub := range e.subsystems {
		e.runSubsystem(ctx, sub, tick)
	}
}

func (e *Engine) runSubsystem(ctx context.Context, sub Subsystem, tick Tick) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Subsystem panicked", "subsystem", sub.Name(), "tick", tick.Number, "panic", r)
		}
	}()
	if err := sub.OnTick(ctx, tick); err != nil {
		slog.Error("Subsystem tick failed", "subsystem", sub.Name(), "tick", tick.Number, "error", err)
	}
}

// Paused reports the pause flag.
func (e *Engine) Paused() bool {
	return e.paused.Load()
}

// Pause halts simulation subsystems and announces the change.
func (e *Engine) Pause(ctx context.Context) error {
	if e.paused.Swap(true) {
		return nil
	}
	e.announceState("The game has been paused.")
	return e.saveState(ctx)
}

// Resume restarts simulation subsystems.
func (e *Engine) Resume(ctx context.Context) error {
	if !e.paused.Swap(false) {
		return nil
	}
	e.announceState("The game has resumed.")
	return e.saveState(ctx)
}

func (e *Engine) announceState(message string) {
	e.deps.Propagator.Broadcast(&models.GameEvent{
		ID:         uuid.NewString(),
		Type:       models.EventStateChange,
		Timestamp:  e.now(),
		Visibility: models.VisibilityGlobal,
		Payload:    &models.StateChangePayload{Key: "pause", Value: message},
	})
}

func (e *Engine) saveState(ctx context.Context) error {
	state := &models.GameState{IsPaused: e.paused.Load(), GameTime: e.gameTime}
	if err := e.deps.World.GameState().Save(ctx, state); err != nil {
		return fmt.Errorf("persist game state: %w", err)
	}
	e.lastPersist = e.now()
	return nil
}

func (e *Engine) persistState(ctx context.Context) {
	if err := e.saveState(ctx); err != nil {
		slog.Error("Failed to persist game state", "error", err)
	}
}

// Status is the admin snapshot of loop health.
type Status struct {
	Tick          uint64  `json:"tick"`
	GameTime      float64 `json:"gameTime"`
	IsPaused      bool    `json:"isPaused"`
	QueuedCmds    int     `json:"queuedCommands"`
	PendingEvents int     `json:"pendingEvents"`
}

// Status reports loop health for the admin surface. Tick and game time are
// read without synchronization; the snapshot is advisory.
func (e *Engine) Status() Status {
	return Status{
		Tick:          e.tickNumber,
		GameTime:      e.gameTime,
		IsPaused:      e.paused.Load(),
		QueuedCmds:    e.deps.Queue.Len(),
		PendingEvents: e.deps.Propagator.Pending(),
	}
}
