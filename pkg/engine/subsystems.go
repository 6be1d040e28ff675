package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// commandSubsystem drains the queue and dispatches each command. The reply
// goes to the commanding socket before the command's events reach the
// propagator, so a player always sees their own output first. While paused,
// commands stay queued.
type commandSubsystem struct{ e *Engine }

func (s *commandSubsystem) Name() string { return "commands" }

func (s *commandSubsystem) OnTick(ctx context.Context, tick Tick) error {
	if tick.Paused {
		return nil
	}
	for _, cmd := range s.e.deps.Queue.Drain(game.DrainCap) {
		s.dispatch(ctx, cmd)
	}
	return nil
}

func (s *commandSubsystem) dispatch(ctx context.Context, cmd game.Command) {
	actor, err := s.e.deps.World.Characters().Get(ctx, cmd.ActorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.Warn("Dropping command for missing actor", "actor_id", cmd.ActorID, "text", cmd.Text)
		} else {
			slog.Error("Failed to load command actor", "actor_id", cmd.ActorID, "error", err)
		}
		return
	}
	if !actor.IsAlive && cmd.Source == game.SourceAI {
		slog.Warn("Dropping command for dead agent", "actor_id", cmd.ActorID, "text", cmd.Text)
		return
	}

	if cmd.Source == game.SourcePlayer {
		s.log(ctx, cmd.ActorID, models.LogCommand, cmd.Text)
	}

	res := s.e.deps.Dispatcher.Dispatch(ctx, cmd)

	if cmd.Source == game.SourcePlayer {
		if res.Err != nil && s.e.deps.Outputs != nil {
			s.e.deps.Outputs.SendError(cmd.ActorID, res.Err.Error())
			s.log(ctx, cmd.ActorID, models.LogOutput, res.Err.Error())
		}
		if res.Output != nil && s.e.deps.Outputs != nil {
			s.e.deps.Outputs.SendOutput(cmd.ActorID, res.Output)
			s.log(ctx, cmd.ActorID, models.LogOutput, res.Output.Text)
		}
	}

	s.e.deps.Propagator.BroadcastAll(res.Events)
}

func (s *commandSubsystem) log(ctx context.Context, characterID string, kind models.LogKind, payload string) {
	entry := &models.PlayerLog{
		CharacterID: characterID,
		Kind:        kind,
		Payload:     payload,
		Timestamp:   s.e.now(),
	}
	if err := s.e.deps.World.PlayerLogs().Append(ctx, entry); err != nil {
		slog.Error("Failed to append player log", "character_id", characterID, "error", err)
	}
}

// clockSubsystem accumulates game time and periodically persists engine state.
type clockSubsystem struct{ e *Engine }

func (s *clockSubsystem) Name() string { return "clock" }

func (s *clockSubsystem) OnTick(ctx context.Context, tick Tick) error {
	if !tick.Paused {
		s.e.gameTime += tick.Delta
	}
	if s.e.now().Sub(s.e.lastPersist) >= statePersistInterval {
		return s.e.saveState(ctx)
	}
	return nil
}

// aiSubsystem hands the tick to the agent manager; the manager itself decides
// which agents act and offloads oracle calls to workers.
type aiSubsystem struct{ e *Engine }

func (s *aiSubsystem) Name() string { return "ai" }

func (s *aiSubsystem) OnTick(ctx context.Context, tick Tick) error {
	if s.e.deps.Agents == nil {
		return nil
	}
	return s.e.deps.Agents.OnTick(ctx, tick.Paused)
}

// combatSubsystem advances gauges and routes deaths: the victim stops
// eavesdropping, and player victims get their death notice so the transport
// can close the socket.
type combatSubsystem struct{ e *Engine }

func (s *combatSubsystem) Name() string { return "combat" }

func (s *combatSubsystem) OnTick(ctx context.Context, tick Tick) error {
	if tick.Paused {
		return nil
	}
	res, err := s.e.deps.Combat.Tick(ctx)
	if res != nil {
		s.e.deps.Propagator.BroadcastAll(res.Events)
		for _, victimID := range res.Deaths {
			s.e.deps.Listening.Drop(victimID)
			s.notifyDeath(ctx, victimID)
		}
	}
	return err
}

func (s *combatSubsystem) notifyDeath(ctx context.Context, victimID string) {
	if s.e.deps.Deaths == nil {
		return
	}
	victim, err := s.e.deps.World.Characters().Get(ctx, victimID)
	if err != nil {
		slog.Error("Failed to load combat victim", "character_id", victimID, "error", err)
		return
	}
	if victim.IsNPC() {
		return
	}
	s.e.deps.Deaths.NotifyDeath(victimID)
}

// propagatorSubsystem flushes the event buffer last, after every other
// subsystem has emitted. Runs while paused so admin announcements still land.
type propagatorSubsystem struct{ e *Engine }

func (s *propagatorSubsystem) Name() string { return "propagator" }

func (s *propagatorSubsystem) OnTick(ctx context.Context, _ Tick) error {
	return s.e.deps.Propagator.Flush(ctx)
}
