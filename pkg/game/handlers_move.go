package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

func (d *Dispatcher) handleGo(ctx context.Context, cmd Command, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Go where?"))
	}
	direction := strings.ToLower(args[0])

	room, err := d.world.Rooms().Get(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("load room %s: %w", actor.RoomID, err))
	}
	destID, ok := room.Exit(direction)
	if !ok {
		return failure(errors.New("You can't go that way"))
	}

	if cmd.Source == SourceAI {
		if res := d.checkAgentRange(ctx, actor, destID); res != nil {
			return res
		}
	}

	dest, err := d.world.Rooms().Get(ctx, destID)
	if err != nil {
		return failure(fmt.Errorf("load room %s: %w", destID, err))
	}

	fromID := actor.RoomID
	actor.RoomID = destID
	actor.LastActionAt = d.now()
	// The room change must be durable before the movement event fans out, so
	// recipient computation sees the mover on the destination side.
	if err := d.world.Characters().Update(ctx, actor); err != nil {
		return failure(fmt.Errorf("persist move of %s: %w", actor.ID, err))
	}

	movement := d.event(models.EventMovement, fromID, models.VisibilityRoom, &models.MovementPayload{
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		FromRoomID: fromID,
		ToRoomID:   destID,
		Direction:  direction,
	})

	_, text, err := d.describeRoom(ctx, dest, actor.ID)
	if err != nil {
		return failure(err)
	}
	arrival := d.event(models.EventRoomDescription, destID, models.VisibilityPrivate, &models.RoomDescriptionPayload{
		ActorID: actor.ID,
		RoomID:  destID,
		Text:    text,
	})
	arrival.Recipients = []string{actor.ID}

	return success(nil, movement, arrival)
}

// checkAgentRange rejects AI movement that would stray beyond the agent's
// allowed radius from home. Players are never range-limited.
func (d *Dispatcher) checkAgentRange(ctx context.Context, actor *models.Character, destID string) *CommandResult {
	agent, err := d.world.Agents().GetByCharacter(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return failure(fmt.Errorf("load agent for %s: %w", actor.ID, err))
	}

	dist, err := roomDistance(ctx, d.world.Rooms(), agent.HomeRoomID, destID)
	if err != nil {
		return failure(fmt.Errorf("measure range from home: %w", err))
	}
	if dist >= 0 && dist <= agent.MaxRoomsFromHome {
		return nil
	}

	res := failure(errors.New("You feel a pull to stay closer to home."))
	res.Events = append(res.Events, d.event(models.EventAIError, actor.RoomID, models.VisibilityPrivate, &models.AIErrorPayload{
		AgentID:   agent.ID,
		AgentName: actor.Name,
		Message: fmt.Sprintf("movement to %s rejected: %d hops from home exceeds limit %d",
			destID, dist, agent.MaxRoomsFromHome),
	}))
	return res
}

func (d *Dispatcher) handleFlee(ctx context.Context, cmd Command, actor *models.Character) *CommandResult {
	inCombat := d.combat.InCombat(actor.ID) || len(d.combat.Attackers(actor.ID)) > 0
	if !inCombat {
		return failure(errors.New("You aren't fighting anyone."))
	}

	room, err := d.world.Rooms().Get(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("load room %s: %w", actor.RoomID, err))
	}
	exits := room.SortedExits()
	if len(exits) == 0 {
		return failure(errors.New("There is nowhere to run!"))
	}

	if d.rng.Float64() >= FleeChance {
		return failure(errors.New("You try to flee, but can't escape!"))
	}

	d.combat.Stop(actor.ID)
	direction := exits[d.rng.Intn(len(exits))]
	return d.handleGo(ctx, cmd, actor, []string{direction})
}
