package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/combat"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// FleeChance is the base probability a flee attempt succeeds.
const FleeChance = 0.7

// directionShortcuts expands single-letter movement commands.
var directionShortcuts = map[string]string{
	"n": "north", "s": "south", "e": "east", "w": "west",
	"u": "up", "d": "down",
}

// bareDirections lets a direction word stand alone as a movement command.
var bareDirections = map[string]bool{
	"north": true, "south": true, "east": true, "west": true,
	"up": true, "down": true,
	"northeast": true, "northwest": true, "southeast": true, "southwest": true,
}

// Dispatcher routes parsed commands to handlers. It runs exclusively on the
// simulation goroutine.
type Dispatcher struct {
	world     store.World
	combat    *combat.System
	listening *listening.Registry
	rng       *rand.Rand
	now       func() time.Time
}

// NewDispatcher wires a dispatcher over the world and the combat/listening
// subsystems it mutates.
func NewDispatcher(world store.World, combatSys *combat.System, reg *listening.Registry) *Dispatcher {
	return &Dispatcher{
		world:     world,
		combat:    combatSys,
		listening: reg,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:       time.Now,
	}
}

// Dispatch executes one command against the world and returns its result.
// The result's Output goes back to the commanding socket; its Events go to
// the propagator afterwards.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) *CommandResult {
	actor, err := d.world.Characters().Get(ctx, cmd.ActorID)
	if err != nil {
		return failure(fmt.Errorf("resolve actor %s: %w", cmd.ActorID, err))
	}
	if !actor.IsAlive {
		return failure(errors.New("You are dead."))
	}

	tokens := tokenize(cmd.Text)
	if len(tokens) == 0 {
		return failure(errors.New("Unknown command"))
	}
	verb := strings.ToLower(tokens[0])
	args := tokens[1:]

	if full, ok := directionShortcuts[verb]; ok {
		verb, args = "go", []string{full}
	} else if bareDirections[verb] {
		verb, args = "go", []string{verb}
	}

	res := d.route(ctx, cmd, actor, verb, args)
	if res.Success {
		actor.LastActionAt = d.now()
		if err := d.world.Characters().Update(ctx, actor); err != nil {
			return failure(fmt.Errorf("persist actor %s: %w", actor.ID, err))
		}
	}
	return res
}

func (d *Dispatcher) route(ctx context.Context, cmd Command, actor *models.Character, verb string, args []string) *CommandResult {
	switch verb {
	case "look", "l":
		return d.handleLook(ctx, actor)
	case "go", "move":
		return d.handleGo(ctx, cmd, actor, args)
	case "say":
		return d.handleSay(actor, args)
	case "shout":
		return d.handleShout(actor, args)
	case "emote":
		return d.handleEmote(actor, args)
	case "tell":
		return d.handleDirected(ctx, actor, args, models.EventTell)
	case "whisper":
		return d.handleDirected(ctx, actor, args, models.EventWhisper)
	case "inventory", "i", "inv":
		return d.handleInventory(ctx, actor)
	case "take", "get":
		return d.handleTake(ctx, actor, args)
	case "drop":
		return d.handleDrop(ctx, actor, args)
	case "equip", "wield", "wear":
		return d.handleEquip(ctx, actor, args)
	case "unequip", "remove":
		return d.handleUnequip(ctx, actor, args)
	case "use", "eat", "drink":
		return d.handleUse(ctx, actor, args)
	case "examine", "exa", "x":
		return d.handleExamine(ctx, actor, args)
	case "attack", "kill", "fight", "hit":
		return d.handleAttack(ctx, actor, args)
	case "flee", "run", "escape":
		return d.handleFlee(ctx, cmd, actor)
	case "stop":
		return d.handleStop(actor)
	case "listen", "ls":
		return d.handleListen(ctx, actor, args)
	default:
		return failure(fmt.Errorf("Unknown command: %s", verb))
	}
}

// event stamps a new game event with identity and time.
func (d *Dispatcher) event(t models.EventType, originRoomID string, visibility models.Visibility, payload models.EventPayload) *models.GameEvent {
	return &models.GameEvent{
		ID:           uuid.NewString(),
		Type:         t,
		Timestamp:    d.now(),
		OriginRoomID: originRoomID,
		Visibility:   visibility,
		Payload:      payload,
	}
}

// charactersPresent lists living characters in the room, optionally excluding
// one id.
func (d *Dispatcher) charactersPresent(ctx context.Context, roomID, excludeID string) ([]*models.Character, error) {
	all, err := d.world.Characters().ListByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, c := range all {
		if c.ID != excludeID && c.IsAlive {
			out = append(out, c)
		}
	}
	return out, nil
}

func characterCandidates(chars []*models.Character) []candidate {
	cands := make([]candidate, len(chars))
	for i, c := range chars {
		cands[i] = candidate{id: c.ID, name: c.Name}
	}
	return cands
}

func itemCandidates(items []*models.Item) []candidate {
	cands := make([]candidate, len(items))
	for i, it := range items {
		cands[i] = candidate{id: it.ID, name: it.Name}
	}
	return cands
}

func findCharacter(chars []*models.Character, id string) *models.Character {
	for _, c := range chars {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func findItem(items []*models.Item, id string) *models.Item {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
