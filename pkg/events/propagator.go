package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// PlayerSink delivers formatted events to a connected player's socket.
// Implementations must not block the simulation goroutine.
type PlayerSink interface {
	SendEvent(characterID string, event *WireEvent)
}

// AgentSink feeds an AI-controlled character's perception queue.
type AgentSink interface {
	Perceive(characterID string, event *models.GameEvent, rendered string)
}

// AdminSink receives the omniscient mirror of every event.
type AdminSink interface {
	MirrorEvent(ctx context.Context, envelope *EventWithRecipients) error
}

// Propagator owns the event FIFO. Broadcast may be called from any goroutine;
// Flush runs only on the simulation goroutine at its tick slot.
type Propagator struct {
	world     store.World
	listening *listening.Registry
	players   PlayerSink
	agents    AgentSink
	admin     AdminSink

	mu    sync.Mutex
	queue []*models.GameEvent
}

// NewPropagator wires a propagator over the world and its delivery sinks.
// Any sink may be nil, in which case that leg of delivery is skipped.
func NewPropagator(world store.World, reg *listening.Registry, players PlayerSink, agents AgentSink, admin AdminSink) *Propagator {
	return &Propagator{
		world:     world,
		listening: reg,
		players:   players,
		agents:    agents,
		admin:     admin,
	}
}

// Broadcast enqueues an event for the next flush.
func (p *Propagator) Broadcast(e *models.GameEvent) {
	p.mu.Lock()
	p.queue = append(p.queue, e)
	p.mu.Unlock()
}

// BroadcastAll enqueues a batch in order.
func (p *Propagator) BroadcastAll(events []*models.GameEvent) {
	if len(events) == 0 {
		return
	}
	p.mu.Lock()
	p.queue = append(p.queue, events...)
	p.mu.Unlock()
}

// Pending reports the queue depth.
func (p *Propagator) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Flush drains the queue in FIFO order. Per event: persist, compute
// recipients, attenuate by distance, mirror to admin, format per recipient,
// deliver. A failing event is logged and skipped; delivery order per recipient
// matches enqueue order across the whole queue.
func (p *Propagator) Flush(ctx context.Context) error {
	p.mu.Lock()
	batch := p.queue
	p.queue = nil
	p.mu.Unlock()

	for _, e := range batch {
		if err := p.propagate(ctx, e); err != nil {
			slog.Error("Failed to propagate event",
				"event_id", e.ID, "event_type", e.Type, "error", err)
		}
	}
	return nil
}

func (p *Propagator) propagate(ctx context.Context, e *models.GameEvent) error {
	if err := p.world.Events().Append(ctx, e); err != nil {
		return fmt.Errorf("persist event: %w", err)
	}

	recipients, err := p.computeRecipients(ctx, e)
	if err != nil {
		return fmt.Errorf("compute recipients: %w", err)
	}

	if p.admin != nil {
		ids := make([]string, 0, len(recipients))
		for id := range recipients {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		envelope := &EventWithRecipients{
			Event:      ToWire(e, Format(e, "", "", false)),
			Rendered:   Format(e, "", "", false),
			Recipients: ids,
		}
		if err := p.admin.MirrorEvent(ctx, envelope); err != nil {
			slog.Warn("Admin mirror failed", "event_id", e.ID, "error", err)
		}
	}
	if e.AdminOnly() {
		return nil
	}

	ordered := make([]string, 0, len(recipients))
	for id := range recipients {
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)

	for _, id := range ordered {
		if err := p.deliver(ctx, e, id, recipients[id]); err != nil {
			slog.Warn("Event delivery failed",
				"event_id", e.ID, "recipient", id, "error", err)
		}
	}
	return nil
}

// computeRecipients maps character id → distance from the event origin.
func (p *Propagator) computeRecipients(ctx context.Context, e *models.GameEvent) (map[string]int, error) {
	recipients := make(map[string]int)

	if e.AdminOnly() {
		return recipients, nil
	}

	if e.Visibility == models.VisibilityPrivate {
		if len(e.Recipients) > 0 {
			for _, id := range e.Recipients {
				recipients[id] = 0
			}
		} else if actor := e.Payload.Actor(); actor != "" {
			recipients[actor] = 0
		}
		return recipients, nil
	}

	if e.Visibility == models.VisibilityGlobal {
		all, err := p.world.Characters().All(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range all {
			recipients[c.ID] = 0
		}
		return recipients, nil
	}

	hops := PropagationRange(e.Type)
	if hops < 0 {
		// Per-actor events carry explicit recipients or fall back to the actor.
		if len(e.Recipients) > 0 {
			for _, id := range e.Recipients {
				recipients[id] = 0
			}
		} else if actor := e.Payload.Actor(); actor != "" {
			recipients[actor] = 0
		}
		return recipients, nil
	}

	rooms, err := p.roomsWithin(ctx, e.OriginRoomID, hops)
	if err != nil {
		return nil, err
	}

	// Movement reaches the destination room as if it were the origin.
	if move, ok := e.Payload.(*models.MovementPayload); ok {
		rooms[move.ToRoomID] = 0
	}

	for roomID, dist := range rooms {
		chars, err := p.world.Characters().ListByRoom(ctx, roomID)
		if err != nil {
			return nil, err
		}
		for _, c := range chars {
			if prev, ok := recipients[c.ID]; !ok || dist < prev {
				recipients[c.ID] = dist
			}
		}
	}
	return recipients, nil
}

// roomsWithin BFS-walks the exit graph, returning room id → hop distance for
// every room within maxHops of the origin.
func (p *Propagator) roomsWithin(ctx context.Context, originID string, maxHops int) (map[string]int, error) {
	dist := map[string]int{originID: 0}
	frontier := []string{originID}
	for depth := 1; depth <= maxHops && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			room, err := p.world.Rooms().Get(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return nil, err
			}
			for _, dest := range room.Exits {
				if _, seen := dist[dest]; seen {
					continue
				}
				dist[dest] = depth
				next = append(next, dest)
			}
		}
		frontier = next
	}
	return dist, nil
}

// attenuate returns the event variant a recipient at the given distance should
// see. Distant combat and death collapse into ambient noise; distant shouts
// keep their type but flag attenuation for the formatter.
func attenuate(e *models.GameEvent, distance int) *models.GameEvent {
	if distance <= 0 {
		return e
	}
	switch e.Type {
	case models.EventShout:
		dup := e.Clone()
		dup.Attenuated = true
		return dup
	case models.EventCombatStart:
		dup := e.Clone()
		dup.Type = models.EventAmbient
		dup.Attenuated = true
		dup.Payload = &models.AmbientPayload{Message: ambientStub("the clash of a fight breaking out", distance)}
		return dup
	case models.EventDeath:
		dup := e.Clone()
		dup.Type = models.EventAmbient
		dup.Attenuated = true
		dup.Payload = &models.AmbientPayload{Message: ambientStub("a dying scream", distance)}
		return dup
	default:
		return e
	}
}

func ambientStub(what string, distance int) string {
	if distance >= 2 {
		return "Far off, you hear " + what + "."
	}
	return "From somewhere nearby, you hear " + what + "."
}

func (p *Propagator) deliver(ctx context.Context, e *models.GameEvent, characterID string, distance int) error {
	recipient, err := p.world.Characters().Get(ctx, characterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	variant := attenuate(e, distance)
	viewerRoomID := recipient.RoomID
	// By flush time the mover already stands in the destination, so their
	// movement line must render from the departure side.
	if move, ok := variant.Payload.(*models.MovementPayload); ok && characterID == move.ActorID {
		viewerRoomID = move.FromRoomID
	}
	rendered := Format(variant, characterID, viewerRoomID, p.isListening(characterID, variant))
	if rendered == "" {
		return nil
	}

	if recipient.IsNPC() {
		if p.agents != nil {
			p.agents.Perceive(characterID, variant, rendered)
		}
		return nil
	}

	if p.players != nil {
		p.players.SendEvent(characterID, ToWire(variant, rendered))
	}
	logEntry := &models.PlayerLog{
		CharacterID: characterID,
		Kind:        models.LogEvent,
		Payload:     rendered,
		Timestamp:   e.Timestamp,
	}
	if err := p.world.PlayerLogs().Append(ctx, logEntry); err != nil {
		return fmt.Errorf("append player log: %w", err)
	}
	return nil
}

// isListening resolves the eavesdropping override for directed messages.
func (p *Propagator) isListening(viewerID string, e *models.GameEvent) bool {
	if p.listening == nil {
		return false
	}
	switch payload := e.Payload.(type) {
	case *models.TellPayload:
		return p.listening.IsListeningTo(viewerID, payload.ActorID, payload.TargetID)
	case *models.WhisperPayload:
		return p.listening.IsListeningTo(viewerID, payload.ActorID, payload.TargetID)
	default:
		return false
	}
}
