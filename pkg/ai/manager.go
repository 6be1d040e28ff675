// Package ai runs the agent brains: perception queues fed by the event
// propagator, a proactive decision loop, the conversation path for direct
// address, relationship bookkeeping, and spatial-memory refresh.
package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/oracle"
	"github.com/elliotbonneville/silt/pkg/store"
)

// Tuning constants for the agent loop.
const (
	// PerceptionWindow is the rolling cutoff for queued perception.
	PerceptionWindow = 30 * time.Second
	// ActionCooldown is the minimum spacing between an agent's actions.
	ActionCooldown = 3 * time.Second
	// ProactiveInterval is the cadence of the unprompted decision pass.
	ProactiveInterval = 10 * time.Second
	// OracleTimeout bounds a single oracle round trip. On expiry the call
	// fails, the decision is a no-op, and an ai:error event is emitted.
	OracleTimeout = 30 * time.Second
)

// availableCommands is the tool registry exposed to the oracle; it mirrors
// the dispatcher's verb table.
var availableCommands = []string{
	"look", "go", "say", "shout", "emote", "tell", "whisper",
	"inventory", "take", "drop", "equip", "unequip", "use",
	"examine", "attack", "flee", "stop", "listen",
}

// Broadcaster accepts events for the next propagator flush.
type Broadcaster interface {
	Broadcast(e *models.GameEvent)
}

type perceived struct {
	at       time.Time
	event    *models.GameEvent
	rendered string
}

// Manager owns all agent runtime state. Perceive and OnTick run on the
// simulation goroutine; oracle calls run on worker goroutines and feed their
// results back through the command queue and the broadcaster, so the mutex
// only guards the manager's own maps.
type Manager struct {
	world   store.World
	oracle  oracle.Oracle
	queue   *game.Queue
	emitter Broadcaster

	mu            sync.Mutex
	perceptions   map[string][]perceived // character id → pending perception
	lastAction    map[string]time.Time   // character id → cooldown anchor
	inFlight      map[string]bool        // character id → oracle call running
	lastProactive time.Time

	now         func() time.Time
	spawn       func(func()) // oracle call scheduler; tests make it synchronous
	callTimeout time.Duration
}

// NewManager creates an agent manager. AttachBroadcaster must be called before
// the first tick so decisions can emit their introspection events.
func NewManager(world store.World, o oracle.Oracle, queue *game.Queue) *Manager {
	return &Manager{
		world:       world,
		oracle:      o,
		queue:       queue,
		perceptions: make(map[string][]perceived),
		lastAction:  make(map[string]time.Time),
		inFlight:    make(map[string]bool),
		now:         time.Now,
		spawn:       func(fn func()) { go fn() },
		callTimeout: OracleTimeout,
	}
}

// AttachBroadcaster wires the event sink. Separate from the constructor
// because the propagator needs the manager as its agent sink first.
func (m *Manager) AttachBroadcaster(b Broadcaster) {
	m.emitter = b
}

// Perceive implements the propagator's agent sink: queue the event, prune the
// window, and trigger the conversation path when the agent is addressed
// directly.
func (m *Manager) Perceive(characterID string, e *models.GameEvent, rendered string) {
	now := m.now()
	m.mu.Lock()
	q := append(m.perceptions[characterID], perceived{at: now, event: e, rendered: rendered})
	m.perceptions[characterID] = pruneWindow(q, now)
	m.mu.Unlock()

	if speaker, message, ok := directAddress(characterID, e); ok {
		m.handleConversation(characterID, speaker, message)
	}
}

// pruneWindow drops entries older than the perception window.
func pruneWindow(q []perceived, now time.Time) []perceived {
	cutoff := now.Add(-PerceptionWindow)
	i := 0
	for i < len(q) && q[i].at.Before(cutoff) {
		i++
	}
	return q[i:]
}

// directAddress reports whether the event is a message aimed at the agent.
func directAddress(characterID string, e *models.GameEvent) (speaker, message string, ok bool) {
	switch p := e.Payload.(type) {
	case *models.TellPayload:
		if p.TargetID == characterID {
			return p.ActorName, p.Message, true
		}
	case *models.WhisperPayload:
		if p.TargetID == characterID {
			return p.ActorName, p.Message, true
		}
	}
	return "", "", false
}

// OnTick runs the proactive loop when its cadence elapses. Skips are cheap;
// oracle calls are handed to worker goroutines and their chosen actions come
// back through the command queue.
func (m *Manager) OnTick(ctx context.Context, paused bool) error {
	if paused {
		return nil
	}
	now := m.now()
	m.mu.Lock()
	if now.Sub(m.lastProactive) < ProactiveInterval {
		m.mu.Unlock()
		return nil
	}
	m.lastProactive = now
	m.mu.Unlock()

	agents, err := m.world.Agents().All(ctx)
	if err != nil {
		return fmt.Errorf("list agents: %w", err)
	}
	for _, agent := range agents {
		m.considerAgent(ctx, agent, now)
	}
	return nil
}

func (m *Manager) considerAgent(ctx context.Context, agent *models.AIAgent, now time.Time) {
	char, err := m.world.Characters().Get(ctx, agent.CharacterID)
	if err != nil || !char.IsAlive {
		return
	}

	// Agents only act around humans; an all-NPC room stays quiet.
	if !m.humanPresent(ctx, char) {
		return
	}

	m.mu.Lock()
	if m.inFlight[char.ID] {
		m.mu.Unlock()
		return
	}
	last := m.lastAction[char.ID]
	if last.IsZero() {
		last = agent.LastActionAt
	}
	if now.Sub(last) < ActionCooldown {
		m.mu.Unlock()
		return
	}
	window := pruneWindow(m.perceptions[char.ID], now)
	if len(window) == 0 {
		m.perceptions[char.ID] = window
		m.mu.Unlock()
		return
	}
	// Consume the window: these events belong to exactly one decision.
	m.perceptions[char.ID] = nil
	m.inFlight[char.ID] = true
	m.mu.Unlock()

	snapshot, err := m.buildContext(ctx, agent, char, window, now.Sub(last))
	if err != nil {
		m.clearInFlight(char.ID)
		slog.Warn("Failed to build agent context", "agent_id", agent.ID, "error", err)
		return
	}

	m.spawn(func() { m.decideAction(agent, char, snapshot) })
}

// humanPresent reports whether a living player shares the agent's room.
func (m *Manager) humanPresent(ctx context.Context, char *models.Character) bool {
	chars, err := m.world.Characters().ListByRoom(ctx, char.RoomID)
	if err != nil {
		return false
	}
	for _, c := range chars {
		if !c.IsNPC() && c.IsAlive {
			return true
		}
	}
	return false
}

// decideAction runs on a worker goroutine: one oracle round trip, results
// posted back through thread-safe surfaces only.
func (m *Manager) decideAction(agent *models.AIAgent, char *models.Character, snapshot *oracle.AgentContext) {
	defer m.clearInFlight(char.ID)
	ctx := context.Background()

	callCtx, cancel := context.WithTimeout(ctx, m.callTimeout)
	decision, usage, err := m.oracle.DecideAction(callCtx, snapshot)
	cancel()
	m.recordUsage(ctx, usage)
	if err != nil {
		m.emitAgentEvent(models.EventAIError, char, &models.AIErrorPayload{
			AgentID: agent.ID, AgentName: char.Name, Message: err.Error(),
		})
		return
	}
	if decision == nil {
		// cooldown advances only on chosen actions
		return
	}

	m.emitAgentEvent(models.EventAIDecision, char, &models.AIDecisionPayload{
		AgentID: agent.ID, AgentName: char.Name, Reasoning: decision.Reasoning,
	})

	text := strings.TrimSpace(decision.Action + " " + decision.Arguments)
	m.queue.Enqueue(game.Command{
		Source:     game.SourceAI,
		ActorID:    char.ID,
		Text:       text,
		EnqueuedAt: m.now(),
	})
	m.emitAgentEvent(models.EventAIAction, char, &models.AIActionPayload{
		AgentID: agent.ID, AgentName: char.Name,
		Action: decision.Action, Arguments: decision.Arguments,
	})
	m.markActed(ctx, agent, char.ID)
}

// handleConversation reacts to direct address: record the line, ask the
// oracle whether to respond, and speak through the command queue.
func (m *Manager) handleConversation(characterID, speaker, message string) {
	now := m.now()
	m.mu.Lock()
	if m.inFlight[characterID] {
		m.mu.Unlock()
		return
	}
	m.inFlight[characterID] = true
	m.mu.Unlock()

	ctx := context.Background()
	agent, err := m.world.Agents().GetByCharacter(ctx, characterID)
	if err != nil {
		m.clearInFlight(characterID)
		return
	}
	char, err := m.world.Characters().Get(ctx, characterID)
	if err != nil || !char.IsAlive {
		m.clearInFlight(characterID)
		return
	}

	agent.RecordConversation(models.ConversationEntry{
		Speaker: speaker, Message: message, Timestamp: now,
	})
	if err := m.world.Agents().Update(ctx, agent); err != nil {
		slog.Warn("Failed to persist conversation", "agent_id", agent.ID, "error", err)
	}

	snapshot, err := m.buildContext(ctx, agent, char, nil, now.Sub(agent.LastActionAt))
	if err != nil {
		m.clearInFlight(characterID)
		return
	}

	m.spawn(func() { m.decideResponse(agent, char, snapshot, speaker, message) })
}

func (m *Manager) decideResponse(agent *models.AIAgent, char *models.Character, snapshot *oracle.AgentContext, speaker, message string) {
	defer m.clearInFlight(char.ID)
	ctx := context.Background()

	callCtx, cancel := context.WithTimeout(ctx, m.callTimeout)
	resp, usage, err := m.oracle.DecideResponse(callCtx, snapshot, speaker, message)
	cancel()
	m.recordUsage(ctx, usage)
	if err != nil {
		m.emitAgentEvent(models.EventAIError, char, &models.AIErrorPayload{
			AgentID: agent.ID, AgentName: char.Name, Message: err.Error(),
		})
		return
	}

	now := m.now()
	fresh, err := m.world.Agents().Get(ctx, agent.ID)
	if err != nil {
		return
	}
	fresh.Touch(speaker, resp.SentimentDelta, resp.TrustDelta, now)
	if resp.ShouldRespond && resp.Response != "" {
		fresh.RecordConversation(models.ConversationEntry{
			Speaker: char.Name, Message: resp.Response, Timestamp: now,
		})
	}
	if err := m.world.Agents().Update(ctx, fresh); err != nil {
		slog.Warn("Failed to persist relationship update", "agent_id", agent.ID, "error", err)
	}

	if !resp.ShouldRespond || resp.Response == "" {
		return
	}

	m.emitAgentEvent(models.EventAIDecision, char, &models.AIDecisionPayload{
		AgentID: agent.ID, AgentName: char.Name, Reasoning: resp.Reasoning,
	})
	m.queue.Enqueue(game.Command{
		Source:     game.SourceAI,
		ActorID:    char.ID,
		Text:       "say " + resp.Response,
		EnqueuedAt: now,
	})
	m.emitAgentEvent(models.EventAIAction, char, &models.AIActionPayload{
		AgentID: agent.ID, AgentName: char.Name,
		Action: "say", Arguments: resp.Response,
	})
	m.markActed(ctx, fresh, char.ID)
}

// markActed advances the cooldown and persists the agent's last-action time.
func (m *Manager) markActed(ctx context.Context, agent *models.AIAgent, characterID string) {
	now := m.now()
	m.mu.Lock()
	m.lastAction[characterID] = now
	m.mu.Unlock()

	agent.LastActionAt = now
	if err := m.world.Agents().Update(ctx, agent); err != nil {
		slog.Warn("Failed to persist agent action time", "agent_id", agent.ID, "error", err)
	}
}

func (m *Manager) clearInFlight(characterID string) {
	m.mu.Lock()
	delete(m.inFlight, characterID)
	m.mu.Unlock()
}

func (m *Manager) recordUsage(ctx context.Context, usage *models.TokenUsage) {
	if usage == nil {
		return
	}
	if err := m.world.TokenUsage().Record(ctx, usage); err != nil {
		slog.Warn("Failed to record token usage", "source", usage.Source, "error", err)
	}
}

func (m *Manager) emitAgentEvent(t models.EventType, char *models.Character, payload models.EventPayload) {
	if m.emitter == nil {
		return
	}
	m.emitter.Broadcast(&models.GameEvent{
		ID:           uuid.NewString(),
		Type:         t,
		Timestamp:    m.now(),
		OriginRoomID: char.RoomID,
		Visibility:   models.VisibilityPrivate,
		Payload:      payload,
	})
}

// buildContext assembles the oracle's world snapshot.
func (m *Manager) buildContext(ctx context.Context, agent *models.AIAgent, char *models.Character, window []perceived, sinceLast time.Duration) (*oracle.AgentContext, error) {
	room, err := m.world.Rooms().Get(ctx, char.RoomID)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", char.RoomID, err)
	}

	var adjacencies []string
	for _, dir := range room.SortedExits() {
		destID := room.Exits[dir]
		name := destID
		if dest, err := m.world.Rooms().Get(ctx, destID); err == nil {
			name = dest.Name
		}
		adjacencies = append(adjacencies, dir+": "+name)
	}

	chars, err := m.world.Characters().ListByRoom(ctx, char.RoomID)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	var present []string
	for _, c := range chars {
		if c.ID != char.ID && c.IsAlive {
			present = append(present, c.Name)
		}
	}

	items, err := m.world.Items().ListByRoom(ctx, char.RoomID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	var itemNames []string
	for _, it := range items {
		itemNames = append(itemNames, it.Name)
	}

	var relationships []string
	peers := make([]string, 0, len(agent.Relationships))
	for peer := range agent.Relationships {
		peers = append(peers, peer)
	}
	sort.Strings(peers)
	for _, peer := range peers {
		rel := agent.Relationships[peer]
		relationships = append(relationships, fmt.Sprintf(
			"%s: sentiment %d, trust %d, met %d times", peer, rel.Sentiment, rel.Trust, rel.Familiarity))
	}

	events := make([]string, len(window))
	for i, p := range window {
		events[i] = p.rendered
	}

	return &oracle.AgentContext{
		SystemPrompt:        agent.SystemPrompt,
		AgentID:             agent.ID,
		AgentName:           char.Name,
		Events:              events,
		Adjacencies:         adjacencies,
		CharactersPresent:   present,
		ItemsPresent:        itemNames,
		Relationships:       relationships,
		TimeSinceLastAction: sinceLast,
		RoomName:            room.Name,
		RoomDescription:     room.Description,
		SpatialMemory:       agent.SpatialMemory,
		Commands:            availableCommands,
	}, nil
}
