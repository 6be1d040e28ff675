package ai

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/oracle"
	"github.com/elliotbonneville/silt/pkg/store"
)

type mockOracle struct {
	mu            sync.Mutex
	actionCalls   []*oracle.AgentContext
	responseCalls int
	decision      *oracle.Decision
	response      *oracle.Response
	summary       string
	err           error
	stall         bool // hang until the caller's context expires
}

func (m *mockOracle) DecideAction(ctx context.Context, in *oracle.AgentContext) (*oracle.Decision, *models.TokenUsage, error) {
	if m.stall {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actionCalls = append(m.actionCalls, in)
	usage := &models.TokenUsage{ID: "u1", TotalTokens: 10, Source: models.UsageDecision, AgentID: in.AgentID}
	return m.decision, usage, m.err
}

func (m *mockOracle) DecideResponse(_ context.Context, in *oracle.AgentContext, _, _ string) (*oracle.Response, *models.TokenUsage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responseCalls++
	usage := &models.TokenUsage{ID: "u2", TotalTokens: 10, Source: models.UsageDecisionResponse, AgentID: in.AgentID}
	return m.response, usage, m.err
}

func (m *mockOracle) SummarizeSpatialMap(_ context.Context, agentID, _ string) (string, *models.TokenUsage, error) {
	return m.summary, &models.TokenUsage{ID: "u3", TotalTokens: 5, Source: models.UsageSpatialMemory, AgentID: agentID}, m.err
}

type capturedBroadcast struct {
	mu     sync.Mutex
	events []*models.GameEvent
}

func (c *capturedBroadcast) Broadcast(e *models.GameEvent) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

func (c *capturedBroadcast) ofType(t models.EventType) []*models.GameEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []*models.GameEvent
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type aiFixture struct {
	mem     *store.Memory
	oracle  *mockOracle
	queue   *game.Queue
	emitted *capturedBroadcast
	mgr     *Manager
	clock   time.Time
}

func newAIFixture(t *testing.T) *aiFixture {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Rooms().Create(ctx, &models.Room{
		ID: "forge", Name: "The Forge", Description: "Heat shimmers.",
		Exits: map[string]string{"north": "mill"},
	}))
	require.NoError(t, mem.Rooms().Create(ctx, &models.Room{
		ID: "mill", Name: "The Old Mill", Description: "Grinding stones.",
		Exits: map[string]string{"south": "forge"},
	}))
	require.NoError(t, mem.Characters().Create(ctx, &models.Character{
		ID: "n1", Name: "Greta", RoomID: "forge",
		HP: 100, MaxHP: 100, IsAlive: true,
	}))
	require.NoError(t, mem.Characters().Create(ctx, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct-1", RoomID: "forge",
		HP: 100, MaxHP: 100, IsAlive: true,
	}))
	require.NoError(t, mem.Agents().Create(ctx, &models.AIAgent{
		ID: "a1", CharacterID: "n1", SystemPrompt: "You are a gruff blacksmith.",
		HomeRoomID: "forge", MaxRoomsFromHome: 1,
	}))

	f := &aiFixture{
		mem:     mem,
		oracle:  &mockOracle{},
		queue:   game.NewQueue(),
		emitted: &capturedBroadcast{},
		clock:   time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	}
	f.mgr = NewManager(mem, f.oracle, f.queue)
	f.mgr.AttachBroadcaster(f.emitted)
	f.mgr.now = func() time.Time { return f.clock }
	f.mgr.spawn = func(fn func()) { fn() }
	return f
}

func (f *aiFixture) perceiveSpeech(id, msg string) {
	f.mgr.Perceive("n1", &models.GameEvent{
		ID: id, Type: models.EventSpeech, Timestamp: f.clock,
		OriginRoomID: "forge", Visibility: models.VisibilityRoom,
		Payload: &models.SpeechPayload{ActorID: "p1", ActorName: "Mira", Message: msg},
	}, `Mira says, "`+msg+`"`)
}

func TestProactiveBatchesPerceptionIntoOneCall(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.decision = &oracle.Decision{Action: "say", Arguments: "Welcome.", Reasoning: "greet"}

	// Three events land within one second; the cooldown allows one decision
	// and the whole window rides along in its prompt.
	f.perceiveSpeech("e1", "hello")
	f.clock = f.clock.Add(400 * time.Millisecond)
	f.perceiveSpeech("e2", "anyone here")
	f.clock = f.clock.Add(400 * time.Millisecond)
	f.perceiveSpeech("e3", "nice forge")

	require.NoError(t, f.mgr.OnTick(context.Background(), false))

	require.Len(t, f.oracle.actionCalls, 1, "one window, one oracle call")
	call := f.oracle.actionCalls[0]
	require.Len(t, call.Events, 3)
	assert.Contains(t, call.Events[0], "hello")
	assert.Contains(t, call.Events[2], "nice forge")
	assert.Equal(t, "You are a gruff blacksmith.", call.SystemPrompt)
	assert.Equal(t, []string{"north: The Old Mill"}, call.Adjacencies)
	assert.Equal(t, []string{"Mira"}, call.CharactersPresent)

	// The chosen action went through the command queue, plus introspection.
	cmds := f.queue.Drain(10)
	require.Len(t, cmds, 1)
	assert.Equal(t, game.SourceAI, cmds[0].Source)
	assert.Equal(t, "say Welcome.", cmds[0].Text)
	assert.Len(t, f.emitted.ofType(models.EventAIDecision), 1)
	assert.Len(t, f.emitted.ofType(models.EventAIAction), 1)
}

func TestCooldownSuppressesSecondDecision(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.decision = &oracle.Decision{Action: "emote", Arguments: "nods.", Reasoning: "ack"}

	f.perceiveSpeech("e1", "hello")
	require.NoError(t, f.mgr.OnTick(context.Background(), false))
	require.Len(t, f.oracle.actionCalls, 1)

	// Within the cooldown nothing happens, even with fresh perception and a
	// fresh proactive window.
	f.clock = f.clock.Add(11 * time.Second)
	f.mgr.mu.Lock()
	f.mgr.lastAction["n1"] = f.clock.Add(-2 * time.Second)
	f.mgr.mu.Unlock()
	f.perceiveSpeech("e2", "still there?")
	require.NoError(t, f.mgr.OnTick(context.Background(), false))
	assert.Len(t, f.oracle.actionCalls, 1, "cooldown holds")

	// After the cooldown, once the proactive cadence comes around again, the
	// queued perception is consumed.
	f.clock = f.clock.Add(11 * time.Second)
	require.NoError(t, f.mgr.OnTick(context.Background(), false))
	assert.Len(t, f.oracle.actionCalls, 2)
}

func TestProactiveSkipsWithoutHumans(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	f.oracle.decision = &oracle.Decision{Action: "say", Arguments: "hm", Reasoning: "idle"}

	// Move the only player out of the room.
	p1, err := f.mem.Characters().Get(ctx, "p1")
	require.NoError(t, err)
	p1.RoomID = "mill"
	require.NoError(t, f.mem.Characters().Update(ctx, p1))

	f.perceiveSpeech("e1", "echo")
	require.NoError(t, f.mgr.OnTick(ctx, false))
	assert.Empty(t, f.oracle.actionCalls, "agents ignore rooms without players")
}

func TestProactiveSkipsEmptyQueueAndPaused(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.decision = &oracle.Decision{Action: "say", Arguments: "hm", Reasoning: "idle"}

	require.NoError(t, f.mgr.OnTick(context.Background(), false))
	assert.Empty(t, f.oracle.actionCalls, "no perception, no call")

	f.perceiveSpeech("e1", "hi")
	f.clock = f.clock.Add(11 * time.Second)
	require.NoError(t, f.mgr.OnTick(context.Background(), true))
	assert.Empty(t, f.oracle.actionCalls, "paused engine never consults the oracle")
}

func TestPerceptionWindowExpires(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.decision = &oracle.Decision{Action: "say", Arguments: "hm", Reasoning: "idle"}

	f.perceiveSpeech("e1", "old news")
	f.clock = f.clock.Add(PerceptionWindow + time.Second)
	f.perceiveSpeech("e2", "fresh news")

	require.NoError(t, f.mgr.OnTick(context.Background(), false))
	require.Len(t, f.oracle.actionCalls, 1)
	require.Len(t, f.oracle.actionCalls[0].Events, 1, "stale perception dropped")
	assert.Contains(t, f.oracle.actionCalls[0].Events[0], "fresh news")
}

func TestOracleErrorEmitsAIErrorWithoutCooldown(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.err = assert.AnError

	f.perceiveSpeech("e1", "hello")
	require.NoError(t, f.mgr.OnTick(context.Background(), false))

	require.Len(t, f.emitted.ofType(models.EventAIError), 1)
	assert.Empty(t, f.queue.Drain(10))

	f.mgr.mu.Lock()
	_, acted := f.mgr.lastAction["n1"]
	f.mgr.mu.Unlock()
	assert.False(t, acted, "errors do not advance the cooldown")
}

func TestOracleDeadlineExpiryEmitsAIError(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.stall = true
	f.mgr.callTimeout = 50 * time.Millisecond

	f.perceiveSpeech("e1", "hello")
	require.NoError(t, f.mgr.OnTick(context.Background(), false))

	errs := f.emitted.ofType(models.EventAIError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Payload.(*models.AIErrorPayload).Message, "deadline")
	assert.Empty(t, f.queue.Drain(10), "timed-out decision is a no-op")

	f.mgr.mu.Lock()
	busy := f.mgr.inFlight["n1"]
	acted := !f.mgr.lastAction["n1"].IsZero()
	f.mgr.mu.Unlock()
	assert.False(t, busy, "in-flight guard released after timeout")
	assert.False(t, acted, "timeouts do not advance the cooldown")
}

func TestConversationPathUpdatesRelationship(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	f.oracle.response = &oracle.Response{
		ShouldRespond: true, Response: "Aye, what do you need?",
		Reasoning: "customer", SentimentDelta: 1, TrustDelta: 1,
	}

	f.mgr.Perceive("n1", &models.GameEvent{
		ID: "e1", Type: models.EventTell, Timestamp: f.clock,
		OriginRoomID: "forge", Visibility: models.VisibilityRoom,
		Payload: &models.TellPayload{
			ActorID: "p1", ActorName: "Mira",
			TargetID: "n1", TargetName: "Greta",
			Message: "can you fix my sword?",
		},
	}, `Mira says to you: "can you fix my sword?"`)

	assert.Equal(t, 1, f.oracle.responseCalls)

	cmds := f.queue.Drain(10)
	require.Len(t, cmds, 1)
	assert.Equal(t, "say Aye, what do you need?", cmds[0].Text)

	agent, err := f.mem.Agents().Get(ctx, "a1")
	require.NoError(t, err)
	rel := agent.Relationships["Mira"]
	assert.Equal(t, 1, rel.Sentiment)
	assert.Equal(t, 1, rel.Trust)
	assert.Equal(t, 1, rel.Familiarity)
	require.Len(t, agent.Conversation, 2, "their line and the reply")
	assert.Equal(t, "Mira", agent.Conversation[0].Speaker)
	assert.Equal(t, "Greta", agent.Conversation[1].Speaker)
}

func TestConversationTrimsToLimit(t *testing.T) {
	f := newAIFixture(t)
	f.oracle.response = &oracle.Response{ShouldRespond: false}

	for i := 0; i < models.ConversationLimit+10; i++ {
		f.mgr.Perceive("n1", &models.GameEvent{
			ID: "e", Type: models.EventTell, Timestamp: f.clock,
			OriginRoomID: "forge", Visibility: models.VisibilityRoom,
			Payload: &models.TellPayload{
				ActorID: "p1", ActorName: "Mira",
				TargetID: "n1", TargetName: "Greta",
				Message: "chatter",
			},
		}, "chatter")
	}

	agent, err := f.mem.Agents().Get(context.Background(), "a1")
	require.NoError(t, err)
	assert.Len(t, agent.Conversation, models.ConversationLimit)
}

func TestSpatialMemoryRefresh(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	f.oracle.summary = "The forge is home.\nThe mill lies one road north."

	require.NoError(t, f.mgr.RefreshSpatialMemories(ctx))

	agent, err := f.mem.Agents().Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, f.oracle.summary, agent.SpatialMemory)
	require.NotNil(t, agent.SpatialMemoryUpdatedAt)

	// Fresh memory is left alone on the next pass.
	f.oracle.summary = "changed"
	require.NoError(t, f.mgr.RefreshSpatialMemories(ctx))
	agent, err = f.mem.Agents().Get(ctx, "a1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", agent.SpatialMemory)

	// Stale memory is regenerated.
	f.clock = f.clock.Add(SpatialMemoryTTL + time.Hour)
	require.NoError(t, f.mgr.RefreshSpatialMemories(ctx))
	agent, err = f.mem.Agents().Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "changed", agent.SpatialMemory)
}

func TestSummaryClampedToSevenLines(t *testing.T) {
	f := newAIFixture(t)
	ctx := context.Background()
	f.oracle.summary = "1\n2\n3\n4\n5\n6\n7\n8\n9"

	require.NoError(t, f.mgr.RefreshAgentSpatialMemory(ctx, "a1"))
	agent, err := f.mem.Agents().Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n4\n5\n6\n7", agent.SpatialMemory)
}
