package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/combat"
	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

type fakeOutputs struct {
	outputs map[string][]*models.StructuredOutput
	errors  map[string][]string
}

func newFakeOutputs() *fakeOutputs {
	return &fakeOutputs{
		outputs: map[string][]*models.StructuredOutput{},
		errors:  map[string][]string{},
	}
}

func (f *fakeOutputs) SendOutput(characterID string, output *models.StructuredOutput) {
	f.outputs[characterID] = append(f.outputs[characterID], output)
}

func (f *fakeOutputs) SendError(characterID string, message string) {
	f.errors[characterID] = append(f.errors[characterID], message)
}

type fakePlayers struct {
	events map[string][]*events.WireEvent
}

func (f *fakePlayers) SendEvent(characterID string, event *events.WireEvent) {
	if f.events == nil {
		f.events = map[string][]*events.WireEvent{}
	}
	f.events[characterID] = append(f.events[characterID], event)
}

func (f *fakePlayers) contents(characterID string) []string {
	var out []string
	for _, e := range f.events[characterID] {
		out = append(out, e.Content)
	}
	return out
}

type fakeDeaths struct{ notified []string }

func (f *fakeDeaths) NotifyDeath(characterID string) {
	f.notified = append(f.notified, characterID)
}

type engineFixture struct {
	eng     *Engine
	world   *store.Memory
	queue   *game.Queue
	combat  *combat.System
	reg     *listening.Registry
	outputs *fakeOutputs
	players *fakePlayers
	deaths  *fakeDeaths
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()
	ctx := context.Background()
	world := store.NewMemory()

	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID: "forge", Name: "The Forge", Description: "Heat shimmers over the anvil.",
		Exits: map[string]string{"north": "mill"},
	}))
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID: "mill", Name: "The Old Mill", Description: "Flour dust hangs in the air.",
		Exits: map[string]string{"south": "forge"},
	}))

	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct1", RoomID: "forge",
		HP: 30, MaxHP: 30, Attack: 25, Defense: 5, Speed: 100, IsAlive: true,
	}))
	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID: "n1", Name: "Grok", RoomID: "forge",
		HP: 20, MaxHP: 20, Attack: 40, Defense: 5, Speed: 100, IsAlive: true,
	}))

	queue := game.NewQueue()
	reg := listening.NewRegistry()
	combatSys := combat.NewSystem(world)
	dispatcher := game.NewDispatcher(world, combatSys, reg)
	outputs := newFakeOutputs()
	players := &fakePlayers{}
	deaths := &fakeDeaths{}
	prop := events.NewPropagator(world, reg, players, nil, nil)

	eng := New(Deps{
		World:      world,
		Queue:      queue,
		Dispatcher: dispatcher,
		Combat:     combatSys,
		Listening:  reg,
		Propagator: prop,
		Outputs:    outputs,
		Deaths:     deaths,
	})
	return &engineFixture{
		eng: eng, world: world, queue: queue, combat: combatSys,
		reg: reg, outputs: outputs, players: players, deaths: deaths,
	}
}

func (f *engineFixture) step() {
	f.eng.Step(context.Background(), 0.1)
}

func TestStepDispatchesQueuedCommand(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "look"})
	f.step()

	require.Len(t, f.outputs.outputs["p1"], 1)
	out := f.outputs.outputs["p1"][0]
	assert.Equal(t, models.ViewRoom, out.View)
	assert.Contains(t, out.Text, "The Forge")
	assert.Equal(t, 0, f.queue.Len())
}

func TestStepDeliversSpeechBeforeNextTick(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "say Hello there"})
	f.step()

	contents := f.players.contents("p1")
	require.NotEmpty(t, contents, "speaker hears their own speech the same tick")
	assert.Contains(t, contents[0], "You say")
	assert.Contains(t, contents[0], "Hello there")
}

func TestOutputPrecedesEvents(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "attack grok"})
	f.step()

	require.Len(t, f.outputs.outputs["p1"], 1)
	assert.Equal(t, "You attack Grok!", f.outputs.outputs["p1"][0].Text)
	// combat_start reached the socket in the same tick, after the reply.
	found := false
	for _, c := range f.players.contents("p1") {
		if strings.Contains(c, "attacks") || strings.Contains(c, "attack") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCommandErrorSentToSocket(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "go west"})
	f.step()

	require.Len(t, f.outputs.errors["p1"], 1)
	assert.Equal(t, "You can't go that way", f.outputs.errors["p1"][0])
	assert.Empty(t, f.outputs.outputs["p1"])
}

func TestMissingActorCommandDropped(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "ghost", Text: "look"})
	f.step()

	assert.Empty(t, f.outputs.outputs)
	assert.Empty(t, f.outputs.errors)
	assert.Equal(t, 0, f.queue.Len())
}

func TestCombatKillNotifiesPlayerDeathOnly(t *testing.T) {
	f := newEngineFixture(t)

	// Grok swings at Mira every tick for 35 damage; dead within one tick.
	f.world.Characters().Update(context.Background(), &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct1", RoomID: "forge",
		HP: 10, MaxHP: 30, Attack: 25, Defense: 5, Speed: 100, IsAlive: true,
	})
	f.combat.Start("n1", "p1")
	f.reg.Listen("p1", "n1")

	f.step()

	assert.Equal(t, []string{"p1"}, f.deaths.notified)
	_, listening := f.reg.Subject("p1")
	assert.False(t, listening, "death clears the eavesdropping registration")

	victim, err := f.world.Characters().Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.True(t, victim.IsDead)
}

func TestNPCDeathDoesNotNotifyDeathSink(t *testing.T) {
	f := newEngineFixture(t)

	f.combat.Start("p1", "n1")
	// 20 damage per swing against 20 hp: dead on the first tick.
	f.step()

	n1, err := f.world.Characters().Get(context.Background(), "n1")
	require.NoError(t, err)
	assert.True(t, n1.IsDead)
	assert.Empty(t, f.deaths.notified)
}

func TestPauseHoldsCommandsAndCombat(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	require.NoError(t, f.eng.Pause(ctx))
	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "look"})
	f.combat.Start("p1", "n1")
	f.step()

	assert.Empty(t, f.outputs.outputs["p1"], "commands wait while paused")
	assert.Equal(t, 1, f.queue.Len())
	n1, err := f.world.Characters().Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, 20, n1.HP, "gauges frozen while paused")

	// The pause announcement still propagates.
	contents := f.players.contents("p1")
	require.NotEmpty(t, contents)
	assert.Contains(t, contents[0], "paused")

	require.NoError(t, f.eng.Resume(ctx))
	f.step()
	assert.Len(t, f.outputs.outputs["p1"], 1, "queued command runs after resume")
	assert.Equal(t, 0, f.queue.Len())
}

func TestPauseStatePersisted(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	require.NoError(t, f.eng.Pause(ctx))
	state, err := f.world.GameState().Get(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsPaused)

	require.NoError(t, f.eng.Resume(ctx))
	state, err = f.world.GameState().Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.IsPaused)
}

func TestRestoreLoadsPersistedState(t *testing.T) {
	f := newEngineFixture(t)
	ctx := context.Background()

	require.NoError(t, f.world.GameState().Save(ctx, &models.GameState{IsPaused: true, GameTime: 42.5}))
	require.NoError(t, f.eng.Restore(ctx))

	assert.True(t, f.eng.Paused())
	assert.Equal(t, 42.5, f.eng.Status().GameTime)
}

func TestClockAccumulatesUnpausedTime(t *testing.T) {
	f := newEngineFixture(t)

	f.step()
	f.step()
	f.step()
	assert.InDelta(t, 0.3, f.eng.Status().GameTime, 1e-9)

	require.NoError(t, f.eng.Pause(context.Background()))
	f.step()
	assert.InDelta(t, 0.3, f.eng.Status().GameTime, 1e-9, "paused ticks do not advance game time")
}

type panicSubsystem struct{}

func (panicSubsystem) Name() string { return "explosive" }

func (panicSubsystem) OnTick(context.Context, Tick) error { panic("boom") }

func TestSubsystemPanicDoesNotAbortTick(t *testing.T) {
	f := newEngineFixture(t)
	f.eng.subsystems = append([]Subsystem{panicSubsystem{}}, f.eng.subsystems...)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "look"})
	require.NotPanics(t, f.step)

	assert.Len(t, f.outputs.outputs["p1"], 1, "later subsystems still run")
}

func TestStatusSnapshot(t *testing.T) {
	f := newEngineFixture(t)

	f.queue.Enqueue(game.Command{Source: game.SourcePlayer, ActorID: "p1", Text: "look"})
	st := f.eng.Status()
	assert.Equal(t, 1, st.QueuedCmds)
	assert.False(t, st.IsPaused)

	f.step()
	st = f.eng.Status()
	assert.Equal(t, uint64(1), st.Tick)
	assert.Equal(t, 0, st.QueuedCmds)
	assert.Equal(t, 0, st.PendingEvents)
}
