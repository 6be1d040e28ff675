package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

type capturedEvent struct {
	characterID string
	event       *WireEvent
}

type fakePlayerSink struct {
	sent []capturedEvent
}

func (f *fakePlayerSink) SendEvent(characterID string, event *WireEvent) {
	f.sent = append(f.sent, capturedEvent{characterID, event})
}

func (f *fakePlayerSink) sentTo(characterID string) []*WireEvent {
	var out []*WireEvent
	for _, c := range f.sent {
		if c.characterID == characterID {
			out = append(out, c.event)
		}
	}
	return out
}

type fakeAgentSink struct {
	perceived []capturedEvent
}

func (f *fakeAgentSink) Perceive(characterID string, event *models.GameEvent, rendered string) {
	f.perceived = append(f.perceived, capturedEvent{characterID, ToWire(event, rendered)})
}

type fakeAdminSink struct {
	envelopes []*EventWithRecipients
}

func (f *fakeAdminSink) MirrorEvent(_ context.Context, envelope *EventWithRecipients) error {
	f.envelopes = append(f.envelopes, envelope)
	return nil
}

type propFixture struct {
	mem     *store.Memory
	reg     *listening.Registry
	players *fakePlayerSink
	agents  *fakeAgentSink
	admin   *fakeAdminSink
	prop    *Propagator
}

// newPropFixture seeds rooms a <-> b <-> c <-> d in a line.
func newPropFixture(t *testing.T) *propFixture {
	t.Helper()
	ctx := context.Background()
	mem := store.NewMemory()
	rooms := []*models.Room{
		{ID: "a", Name: "A", Exits: map[string]string{"north": "b"}},
		{ID: "b", Name: "B", Exits: map[string]string{"south": "a", "north": "c"}},
		{ID: "c", Name: "C", Exits: map[string]string{"south": "b", "north": "d"}},
		{ID: "d", Name: "D", Exits: map[string]string{"south": "c"}},
	}
	for _, r := range rooms {
		require.NoError(t, mem.Rooms().Create(ctx, r))
	}
	f := &propFixture{
		mem:     mem,
		reg:     listening.NewRegistry(),
		players: &fakePlayerSink{},
		agents:  &fakeAgentSink{},
		admin:   &fakeAdminSink{},
	}
	f.prop = NewPropagator(mem, f.reg, f.players, f.agents, f.admin)
	return f
}

func (f *propFixture) seedPlayer(t *testing.T, id, name, roomID string) {
	t.Helper()
	require.NoError(t, f.mem.Characters().Create(context.Background(), &models.Character{
		ID: id, Name: name, AccountID: "acct-" + id, RoomID: roomID,
		HP: 100, MaxHP: 100, IsAlive: true,
	}))
}

func (f *propFixture) seedNPC(t *testing.T, id, name, roomID string) {
	t.Helper()
	require.NoError(t, f.mem.Characters().Create(context.Background(), &models.Character{
		ID: id, Name: name, RoomID: roomID,
		HP: 100, MaxHP: 100, IsAlive: true,
	}))
}

func shoutFrom(actorID, actorName, roomID, message string) *models.GameEvent {
	return &models.GameEvent{
		ID:           "evt-" + actorID,
		Type:         models.EventShout,
		Timestamp:    time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
		OriginRoomID: roomID,
		Visibility:   models.VisibilityRoom,
		Payload: &models.ShoutPayload{
			ActorID: actorID, ActorName: actorName, Message: message,
		},
	}
}

func TestShoutReachesNeighbourAttenuated(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")
	f.seedPlayer(t, "p2", "Torben", "b")
	f.seedPlayer(t, "p3", "Greta", "c")
	f.seedPlayer(t, "p4", "Ulf", "d")

	f.prop.Broadcast(shoutFrom("p1", "Mira", "a", "HELLO"))
	require.NoError(t, f.prop.Flush(ctx))

	self := f.players.sentTo("p1")
	require.Len(t, self, 1)
	assert.Equal(t, `You shout, "HELLO"`, self[0].Content)
	assert.False(t, self[0].Attenuated)

	near := f.players.sentTo("p2")
	require.Len(t, near, 1)
	assert.Equal(t, "You hear a distant shout: HELLO", near[0].Content)
	assert.True(t, near[0].Attenuated)

	far := f.players.sentTo("p3")
	require.Len(t, far, 1)
	assert.Equal(t, "You hear a distant shout: HELLO", far[0].Content)

	assert.Empty(t, f.players.sentTo("p4"), "three hops is out of range")

	stored, err := f.mem.Events().List(ctx, store.EventFilter{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.False(t, stored[0].Attenuated, "persisted event keeps original form")
}

func TestPrivateEventReachesOnlyRecipients(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")
	f.seedPlayer(t, "p2", "Torben", "a")
	f.seedPlayer(t, "p3", "Greta", "a")

	e := &models.GameEvent{
		ID: "evt-w", Type: models.EventWhisper,
		Timestamp: time.Now(), OriginRoomID: "a",
		Visibility: models.VisibilityPrivate,
		Recipients: []string{"p1", "p2"},
		Payload: &models.WhisperPayload{
			ActorID: "p1", ActorName: "Mira",
			TargetID: "p2", TargetName: "Torben",
			Message: "psst",
		},
	}
	f.prop.Broadcast(e)
	require.NoError(t, f.prop.Flush(ctx))

	assert.Len(t, f.players.sentTo("p1"), 1)
	assert.Len(t, f.players.sentTo("p2"), 1)
	assert.Empty(t, f.players.sentTo("p3"))
}

func TestTellObfuscationAndListening(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")
	f.seedPlayer(t, "p2", "Torben", "a")
	f.seedPlayer(t, "p3", "Greta", "a")

	tell := func(id, msg string) *models.GameEvent {
		return &models.GameEvent{
			ID: id, Type: models.EventTell,
			Timestamp: time.Now(), OriginRoomID: "a",
			Visibility: models.VisibilityRoom,
			Payload: &models.TellPayload{
				ActorID: "p1", ActorName: "Mira",
				TargetID: "p2", TargetName: "Torben",
				Message: msg,
			},
		}
	}

	f.prop.Broadcast(tell("evt-1", "secret plan"))
	require.NoError(t, f.prop.Flush(ctx))

	observer := f.players.sentTo("p3")
	require.Len(t, observer, 1)
	assert.Equal(t, "Mira says something to Torben.", observer[0].Content)

	f.reg.Listen("p3", "p1")
	f.prop.Broadcast(tell("evt-2", "second plan"))
	require.NoError(t, f.prop.Flush(ctx))

	observer = f.players.sentTo("p3")
	require.Len(t, observer, 2)
	assert.Equal(t, `Mira says to Torben: "second plan"`, observer[1].Content)

	target := f.players.sentTo("p2")
	require.Len(t, target, 2)
	assert.Equal(t, `Mira says to you: "secret plan"`, target[0].Content)
	assert.Equal(t, `Mira says to you: "second plan"`, target[1].Content)
}

func TestMovementDeliveredToBothSides(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p2", "Torben", "a") // stays in origin
	f.seedPlayer(t, "p3", "Greta", "b")  // waits in destination
	// Mover already stands in the destination when the event flushes.
	f.seedPlayer(t, "p1", "Mira", "b")

	e := &models.GameEvent{
		ID: "evt-m", Type: models.EventMovement,
		Timestamp: time.Now(), OriginRoomID: "a",
		Visibility: models.VisibilityRoom,
		Payload: &models.MovementPayload{
			ActorID: "p1", ActorName: "Mira",
			FromRoomID: "a", ToRoomID: "b", Direction: "north",
		},
	}
	f.prop.Broadcast(e)
	require.NoError(t, f.prop.Flush(ctx))

	origin := f.players.sentTo("p2")
	require.Len(t, origin, 1)
	assert.Equal(t, "Mira moves north.", origin[0].Content)

	dest := f.players.sentTo("p3")
	require.Len(t, dest, 1)
	assert.Equal(t, "Mira arrives from the south.", dest[0].Content)

	mover := f.players.sentTo("p1")
	require.Len(t, mover, 1, "mover renders from the departure side")
	assert.Equal(t, "You move north.", mover[0].Content)
}

func TestNPCEventsGoToAgentSink(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")
	f.seedNPC(t, "n1", "Greta", "a")

	e := &models.GameEvent{
		ID: "evt-s", Type: models.EventSpeech,
		Timestamp: time.Now(), OriginRoomID: "a",
		Visibility: models.VisibilityRoom,
		Payload:    &models.SpeechPayload{ActorID: "p1", ActorName: "Mira", Message: "hello"},
	}
	f.prop.Broadcast(e)
	require.NoError(t, f.prop.Flush(ctx))

	require.Len(t, f.agents.perceived, 1)
	assert.Equal(t, "n1", f.agents.perceived[0].characterID)
	assert.Equal(t, `Mira says, "hello"`, f.agents.perceived[0].event.Content)
	assert.Len(t, f.players.sentTo("p1"), 1)
}

func TestAdminMirrorIsOmniscient(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")
	f.seedPlayer(t, "p2", "Torben", "a")

	decision := &models.GameEvent{
		ID: "evt-d", Type: models.EventAIDecision,
		Timestamp: time.Now(), OriginRoomID: "a",
		Visibility: models.VisibilityPrivate,
		Payload:    &models.AIDecisionPayload{AgentID: "a1", AgentName: "Greta", Reasoning: "wave at Mira"},
	}
	f.prop.Broadcast(decision)
	require.NoError(t, f.prop.Flush(ctx))

	require.Len(t, f.admin.envelopes, 1)
	assert.Equal(t, "[Greta] decision: wave at Mira", f.admin.envelopes[0].Rendered)
	assert.Empty(t, f.players.sent, "admin-only events never reach players")

	tell := &models.GameEvent{
		ID: "evt-t", Type: models.EventTell,
		Timestamp: time.Now(), OriginRoomID: "a",
		Visibility: models.VisibilityRoom,
		Payload: &models.TellPayload{
			ActorID: "p1", ActorName: "Mira",
			TargetID: "p2", TargetName: "Torben",
			Message: "hidden words",
		},
	}
	f.prop.Broadcast(tell)
	require.NoError(t, f.prop.Flush(ctx))

	require.Len(t, f.admin.envelopes, 2)
	assert.Equal(t, `Mira says to Torben: "hidden words"`, f.admin.envelopes[1].Rendered)
	assert.Equal(t, []string{"p1", "p2"}, f.admin.envelopes[1].Recipients)
}

func TestPlayerLogAppendedOnDelivery(t *testing.T) {
	ctx := context.Background()
	f := newPropFixture(t)
	f.seedPlayer(t, "p1", "Mira", "a")

	f.prop.Broadcast(shoutFrom("p1", "Mira", "a", "YO"))
	require.NoError(t, f.prop.Flush(ctx))

	logs := f.mem.PlayerLogsFor("p1")
	require.Len(t, logs, 1)
	assert.Equal(t, models.LogEvent, logs[0].Kind)
	assert.Equal(t, `You shout, "YO"`, logs[0].Payload)
}
