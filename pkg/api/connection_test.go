package api

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

type wsFixture struct {
	t     *testing.T
	ctx   context.Context
	conn  *websocket.Conn
	world store.World
	queue *game.Queue
	conns *ConnectionManager
}

func newWSFixture(t *testing.T) *wsFixture {
	t.Helper()
	ctx := context.Background()
	world := store.NewMemory()
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID:          "square",
		Name:        "The Square",
		Description: "A cobbled plaza.",
		Exits:       map[string]string{},
		IsStarting:  true,
	}))

	queue := game.NewQueue()
	conns := NewConnectionManager(world, queue, listening.NewRegistry(), 5*time.Second)
	server := NewServer(world, nil, nil, nil, nil, conns)

	ts := httptest.NewServer(server)
	t.Cleanup(ts.Close)

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(dialCtx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	return &wsFixture{t: t, ctx: dialCtx, conn: conn, world: world, queue: queue, conns: conns}
}

func (f *wsFixture) send(msg ClientMessage) {
	f.t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(f.t, err)
	require.NoError(f.t, f.conn.Write(f.ctx, websocket.MessageText, data))
}

func (f *wsFixture) read() map[string]any {
	f.t.Helper()
	_, data, err := f.conn.Read(f.ctx)
	require.NoError(f.t, err)
	var msg map[string]any
	require.NoError(f.t, json.Unmarshal(data, &msg))
	return msg
}

// readType skips unrelated messages (e.g. asynchronous game events) until a
// message of the wanted type arrives.
func (f *wsFixture) readType(want string) map[string]any {
	f.t.Helper()
	for i := 0; i < 10; i++ {
		msg := f.read()
		if msg["type"] == want {
			return msg
		}
	}
	f.t.Fatalf("no %s message received", want)
	return nil
}

func TestSocketJoinCreateSelectFlow(t *testing.T) {
	f := newWSFixture(t)

	hello := f.read()
	assert.Equal(t, "connected", hello["type"])

	f.send(ClientMessage{Type: msgPlayerJoin, Name: "mira"})
	joined := f.readType("player:joined")
	account := joined["account"].(map[string]any)
	assert.Equal(t, "mira", account["username"])
	assert.Empty(t, joined["characters"])

	// The account was created on first join.
	_, err := f.world.Accounts().GetByUsername(context.Background(), "mira")
	require.NoError(t, err)

	f.send(ClientMessage{Type: msgCharacterCreate, Name: "Mira"})
	created := f.readType("character:created")
	character := created["character"].(map[string]any)
	characterID := character["id"].(string)
	assert.Equal(t, "square", character["roomId"])

	f.send(ClientMessage{Type: msgCharacterSelect, CharacterID: characterID})
	selected := f.readType("character:selected")
	assert.Equal(t, characterID, selected["character"].(map[string]any)["id"])

	// Selecting queues an initial look through the normal command pipeline.
	require.Eventually(t, func() bool { return f.queue.Len() == 1 }, time.Second, 10*time.Millisecond)

	f.send(ClientMessage{Type: msgGameCommand, Command: "say hello"})
	require.Eventually(t, func() bool { return f.queue.Len() == 2 }, time.Second, 10*time.Millisecond)
}

func TestSocketCommandRequiresCharacter(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgGameCommand, Command: "look"})
	errMsg := f.readType("error")
	assert.Equal(t, "select a character first", errMsg["message"])
	assert.Zero(t, f.queue.Len())
}

func TestSocketJoinValidation(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgPlayerJoin, Name: "   "})
	errMsg := f.readType("error")
	assert.Equal(t, "name is required", errMsg["message"])

	f.send(ClientMessage{Type: msgCharacterCreate, Name: "Mira"})
	errMsg = f.readType("error")
	assert.Equal(t, "join first", errMsg["message"])
}

func TestSocketOutputAndEventDelivery(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgPlayerJoin, Name: "mira"})
	f.readType("player:joined")
	f.send(ClientMessage{Type: msgCharacterCreate, Name: "Mira"})
	created := f.readType("character:created")
	characterID := created["character"].(map[string]any)["id"].(string)
	f.send(ClientMessage{Type: msgCharacterSelect, CharacterID: characterID})
	f.readType("character:selected")

	f.conns.SendOutput(characterID, models.SystemMessage("The square is quiet."))
	output := f.readType("game:output")
	assert.Equal(t, "The square is quiet.", output["output"].(map[string]any)["text"])

	f.conns.SendError(characterID, "You can't go that way.")
	gameErr := f.readType("game:error")
	assert.Equal(t, "You can't go that way.", gameErr["message"])

	f.conns.SendEvent(characterID, &events.WireEvent{
		ID:      "e1",
		Type:    models.EventSpeech,
		Content: "Grok says, \"Hello.\"",
	})
	event := f.readType("game:event")
	assert.Equal(t, "e1", event["event"].(map[string]any)["id"])
}

func TestSocketStatEventsPushCharacterUpdate(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgPlayerJoin, Name: "mira"})
	f.readType("player:joined")
	f.send(ClientMessage{Type: msgCharacterCreate, Name: "Mira"})
	created := f.readType("character:created")
	characterID := created["character"].(map[string]any)["id"].(string)
	f.send(ClientMessage{Type: msgCharacterSelect, CharacterID: characterID})
	f.readType("character:selected")

	// Taking a hit refreshes the sheet behind the event.
	f.conns.SendEvent(characterID, &events.WireEvent{
		ID: "e1", Type: models.EventCombatHit,
		Content: "Grok hits you for 7 damage!",
		Data: &models.CombatHitPayload{
			AttackerID: "npc1", AttackerName: "Grok",
			TargetID: characterID, TargetName: "Mira", Damage: 7,
		},
	})
	f.readType("game:event")
	update := f.readType("character:update")
	assert.Equal(t, characterID, update["character"].(map[string]any)["id"])

	// So does changing your own gear.
	f.conns.SendEvent(characterID, &events.WireEvent{
		ID: "e2", Type: models.EventItemEquip,
		Content: "You equip the rusty sword.",
		Data: &models.ItemEquipPayload{
			ActorID: characterID, ActorName: "Mira",
			ItemID: "i1", ItemName: "rusty sword", Equipped: true,
		},
	})
	f.readType("game:event")
	f.readType("character:update")

	// A hit landing on someone else leaves the sheet alone.
	f.conns.SendEvent(characterID, &events.WireEvent{
		ID: "e3", Type: models.EventCombatHit,
		Content: "Grok hits Torben for 5 damage!",
		Data: &models.CombatHitPayload{
			AttackerID: "npc1", AttackerName: "Grok",
			TargetID: "p2", TargetName: "Torben", Damage: 5,
		},
	})
	f.readType("game:event")
	f.conns.SendOutput(characterID, models.SystemMessage("marker"))
	next := f.read()
	assert.Equal(t, "game:output", next["type"], "bystander hits do not refresh the sheet")
}

func TestSocketAdminMirror(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgAdminJoin})
	f.readType("admin:joined")

	// Payloads on other channels are ignored.
	f.conns.Broadcast("unrelated", []byte(`{}`))

	envelope := []byte(`{"event":{"id":"e9","type":"speech"},"recipients":["c1"]}`)
	f.conns.Broadcast(events.AdminChannel, envelope)

	msg := f.readType("admin:game-event")
	data := msg["data"].(map[string]any)
	assert.Equal(t, "e9", data["event"].(map[string]any)["id"])

	f.send(ClientMessage{Type: msgAdminLeave})
}

func TestSocketDeathDisconnect(t *testing.T) {
	f := newWSFixture(t)
	f.readType("connected")

	f.send(ClientMessage{Type: msgPlayerJoin, Name: "mira"})
	f.readType("player:joined")
	f.send(ClientMessage{Type: msgCharacterCreate, Name: "Mira"})
	created := f.readType("character:created")
	characterID := created["character"].(map[string]any)["id"].(string)
	f.send(ClientMessage{Type: msgCharacterSelect, CharacterID: characterID})
	f.readType("character:selected")

	f.conns.NotifyDeath(characterID)

	update := f.readType("character:update")
	assert.Equal(t, characterID, update["character"].(map[string]any)["id"])
	death := f.readType("game:death")
	assert.Equal(t, "You have died.", death["message"])

	// The binding is severed immediately: further output is dropped.
	f.conns.SendOutput(characterID, models.SystemMessage("too late"))
	f.send(ClientMessage{Type: msgGameCommand, Command: "look"})
	errMsg := f.readType("error")
	assert.Equal(t, "select a character first", errMsg["message"])
}
