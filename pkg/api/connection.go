package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/game"
	"github.com/elliotbonneville/silt/pkg/listening"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/services"
	"github.com/elliotbonneville/silt/pkg/store"
)

// deathLinger is how long a dead player's socket stays open after the death
// notice, so the client can render the final moment before the disconnect.
const deathLinger = 3 * time.Second

// listenTimeout bounds how long the first admin watcher may block on LISTEN.
const listenTimeout = 10 * time.Second

// maxCharacterName caps player character names.
const maxCharacterName = 32

// ChannelSubscriber manages the PG LISTEN lifecycle for the admin mirror.
// Implemented by database.NotifyListener; nil when running without the
// cross-replica bridge (tests, single-process setups).
type ChannelSubscriber interface {
	Subscribe(ctx context.Context, channel string) error
	Unsubscribe(ctx context.Context, channel string) error
}

// ConnectionManager owns every live WebSocket. It is the delivery side of the
// simulation: the engine and propagator push outputs, events, and death
// notices through it, and it feeds player input back into the command queue.
type ConnectionManager struct {
	world      store.World
	queue      *game.Queue
	propagator *events.Propagator
	listening  *listening.Registry

	writeTimeout time.Duration

	mu          sync.RWMutex
	conns       map[string]*client
	byCharacter map[string]*client
	admins      map[string]*client

	subscriberMu sync.RWMutex
	subscriber   ChannelSubscriber
}

// client is one socket. Identity fields are written only by the read loop and
// read under ConnectionManager.mu via the lookup maps.
type client struct {
	id   string
	conn *websocket.Conn

	ctx    context.Context
	cancel context.CancelFunc

	account     *models.Account
	characterID string
	isAdmin     bool
}

// NewConnectionManager wires the manager over the world and input queue.
func NewConnectionManager(world store.World, queue *game.Queue, reg *listening.Registry, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		world:        world,
		queue:        queue,
		listening:    reg,
		writeTimeout: writeTimeout,
		conns:        make(map[string]*client),
		byCharacter:  make(map[string]*client),
		admins:       make(map[string]*client),
	}
}

// SetPropagator attaches the event propagator. Set after construction because
// the propagator itself needs the manager as its player sink.
func (m *ConnectionManager) SetPropagator(p *events.Propagator) {
	m.propagator = p
}

// SetSubscriber attaches the PG LISTEN bridge for the admin mirror.
func (m *ConnectionManager) SetSubscriber(s ChannelSubscriber) {
	m.subscriberMu.Lock()
	defer m.subscriberMu.Unlock()
	m.subscriber = s
}

// HandleConnection runs one socket's lifecycle. Blocks until the socket
// closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &client{
		id:     uuid.NewString(),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, connectedMessage{Type: "connected", ConnectionID: c.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid socket message", "connection_id", c.id, "error", err)
			m.sendError(c, "invalid message")
			continue
		}

		m.handleMessage(ctx, c, &msg)
	}
}

func (m *ConnectionManager) handleMessage(ctx context.Context, c *client, msg *ClientMessage) {
	switch msg.Type {
	case msgPlayerJoin:
		m.handleJoin(ctx, c, msg.Name)
	case msgCharacterList:
		m.handleCharacterList(ctx, c)
	case msgCharacterCreate:
		m.handleCharacterCreate(ctx, c, msg.Name)
	case msgCharacterSelect:
		m.handleCharacterSelect(ctx, c, msg.CharacterID)
	case msgGameCommand:
		m.handleCommand(c, msg.Command)
	case msgAdminJoin:
		m.handleAdminJoin(c)
	case msgAdminLeave:
		m.handleAdminLeave(c)
	default:
		m.sendError(c, "unknown message type")
	}
}

// handleJoin resolves the username to an account, creating it on first sight.
func (m *ConnectionManager) handleJoin(ctx context.Context, c *client, name string) {
	username := strings.TrimSpace(name)
	if username == "" {
		m.sendError(c, "name is required")
		return
	}

	account, err := m.world.Accounts().GetByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		account = &models.Account{
			ID:        uuid.NewString(),
			Username:  username,
			CreatedAt: time.Now(),
		}
		if createErr := m.world.Accounts().Create(ctx, account); createErr != nil {
			slog.Error("Failed to create account", "username", username, "error", createErr)
			m.sendError(c, "could not create account")
			return
		}
		slog.Info("Account created", "username", username)
	} else if err != nil {
		slog.Error("Failed to load account", "username", username, "error", err)
		m.sendError(c, "could not load account")
		return
	}

	c.account = account

	characters, err := m.listCharacters(ctx, account.ID)
	if err != nil {
		m.sendError(c, "could not list characters")
		return
	}
	m.sendJSON(c, joinedMessage{
		Type: "player:joined",
		Account: AccountInfo{
			ID:          account.ID,
			Username:    account.Username,
			Preferences: account.Preferences,
		},
		Characters: characters,
	})
}

func (m *ConnectionManager) handleCharacterList(ctx context.Context, c *client) {
	if c.account == nil {
		m.sendError(c, "join first")
		return
	}
	characters, err := m.listCharacters(ctx, c.account.ID)
	if err != nil {
		m.sendError(c, "could not list characters")
		return
	}
	m.sendJSON(c, characterListMessage{Type: "character:list", Characters: characters})
}

func (m *ConnectionManager) listCharacters(ctx context.Context, accountID string) ([]CharacterSummary, error) {
	chars, err := m.world.Characters().ListByAccount(ctx, accountID)
	if err != nil {
		slog.Error("Failed to list characters", "account_id", accountID, "error", err)
		return nil, err
	}
	summaries := make([]CharacterSummary, 0, len(chars))
	for _, ch := range chars {
		summaries = append(summaries, summarize(ch))
	}
	return summaries, nil
}

// handleCharacterCreate spawns a new character in the starting room with base
// stats. The spawn point item there, if any, becomes its respawn anchor.
func (m *ConnectionManager) handleCharacterCreate(ctx context.Context, c *client, name string) {
	if c.account == nil {
		m.sendError(c, "join first")
		return
	}

	character, err := newCharacter(ctx, m.world, c.account.ID, name)
	if err != nil {
		if services.IsValidationError(err) {
			m.sendError(c, err.Error())
			return
		}
		slog.Error("Failed to create character", "name", name, "error", err)
		m.sendError(c, "could not create character")
		return
	}
	slog.Info("Character created", "character_id", character.ID, "name", character.Name)
	m.sendJSON(c, characterMessage{Type: "character:created", Character: summarize(character)})
}

// handleCharacterSelect binds the socket to a character and puts it in play.
func (m *ConnectionManager) handleCharacterSelect(ctx context.Context, c *client, characterID string) {
	if c.account == nil {
		m.sendError(c, "join first")
		return
	}
	character, err := m.world.Characters().Get(ctx, characterID)
	if err != nil {
		m.sendError(c, "no such character")
		return
	}
	if character.AccountID != c.account.ID {
		m.sendError(c, "not your character")
		return
	}
	if character.IsDead {
		m.sendError(c, "that character is dead")
		return
	}

	m.mu.Lock()
	if prev, ok := m.byCharacter[characterID]; ok && prev != c {
		// One socket per character: the newer connection wins.
		prev.characterID = ""
		m.mu.Unlock()
		m.sendJSON(prev, textMessage{Type: "game:disconnect", Message: "Connected from elsewhere."})
		_ = prev.conn.Close(websocket.StatusNormalClosure, "superseded")
		m.mu.Lock()
	}
	if c.characterID != "" {
		delete(m.byCharacter, c.characterID)
	}
	c.characterID = characterID
	m.byCharacter[characterID] = c
	m.mu.Unlock()

	m.sendJSON(c, characterMessage{Type: "character:selected", Character: summarize(character)})

	m.announceConnection(character, true)

	// Initial room view arrives through the normal command pipeline.
	m.queue.Enqueue(game.Command{
		Source:     game.SourcePlayer,
		ActorID:    characterID,
		Text:       "look",
		EnqueuedAt: time.Now(),
	})
}

func (m *ConnectionManager) handleCommand(c *client, command string) {
	m.mu.RLock()
	characterID := c.characterID
	m.mu.RUnlock()
	if characterID == "" {
		m.sendError(c, "select a character first")
		return
	}
	text := strings.TrimSpace(command)
	if text == "" {
		return
	}
	m.queue.Enqueue(game.Command{
		Source:     game.SourcePlayer,
		ActorID:    characterID,
		Text:       text,
		EnqueuedAt: time.Now(),
	})
}

// handleAdminJoin subscribes the socket to the omniscient event mirror. The
// first watcher starts the PG LISTEN.
func (m *ConnectionManager) handleAdminJoin(c *client) {
	m.mu.Lock()
	first := len(m.admins) == 0
	m.admins[c.id] = c
	c.isAdmin = true
	m.mu.Unlock()

	if first {
		m.subscriberMu.RLock()
		sub := m.subscriber
		m.subscriberMu.RUnlock()
		if sub != nil {
			listenCtx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := sub.Subscribe(listenCtx, events.AdminChannel); err != nil {
				slog.Error("Failed to LISTEN on admin channel", "error", err)
				m.mu.Lock()
				delete(m.admins, c.id)
				c.isAdmin = false
				m.mu.Unlock()
				m.sendError(c, "admin mirror unavailable")
				return
			}
		}
	}

	m.sendJSON(c, textMessage{Type: "admin:joined", Message: "watching"})
}

func (m *ConnectionManager) handleAdminLeave(c *client) {
	m.mu.Lock()
	delete(m.admins, c.id)
	c.isAdmin = false
	last := len(m.admins) == 0
	m.mu.Unlock()

	if last {
		m.subscriberMu.RLock()
		sub := m.subscriber
		m.subscriberMu.RUnlock()
		if sub != nil {
			go func() {
				// Re-check before UNLISTEN: a watcher may have come back.
				m.mu.RLock()
				rewatched := len(m.admins) > 0
				m.mu.RUnlock()
				if rewatched {
					return
				}
				if err := sub.Unsubscribe(context.Background(), events.AdminChannel); err != nil {
					slog.Error("Failed to UNLISTEN admin channel", "error", err)
				}
			}()
		}
	}
}

// Broadcast fans a NOTIFY payload out to local admin watchers. Satisfies
// database.Broadcaster.
func (m *ConnectionManager) Broadcast(channel string, payload []byte) {
	if channel != events.AdminChannel {
		return
	}

	m.mu.RLock()
	watchers := make([]*client, 0, len(m.admins))
	for _, c := range m.admins {
		watchers = append(watchers, c)
	}
	m.mu.RUnlock()

	for _, c := range watchers {
		m.sendJSON(c, adminEventMessage{Type: "admin:game-event", Data: payload})
	}
}

// SendOutput delivers a structured command reply. Satisfies engine.OutputSink.
func (m *ConnectionManager) SendOutput(characterID string, output *models.StructuredOutput) {
	if c := m.lookup(characterID); c != nil {
		m.sendJSON(c, outputMessage{Type: "game:output", Output: output})
	}
}

// SendError delivers a command failure. Satisfies engine.OutputSink.
func (m *ConnectionManager) SendError(characterID string, message string) {
	if c := m.lookup(characterID); c != nil {
		m.sendJSON(c, textMessage{Type: "game:error", Message: message})
	}
}

// SendEvent delivers a formatted world event. Satisfies events.PlayerSink.
// Events that change the recipient's vitals or derived stats are followed by
// a character:update so the client never renders a stale sheet.
func (m *ConnectionManager) SendEvent(characterID string, event *events.WireEvent) {
	c := m.lookup(characterID)
	if c == nil {
		return
	}
	m.sendJSON(c, eventMessage{Type: "game:event", Event: event})

	if statsChanged(event.Data, characterID) {
		m.sendCharacterUpdate(c, characterID)
	}
}

// statsChanged reports whether the event altered the recipient's own sheet:
// they took a hit, or they changed their equipment.
func statsChanged(payload models.EventPayload, characterID string) bool {
	switch p := payload.(type) {
	case *models.CombatHitPayload:
		return p.TargetID == characterID
	case *models.ItemEquipPayload:
		return p.ActorID == characterID
	default:
		return false
	}
}

func (m *ConnectionManager) sendCharacterUpdate(c *client, characterID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	character, err := m.world.Characters().Get(ctx, characterID)
	if err != nil {
		return
	}
	m.sendJSON(c, characterMessage{Type: "character:update", Character: summarize(character)})
}

// NotifyDeath tells the player they died and closes the socket after a short
// linger. Satisfies engine.DeathSink.
func (m *ConnectionManager) NotifyDeath(characterID string) {
	c := m.lookup(characterID)
	if c == nil {
		return
	}

	m.sendCharacterUpdate(c, characterID)
	m.sendJSON(c, textMessage{Type: "game:death", Message: "You have died."})

	m.mu.Lock()
	delete(m.byCharacter, characterID)
	c.characterID = ""
	m.mu.Unlock()

	time.AfterFunc(deathLinger, func() {
		m.sendJSON(c, textMessage{Type: "game:disconnect", Message: "Your story has ended."})
		_ = c.conn.Close(websocket.StatusNormalClosure, "dead")
	})
}

// ActiveConnections reports the number of open sockets.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}

func (m *ConnectionManager) lookup(characterID string) *client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.byCharacter[characterID]
}

func (m *ConnectionManager) register(c *client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conns[c.id] = c
}

func (m *ConnectionManager) unregister(c *client) {
	m.mu.Lock()
	delete(m.conns, c.id)
	delete(m.admins, c.id)
	characterID := c.characterID
	if characterID != "" {
		delete(m.byCharacter, characterID)
		c.characterID = ""
	}
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")

	if characterID != "" {
		m.handleCharacterDisconnect(characterID)
	}
}

// handleCharacterDisconnect cleans up the world-side state of a vanished
// player: listening registrations are dropped and a connection event is
// emitted for the event log and the admin mirror. Room occupants see no line
// for it; presence changes surface through look.
func (m *ConnectionManager) handleCharacterDisconnect(characterID string) {
	if m.listening != nil {
		m.listening.Drop(characterID)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	character, err := m.world.Characters().Get(ctx, characterID)
	if err != nil {
		return
	}
	m.announceConnection(character, false)
}

func (m *ConnectionManager) announceConnection(character *models.Character, connected bool) {
	if m.propagator == nil {
		return
	}
	m.propagator.Broadcast(&models.GameEvent{
		ID:           uuid.NewString(),
		Type:         models.EventConnection,
		Timestamp:    time.Now(),
		OriginRoomID: character.RoomID,
		Visibility:   models.VisibilityRoom,
		Payload: &models.ConnectionPayload{
			ActorID:   character.ID,
			ActorName: character.Name,
			Connected: connected,
		},
	})
}

func (m *ConnectionManager) sendError(c *client, message string) {
	m.sendJSON(c, textMessage{Type: "error", Message: message})
}

func (m *ConnectionManager) sendJSON(c *client, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal socket message", "connection_id", c.id, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send socket message", "connection_id", c.id, "error", err)
	}
}

// sendRaw writes with a timeout so one stalled client cannot wedge delivery.
func (m *ConnectionManager) sendRaw(c *client, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
