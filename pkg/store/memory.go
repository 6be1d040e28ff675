package store

import (
	"context"
	"sort"
	"sync"

	"dario.cat/mergo"

	"github.com/elliotbonneville/silt/pkg/models"
)

// Memory is an in-memory World used by the engine tests and by local
// development without a database. All methods copy on the way in and out so
// callers never share mutable state with the store.
type Memory struct {
	mu         sync.RWMutex
	rooms      map[string]*models.Room
	characters map[string]*models.Character
	items      map[string]*models.Item
	agents     map[string]*models.AIAgent
	events     []*models.GameEvent
	playerLogs []*models.PlayerLog
	usage      []*models.TokenUsage
	accounts   map[string]*models.Account
	state      models.GameState
}

// NewMemory creates an empty in-memory world.
func NewMemory() *Memory {
	return &Memory{
		rooms:      make(map[string]*models.Room),
		characters: make(map[string]*models.Character),
		items:      make(map[string]*models.Item),
		agents:     make(map[string]*models.AIAgent),
		accounts:   make(map[string]*models.Account),
	}
}

func (m *Memory) Rooms() RoomStore            { return (*memoryRooms)(m) }
func (m *Memory) Characters() CharacterStore  { return (*memoryCharacters)(m) }
func (m *Memory) Items() ItemStore            { return (*memoryItems)(m) }
func (m *Memory) Agents() AgentStore          { return (*memoryAgents)(m) }
func (m *Memory) Events() EventStore          { return (*memoryEvents)(m) }
func (m *Memory) PlayerLogs() PlayerLogStore  { return (*memoryPlayerLogs)(m) }
func (m *Memory) TokenUsage() TokenUsageStore { return (*memoryUsage)(m) }
func (m *Memory) GameState() GameStateStore   { return (*memoryState)(m) }
func (m *Memory) Accounts() AccountStore      { return (*memoryAccounts)(m) }

// --- rooms ---

type memoryRooms Memory

func copyRoom(r *models.Room) *models.Room {
	dup := *r
	dup.Exits = make(map[string]string, len(r.Exits))
	for k, v := range r.Exits {
		dup.Exits[k] = v
	}
	return &dup
}

func (m *memoryRooms) Get(_ context.Context, id string) (*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRoom(r), nil
}

func (m *memoryRooms) All(_ context.Context) ([]*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		out = append(out, copyRoom(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryRooms) Starting(_ context.Context) (*models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.rooms))
	for id := range m.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if m.rooms[id].IsStarting {
			return copyRoom(m.rooms[id]), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryRooms) Create(_ context.Context, room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rooms[room.ID] = copyRoom(room)
	return nil
}

func (m *memoryRooms) Update(_ context.Context, room *models.Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[room.ID]; !ok {
		return ErrNotFound
	}
	m.rooms[room.ID] = copyRoom(room)
	return nil
}

// --- characters ---

type memoryCharacters Memory

func copyCharacter(c *models.Character) *models.Character {
	dup := *c
	if c.DiedAt != nil {
		t := *c.DiedAt
		dup.DiedAt = &t
	}
	return &dup
}

func (m *memoryCharacters) Get(_ context.Context, id string) (*models.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.characters[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyCharacter(c), nil
}

func (m *memoryCharacters) ListByRoom(_ context.Context, roomID string) ([]*models.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Character
	for _, c := range m.characters {
		if c.RoomID == roomID {
			out = append(out, copyCharacter(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryCharacters) ListByAccount(_ context.Context, accountID string) ([]*models.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Character
	for _, c := range m.characters {
		if c.AccountID == accountID {
			out = append(out, copyCharacter(c))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryCharacters) All(_ context.Context) ([]*models.Character, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.Character, 0, len(m.characters))
	for _, c := range m.characters {
		out = append(out, copyCharacter(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryCharacters) Create(_ context.Context, c *models.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.characters[c.ID] = copyCharacter(c)
	return nil
}

func (m *memoryCharacters) Update(_ context.Context, c *models.Character) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.characters[c.ID]; !ok {
		return ErrNotFound
	}
	m.characters[c.ID] = copyCharacter(c)
	return nil
}

func (m *memoryCharacters) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.characters[id]; !ok {
		return ErrNotFound
	}
	delete(m.characters, id)
	return nil
}

// --- items ---

type memoryItems Memory

func copyItem(i *models.Item) *models.Item {
	dup := *i
	return &dup
}

func (m *memoryItems) Get(_ context.Context, id string) (*models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyItem(i), nil
}

func (m *memoryItems) ListByRoom(_ context.Context, roomID string) ([]*models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Item
	for _, i := range m.items {
		if i.RoomID == roomID {
			out = append(out, copyItem(i))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (m *memoryItems) ListByCharacter(_ context.Context, characterID string) ([]*models.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.Item
	for _, i := range m.items {
		if i.CharacterID == characterID {
			out = append(out, copyItem(i))
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (m *memoryItems) Create(_ context.Context, item *models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[item.ID] = copyItem(item)
	return nil
}

func (m *memoryItems) Update(_ context.Context, item *models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[item.ID]; !ok {
		return ErrNotFound
	}
	m.items[item.ID] = copyItem(item)
	return nil
}

func (m *memoryItems) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// --- agents ---

type memoryAgents Memory

func copyAgent(a *models.AIAgent) *models.AIAgent {
	dup := *a
	if a.SpatialMemoryUpdatedAt != nil {
		t := *a.SpatialMemoryUpdatedAt
		dup.SpatialMemoryUpdatedAt = &t
	}
	dup.Relationships = make(map[string]models.Relationship, len(a.Relationships))
	for k, v := range a.Relationships {
		dup.Relationships[k] = v
	}
	dup.Conversation = append([]models.ConversationEntry(nil), a.Conversation...)
	return &dup
}

func (m *memoryAgents) Get(_ context.Context, id string) (*models.AIAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.agents[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyAgent(a), nil
}

func (m *memoryAgents) GetByCharacter(_ context.Context, characterID string) (*models.AIAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.agents {
		if a.CharacterID == characterID {
			return copyAgent(a), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryAgents) All(_ context.Context) ([]*models.AIAgent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*models.AIAgent, 0, len(m.agents))
	for _, a := range m.agents {
		out = append(out, copyAgent(a))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memoryAgents) Create(_ context.Context, agent *models.AIAgent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agents[agent.ID] = copyAgent(agent)
	return nil
}

func (m *memoryAgents) Update(_ context.Context, agent *models.AIAgent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.agents[agent.ID]; !ok {
		return ErrNotFound
	}
	m.agents[agent.ID] = copyAgent(agent)
	return nil
}

func (m *memoryAgents) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.agents[id]; !ok {
		return ErrNotFound
	}
	delete(m.agents, id)
	return nil
}

// --- events ---

type memoryEvents Memory

func (m *memoryEvents) Append(_ context.Context, e *models.GameEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e.Clone())
	return nil
}

func (m *memoryEvents) List(_ context.Context, f EventFilter) ([]*models.GameEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.GameEvent
	for _, e := range m.events {
		if f.RoomID != "" && e.OriginRoomID != f.RoomID {
			continue
		}
		if !f.Since.IsZero() && e.Timestamp.Before(f.Since) {
			continue
		}
		if len(f.Types) > 0 && !containsType(f.Types, e.Type) {
			continue
		}
		out = append(out, e.Clone())
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out, nil
}

func containsType(types []models.EventType, t models.EventType) bool {
	for _, candidate := range types {
		if candidate == t {
			return true
		}
	}
	return false
}

// --- player logs ---

type memoryPlayerLogs Memory

func (m *memoryPlayerLogs) Append(_ context.Context, entry *models.PlayerLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dup := *entry
	m.playerLogs = append(m.playerLogs, &dup)
	return nil
}

// PlayerLogsFor returns the recorded entries for a character, oldest first.
// Test helper; not part of the store interfaces.
func (m *Memory) PlayerLogsFor(characterID string) []*models.PlayerLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*models.PlayerLog
	for _, l := range m.playerLogs {
		if l.CharacterID == characterID {
			dup := *l
			out = append(out, &dup)
		}
	}
	return out
}

// --- token usage ---

type memoryUsage Memory

func (m *memoryUsage) Record(_ context.Context, usage *models.TokenUsage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	dup := *usage
	m.usage = append(m.usage, &dup)
	return nil
}

func (m *memoryUsage) Totals(_ context.Context) (*UsageTotals, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	totals := &UsageTotals{
		BySource: make(map[models.UsageSource]int),
		ByAgent:  make(map[string]int),
	}
	for _, u := range m.usage {
		totals.PromptTokens += u.PromptTokens
		totals.CompletionTokens += u.CompletionTokens
		totals.TotalTokens += u.TotalTokens
		totals.Cost += u.Cost
		totals.BySource[u.Source] += u.TotalTokens
		if u.AgentID != "" {
			totals.ByAgent[u.AgentID] += u.TotalTokens
		}
	}
	return totals, nil
}

// --- game state ---

type memoryState Memory

func (m *memoryState) Get(_ context.Context) (*models.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state := m.state
	return &state, nil
}

func (m *memoryState) Save(_ context.Context, state *models.GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = *state
	return nil
}

// --- accounts ---

type memoryAccounts Memory

func copyAccount(a *models.Account) *models.Account {
	dup := *a
	dup.Preferences = make(map[string]any, len(a.Preferences))
	for k, v := range a.Preferences {
		dup.Preferences[k] = v
	}
	return &dup
}

func (m *memoryAccounts) GetByUsername(_ context.Context, username string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Username == username {
			return copyAccount(a), nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryAccounts) Create(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = copyAccount(account)
	return nil
}

func (m *memoryAccounts) UpdatePreferences(_ context.Context, username string, prefs map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Username == username {
			merged := a.Preferences
			if merged == nil {
				merged = make(map[string]any)
			}
			if err := mergo.Merge(&merged, prefs, mergo.WithOverride); err != nil {
				return err
			}
			a.Preferences = merged
			return nil
		}
	}
	return ErrNotFound
}
