// Package store defines the repository interfaces the simulation core runs
// against. Production wires the ent-backed implementation from pkg/services;
// tests use the in-memory implementation in this package. The core never sees
// a database handle.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/elliotbonneville/silt/pkg/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// World aggregates the per-entity repositories.
type World interface {
	Rooms() RoomStore
	Characters() CharacterStore
	Items() ItemStore
	Agents() AgentStore
	Events() EventStore
	PlayerLogs() PlayerLogStore
	TokenUsage() TokenUsageStore
	GameState() GameStateStore
	Accounts() AccountStore
}

// RoomStore accesses the room graph. Rooms are immutable during normal
// simulation; Create/Update exist for seeding and admin tooling.
type RoomStore interface {
	Get(ctx context.Context, id string) (*models.Room, error)
	All(ctx context.Context) ([]*models.Room, error)
	Starting(ctx context.Context) (*models.Room, error)
	Create(ctx context.Context, room *models.Room) error
	Update(ctx context.Context, room *models.Room) error
}

// CharacterStore accesses characters (players and NPCs).
type CharacterStore interface {
	Get(ctx context.Context, id string) (*models.Character, error)
	ListByRoom(ctx context.Context, roomID string) ([]*models.Character, error)
	ListByAccount(ctx context.Context, accountID string) ([]*models.Character, error)
	All(ctx context.Context) ([]*models.Character, error)
	Create(ctx context.Context, c *models.Character) error
	Update(ctx context.Context, c *models.Character) error
	// Delete retires a character. Historical events keep referencing its id.
	Delete(ctx context.Context, id string) error
}

// ItemStore accesses items wherever they rest.
type ItemStore interface {
	Get(ctx context.Context, id string) (*models.Item, error)
	ListByRoom(ctx context.Context, roomID string) ([]*models.Item, error)
	ListByCharacter(ctx context.Context, characterID string) ([]*models.Item, error)
	Create(ctx context.Context, item *models.Item) error
	Update(ctx context.Context, item *models.Item) error
	Delete(ctx context.Context, id string) error
}

// AgentStore accesses AI agents.
type AgentStore interface {
	Get(ctx context.Context, id string) (*models.AIAgent, error)
	GetByCharacter(ctx context.Context, characterID string) (*models.AIAgent, error)
	All(ctx context.Context) ([]*models.AIAgent, error)
	Create(ctx context.Context, agent *models.AIAgent) error
	Update(ctx context.Context, agent *models.AIAgent) error
	Delete(ctx context.Context, id string) error
}

// EventFilter narrows event listings for the admin surface.
type EventFilter struct {
	RoomID string
	Types  []models.EventType
	Since  time.Time
	Limit  int
}

// EventStore is the append-only game event log.
type EventStore interface {
	Append(ctx context.Context, e *models.GameEvent) error
	List(ctx context.Context, f EventFilter) ([]*models.GameEvent, error)
}

// PlayerLogStore is the append-only per-character narrative trace.
type PlayerLogStore interface {
	Append(ctx context.Context, entry *models.PlayerLog) error
}

// UsageTotals aggregates token-usage rows for analytics.
type UsageTotals struct {
	PromptTokens     int                        `json:"promptTokens"`
	CompletionTokens int                        `json:"completionTokens"`
	TotalTokens      int                        `json:"totalTokens"`
	Cost             float64                    `json:"cost"`
	BySource         map[models.UsageSource]int `json:"bySource"`
	ByAgent          map[string]int             `json:"byAgent"`
}

// TokenUsageStore records LLM accounting.
type TokenUsageStore interface {
	Record(ctx context.Context, usage *models.TokenUsage) error
	Totals(ctx context.Context) (*UsageTotals, error)
}

// GameStateStore persists pause state and game time across restarts.
type GameStateStore interface {
	Get(ctx context.Context) (*models.GameState, error)
	Save(ctx context.Context, state *models.GameState) error
}

// AccountStore accesses login identities.
type AccountStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	UpdatePreferences(ctx context.Context, username string, prefs map[string]any) error
}
