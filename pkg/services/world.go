// Package services implements the persistent store.World over the Ent client.
// Each entity gets its own service; World aggregates them for the engine.
// JSON columns (exits, stats, relationships, event payloads) are converted to
// their typed forms at this boundary; nothing above it sees raw blobs.
package services

import (
	"encoding/json"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/pkg/store"
)

// World is the ent-backed store.World.
type World struct {
	rooms      *RoomService
	characters *CharacterService
	items      *ItemService
	agents     *AgentService
	events     *EventService
	playerLogs *PlayerLogService
	usage      *TokenUsageService
	state      *GameStateService
	accounts   *AccountService
}

// NewWorld wires the per-entity services over one Ent client.
func NewWorld(client *ent.Client) *World {
	return &World{
		rooms:      NewRoomService(client),
		characters: NewCharacterService(client),
		items:      NewItemService(client),
		agents:     NewAgentService(client),
		events:     NewEventService(client),
		playerLogs: NewPlayerLogService(client),
		usage:      NewTokenUsageService(client),
		state:      NewGameStateService(client),
		accounts:   NewAccountService(client),
	}
}

func (w *World) Rooms() store.RoomStore           { return w.rooms }
func (w *World) Characters() store.CharacterStore { return w.characters }
func (w *World) Items() store.ItemStore           { return w.items }
func (w *World) Agents() store.AgentStore         { return w.agents }
func (w *World) Events() store.EventStore         { return w.events }
func (w *World) PlayerLogs() store.PlayerLogStore { return w.playerLogs }
func (w *World) TokenUsage() store.TokenUsageStore {
	return w.usage
}
func (w *World) GameState() store.GameStateStore { return w.state }
func (w *World) Accounts() store.AccountStore    { return w.accounts }

// jsonRoundTrip converts between a typed value and the map/slice form the
// JSON columns store, without hand-written field copying.
func jsonRoundTrip(src, dst any) error {
	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshal for json column: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshal from json column: %w", err)
	}
	return nil
}
