// Package api exposes the HTTP and WebSocket surface: player sockets, the
// admin dashboard endpoints, and account/character management over REST.
package api

import (
	"encoding/json"

	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/models"
)

// Client → server message types.
const (
	msgPlayerJoin      = "player:join"
	msgCharacterList   = "character:list"
	msgCharacterCreate = "character:create"
	msgCharacterSelect = "character:select"
	msgGameCommand     = "game:command"
	msgAdminJoin       = "admin:join"
	msgAdminLeave      = "admin:leave"
)

// ClientMessage is the envelope for every message a socket client sends.
// Which fields are read depends on Type.
type ClientMessage struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	CharacterID string `json:"characterId,omitempty"`
	Command     string `json:"command,omitempty"`
}

// AccountInfo is the account shape sent after a successful join.
type AccountInfo struct {
	ID          string         `json:"id"`
	Username    string         `json:"username"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// CharacterSummary is the character shape in socket replies and REST listings.
type CharacterSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	RoomID  string `json:"roomId"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	IsAlive bool   `json:"isAlive"`
	IsDead  bool   `json:"isDead"`
}

func summarize(c *models.Character) CharacterSummary {
	return CharacterSummary{
		ID:      c.ID,
		Name:    c.Name,
		RoomID:  c.RoomID,
		HP:      c.HP,
		MaxHP:   c.MaxHP,
		IsAlive: c.IsAlive,
		IsDead:  c.IsDead,
	}
}

// Server → client messages. Every variant carries Type so clients can switch
// on a single discriminator.

type connectedMessage struct {
	Type         string `json:"type"`
	ConnectionID string `json:"connectionId"`
}

type joinedMessage struct {
	Type       string             `json:"type"`
	Account    AccountInfo        `json:"account"`
	Characters []CharacterSummary `json:"characters"`
}

type characterListMessage struct {
	Type       string             `json:"type"`
	Characters []CharacterSummary `json:"characters"`
}

type characterMessage struct {
	Type      string           `json:"type"`
	Character CharacterSummary `json:"character"`
}

type outputMessage struct {
	Type   string                   `json:"type"`
	Output *models.StructuredOutput `json:"output"`
}

type eventMessage struct {
	Type  string            `json:"type"`
	Event *events.WireEvent `json:"event"`
}

type textMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type adminEventMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}
