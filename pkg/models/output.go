package models

import "time"

// OutputView discriminates the structured command output record.
type OutputView string

// Output view values.
const (
	ViewRoom            OutputView = "room"
	ViewInventory       OutputView = "inventory"
	ViewItemDetail      OutputView = "item_detail"
	ViewCharacterDetail OutputView = "character_detail"
	ViewSystemMessage   OutputView = "system_message"
)

// StructuredOutput is the typed reply a command handler returns to the
// commanding socket as game:output. Text always carries the narrative form;
// at most one of the view pointers is populated, matching View.
type StructuredOutput struct {
	View      OutputView           `json:"view"`
	Text      string               `json:"text"`
	Room      *RoomView            `json:"room,omitempty"`
	Inventory *InventoryView       `json:"inventory,omitempty"`
	Item      *ItemDetailView      `json:"item,omitempty"`
	Character *CharacterDetailView `json:"character,omitempty"`
}

// NamedRef is a minimal id/name pair for listing entities in views.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoomView is the structured form of a room description.
type RoomView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exits       []string   `json:"exits"`
	Characters  []NamedRef `json:"characters"`
	Items       []NamedRef `json:"items"`
}

// InventoryItemView is one carried item.
type InventoryItemView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Equipped bool     `json:"equipped"`
}

// InventoryView is the structured form of an inventory listing.
type InventoryView struct {
	Items []InventoryItemView `json:"items"`
}

// ItemDetailView is the structured form of examining an item.
type ItemDetailView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ItemType  `json:"type"`
	Stats       ItemStats `json:"stats"`
	Equipped    bool      `json:"equipped"`
}

// CharacterDetailView is the structured form of examining a character.
type CharacterDetailView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Health      string `json:"health"`
	IsAlive     bool   `json:"isAlive"`
}

// SystemMessage builds a system_message output.
func SystemMessage(text string) *StructuredOutput {
	return &StructuredOutput{View: ViewSystemMessage, Text: text}
}

// UsageSource identifies which oracle call produced a token-usage record.
type UsageSource string

// Usage source values.
const (
	UsageConversation     UsageSource = "conversation"
	UsageDecision         UsageSource = "decision"
	UsageDecisionResponse UsageSource = "decision_response"
	UsageSpatialMemory    UsageSource = "spatial_memory"
)

// TokenUsage is one LLM accounting record.
type TokenUsage struct {
	ID               string
	Model            string
	Provider         string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Cost             float64
	Source           UsageSource
	AgentID          string
	SourceEventID    string
	CreatedAt        time.Time
}

// LogKind discriminates player log entries.
type LogKind string

// Player log kinds.
const (
	LogCommand LogKind = "command"
	LogOutput  LogKind = "output"
	LogEvent   LogKind = "event"
)

// PlayerLog is one entry of a character's append-only narrative trace.
type PlayerLog struct {
	CharacterID string
	Kind        LogKind
	Payload     string
	Timestamp   time.Time
}

// GameState is the engine state persisted across restarts.
type GameState struct {
	IsPaused bool
	GameTime float64 // seconds of unpaused simulation
}
