package models

import "time"

// ConversationLimit bounds each agent's rolling conversation history.
const ConversationLimit = 20

// Relationship tracks an agent's disposition toward a peer, keyed by peer name.
type Relationship struct {
	Sentiment   int       `json:"sentiment"` // -10..10
	Trust       int       `json:"trust"`     // 0..10
	Familiarity int       `json:"familiarity"`
	LastSeen    time.Time `json:"lastSeen"`
	Role        string    `json:"role,omitempty"`
}

// ConversationEntry is one line of an agent's remembered dialogue.
type ConversationEntry struct {
	Speaker   string    `json:"speaker"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// AIAgent binds an LLM-driven brain to an NPC character.
type AIAgent struct {
	ID                     string
	CharacterID            string
	SystemPrompt           string
	HomeRoomID             string
	MaxRoomsFromHome       int // 0..10
	SpatialMemory          string
	SpatialMemoryUpdatedAt *time.Time
	Relationships          map[string]Relationship
	Conversation           []ConversationEntry
	LastActionAt           time.Time
}

// RecordConversation appends an entry and trims the history to ConversationLimit.
func (a *AIAgent) RecordConversation(entry ConversationEntry) {
	a.Conversation = append(a.Conversation, entry)
	if len(a.Conversation) > ConversationLimit {
		a.Conversation = a.Conversation[len(a.Conversation)-ConversationLimit:]
	}
}

// Touch updates the relationship bookkeeping for a peer after an exchange:
// familiarity always advances, sentiment/trust deltas are merged and clamped.
func (a *AIAgent) Touch(peer string, sentimentDelta, trustDelta int, now time.Time) {
	if a.Relationships == nil {
		a.Relationships = make(map[string]Relationship)
	}
	rel := a.Relationships[peer]
	rel.Familiarity++
	rel.LastSeen = now
	rel.Sentiment = clamp(rel.Sentiment+sentimentDelta, -10, 10)
	rel.Trust = clamp(rel.Trust+trustDelta, 0, 10)
	a.Relationships[peer] = rel
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
