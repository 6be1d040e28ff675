package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType is the closed set of semantic event kinds.
type EventType string

// Event type values, grouped as in the wire protocol.
const (
	// Speech and expression
	EventSpeech  EventType = "speech"
	EventShout   EventType = "shout"
	EventTell    EventType = "tell"
	EventWhisper EventType = "whisper"
	EventEmote   EventType = "emote"

	// Movement and presence
	EventMovement        EventType = "movement"
	EventPlayerEntered   EventType = "player_entered"
	EventPlayerLeft      EventType = "player_left"
	EventRoomDescription EventType = "room_description"

	// Combat
	EventCombatStart EventType = "combat_start"
	EventCombatHit   EventType = "combat_hit"
	EventDeath       EventType = "death"

	// Items
	EventItemPickup EventType = "item_pickup"
	EventItemDrop   EventType = "item_drop"
	EventItemEquip  EventType = "item_equip"

	// System
	EventSystem      EventType = "system"
	EventAmbient     EventType = "ambient"
	EventConnection  EventType = "connection"
	EventStateChange EventType = "state_change"

	// AI introspection — private, admin-only
	EventAIDecision EventType = "ai:decision"
	EventAIAction   EventType = "ai:action"
	EventAIError    EventType = "ai:error"
)

// Visibility controls the recipient set of an event.
type Visibility string

// Visibility values.
const (
	VisibilityRoom    Visibility = "room"
	VisibilityGlobal  Visibility = "global"
	VisibilityPrivate Visibility = "private"
)

// GameEvent is a semantic fact about the world, persisted append-only and
// fanned out to observers with per-recipient formatting.
type GameEvent struct {
	ID              string
	Type            EventType
	Timestamp       time.Time
	OriginRoomID    string
	Visibility      Visibility
	Attenuated      bool
	Content         string
	Payload         EventPayload
	Recipients      []string // explicit recipients for private events; nil ⇒ derive from payload actor
	RelatedEntities []string
}

// EventPayload is the tagged variant carried in an event's data field. Each
// event type has exactly one payload struct; the raw JSON blob exists only at
// the store boundary.
type EventPayload interface {
	EventType() EventType
	// Actor returns the acting character's id, or "" for actorless events.
	Actor() string
}

// SpeechPayload carries say.
type SpeechPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	Message   string `json:"message"`
}

// ShoutPayload carries shout; propagates beyond the origin room.
type ShoutPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	Message   string `json:"message"`
}

// TellPayload carries a directed message whose content is obfuscated for
// observers unless they are listening to a participant.
type TellPayload struct {
	ActorID    string `json:"actorId"`
	ActorName  string `json:"actorName"`
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	Message    string `json:"message"`
}

// WhisperPayload carries a private directed message.
type WhisperPayload struct {
	ActorID    string `json:"actorId"`
	ActorName  string `json:"actorName"`
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	Message    string `json:"message"`
}

// EmotePayload carries a free-form action.
type EmotePayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	Action    string `json:"action"`
}

// MovementPayload carries a room transition. Delivered to both origin and
// destination rooms.
type MovementPayload struct {
	ActorID    string `json:"actorId"`
	ActorName  string `json:"actorName"`
	FromRoomID string `json:"fromRoomId"`
	ToRoomID   string `json:"toRoomId"`
	Direction  string `json:"direction"`
}

// PlayerEnteredPayload announces a character appearing in a room (connect,
// spawn), as opposed to walking in.
type PlayerEnteredPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	RoomID    string `json:"roomId"`
}

// PlayerLeftPayload announces a character vanishing from a room.
type PlayerLeftPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	RoomID    string `json:"roomId"`
}

// RoomDescriptionPayload is the private look text pushed to a mover on arrival.
type RoomDescriptionPayload struct {
	ActorID string `json:"actorId"`
	RoomID  string `json:"roomId"`
	Text    string `json:"text"`
}

// CombatStartPayload announces combat beginning.
type CombatStartPayload struct {
	AttackerID   string `json:"attackerId"`
	AttackerName string `json:"attackerName"`
	TargetID     string `json:"targetId"`
	TargetName   string `json:"targetName"`
}

// CombatHitPayload carries one resolved swing.
type CombatHitPayload struct {
	AttackerID   string `json:"attackerId"`
	AttackerName string `json:"attackerName"`
	TargetID     string `json:"targetId"`
	TargetName   string `json:"targetName"`
	Damage       int    `json:"damage"`
	TargetHP     int    `json:"targetHp"`
	TargetMaxHP  int    `json:"targetMaxHp"`
}

// DeathPayload announces a character's death.
type DeathPayload struct {
	VictimID   string `json:"victimId"`
	VictimName string `json:"victimName"`
	KillerID   string `json:"killerId,omitempty"`
	KillerName string `json:"killerName,omitempty"`
}

// ItemPickupPayload carries take.
type ItemPickupPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
}

// ItemDropPayload carries drop.
type ItemDropPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
}

// ItemEquipPayload carries equip and unequip, distinguished by Equipped.
type ItemEquipPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	ItemID    string `json:"itemId"`
	ItemName  string `json:"itemName"`
	Equipped  bool   `json:"equipped"`
}

// SystemPayload is a per-actor system message (no propagation).
type SystemPayload struct {
	ActorID string `json:"actorId"`
	Message string `json:"message"`
}

// AmbientPayload is pre-rendered atmosphere text, also the attenuated form of
// distant combat and death.
type AmbientPayload struct {
	Message string `json:"message"`
}

// ConnectionPayload announces a player connecting or disconnecting.
type ConnectionPayload struct {
	ActorID   string `json:"actorId"`
	ActorName string `json:"actorName"`
	Connected bool   `json:"connected"`
}

// StateChangePayload announces an engine state transition (pause, resume).
type StateChangePayload struct {
	ActorID string `json:"actorId,omitempty"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

// AIDecisionPayload carries an agent's reasoning summary.
type AIDecisionPayload struct {
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName"`
	Reasoning string `json:"reasoning"`
}

// AIActionPayload carries the action an agent chose.
type AIActionPayload struct {
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName"`
	Action    string `json:"action"`
	Arguments string `json:"arguments,omitempty"`
}

// AIErrorPayload carries a non-fatal agent failure.
type AIErrorPayload struct {
	AgentID   string `json:"agentId"`
	AgentName string `json:"agentName"`
	Message   string `json:"message"`
}

func (p *SpeechPayload) EventType() EventType          { return EventSpeech }
func (p *ShoutPayload) EventType() EventType           { return EventShout }
func (p *TellPayload) EventType() EventType            { return EventTell }
func (p *WhisperPayload) EventType() EventType         { return EventWhisper }
func (p *EmotePayload) EventType() EventType           { return EventEmote }
func (p *MovementPayload) EventType() EventType        { return EventMovement }
func (p *PlayerEnteredPayload) EventType() EventType   { return EventPlayerEntered }
func (p *PlayerLeftPayload) EventType() EventType      { return EventPlayerLeft }
func (p *RoomDescriptionPayload) EventType() EventType { return EventRoomDescription }
func (p *CombatStartPayload) EventType() EventType     { return EventCombatStart }
func (p *CombatHitPayload) EventType() EventType       { return EventCombatHit }
func (p *DeathPayload) EventType() EventType           { return EventDeath }
func (p *ItemPickupPayload) EventType() EventType      { return EventItemPickup }
func (p *ItemDropPayload) EventType() EventType        { return EventItemDrop }
func (p *ItemEquipPayload) EventType() EventType       { return EventItemEquip }
func (p *SystemPayload) EventType() EventType          { return EventSystem }
func (p *AmbientPayload) EventType() EventType         { return EventAmbient }
func (p *ConnectionPayload) EventType() EventType      { return EventConnection }
func (p *StateChangePayload) EventType() EventType     { return EventStateChange }
func (p *AIDecisionPayload) EventType() EventType      { return EventAIDecision }
func (p *AIActionPayload) EventType() EventType        { return EventAIAction }
func (p *AIErrorPayload) EventType() EventType         { return EventAIError }

func (p *SpeechPayload) Actor() string          { return p.ActorID }
func (p *ShoutPayload) Actor() string           { return p.ActorID }
func (p *TellPayload) Actor() string            { return p.ActorID }
func (p *WhisperPayload) Actor() string         { return p.ActorID }
func (p *EmotePayload) Actor() string           { return p.ActorID }
func (p *MovementPayload) Actor() string        { return p.ActorID }
func (p *PlayerEnteredPayload) Actor() string   { return p.ActorID }
func (p *PlayerLeftPayload) Actor() string      { return p.ActorID }
func (p *RoomDescriptionPayload) Actor() string { return p.ActorID }
func (p *CombatStartPayload) Actor() string     { return p.AttackerID }
func (p *CombatHitPayload) Actor() string       { return p.AttackerID }
func (p *DeathPayload) Actor() string           { return p.VictimID }
func (p *ItemPickupPayload) Actor() string      { return p.ActorID }
func (p *ItemDropPayload) Actor() string        { return p.ActorID }
func (p *ItemEquipPayload) Actor() string       { return p.ActorID }
func (p *SystemPayload) Actor() string          { return p.ActorID }
func (p *AmbientPayload) Actor() string         { return "" }
func (p *ConnectionPayload) Actor() string      { return p.ActorID }
func (p *StateChangePayload) Actor() string     { return p.ActorID }
func (p *AIDecisionPayload) Actor() string      { return "" }
func (p *AIActionPayload) Actor() string        { return "" }
func (p *AIErrorPayload) Actor() string         { return "" }

// payloadFactories maps event types to payload constructors for decoding.
var payloadFactories = map[EventType]func() EventPayload{
	EventSpeech:          func() EventPayload { return &SpeechPayload{} },
	EventShout:           func() EventPayload { return &ShoutPayload{} },
	EventTell:            func() EventPayload { return &TellPayload{} },
	EventWhisper:         func() EventPayload { return &WhisperPayload{} },
	EventEmote:           func() EventPayload { return &EmotePayload{} },
	EventMovement:        func() EventPayload { return &MovementPayload{} },
	EventPlayerEntered:   func() EventPayload { return &PlayerEnteredPayload{} },
	EventPlayerLeft:      func() EventPayload { return &PlayerLeftPayload{} },
	EventRoomDescription: func() EventPayload { return &RoomDescriptionPayload{} },
	EventCombatStart:     func() EventPayload { return &CombatStartPayload{} },
	EventCombatHit:       func() EventPayload { return &CombatHitPayload{} },
	EventDeath:           func() EventPayload { return &DeathPayload{} },
	EventItemPickup:      func() EventPayload { return &ItemPickupPayload{} },
	EventItemDrop:        func() EventPayload { return &ItemDropPayload{} },
	EventItemEquip:       func() EventPayload { return &ItemEquipPayload{} },
	EventSystem:          func() EventPayload { return &SystemPayload{} },
	EventAmbient:         func() EventPayload { return &AmbientPayload{} },
	EventConnection:      func() EventPayload { return &ConnectionPayload{} },
	EventStateChange:     func() EventPayload { return &StateChangePayload{} },
	EventAIDecision:      func() EventPayload { return &AIDecisionPayload{} },
	EventAIAction:        func() EventPayload { return &AIActionPayload{} },
	EventAIError:         func() EventPayload { return &AIErrorPayload{} },
}

// MarshalPayload serialises an event's payload to the JSON blob stored in the
// data column.
func MarshalPayload(p EventPayload) ([]byte, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", p.EventType(), err)
	}
	return data, nil
}

// UnmarshalPayload decodes a stored data blob into the typed payload for the
// given event type.
func UnmarshalPayload(t EventType, data []byte) (EventPayload, error) {
	factory, ok := payloadFactories[t]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", t)
	}
	p := factory()
	if len(data) > 0 {
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("unmarshal %s payload: %w", t, err)
		}
	}
	return p, nil
}

// Clone returns a shallow copy of the event with a deep-copied recipients
// slice, for attenuation rewrites that must not mutate the queued original.
func (e *GameEvent) Clone() *GameEvent {
	dup := *e
	if e.Recipients != nil {
		dup.Recipients = append([]string(nil), e.Recipients...)
	}
	if e.RelatedEntities != nil {
		dup.RelatedEntities = append([]string(nil), e.RelatedEntities...)
	}
	return &dup
}

// AdminOnly reports whether the event is restricted to the admin channel.
func (e *GameEvent) AdminOnly() bool {
	switch e.Type {
	case EventAIDecision, EventAIAction, EventAIError:
		return true
	}
	return false
}
