// Package events implements the event propagation pipeline: queueing,
// recipient computation over the room graph, spatial attenuation, the admin
// mirror, perspective-aware formatting, and delivery to player sockets and AI
// perception queues.
package events

import (
	"time"

	"github.com/elliotbonneville/silt/pkg/models"
)

// PropagationRange returns how many room-graph hops an event type carries.
// A negative value means the event does not propagate spatially at all: it is
// delivered per-actor (system, connection, state_change) or admin-only (ai:*).
func PropagationRange(t models.EventType) int {
	switch t {
	case models.EventShout, models.EventCombatStart, models.EventDeath:
		return 2
	case models.EventSpeech, models.EventEmote, models.EventTell, models.EventWhisper,
		models.EventItemPickup, models.EventItemDrop, models.EventItemEquip,
		models.EventPlayerEntered, models.EventPlayerLeft,
		models.EventRoomDescription, models.EventAmbient,
		models.EventMovement:
		return 0
	default:
		return -1
	}
}

// AdminChannel is the NOTIFY/WS channel carrying the omniscient event mirror.
const AdminChannel = "silt_admin_events"

// EventWithRecipients is the admin mirror envelope: the full event plus the
// computed recipient list and an omniscient render.
type EventWithRecipients struct {
	Event      *WireEvent `json:"event"`
	Rendered   string     `json:"rendered"`
	Recipients []string   `json:"recipients"`
}

// WireEvent is the JSON shape of a game event on the socket.
type WireEvent struct {
	ID           string              `json:"id"`
	Type         models.EventType    `json:"type"`
	Timestamp    string              `json:"timestamp"` // RFC3339Nano
	OriginRoomID string              `json:"originRoomId"`
	Visibility   models.Visibility   `json:"visibility"`
	Attenuated   bool                `json:"attenuated"`
	Content      string              `json:"content,omitempty"`
	Data         models.EventPayload `json:"data"`
}

// ToWire converts an event for socket delivery, with the recipient-specific
// rendered content substituted in.
func ToWire(e *models.GameEvent, rendered string) *WireEvent {
	return &WireEvent{
		ID:           e.ID,
		Type:         e.Type,
		Timestamp:    e.Timestamp.UTC().Format(time.RFC3339Nano),
		OriginRoomID: e.OriginRoomID,
		Visibility:   e.Visibility,
		Attenuated:   e.Attenuated,
		Content:      rendered,
		Data:         e.Payload,
	}
}
