package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/elliotbonneville/silt/pkg/events"
)

// notifyPayloadLimit is slightly under PostgreSQL's 8000-byte NOTIFY cap,
// leaving headroom for the channel name and protocol framing.
const notifyPayloadLimit = 7900

// AdminEventPublisher mirrors every propagated event onto the admin NOTIFY
// channel. The propagator has already persisted the event by the time
// MirrorEvent runs, so this is notify-only: a truncated payload just tells the
// admin client to refetch the full event over REST.
type AdminEventPublisher struct {
	db *sql.DB
}

// NewAdminEventPublisher creates a publisher over the shared pool.
func NewAdminEventPublisher(db *sql.DB) *AdminEventPublisher {
	return &AdminEventPublisher{db: db}
}

// MirrorEvent broadcasts the envelope via pg_notify on the admin channel.
func (p *AdminEventPublisher) MirrorEvent(ctx context.Context, envelope *events.EventWithRecipients) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal admin envelope: %w", err)
	}

	notifyPayload, err := truncateIfNeeded(payload, envelope)
	if err != nil {
		return err
	}

	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", events.AdminChannel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify admin mirror: %w", err)
	}
	return nil
}

// truncateIfNeeded returns the payload as-is when it fits the NOTIFY limit,
// otherwise a minimal envelope carrying only the routing fields.
func truncateIfNeeded(payload []byte, envelope *events.EventWithRecipients) (string, error) {
	if len(payload) <= notifyPayloadLimit {
		return string(payload), nil
	}

	truncated := map[string]any{
		"truncated": true,
	}
	if envelope.Event != nil {
		truncated["event"] = map[string]any{
			"id":        envelope.Event.ID,
			"type":      envelope.Event.Type,
			"timestamp": envelope.Event.Timestamp,
		}
	}
	data, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("marshal truncated admin envelope: %w", err)
	}
	return string(data), nil
}
