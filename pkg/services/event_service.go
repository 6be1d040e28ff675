package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/gameevent"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// EventService is the append-only game event log.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService.
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// Append persists one event with its typed payload serialized into the JSON
// column.
func (s *EventService) Append(ctx context.Context, e *models.GameEvent) error {
	data, err := models.MarshalPayload(e.Payload)
	if err != nil {
		return fmt.Errorf("event %s: %w", e.ID, err)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("event %s payload: %w", e.ID, err)
	}

	_, err = s.client.GameEvent.Create().
		SetID(e.ID).
		SetType(string(e.Type)).
		SetTimestamp(e.Timestamp).
		SetOriginRoomID(e.OriginRoomID).
		SetVisibility(gameevent.Visibility(e.Visibility)).
		SetContent(e.Content).
		SetPayload(payload).
		SetRecipients(e.Recipients).
		SetRelatedEntities(e.RelatedEntities).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append event %s: %w", e.ID, err)
	}
	return nil
}

// List retrieves events matching the filter, newest last.
func (s *EventService) List(ctx context.Context, f store.EventFilter) ([]*models.GameEvent, error) {
	q := s.client.GameEvent.Query()
	if f.RoomID != "" {
		q = q.Where(gameevent.OriginRoomID(f.RoomID))
	}
	if len(f.Types) > 0 {
		types := make([]string, 0, len(f.Types))
		for _, t := range f.Types {
			types = append(types, string(t))
		}
		q = q.Where(gameevent.TypeIn(types...))
	}
	if !f.Since.IsZero() {
		q = q.Where(gameevent.TimestampGTE(f.Since))
	}
	q = q.Order(ent.Asc(gameevent.FieldTimestamp))
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	events := make([]*models.GameEvent, 0, len(rows))
	for _, row := range rows {
		e, err := eventToModel(row)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func eventToModel(row *ent.GameEvent) (*models.GameEvent, error) {
	var payload models.EventPayload
	if row.Payload != nil {
		data, err := json.Marshal(row.Payload)
		if err != nil {
			return nil, fmt.Errorf("event %s payload: %w", row.ID, err)
		}
		payload, err = models.UnmarshalPayload(models.EventType(row.Type), data)
		if err != nil {
			return nil, fmt.Errorf("event %s: %w", row.ID, err)
		}
	}
	return &models.GameEvent{
		ID:              row.ID,
		Type:            models.EventType(row.Type),
		Timestamp:       row.Timestamp,
		OriginRoomID:    row.OriginRoomID,
		Visibility:      models.Visibility(row.Visibility),
		Content:         row.Content,
		Payload:         payload,
		Recipients:      row.Recipients,
		RelatedEntities: row.RelatedEntities,
	}, nil
}

// DeleteOlderThan prunes events whose timestamp precedes the cutoff and
// returns the number of rows removed. Idempotent and safe across replicas.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.GameEvent.Delete().
		Where(gameevent.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune events before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
