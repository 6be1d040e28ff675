package services

import (
	"context"
	"fmt"
	"time"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/playerlog"
	"github.com/elliotbonneville/silt/pkg/models"
)

// PlayerLogService is the append-only per-character narrative trace.
type PlayerLogService struct {
	client *ent.Client
}

// NewPlayerLogService creates a new PlayerLogService.
func NewPlayerLogService(client *ent.Client) *PlayerLogService {
	return &PlayerLogService{client: client}
}

// Append records one trace entry.
func (s *PlayerLogService) Append(ctx context.Context, entry *models.PlayerLog) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.client.PlayerLog.Create().
		SetCharacterID(entry.CharacterID).
		SetKind(playerlog.Kind(entry.Kind)).
		SetPayload(entry.Payload).
		SetTimestamp(ts).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append player log for %s: %w", entry.CharacterID, err)
	}
	return nil
}

// ListByCharacter retrieves a character's trace, oldest first, capped at
// limit entries when limit is positive.
func (s *PlayerLogService) ListByCharacter(ctx context.Context, characterID string, limit int) ([]*models.PlayerLog, error) {
	q := s.client.PlayerLog.Query().
		Where(playerlog.CharacterID(characterID)).
		Order(ent.Asc(playerlog.FieldTimestamp))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list player logs for %s: %w", characterID, err)
	}
	logs := make([]*models.PlayerLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, &models.PlayerLog{
			CharacterID: row.CharacterID,
			Kind:        models.LogKind(row.Kind),
			Payload:     row.Payload,
			Timestamp:   row.Timestamp,
		})
	}
	return logs, nil
}

// DeleteOlderThan prunes trace entries whose timestamp precedes the cutoff
// and returns the number of rows removed.
func (s *PlayerLogService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.PlayerLog.Delete().
		Where(playerlog.TimestampLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("prune player logs before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
