package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL. The
// admin event browser searches the omniscient event text; the player log
// viewer searches narrative traces. Neither index is expressible in the Ent
// schema.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_game_events_content_gin
		ON game_events USING gin(to_tsvector('english', COALESCE(content, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create game_events content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_player_logs_payload_gin
		ON player_logs USING gin(to_tsvector('english', payload))`)
	if err != nil {
		return fmt.Errorf("failed to create player_logs payload GIN index: %w", err)
	}

	return nil
}
