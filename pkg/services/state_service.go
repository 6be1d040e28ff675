package services

import (
	"context"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/pkg/models"
)

// gameStateRowID is the id of the single game_states row.
const gameStateRowID = 1

// GameStateService persists engine state across restarts.
type GameStateService struct {
	client *ent.Client
}

// NewGameStateService creates a new GameStateService.
func NewGameStateService(client *ent.Client) *GameStateService {
	return &GameStateService{client: client}
}

// Get returns the persisted state, or the zero state when the row does not
// exist yet (fresh world).
func (s *GameStateService) Get(ctx context.Context) (*models.GameState, error) {
	row, err := s.client.GameState.Get(ctx, gameStateRowID)
	if err != nil {
		if ent.IsNotFound(err) {
			return &models.GameState{}, nil
		}
		return nil, fmt.Errorf("get game state: %w", err)
	}
	return &models.GameState{
		IsPaused: row.IsPaused,
		GameTime: row.GameTime,
	}, nil
}

// Save upserts the single state row.
func (s *GameStateService) Save(ctx context.Context, state *models.GameState) error {
	err := s.client.GameState.Create().
		SetID(gameStateRowID).
		SetIsPaused(state.IsPaused).
		SetGameTime(state.GameTime).
		OnConflictColumns("id").
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save game state: %w", err)
	}
	return nil
}
