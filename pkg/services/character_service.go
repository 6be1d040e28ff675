package services

import (
	"context"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/character"
	"github.com/elliotbonneville/silt/pkg/models"
)

// CharacterService manages characters, both player-owned and NPCs.
type CharacterService struct {
	client *ent.Client
}

// NewCharacterService creates a new CharacterService.
func NewCharacterService(client *ent.Client) *CharacterService {
	return &CharacterService{client: client}
}

// Get retrieves a character by id.
func (s *CharacterService) Get(ctx context.Context, id string) (*models.Character, error) {
	row, err := s.client.Character.Get(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "character", id)
	}
	return characterToModel(row), nil
}

// ListByRoom lists every character in a room, dead or alive.
func (s *CharacterService) ListByRoom(ctx context.Context, roomID string) ([]*models.Character, error) {
	rows, err := s.client.Character.Query().
		Where(character.RoomID(roomID)).
		Order(ent.Asc(character.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters in room %s: %w", roomID, err)
	}
	return charactersToModels(rows), nil
}

// ListByAccount lists an account's characters.
func (s *CharacterService) ListByAccount(ctx context.Context, accountID string) ([]*models.Character, error) {
	rows, err := s.client.Character.Query().
		Where(character.AccountID(accountID)).
		Order(ent.Asc(character.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters for account %s: %w", accountID, err)
	}
	return charactersToModels(rows), nil
}

// All lists every character in the world.
func (s *CharacterService) All(ctx context.Context) ([]*models.Character, error) {
	rows, err := s.client.Character.Query().Order(ent.Asc(character.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	return charactersToModels(rows), nil
}

// Create inserts a character.
func (s *CharacterService) Create(ctx context.Context, c *models.Character) error {
	builder := s.client.Character.Create().
		SetID(c.ID).
		SetName(c.Name).
		SetDescription(c.Description).
		SetRoomID(c.RoomID).
		SetHp(c.HP).
		SetMaxHp(c.MaxHP).
		SetAttack(c.Attack).
		SetDefense(c.Defense).
		SetSpeed(c.Speed).
		SetIsAlive(c.IsAlive).
		SetIsDead(c.IsDead).
		SetLastActionAt(c.LastActionAt)
	if c.AccountID != "" {
		builder.SetAccountID(c.AccountID)
	}
	if c.SpawnPointID != "" {
		builder.SetSpawnPointID(c.SpawnPointID)
	}
	if !c.CreatedAt.IsZero() {
		builder.SetCreatedAt(c.CreatedAt)
	}
	if c.DiedAt != nil {
		builder.SetDiedAt(*c.DiedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create character %s: %w", c.ID, err)
	}
	return nil
}

// Update rewrites a character's mutable state.
func (s *CharacterService) Update(ctx context.Context, c *models.Character) error {
	builder := s.client.Character.UpdateOneID(c.ID).
		SetName(c.Name).
		SetDescription(c.Description).
		SetRoomID(c.RoomID).
		SetHp(c.HP).
		SetMaxHp(c.MaxHP).
		SetAttack(c.Attack).
		SetDefense(c.Defense).
		SetSpeed(c.Speed).
		SetIsAlive(c.IsAlive).
		SetIsDead(c.IsDead).
		SetLastActionAt(c.LastActionAt)
	if c.DiedAt != nil {
		builder.SetDiedAt(*c.DiedAt)
	} else {
		builder.ClearDiedAt()
	}
	if err := builder.Exec(ctx); err != nil {
		return wrapNotFound(err, "character", c.ID)
	}
	return nil
}

// Delete retires a character. Historical events keep referencing its id.
func (s *CharacterService) Delete(ctx context.Context, id string) error {
	if err := s.client.Character.DeleteOneID(id).Exec(ctx); err != nil {
		return wrapNotFound(err, "character", id)
	}
	return nil
}

func charactersToModels(rows []*ent.Character) []*models.Character {
	chars := make([]*models.Character, 0, len(rows))
	for _, row := range rows {
		chars = append(chars, characterToModel(row))
	}
	return chars
}

func characterToModel(row *ent.Character) *models.Character {
	return &models.Character{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		AccountID:    row.AccountID,
		RoomID:       row.RoomID,
		SpawnPointID: row.SpawnPointID,
		HP:           row.Hp,
		MaxHP:        row.MaxHp,
		Attack:       row.Attack,
		Defense:      row.Defense,
		Speed:        row.Speed,
		IsAlive:      row.IsAlive,
		IsDead:       row.IsDead,
		DiedAt:       row.DiedAt,
		LastActionAt: row.LastActionAt,
		CreatedAt:    row.CreatedAt,
	}
}
