package services

import (
	"context"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/item"
	"github.com/elliotbonneville/silt/pkg/models"
)

// ItemService manages items wherever they rest, on the floor or carried.
type ItemService struct {
	client *ent.Client
}

// NewItemService creates a new ItemService.
func NewItemService(client *ent.Client) *ItemService {
	return &ItemService{client: client}
}

// Get retrieves an item by id.
func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	row, err := s.client.Item.Get(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "item", id)
	}
	return itemToModel(row)
}

// ListByRoom lists items lying in a room.
func (s *ItemService) ListByRoom(ctx context.Context, roomID string) ([]*models.Item, error) {
	rows, err := s.client.Item.Query().
		Where(item.RoomID(roomID)).
		Order(ent.Asc(item.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items in room %s: %w", roomID, err)
	}
	return itemsToModels(rows)
}

// ListByCharacter lists a character's inventory.
func (s *ItemService) ListByCharacter(ctx context.Context, characterID string) ([]*models.Item, error) {
	rows, err := s.client.Item.Query().
		Where(item.CharacterID(characterID)).
		Order(ent.Asc(item.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items for character %s: %w", characterID, err)
	}
	return itemsToModels(rows)
}

// Create inserts an item.
func (s *ItemService) Create(ctx context.Context, it *models.Item) error {
	var stats map[string]interface{}
	if err := jsonRoundTrip(it.Stats, &stats); err != nil {
		return fmt.Errorf("item %s stats: %w", it.ID, err)
	}
	builder := s.client.Item.Create().
		SetID(it.ID).
		SetName(it.Name).
		SetDescription(it.Description).
		SetType(item.Type(it.Type)).
		SetStats(stats).
		SetIsEquipped(it.IsEquipped)
	if it.RoomID != "" {
		builder.SetRoomID(it.RoomID)
	}
	if it.CharacterID != "" {
		builder.SetCharacterID(it.CharacterID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create item %s: %w", it.ID, err)
	}
	return nil
}

// Update rewrites an item, including its resting place. Clearing one of
// room/character keeps the invariant that exactly one holds the item.
func (s *ItemService) Update(ctx context.Context, it *models.Item) error {
	var stats map[string]interface{}
	if err := jsonRoundTrip(it.Stats, &stats); err != nil {
		return fmt.Errorf("item %s stats: %w", it.ID, err)
	}
	builder := s.client.Item.UpdateOneID(it.ID).
		SetName(it.Name).
		SetDescription(it.Description).
		SetType(item.Type(it.Type)).
		SetStats(stats).
		SetIsEquipped(it.IsEquipped)
	if it.RoomID != "" {
		builder.SetRoomID(it.RoomID)
	} else {
		builder.ClearRoomID()
	}
	if it.CharacterID != "" {
		builder.SetCharacterID(it.CharacterID)
	} else {
		builder.ClearCharacterID()
	}
	if err := builder.Exec(ctx); err != nil {
		return wrapNotFound(err, "item", it.ID)
	}
	return nil
}

// Delete removes an item, e.g. a consumed consumable.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	if err := s.client.Item.DeleteOneID(id).Exec(ctx); err != nil {
		return wrapNotFound(err, "item", id)
	}
	return nil
}

func itemsToModels(rows []*ent.Item) ([]*models.Item, error) {
	items := make([]*models.Item, 0, len(rows))
	for _, row := range rows {
		it, err := itemToModel(row)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

func itemToModel(row *ent.Item) (*models.Item, error) {
	var stats models.ItemStats
	if row.Stats != nil {
		if err := jsonRoundTrip(row.Stats, &stats); err != nil {
			return nil, fmt.Errorf("item %s stats: %w", row.ID, err)
		}
	}
	return &models.Item{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Type:        models.ItemType(row.Type),
		Stats:       stats,
		RoomID:      row.RoomID,
		CharacterID: row.CharacterID,
		IsEquipped:  row.IsEquipped,
	}, nil
}
