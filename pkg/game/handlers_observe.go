package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elliotbonneville/silt/pkg/models"
)

func (d *Dispatcher) handleLook(ctx context.Context, actor *models.Character) *CommandResult {
	room, err := d.world.Rooms().Get(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("load room %s: %w", actor.RoomID, err))
	}
	view, text, err := d.describeRoom(ctx, room, actor.ID)
	if err != nil {
		return failure(err)
	}
	return success(&models.StructuredOutput{View: models.ViewRoom, Text: text, Room: view})
}

// describeRoom builds the structured room view and its narrative text for the
// given viewer. Shared by look and post-movement descriptions.
func (d *Dispatcher) describeRoom(ctx context.Context, room *models.Room, viewerID string) (*models.RoomView, string, error) {
	chars, err := d.charactersPresent(ctx, room.ID, viewerID)
	if err != nil {
		return nil, "", fmt.Errorf("list characters in %s: %w", room.ID, err)
	}
	items, err := d.world.Items().ListByRoom(ctx, room.ID)
	if err != nil {
		return nil, "", fmt.Errorf("list items in %s: %w", room.ID, err)
	}

	view := &models.RoomView{
		ID:          room.ID,
		Name:        room.Name,
		Description: room.Description,
		Exits:       room.SortedExits(),
	}
	for _, c := range chars {
		view.Characters = append(view.Characters, models.NamedRef{ID: c.ID, Name: c.Name})
	}
	for _, it := range items {
		view.Items = append(view.Items, models.NamedRef{ID: it.ID, Name: it.Name})
	}

	var b strings.Builder
	b.WriteString(room.Name)
	b.WriteString("\n")
	b.WriteString(room.Description)
	if len(view.Exits) > 0 {
		b.WriteString("\nExits: " + strings.Join(view.Exits, ", ") + ".")
	} else {
		b.WriteString("\nExits: none.")
	}
	if len(chars) > 0 {
		names := make([]string, len(chars))
		for i, c := range chars {
			names[i] = c.Name
		}
		b.WriteString("\nAlso here: " + strings.Join(names, ", ") + ".")
	}
	if len(items) > 0 {
		names := make([]string, len(items))
		for i, it := range items {
			names[i] = it.Name
		}
		b.WriteString("\nYou see: " + strings.Join(names, ", ") + ".")
	}
	return view, b.String(), nil
}

func (d *Dispatcher) handleInventory(ctx context.Context, actor *models.Character) *CommandResult {
	items, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}

	view := &models.InventoryView{}
	var names []string
	for _, it := range items {
		view.Items = append(view.Items, models.InventoryItemView{
			ID: it.ID, Name: it.Name, Type: it.Type, Equipped: it.IsEquipped,
		})
		name := it.Name
		if it.IsEquipped {
			name += " (equipped)"
		}
		names = append(names, name)
	}

	text := "You aren't carrying anything."
	if len(names) > 0 {
		text = "You are carrying: " + strings.Join(names, ", ") + "."
	}
	return success(&models.StructuredOutput{View: models.ViewInventory, Text: text, Inventory: view})
}

func (d *Dispatcher) handleExamine(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Examine what?"))
	}

	carried, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}
	roomItems, err := d.world.Items().ListByRoom(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("list items in %s: %w", actor.RoomID, err))
	}
	items := append(append([]*models.Item{}, carried...), roomItems...)

	// Items take precedence over characters sharing a name.
	if c, _, ok := resolveGreedy(args, itemCandidates(items)); ok {
		item := findItem(items, c.id)
		return success(&models.StructuredOutput{
			View: models.ViewItemDetail,
			Text: fmt.Sprintf("%s\n%s", item.Name, item.Description),
			Item: &models.ItemDetailView{
				ID:          item.ID,
				Name:        item.Name,
				Description: item.Description,
				Type:        item.Type,
				Stats:       item.Stats,
				Equipped:    item.IsEquipped,
			},
		})
	}

	// Unlike look, examine resolves the dead too: a corpse can be inspected
	// until the body is gone.
	chars, err := d.world.Characters().ListByRoom(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("list characters in %s: %w", actor.RoomID, err))
	}
	if c, _, ok := resolveGreedy(args, characterCandidates(chars)); ok {
		ch := findCharacter(chars, c.id)
		health := ch.HealthDescription()
		text := fmt.Sprintf("%s\n%s\nThey look %s.", ch.Name, ch.Description, health)
		return success(&models.StructuredOutput{
			View: models.ViewCharacterDetail,
			Text: text,
			Character: &models.CharacterDetailView{
				ID:          ch.ID,
				Name:        ch.Name,
				Description: ch.Description,
				Health:      health,
				IsAlive:     ch.IsAlive,
			},
		})
	}

	return failure(errors.New("You don't see that here."))
}
