package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/elliotbonneville/silt/pkg/models"
)

func (d *Dispatcher) handleTake(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Take what?"))
	}
	items, err := d.world.Items().ListByRoom(ctx, actor.RoomID)
	if err != nil {
		return failure(fmt.Errorf("list items in %s: %w", actor.RoomID, err))
	}
	c, _, ok := resolveGreedy(args, itemCandidates(items))
	if !ok {
		return failure(errors.New("You don't see that here."))
	}
	item := findItem(items, c.id)
	if !item.Takeable() {
		return failure(fmt.Errorf("You can't take the %s.", item.Name))
	}

	item.RoomID = ""
	item.CharacterID = actor.ID
	if err := d.world.Items().Update(ctx, item); err != nil {
		return failure(fmt.Errorf("persist pickup of %s: %w", item.ID, err))
	}

	return success(nil, d.event(models.EventItemPickup, actor.RoomID, models.VisibilityRoom, &models.ItemPickupPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ItemID:    item.ID,
		ItemName:  item.Name,
	}))
}

func (d *Dispatcher) handleDrop(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Drop what?"))
	}
	items, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}
	c, _, ok := resolveGreedy(args, itemCandidates(items))
	if !ok {
		return failure(errors.New("You aren't carrying that."))
	}
	item := findItem(items, c.id)

	wasEquipped := item.IsEquipped
	item.IsEquipped = false
	item.CharacterID = ""
	item.RoomID = actor.RoomID
	if err := d.world.Items().Update(ctx, item); err != nil {
		return failure(fmt.Errorf("persist drop of %s: %w", item.ID, err))
	}
	if wasEquipped {
		if err := d.refreshStats(ctx, actor); err != nil {
			return failure(err)
		}
	}

	return success(nil, d.event(models.EventItemDrop, actor.RoomID, models.VisibilityRoom, &models.ItemDropPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ItemID:    item.ID,
		ItemName:  item.Name,
	}))
}

func (d *Dispatcher) handleEquip(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Equip what?"))
	}
	items, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}
	c, _, ok := resolveGreedy(args, itemCandidates(items))
	if !ok {
		return failure(errors.New("You aren't carrying that."))
	}
	item := findItem(items, c.id)
	if !item.Equippable() {
		return failure(fmt.Errorf("You can't equip the %s.", item.Name))
	}
	if item.IsEquipped {
		return failure(fmt.Errorf("The %s is already equipped.", item.Name))
	}

	var events []*models.GameEvent

	// One item per slot: weapons and armor each occupy their own.
	for _, other := range items {
		if other.ID != item.ID && other.IsEquipped && other.Type == item.Type {
			other.IsEquipped = false
			if err := d.world.Items().Update(ctx, other); err != nil {
				return failure(fmt.Errorf("persist unequip of %s: %w", other.ID, err))
			}
			events = append(events, d.event(models.EventItemEquip, actor.RoomID, models.VisibilityRoom, &models.ItemEquipPayload{
				ActorID:   actor.ID,
				ActorName: actor.Name,
				ItemID:    other.ID,
				ItemName:  other.Name,
				Equipped:  false,
			}))
		}
	}

	item.IsEquipped = true
	if err := d.world.Items().Update(ctx, item); err != nil {
		return failure(fmt.Errorf("persist equip of %s: %w", item.ID, err))
	}
	if err := d.refreshStats(ctx, actor); err != nil {
		return failure(err)
	}

	events = append(events, d.event(models.EventItemEquip, actor.RoomID, models.VisibilityRoom, &models.ItemEquipPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Equipped:  true,
	}))
	return success(nil, events...)
}

func (d *Dispatcher) handleUnequip(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Unequip what?"))
	}
	items, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}
	c, _, ok := resolveGreedy(args, itemCandidates(items))
	if !ok {
		return failure(errors.New("You aren't carrying that."))
	}
	item := findItem(items, c.id)
	if !item.IsEquipped {
		return failure(fmt.Errorf("The %s isn't equipped.", item.Name))
	}

	item.IsEquipped = false
	if err := d.world.Items().Update(ctx, item); err != nil {
		return failure(fmt.Errorf("persist unequip of %s: %w", item.ID, err))
	}
	if err := d.refreshStats(ctx, actor); err != nil {
		return failure(err)
	}

	return success(nil, d.event(models.EventItemEquip, actor.RoomID, models.VisibilityRoom, &models.ItemEquipPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		ItemID:    item.ID,
		ItemName:  item.Name,
		Equipped:  false,
	}))
}

func (d *Dispatcher) handleUse(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) == 0 {
		return failure(errors.New("Use what?"))
	}
	items, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list inventory: %w", err))
	}
	c, _, ok := resolveGreedy(args, itemCandidates(items))
	if !ok {
		return failure(errors.New("You aren't carrying that."))
	}
	item := findItem(items, c.id)
	if item.Type != models.ItemTypeConsumable {
		return failure(fmt.Errorf("You can't use the %s.", item.Name))
	}

	healed := item.Stats.Healing
	if actor.HP+healed > actor.MaxHP {
		healed = actor.MaxHP - actor.HP
	}
	actor.HP += healed
	if err := d.world.Characters().Update(ctx, actor); err != nil {
		return failure(fmt.Errorf("persist heal of %s: %w", actor.ID, err))
	}
	if err := d.world.Items().Delete(ctx, item.ID); err != nil {
		return failure(fmt.Errorf("consume %s: %w", item.ID, err))
	}

	text := fmt.Sprintf("You use the %s.", item.Name)
	if healed > 0 {
		text = fmt.Sprintf("You use the %s and recover %d hp.", item.Name, healed)
	}
	return success(models.SystemMessage(text))
}

// refreshStats recomputes the actor's derived stats from current equipment
// and persists them.
func (d *Dispatcher) refreshStats(ctx context.Context, actor *models.Character) error {
	inventory, err := d.world.Items().ListByCharacter(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("list inventory for stats: %w", err)
	}
	recomputeStats(actor, inventory)
	if err := d.world.Characters().Update(ctx, actor); err != nil {
		return fmt.Errorf("persist stats of %s: %w", actor.ID, err)
	}
	return nil
}
