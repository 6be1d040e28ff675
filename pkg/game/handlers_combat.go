package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elliotbonneville/silt/pkg/models"
)

func (d *Dispatcher) handleAttack(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if _, listening := d.listening.Subject(actor.ID); listening {
		return failure(errors.New("You can't fight while trying to eavesdrop. Use 'stop' first."))
	}
	if len(args) == 0 {
		return failure(errors.New("Attack whom?"))
	}

	chars, err := d.charactersPresent(ctx, actor.RoomID, "")
	if err != nil {
		return failure(fmt.Errorf("list characters in %s: %w", actor.RoomID, err))
	}
	c, _, ok := resolveGreedy(args, characterCandidates(chars))
	if !ok {
		return failure(errors.New("They aren't here."))
	}
	if c.id == actor.ID {
		return failure(errors.New("You can't attack yourself."))
	}
	target := findCharacter(chars, c.id)
	if !target.IsAlive {
		return failure(fmt.Errorf("%s is already dead.", target.Name))
	}

	d.combat.Start(actor.ID, target.ID)

	start := d.event(models.EventCombatStart, actor.RoomID, models.VisibilityRoom, &models.CombatStartPayload{
		AttackerID:   actor.ID,
		AttackerName: actor.Name,
		TargetID:     target.ID,
		TargetName:   target.Name,
	})
	return success(models.SystemMessage(fmt.Sprintf("You attack %s!", target.Name)), start)
}

func (d *Dispatcher) handleStop(actor *models.Character) *CommandResult {
	stoppedCombat := d.combat.Stop(actor.ID)
	stoppedListening := d.listening.Stop(actor.ID)

	var stopped []string
	if stoppedCombat {
		stopped = append(stopped, "fighting")
	}
	if stoppedListening {
		stopped = append(stopped, "listening")
	}
	if len(stopped) == 0 {
		return failure(errors.New("You aren't fighting or listening to anyone."))
	}
	return success(models.SystemMessage("You stop " + strings.Join(stopped, " and ") + "."))
}

func (d *Dispatcher) handleListen(ctx context.Context, actor *models.Character, args []string) *CommandResult {
	if len(args) > 0 && strings.EqualFold(args[0], "stop") {
		if !d.listening.Stop(actor.ID) {
			return failure(errors.New("You aren't listening to anyone."))
		}
		return success(models.SystemMessage("You stop listening."))
	}
	if d.combat.InCombat(actor.ID) {
		return failure(errors.New("You can't focus on eavesdropping while fighting!"))
	}
	if len(args) == 0 {
		return failure(errors.New("Listen to whom?"))
	}

	chars, err := d.charactersPresent(ctx, actor.RoomID, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list characters in %s: %w", actor.RoomID, err))
	}
	c, _, ok := resolveGreedy(args, characterCandidates(chars))
	if !ok {
		return failure(errors.New("They aren't here."))
	}

	d.listening.Listen(actor.ID, c.id)
	return success(models.SystemMessage(fmt.Sprintf("You begin listening closely to %s.", c.name)))
}
