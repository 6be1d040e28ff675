package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/elliotbonneville/silt/pkg/models"
)

func (d *Dispatcher) handleSay(actor *models.Character, args []string) *CommandResult {
	message := strings.Join(args, " ")
	if message == "" {
		return failure(errors.New("Say what?"))
	}
	return success(nil, d.event(models.EventSpeech, actor.RoomID, models.VisibilityRoom, &models.SpeechPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Message:   message,
	}))
}

func (d *Dispatcher) handleShout(actor *models.Character, args []string) *CommandResult {
	message := strings.Join(args, " ")
	if message == "" {
		return failure(errors.New("Shout what?"))
	}
	return success(nil, d.event(models.EventShout, actor.RoomID, models.VisibilityRoom, &models.ShoutPayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Message:   message,
	}))
}

func (d *Dispatcher) handleEmote(actor *models.Character, args []string) *CommandResult {
	action := strings.Join(args, " ")
	if action == "" {
		return failure(errors.New("Emote what?"))
	}
	return success(nil, d.event(models.EventEmote, actor.RoomID, models.VisibilityRoom, &models.EmotePayload{
		ActorID:   actor.ID,
		ActorName: actor.Name,
		Action:    action,
	}))
}

// handleDirected covers tell and whisper; they differ only in event type and
// visibility.
func (d *Dispatcher) handleDirected(ctx context.Context, actor *models.Character, args []string, t models.EventType) *CommandResult {
	verb := "Tell"
	if t == models.EventWhisper {
		verb = "Whisper to"
	}
	if len(args) == 0 {
		return failure(fmt.Errorf("%s whom?", verb))
	}

	chars, err := d.charactersPresent(ctx, actor.RoomID, actor.ID)
	if err != nil {
		return failure(fmt.Errorf("list characters in %s: %w", actor.RoomID, err))
	}
	c, rest, ok := resolveGreedy(args, characterCandidates(chars))
	if !ok {
		return failure(errors.New("They aren't here."))
	}
	message := strings.Join(rest, " ")
	if message == "" {
		return failure(fmt.Errorf("%s %s what?", verb, c.name))
	}

	target := findCharacter(chars, c.id)
	if t == models.EventWhisper {
		e := d.event(models.EventWhisper, actor.RoomID, models.VisibilityPrivate, &models.WhisperPayload{
			ActorID:    actor.ID,
			ActorName:  actor.Name,
			TargetID:   target.ID,
			TargetName: target.Name,
			Message:    message,
		})
		e.Recipients = []string{actor.ID, target.ID}
		return success(nil, e)
	}

	// tell stays room-visible: bystanders learn a conversation happened even
	// though the formatter hides the words from non-listeners.
	return success(nil, d.event(models.EventTell, actor.RoomID, models.VisibilityRoom, &models.TellPayload{
		ActorID:    actor.ID,
		ActorName:  actor.Name,
		TargetID:   target.ID,
		TargetName: target.Name,
		Message:    message,
	}))
}
