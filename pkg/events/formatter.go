package events

import (
	"fmt"
	"strings"

	"github.com/elliotbonneville/silt/pkg/models"
)

// Format renders an event for one viewer. It is a pure function of its
// arguments and never touches the store.
//
// viewerActorID == "" selects the omniscient perspective used by the admin
// mirror: third person, no obfuscation, full detail. Otherwise the perspective
// is chosen from the viewer's relation to the event (actor, target, observer),
// and viewerRoomID disambiguates movement (departure vs arrival side).
// isListening reveals tell content to an eavesdropper subscribed to either
// participant.
//
// An empty return means the event has nothing to say to this viewer and must
// not be delivered (e.g. the mover's own arrival side, which is covered by the
// subsequent room_description).
func Format(e *models.GameEvent, viewerActorID, viewerRoomID string, isListening bool) string {
	omniscient := viewerActorID == ""

	switch p := e.Payload.(type) {
	case *models.SpeechPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return fmt.Sprintf("You say, %q", p.Message)
		}
		return fmt.Sprintf("%s says, %q", p.ActorName, p.Message)

	case *models.ShoutPayload:
		if e.Attenuated {
			return "You hear a distant shout: " + p.Message
		}
		if !omniscient && viewerActorID == p.ActorID {
			return fmt.Sprintf("You shout, %q", p.Message)
		}
		return fmt.Sprintf("%s shouts, %q", p.ActorName, p.Message)

	case *models.TellPayload:
		switch {
		case omniscient:
			return fmt.Sprintf("%s says to %s: %q", p.ActorName, p.TargetName, p.Message)
		case viewerActorID == p.ActorID:
			return fmt.Sprintf("You say to %s: %q", p.TargetName, p.Message)
		case viewerActorID == p.TargetID:
			return fmt.Sprintf("%s says to you: %q", p.ActorName, p.Message)
		case isListening:
			return fmt.Sprintf("%s says to %s: %q", p.ActorName, p.TargetName, p.Message)
		default:
			return fmt.Sprintf("%s says something to %s.", p.ActorName, p.TargetName)
		}

	case *models.WhisperPayload:
		switch {
		case omniscient:
			return fmt.Sprintf("%s whispers to %s: %q", p.ActorName, p.TargetName, p.Message)
		case viewerActorID == p.ActorID:
			return fmt.Sprintf("You whisper to %s: %q", p.TargetName, p.Message)
		case viewerActorID == p.TargetID:
			return fmt.Sprintf("%s whispers to you: %q", p.ActorName, p.Message)
		default:
			// Observers never see whisper content.
			return ""
		}

	case *models.EmotePayload:
		if !omniscient && viewerActorID == p.ActorID {
			return "You " + p.Action
		}
		return p.ActorName + " " + p.Action

	case *models.MovementPayload:
		return formatMovement(p, viewerActorID, viewerRoomID, omniscient)

	case *models.PlayerEnteredPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return ""
		}
		return p.ActorName + " appears."

	case *models.PlayerLeftPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return ""
		}
		return p.ActorName + " disappears."

	case *models.RoomDescriptionPayload:
		if omniscient || viewerActorID == p.ActorID {
			return p.Text
		}
		return ""

	case *models.CombatStartPayload:
		switch {
		case !omniscient && viewerActorID == p.AttackerID:
			return fmt.Sprintf("You attack %s!", p.TargetName)
		case !omniscient && viewerActorID == p.TargetID:
			return fmt.Sprintf("%s attacks you!", p.AttackerName)
		default:
			return fmt.Sprintf("%s attacks %s!", p.AttackerName, p.TargetName)
		}

	case *models.CombatHitPayload:
		switch {
		case !omniscient && viewerActorID == p.AttackerID:
			return fmt.Sprintf("You hit %s for %d damage.", p.TargetName, p.Damage)
		case !omniscient && viewerActorID == p.TargetID:
			return fmt.Sprintf("%s hits you for %d damage.", p.AttackerName, p.Damage)
		default:
			return fmt.Sprintf("%s hits %s for %d damage.", p.AttackerName, p.TargetName, p.Damage)
		}

	case *models.DeathPayload:
		if !omniscient && viewerActorID == p.VictimID {
			return "You have died!"
		}
		return p.VictimName + " has died!"

	case *models.ItemPickupPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return fmt.Sprintf("You take the %s.", p.ItemName)
		}
		return fmt.Sprintf("%s takes the %s.", p.ActorName, p.ItemName)

	case *models.ItemDropPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return fmt.Sprintf("You drop the %s.", p.ItemName)
		}
		return fmt.Sprintf("%s drops the %s.", p.ActorName, p.ItemName)

	case *models.ItemEquipPayload:
		verb := "equips"
		selfVerb := "equip"
		if !p.Equipped {
			verb = "unequips"
			selfVerb = "unequip"
		}
		if !omniscient && viewerActorID == p.ActorID {
			return fmt.Sprintf("You %s the %s.", selfVerb, p.ItemName)
		}
		return fmt.Sprintf("%s %s the %s.", p.ActorName, verb, p.ItemName)

	case *models.SystemPayload:
		if omniscient || viewerActorID == p.ActorID {
			return p.Message
		}
		return ""

	case *models.AmbientPayload:
		return p.Message

	case *models.ConnectionPayload:
		if !omniscient && viewerActorID == p.ActorID {
			return ""
		}
		if p.Connected {
			return p.ActorName + " has connected."
		}
		return p.ActorName + " has disconnected."

	case *models.StateChangePayload:
		return p.Value

	case *models.AIDecisionPayload:
		if !omniscient {
			return ""
		}
		return fmt.Sprintf("[%s] decision: %s", p.AgentName, p.Reasoning)

	case *models.AIActionPayload:
		if !omniscient {
			return ""
		}
		if p.Arguments != "" {
			return fmt.Sprintf("[%s] action: %s %s", p.AgentName, p.Action, p.Arguments)
		}
		return fmt.Sprintf("[%s] action: %s", p.AgentName, p.Action)

	case *models.AIErrorPayload:
		if !omniscient {
			return ""
		}
		return fmt.Sprintf("[%s] error: %s", p.AgentName, p.Message)

	default:
		// Fall back to pre-rendered content for payloads without a renderer.
		return e.Content
	}
}

// formatMovement resolves departure vs arrival by viewer room. The mover sees
// the departure in the origin room and nothing in the destination — the
// room_description that follows provides arrival context.
func formatMovement(p *models.MovementPayload, viewerActorID, viewerRoomID string, omniscient bool) string {
	if omniscient {
		return fmt.Sprintf("%s moves %s.", p.ActorName, p.Direction)
	}
	if viewerRoomID == p.ToRoomID && viewerRoomID != p.FromRoomID {
		if viewerActorID == p.ActorID {
			return ""
		}
		return fmt.Sprintf("%s arrives %s.", p.ActorName, arrivalPhrase(p.Direction))
	}
	if viewerActorID == p.ActorID {
		return fmt.Sprintf("You move %s.", p.Direction)
	}
	return fmt.Sprintf("%s moves %s.", p.ActorName, p.Direction)
}

// arrivalPhrase inverts a direction componentwise for the arrival line:
// north↔south, east↔west, up↔below, down↔above; diagonals invert both parts.
func arrivalPhrase(direction string) string {
	switch direction {
	case "up":
		return "from below"
	case "down":
		return "from above"
	}
	rest := direction
	var opposite string
	switch {
	case strings.HasPrefix(rest, "north"):
		opposite = "south"
		rest = strings.TrimPrefix(rest, "north")
	case strings.HasPrefix(rest, "south"):
		opposite = "north"
		rest = strings.TrimPrefix(rest, "south")
	}
	switch rest {
	case "east":
		opposite += "west"
	case "west":
		opposite += "east"
	case "":
		// vertical component already consumed, or nothing matched
	default:
		return "from somewhere"
	}
	if opposite == "" {
		return "from somewhere"
	}
	return "from the " + opposite
}
