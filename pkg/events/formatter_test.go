package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elliotbonneville/silt/pkg/models"
)

func tellEvent() *models.GameEvent {
	return &models.GameEvent{
		Type:         models.EventTell,
		OriginRoomID: "room-square",
		Visibility:   models.VisibilityRoom,
		Payload: &models.TellPayload{
			ActorID:    "p1",
			ActorName:  "Mira",
			TargetID:   "p2",
			TargetName: "Torben",
			Message:    "meet me at the docks",
		},
	}
}

func TestFormatTellPerspectives(t *testing.T) {
	e := tellEvent()

	assert.Equal(t, `You say to Torben: "meet me at the docks"`, Format(e, "p1", "room-square", false))
	assert.Equal(t, `Mira says to you: "meet me at the docks"`, Format(e, "p2", "room-square", false))
	assert.Equal(t, "Mira says something to Torben.", Format(e, "p3", "room-square", false))
	assert.Equal(t, `Mira says to Torben: "meet me at the docks"`, Format(e, "", "", false),
		"admin mirror sees full content")
}

func TestFormatTellListeningOverride(t *testing.T) {
	e := tellEvent()

	// An observer listening to either participant hears the real words.
	assert.Equal(t, `Mira says to Torben: "meet me at the docks"`, Format(e, "p3", "room-square", true))

	// Listening never affects the participants' own renders.
	assert.Equal(t, `You say to Torben: "meet me at the docks"`, Format(e, "p1", "room-square", true))
}

func TestFormatWhisperHiddenFromObservers(t *testing.T) {
	e := &models.GameEvent{
		Type:       models.EventWhisper,
		Visibility: models.VisibilityPrivate,
		Payload: &models.WhisperPayload{
			ActorID: "p1", ActorName: "Mira",
			TargetID: "p2", TargetName: "Torben",
			Message: "the key is under the mat",
		},
	}

	assert.Equal(t, `You whisper to Torben: "the key is under the mat"`, Format(e, "p1", "r1", false))
	assert.Equal(t, `Mira whispers to you: "the key is under the mat"`, Format(e, "p2", "r1", false))
	assert.Empty(t, Format(e, "p3", "r1", true), "even a listener gets nothing for whispers")
}

func movementEvent(direction string) *models.GameEvent {
	return &models.GameEvent{
		Type:         models.EventMovement,
		OriginRoomID: "room-a",
		Visibility:   models.VisibilityRoom,
		Payload: &models.MovementPayload{
			ActorID:    "p1",
			ActorName:  "Mira",
			FromRoomID: "room-a",
			ToRoomID:   "room-b",
			Direction:  direction,
		},
	}
}

func TestFormatMovement(t *testing.T) {
	e := movementEvent("north")

	assert.Equal(t, "You move north.", Format(e, "p1", "room-a", false))
	assert.Equal(t, "Mira moves north.", Format(e, "p2", "room-a", false))
	assert.Equal(t, "Mira arrives from the south.", Format(e, "p3", "room-b", false))
	assert.Empty(t, Format(e, "p1", "room-b", false),
		"mover's arrival side renders nothing; the room description covers it")
	assert.Equal(t, "Mira moves north.", Format(e, "", "", false))
}

func TestArrivalPhraseInversion(t *testing.T) {
	cases := map[string]string{
		"north":     "from the south",
		"south":     "from the north",
		"east":      "from the west",
		"west":      "from the east",
		"northeast": "from the southwest",
		"northwest": "from the southeast",
		"southeast": "from the northwest",
		"southwest": "from the northeast",
		"up":        "from below",
		"down":      "from above",
		"portal":    "from somewhere",
		"":          "from somewhere",
	}
	for dir, want := range cases {
		assert.Equal(t, want, arrivalPhrase(dir), "direction %q", dir)
	}
}

func TestFormatShoutAttenuation(t *testing.T) {
	e := &models.GameEvent{
		Type:       models.EventShout,
		Visibility: models.VisibilityRoom,
		Payload: &models.ShoutPayload{
			ActorID: "p1", ActorName: "Mira", Message: "HELLO",
		},
	}

	assert.Equal(t, `You shout, "HELLO"`, Format(e, "p1", "room-a", false))
	assert.Equal(t, `Mira shouts, "HELLO"`, Format(e, "p2", "room-a", false))

	distant := e.Clone()
	distant.Attenuated = true
	assert.Equal(t, "You hear a distant shout: HELLO", Format(distant, "p9", "room-c", false))
}

func TestFormatCombatAndDeath(t *testing.T) {
	hit := &models.GameEvent{
		Type: models.EventCombatHit,
		Payload: &models.CombatHitPayload{
			AttackerID: "p1", AttackerName: "Mira",
			TargetID: "n1", TargetName: "the rat",
			Damage: 7, TargetHP: 3, TargetMaxHP: 10,
		},
	}
	assert.Equal(t, "You hit the rat for 7 damage.", Format(hit, "p1", "r", false))
	assert.Equal(t, "Mira hits you for 7 damage.", Format(hit, "n1", "r", false))
	assert.Equal(t, "Mira hits the rat for 7 damage.", Format(hit, "p9", "r", false))

	death := &models.GameEvent{
		Type: models.EventDeath,
		Payload: &models.DeathPayload{
			VictimID: "n1", VictimName: "the rat",
			KillerID: "p1", KillerName: "Mira",
		},
	}
	assert.Equal(t, "the rat has died!", Format(death, "p1", "r", false))
	assert.Equal(t, "You have died!", Format(death, "n1", "r", false))
}

func TestFormatSystemAndAIEvents(t *testing.T) {
	sys := &models.GameEvent{
		Type:    models.EventSystem,
		Payload: &models.SystemPayload{ActorID: "p1", Message: "You can't go that way"},
	}
	assert.Equal(t, "You can't go that way", Format(sys, "p1", "r", false))
	assert.Empty(t, Format(sys, "p2", "r", false))

	decision := &models.GameEvent{
		Type: models.EventAIDecision,
		Payload: &models.AIDecisionPayload{
			AgentID: "a1", AgentName: "Greta", Reasoning: "greet the newcomer",
		},
	}
	assert.Empty(t, Format(decision, "p1", "r", false), "players never see agent introspection")
	assert.Equal(t, "[Greta] decision: greet the newcomer", Format(decision, "", "", false))
}
