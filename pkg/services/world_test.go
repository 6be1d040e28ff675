package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
	testdb "github.com/elliotbonneville/silt/test/database"
)

func setupTestWorld(t *testing.T) (context.Context, *World) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return context.Background(), NewWorld(client.Client)
}

func seedRooms(t *testing.T, ctx context.Context, world *World) {
	t.Helper()
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID:          "square",
		Name:        "The Square",
		Description: "A cobbled plaza.",
		Exits:       map[string]string{"north": "forge"},
		IsStarting:  true,
	}))
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID:          "forge",
		Name:        "The Forge",
		Description: "Heat rolls off the coals.",
		Exits:       map[string]string{"south": "square"},
	}))
}

func TestRoomServiceRoundTrip(t *testing.T) {
	ctx, world := setupTestWorld(t)
	seedRooms(t, ctx, world)

	start, err := world.Rooms().Starting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "square", start.ID)
	assert.Equal(t, "forge", start.Exits["north"])

	all, err := world.Rooms().All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	start.Description = "A cobbled plaza, quieter now."
	require.NoError(t, world.Rooms().Update(ctx, start))
	got, err := world.Rooms().Get(ctx, "square")
	require.NoError(t, err)
	assert.Equal(t, "A cobbled plaza, quieter now.", got.Description)

	_, err = world.Rooms().Get(ctx, "nowhere")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCharacterServiceRoundTrip(t *testing.T) {
	ctx, world := setupTestWorld(t)
	seedRooms(t, ctx, world)

	require.NoError(t, world.Accounts().Create(ctx, &models.Account{
		ID:       "acct1",
		Username: "mira",
	}))

	c := &models.Character{
		ID:        "c1",
		Name:      "Mira",
		AccountID: "acct1",
		RoomID:    "square",
		HP:        models.DefaultMaxHP,
		MaxHP:     models.DefaultMaxHP,
		Attack:    models.BaseAttack,
		Defense:   models.BaseDefense,
		Speed:     models.DefaultSpeed,
		IsAlive:   true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, world.Characters().Create(ctx, c))

	inRoom, err := world.Characters().ListByRoom(ctx, "square")
	require.NoError(t, err)
	require.Len(t, inRoom, 1)
	assert.Equal(t, "Mira", inRoom[0].Name)
	assert.False(t, inRoom[0].IsNPC())

	byAccount, err := world.Characters().ListByAccount(ctx, "acct1")
	require.NoError(t, err)
	require.Len(t, byAccount, 1)

	c.RoomID = "forge"
	c.HP = 40
	require.NoError(t, world.Characters().Update(ctx, c))
	got, err := world.Characters().Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "forge", got.RoomID)
	assert.Equal(t, 40, got.HP)

	require.NoError(t, world.Characters().Delete(ctx, "c1"))
	_, err = world.Characters().Get(ctx, "c1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestEventServiceFilters(t *testing.T) {
	ctx, world := setupTestWorld(t)
	seedRooms(t, ctx, world)

	base := time.Now().Add(-time.Minute)
	append := func(id, roomID string, eventType models.EventType, offset time.Duration, payload models.EventPayload) {
		require.NoError(t, world.Events().Append(ctx, &models.GameEvent{
			ID:           id,
			Type:         eventType,
			Timestamp:    base.Add(offset),
			OriginRoomID: roomID,
			Visibility:   models.VisibilityRoom,
			Content:      "narration for " + id,
			Payload:      payload,
		}))
	}
	append("e1", "square", models.EventSpeech, 0,
		&models.SpeechPayload{ActorID: "c1", ActorName: "Mira", Message: "Hello."})
	append("e2", "forge", models.EventSpeech, 10*time.Second,
		&models.SpeechPayload{ActorID: "c2", ActorName: "Grok", Message: "Hmph."})
	append("e3", "forge", models.EventMovement, 20*time.Second,
		&models.MovementPayload{ActorID: "c2", ActorName: "Grok", FromRoomID: "forge", ToRoomID: "square", Direction: "south"})

	byRoom, err := world.Events().List(ctx, store.EventFilter{RoomID: "forge"})
	require.NoError(t, err)
	assert.Len(t, byRoom, 2)

	byType, err := world.Events().List(ctx, store.EventFilter{Types: []models.EventType{models.EventSpeech}})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	since, err := world.Events().List(ctx, store.EventFilter{Since: base.Add(15 * time.Second)})
	require.NoError(t, err)
	require.Len(t, since, 1)
	assert.Equal(t, "e3", since[0].ID)

	// Payloads come back typed, not as raw maps.
	speech, ok := byType[0].Payload.(*models.SpeechPayload)
	require.True(t, ok)
	assert.NotEmpty(t, speech.Message)

	limited, err := world.Events().List(ctx, store.EventFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestAccountPreferencesDeepMerge(t *testing.T) {
	ctx, world := setupTestWorld(t)

	require.NoError(t, world.Accounts().Create(ctx, &models.Account{
		ID:       "acct1",
		Username: "mira",
		Preferences: map[string]any{
			"theme": "dark",
			"sound": map[string]any{"volume": 7},
		},
	}))

	err := world.Accounts().UpdatePreferences(ctx, "mira", map[string]any{
		"sound": map[string]any{"muted": true},
	})
	require.NoError(t, err)

	got, err := world.Accounts().GetByUsername(ctx, "mira")
	require.NoError(t, err)
	assert.Equal(t, "dark", got.Preferences["theme"])
	sound := got.Preferences["sound"].(map[string]any)
	assert.Equal(t, true, sound["muted"])
	assert.NotNil(t, sound["volume"])
}

func TestAccountDuplicateUsername(t *testing.T) {
	ctx, world := setupTestWorld(t)

	require.NoError(t, world.Accounts().Create(ctx, &models.Account{ID: "a1", Username: "mira"}))
	err := world.Accounts().Create(ctx, &models.Account{ID: "a2", Username: "mira"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAgentServiceRoundTrip(t *testing.T) {
	ctx, world := setupTestWorld(t)
	seedRooms(t, ctx, world)

	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID:      "grok",
		Name:    "Grok",
		RoomID:  "forge",
		HP:      60,
		MaxHP:   60,
		IsAlive: true,
	}))

	agent := &models.AIAgent{
		ID:               "ag1",
		CharacterID:      "grok",
		SystemPrompt:     "You are Grok, keeper of the forge.",
		HomeRoomID:       "forge",
		MaxRoomsFromHome: 2,
	}
	require.NoError(t, world.Agents().Create(ctx, agent))

	got, err := world.Agents().GetByCharacter(ctx, "grok")
	require.NoError(t, err)
	assert.Equal(t, "ag1", got.ID)
	assert.Equal(t, 2, got.MaxRoomsFromHome)

	got.SpatialMemory = "The forge opens south onto the square."
	got.Touch("c1", 2, 1, time.Now())
	got.RecordConversation(models.ConversationEntry{Speaker: "Mira", Message: "Hello.", Timestamp: time.Now()})
	require.NoError(t, world.Agents().Update(ctx, got))

	reloaded, err := world.Agents().Get(ctx, "ag1")
	require.NoError(t, err)
	assert.Equal(t, "The forge opens south onto the square.", reloaded.SpatialMemory)
	require.Contains(t, reloaded.Relationships, "c1")
	assert.Equal(t, 2, reloaded.Relationships["c1"].Sentiment)
	require.Len(t, reloaded.Conversation, 1)
	assert.Equal(t, "Mira", reloaded.Conversation[0].Speaker)

	require.NoError(t, world.Agents().Delete(ctx, "ag1"))
	_, err = world.Agents().Get(ctx, "ag1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestTokenUsageTotals(t *testing.T) {
	ctx, world := setupTestWorld(t)

	record := func(source models.UsageSource, agentID string, total int, cost float64) {
		require.NoError(t, world.TokenUsage().Record(ctx, &models.TokenUsage{
			Model:            "gpt-4o-mini",
			Provider:         "openai",
			PromptTokens:     total - 20,
			CompletionTokens: 20,
			TotalTokens:      total,
			Cost:             cost,
			Source:           source,
			AgentID:          agentID,
		}))
	}
	record(models.UsageDecision, "ag1", 120, 0.002)
	record(models.UsageConversation, "ag1", 80, 0.001)
	record(models.UsageSpatialMemory, "ag2", 200, 0.004)

	totals, err := world.TokenUsage().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 400, totals.TotalTokens)
	assert.InDelta(t, 0.007, totals.Cost, 1e-9)
	assert.Equal(t, 200, totals.ByAgent["ag1"])
	assert.Equal(t, 200, totals.BySource[models.UsageSpatialMemory])
}

func TestGameStatePersistence(t *testing.T) {
	ctx, world := setupTestWorld(t)

	// Unsaved state reads back as defaults.
	state, err := world.GameState().Get(ctx)
	require.NoError(t, err)
	assert.False(t, state.IsPaused)
	assert.Zero(t, state.GameTime)

	require.NoError(t, world.GameState().Save(ctx, &models.GameState{IsPaused: true, GameTime: 123.5}))
	state, err = world.GameState().Get(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsPaused)
	assert.Equal(t, 123.5, state.GameTime)
}

func TestPlayerLogAppendAndList(t *testing.T) {
	ctx, world := setupTestWorld(t)
	seedRooms(t, ctx, world)

	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID: "c1", Name: "Mira", RoomID: "square", HP: 10, MaxHP: 10, IsAlive: true,
	}))

	base := time.Now().Add(-time.Minute)
	for i, kind := range []models.LogKind{models.LogCommand, models.LogOutput, models.LogEvent} {
		require.NoError(t, world.PlayerLogs().Append(ctx, &models.PlayerLog{
			CharacterID: "c1",
			Kind:        kind,
			Payload:     "entry",
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		}))
	}

	logs, err := world.PlayerLogs().ListByCharacter(ctx, "c1", 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, models.LogCommand, logs[0].Kind)
}
