package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
)

func TestAdminMap(t *testing.T) {
	s, world := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID: "n1", Name: "Grok", RoomID: "forge", HP: 50, MaxHP: 50, IsAlive: true,
	}))

	rec := doRequest(t, s, http.MethodGet, "/admin/map", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var rooms []MapRoom
	decodeBody(t, rec, &rooms)
	require.Len(t, rooms, 2)

	byID := make(map[string]MapRoom, len(rooms))
	for _, r := range rooms {
		byID[r.ID] = r
	}
	assert.True(t, byID["square"].IsStarting)
	require.Len(t, byID["forge"].Characters, 1)
	assert.Equal(t, "Grok", byID["forge"].Characters[0].Name)
	assert.True(t, byID["forge"].Characters[0].IsNPC)
	require.Len(t, byID["square"].Items, 1)
	assert.Equal(t, models.ItemTypeSpawnPoint, byID["square"].Items[0].Type)
}

func TestAdminEventsFilters(t *testing.T) {
	s, world := newTestServer(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, tc := range []struct {
		id     string
		typ    models.EventType
		roomID string
	}{
		{"e1", models.EventSpeech, "square"},
		{"e2", models.EventDeath, "forge"},
		{"e3", models.EventSpeech, "forge"},
	} {
		require.NoError(t, world.Events().Append(ctx, &models.GameEvent{
			ID:           tc.id,
			Type:         tc.typ,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
			OriginRoomID: tc.roomID,
			Visibility:   models.VisibilityRoom,
			Payload:      &models.AmbientPayload{Message: "something stirs"},
		}))
	}

	rec := doRequest(t, s, http.MethodGet, "/admin/events?room=forge", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []AdminEvent
	decodeBody(t, rec, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "e2", list[0].ID)

	rec = doRequest(t, s, http.MethodGet, "/admin/events?type=speech", nil)
	decodeBody(t, rec, &list)
	require.Len(t, list, 2)

	rec = doRequest(t, s, http.MethodGet, "/admin/events?since="+base.Add(90*time.Second).Format(time.RFC3339), nil)
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "e3", list[0].ID)

	rec = doRequest(t, s, http.MethodGet, "/admin/events?limit=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminAgentLifecycle(t *testing.T) {
	s, world := newTestServer(t)

	maxRooms := 2
	rec := doRequest(t, s, http.MethodPost, "/admin/agents", CreateAgentRequest{
		Name:             "Grok",
		Description:      "A hulking smith.",
		RoomID:           "forge",
		SystemPrompt:     "You are Grok, the forge keeper.",
		MaxRoomsFromHome: &maxRooms,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created AgentResponse
	decodeBody(t, rec, &created)
	assert.Equal(t, "Grok", created.Name)
	assert.Equal(t, "forge", created.HomeRoomID)
	assert.Equal(t, 2, created.MaxRoomsFromHome)
	assert.Equal(t, models.DefaultMaxHP, created.MaxHP)

	// The NPC character exists and lives in the home room.
	npc, err := world.Characters().Get(context.Background(), created.CharacterID)
	require.NoError(t, err)
	assert.True(t, npc.IsNPC())
	assert.Equal(t, "forge", npc.RoomID)

	prompt := "You are Grok, and you are furious."
	rec = doRequest(t, s, http.MethodPut, "/admin/agents/"+created.ID, UpdateAgentRequest{
		SystemPrompt: &prompt,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated AgentResponse
	decodeBody(t, rec, &updated)
	assert.Equal(t, prompt, updated.SystemPrompt)
	assert.Equal(t, 2, updated.MaxRoomsFromHome)

	rec = doRequest(t, s, http.MethodGet, "/admin/agents", nil)
	var agents []AgentResponse
	decodeBody(t, rec, &agents)
	require.Len(t, agents, 1)

	rec = doRequest(t, s, http.MethodDelete, "/admin/agents/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/admin/agents/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	_, err = world.Characters().Get(context.Background(), created.CharacterID)
	assert.Error(t, err)
}

func TestAdminCreateAgentValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/admin/agents", CreateAgentRequest{
		RoomID: "forge", SystemPrompt: "prompt",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/admin/agents", CreateAgentRequest{
		Name: "Grok", RoomID: "forge",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/admin/agents", CreateAgentRequest{
		Name: "Grok", RoomID: "nowhere", SystemPrompt: "prompt",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	bad := 11
	rec = doRequest(t, s, http.MethodPost, "/admin/agents", CreateAgentRequest{
		Name: "Grok", RoomID: "forge", SystemPrompt: "prompt", MaxRoomsFromHome: &bad,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminPauseWithoutEngine(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/admin/pause", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAdminTokenUsage(t *testing.T) {
	s, world := newTestServer(t)
	ctx := context.Background()
	require.NoError(t, world.TokenUsage().Record(ctx, &models.TokenUsage{
		ID: "u1", Model: "gpt-4o-mini", Provider: "openai",
		PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120,
		Cost: 0.002, Source: models.UsageDecision, AgentID: "a1",
	}))
	require.NoError(t, world.TokenUsage().Record(ctx, &models.TokenUsage{
		ID: "u2", Model: "gpt-4o-mini", Provider: "openai",
		PromptTokens: 50, CompletionTokens: 10, TotalTokens: 60,
		Cost: 0.001, Source: models.UsageSpatialMemory,
	}))

	rec := doRequest(t, s, http.MethodGet, "/admin/token-usage", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var totals struct {
		TotalTokens int            `json:"totalTokens"`
		Cost        float64        `json:"cost"`
		ByAgent     map[string]int `json:"byAgent"`
		BySource    map[string]int `json:"bySource"`
	}
	decodeBody(t, rec, &totals)
	assert.Equal(t, 180, totals.TotalTokens)
	assert.InDelta(t, 0.003, totals.Cost, 1e-9)
	assert.Equal(t, 120, totals.ByAgent["a1"])
	assert.Equal(t, 60, totals.BySource["spatial_memory"])
}

type fakeLogReader struct {
	logs []*models.PlayerLog
}

func (f *fakeLogReader) ListByCharacter(_ context.Context, characterID string, limit int) ([]*models.PlayerLog, error) {
	out := make([]*models.PlayerLog, 0, len(f.logs))
	for _, entry := range f.logs {
		if entry.CharacterID == characterID {
			out = append(out, entry)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestAdminPlayerLogs(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/admin/characters/c1/logs", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.SetPlayerLogReader(&fakeLogReader{logs: []*models.PlayerLog{
		{CharacterID: "c1", Kind: models.LogCommand, Payload: "look", Timestamp: time.Now()},
		{CharacterID: "c2", Kind: models.LogOutput, Payload: "elsewhere", Timestamp: time.Now()},
	}})

	rec = doRequest(t, s, http.MethodGet, "/admin/characters/c1/logs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var logs []PlayerLogEntry
	decodeBody(t, rec, &logs)
	require.Len(t, logs, 1)
	assert.Equal(t, models.LogCommand, logs[0].Kind)
	assert.Equal(t, "look", logs[0].Payload)
}

func TestAdminStatusWithoutEngine(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/admin/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status StatusResponse
	decodeBody(t, rec, &status)
	assert.Zero(t, status.Tick)
	assert.Zero(t, status.ActiveConnections)
}
