package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

func newTestServer(t *testing.T) (*Server, store.World) {
	t.Helper()
	ctx := context.Background()
	world := store.NewMemory()

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
	require.NoError(t, world.Items().Create(ctx, &models.Item{
		ID:     "shrine",
		Name:   "weathered shrine",
		Type:   models.ItemTypeSpawnPoint,
		RoomID: "square",
	}))
	require.NoError(t, world.Accounts().Create(ctx, &models.Account{
		ID:        "acct1",
		Username:  "mira",
		CreatedAt: time.Now(),
	}))

	return NewServer(world, nil, nil, nil, nil, nil), world
}

func doRequest(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestCreateCharacterSpawnsInStartingRoom(t *testing.T) {
	s, world := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/accounts/mira/characters",
		CreateCharacterRequest{Name: "Mira"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var summary CharacterSummary
	decodeBody(t, rec, &summary)
	assert.Equal(t, "Mira", summary.Name)
	assert.Equal(t, "square", summary.RoomID)
	assert.Equal(t, models.DefaultMaxHP, summary.HP)
	assert.True(t, summary.IsAlive)

	created, err := world.Characters().Get(context.Background(), summary.ID)
	require.NoError(t, err)
	assert.Equal(t, "acct1", created.AccountID)
	assert.Equal(t, "shrine", created.SpawnPointID)
	assert.Equal(t, models.BaseAttack, created.Attack)
	assert.Equal(t, models.BaseDefense, created.Defense)
}

func TestCreateCharacterValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/accounts/mira/characters",
		CreateCharacterRequest{Name: "   "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/api/accounts/mira/characters",
		CreateCharacterRequest{Name: "this name is far far far too long to be allowed"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateCharacterUnknownAccount(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/accounts/nobody/characters",
		CreateCharacterRequest{Name: "Ghost"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCharacters(t *testing.T) {
	s, world := newTestServer(t)
	require.NoError(t, world.Characters().Create(context.Background(), &models.Character{
		ID: "c1", Name: "Mira", AccountID: "acct1", RoomID: "square",
		HP: 80, MaxHP: 100, IsAlive: true,
	}))

	rec := doRequest(t, s, http.MethodGet, "/api/accounts/mira/characters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []CharacterSummary
	decodeBody(t, rec, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, 80, list[0].HP)
}

func TestGetAndDeleteCharacter(t *testing.T) {
	s, world := newTestServer(t)
	require.NoError(t, world.Characters().Create(context.Background(), &models.Character{
		ID: "c1", Name: "Mira", AccountID: "acct1", RoomID: "square",
		HP: 100, MaxHP: 100, Attack: 12, Defense: 6, Speed: 100, IsAlive: true,
	}))

	rec := doRequest(t, s, http.MethodGet, "/api/characters/c1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail CharacterDetailResponse
	decodeBody(t, rec, &detail)
	assert.Equal(t, 12, detail.Attack)
	assert.Equal(t, 6, detail.Defense)

	rec = doRequest(t, s, http.MethodDelete, "/api/characters/c1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/api/characters/c1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUnknownCharacter(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodDelete, "/api/characters/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPreferencesPatchDeepMerges(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPatch, "/api/accounts/mira/preferences",
		map[string]any{"theme": "dark", "sound": map[string]any{"volume": 5}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodPatch, "/api/accounts/mira/preferences",
		map[string]any{"sound": map[string]any{"muted": true}})
	require.Equal(t, http.StatusOK, rec.Code)

	var prefs map[string]any
	decodeBody(t, rec, &prefs)
	assert.Equal(t, "dark", prefs["theme"])

	sound, ok := prefs["sound"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, sound["muted"])
	assert.Equal(t, float64(5), sound["volume"])
}

func TestPreferencesUnknownAccount(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/api/accounts/nobody/preferences", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthWithoutDatabase(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var health HealthResponse
	decodeBody(t, rec, &health)
	assert.Equal(t, healthStatusHealthy, health.Status)
}
