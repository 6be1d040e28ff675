package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

const worldYAML = `
rooms:
  - id: square
    name: The Square
    description: A cobbled plaza ringed by stalls.
    starting: true
    exits:
      north: forge
  - id: forge
    name: The Forge
    description: Heat rolls off the coals.
    exits:
      south: square
items:
  - id: shrine
    name: weathered shrine
    type: spawn_point
    room: square
  - id: hammer
    name: smith's hammer
    type: weapon
    room: forge
    stats:
      damage: 4
npcs:
  - id: grok
    name: Grok
    description: A hulking smith.
    room: forge
    hp: 60
    attack: 14
    agent:
      systemPrompt: You are Grok, keeper of the forge.
      maxRoomsFromHome: 2
`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadWorldSeed(t *testing.T) {
	seed, err := LoadWorldSeed(writeSeedFile(t, worldYAML))
	require.NoError(t, err)

	require.Len(t, seed.Rooms, 2)
	assert.True(t, seed.Rooms[0].Starting)
	assert.Equal(t, "forge", seed.Rooms[0].Exits["north"])
	require.Len(t, seed.Items, 2)
	assert.Equal(t, 4, seed.Items[1].Stats.Damage)
	require.Len(t, seed.NPCs, 1)
	require.NotNil(t, seed.NPCs[0].Agent)
	assert.Equal(t, 2, *seed.NPCs[0].Agent.MaxRoomsFromHome)
}

func TestLoadWorldSeedValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "no starting room",
			yaml: "rooms:\n  - id: a\n    name: A\n",
		},
		{
			name: "two starting rooms",
			yaml: "rooms:\n  - id: a\n    name: A\n    starting: true\n  - id: b\n    name: B\n    starting: true\n",
		},
		{
			name: "dangling exit",
			yaml: "rooms:\n  - id: a\n    name: A\n    starting: true\n    exits:\n      north: nowhere\n",
		},
		{
			name: "item in unknown room",
			yaml: "rooms:\n  - id: a\n    name: A\n    starting: true\nitems:\n  - id: i\n    name: Thing\n    type: misc\n    room: nowhere\n",
		},
		{
			name: "unknown item type",
			yaml: "rooms:\n  - id: a\n    name: A\n    starting: true\nitems:\n  - id: i\n    name: Thing\n    type: relic\n    room: a\n",
		},
		{
			name: "agent without prompt",
			yaml: "rooms:\n  - id: a\n    name: A\n    starting: true\nnpcs:\n  - id: n\n    name: N\n    room: a\n    agent: {}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWorldSeed(writeSeedFile(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestSeedWorld(t *testing.T) {
	ctx := context.Background()
	world := store.NewMemory()

	seed, err := LoadWorldSeed(writeSeedFile(t, worldYAML))
	require.NoError(t, err)
	require.NoError(t, SeedWorld(ctx, world, seed))

	start, err := world.Rooms().Starting(ctx)
	require.NoError(t, err)
	assert.Equal(t, "square", start.ID)

	grok, err := world.Characters().Get(ctx, "grok")
	require.NoError(t, err)
	assert.True(t, grok.IsNPC())
	assert.Equal(t, 60, grok.HP)
	assert.Equal(t, 14, grok.Attack)
	assert.Equal(t, models.BaseDefense, grok.Defense)

	agent, err := world.Agents().GetByCharacter(ctx, "grok")
	require.NoError(t, err)
	assert.Equal(t, "forge", agent.HomeRoomID)
	assert.Equal(t, 2, agent.MaxRoomsFromHome)

	items, err := world.Items().ListByRoom(ctx, "forge")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.ItemTypeWeapon, items[0].Type)
}

func TestSeedWorldIdempotent(t *testing.T) {
	ctx := context.Background()
	world := store.NewMemory()

	seed, err := LoadWorldSeed(writeSeedFile(t, worldYAML))
	require.NoError(t, err)
	require.NoError(t, SeedWorld(ctx, world, seed))
	require.NoError(t, SeedWorld(ctx, world, seed))

	rooms, err := world.Rooms().All(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SILT_ENV", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, 90, cfg.EventRetentionDays)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Equal(t, time.Hour, cfg.CleanupInterval)

	t.Setenv("SILT_ENV", "staging")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SILT_ENV", "")
	t.Setenv("EVENT_RETENTION_DAYS", "soon")
	_, err = Load()
	assert.Error(t, err)
}
