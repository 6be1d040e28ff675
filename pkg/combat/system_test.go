package combat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

func newTestSystem(t *testing.T) (*System, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	sys := NewSystem(mem)
	sys.now = func() time.Time { return time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) }
	return sys, mem
}

func seedCharacter(t *testing.T, mem *store.Memory, c *models.Character) *models.Character {
	t.Helper()
	require.NoError(t, mem.Characters().Create(context.Background(), c))
	return c
}

func TestGaugeAccumulation(t *testing.T) {
	ctx := context.Background()
	sys, mem := newTestSystem(t)

	seedCharacter(t, mem, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 10, Defense: 5, Speed: 40, IsAlive: true,
	})
	seedCharacter(t, mem, &models.Character{
		ID: "n1", Name: "a rat",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 6, Defense: 2, Speed: 40, IsAlive: true,
	})

	sys.Start("p1", "n1")

	// Speed 40: gauge hits 120 on the third tick, so the first two ticks
	// produce no swing.
	for i := 0; i < 2; i++ {
		res, err := sys.Tick(ctx)
		require.NoError(t, err)
		assert.Empty(t, res.Events, "tick %d should not swing", i+1)
	}

	res, err := sys.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	hit, ok := res.Events[0].Payload.(*models.CombatHitPayload)
	require.True(t, ok)
	assert.Equal(t, 8, hit.Damage, "attack 10 - defense 2")
	assert.Equal(t, 92, hit.TargetHP)

	target, err := mem.Characters().Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, 92, target.HP, "damage persisted")

	// Gauge retains the 20 overflow: next swing two ticks later, not three.
	res, err = sys.Tick(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	res, err = sys.Tick(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)
}

func TestDamageFloor(t *testing.T) {
	ctx := context.Background()
	sys, mem := newTestSystem(t)

	seedCharacter(t, mem, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 3, Defense: 5, Speed: 100, IsAlive: true,
	})
	seedCharacter(t, mem, &models.Character{
		ID: "n1", Name: "an iron golem",
		RoomID: "r1", HP: 50, MaxHP: 50,
		Attack: 10, Defense: 40, Speed: 10, IsAlive: true,
	})

	sys.Start("p1", "n1")
	res, err := sys.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	hit := res.Events[0].Payload.(*models.CombatHitPayload)
	assert.Equal(t, 1, hit.Damage, "damage never drops below 1")
}

func TestDeathDropsInventoryAndLeavesCorpse(t *testing.T) {
	ctx := context.Background()
	sys, mem := newTestSystem(t)

	seedCharacter(t, mem, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 50, Defense: 5, Speed: 100, IsAlive: true,
	})
	victim := seedCharacter(t, mem, &models.Character{
		ID: "n1", Name: "Torben",
		RoomID: "r1", HP: 5, MaxHP: 100,
		Attack: 10, Defense: 5, Speed: 50, IsAlive: true,
	})
	require.NoError(t, mem.Items().Create(ctx, &models.Item{
		ID: "i1", Name: "rusty sword", Type: models.ItemTypeWeapon,
		Stats: models.ItemStats{Damage: 3}, CharacterID: "n1", IsEquipped: true,
	}))

	// Victim fights back; their entry must vanish with them.
	sys.Start("n1", "p1")
	sys.Start("p1", "n1")

	res, err := sys.Tick(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"n1"}, res.Deaths)

	types := make([]models.EventType, len(res.Events))
	for i, e := range res.Events {
		types[i] = e.Type
	}
	assert.Contains(t, types, models.EventCombatHit)
	assert.Contains(t, types, models.EventDeath)

	got, err := mem.Characters().Get(ctx, victim.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDead)
	assert.False(t, got.IsAlive)
	assert.Equal(t, 0, got.HP)
	require.NotNil(t, got.DiedAt)

	// Inventory spilled to the room, unequipped.
	inv, err := mem.Items().ListByCharacter(ctx, "n1")
	require.NoError(t, err)
	assert.Empty(t, inv)

	roomItems, err := mem.Items().ListByRoom(ctx, "r1")
	require.NoError(t, err)
	names := make([]string, len(roomItems))
	for i, item := range roomItems {
		names[i] = item.Name
	}
	assert.Contains(t, names, "rusty sword")
	assert.Contains(t, names, "Torben's corpse")
	for _, item := range roomItems {
		if item.Name == "Torben's corpse" {
			assert.Contains(t, item.Description, "rusty sword")
			assert.False(t, item.Takeable() && item.Type != models.ItemTypeMisc)
		}
		assert.False(t, item.IsEquipped)
	}

	assert.False(t, sys.InCombat("n1"), "dead characters stop attacking")
	assert.False(t, sys.InCombat("p1"), "entries toward the dead are removed")
}

func TestEntriesPrunedWhenSeparated(t *testing.T) {
	ctx := context.Background()
	sys, mem := newTestSystem(t)

	seedCharacter(t, mem, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 10, Defense: 5, Speed: 100, IsAlive: true,
	})
	target := seedCharacter(t, mem, &models.Character{
		ID: "n1", Name: "a rat",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 6, Defense: 2, Speed: 40, IsAlive: true,
	})

	sys.Start("p1", "n1")

	target.RoomID = "r2"
	require.NoError(t, mem.Characters().Update(ctx, target))

	res, err := sys.Tick(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.Events)
	assert.False(t, sys.InCombat("p1"), "fleeing to another room breaks the fight")
}

func TestStartKeepsGaugeOnRetarget(t *testing.T) {
	ctx := context.Background()
	sys, mem := newTestSystem(t)

	seedCharacter(t, mem, &models.Character{
		ID: "p1", Name: "Mira", AccountID: "acct",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 10, Defense: 5, Speed: 60, IsAlive: true,
	})
	seedCharacter(t, mem, &models.Character{
		ID: "n1", Name: "a rat",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 6, Defense: 2, Speed: 10, IsAlive: true,
	})
	seedCharacter(t, mem, &models.Character{
		ID: "n2", Name: "a bat",
		RoomID: "r1", HP: 100, MaxHP: 100,
		Attack: 6, Defense: 2, Speed: 10, IsAlive: true,
	})

	sys.Start("p1", "n1")
	res, err := sys.Tick(ctx)
	require.NoError(t, err)
	require.Empty(t, res.Events)

	// Switching targets mid-windup keeps the accumulated 60 gauge.
	sys.Start("p1", "n2")
	res, err = sys.Tick(ctx)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	hit := res.Events[0].Payload.(*models.CombatHitPayload)
	assert.Equal(t, "n2", hit.TargetID)
}
