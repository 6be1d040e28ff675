package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/services"
	"github.com/elliotbonneville/silt/pkg/store"
	testdb "github.com/elliotbonneville/silt/test/database"
)

func setupRetention(t *testing.T) (context.Context, *services.World, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	world := services.NewWorld(client.Client)

	cfg := Config{
		EventRetentionDays: 30,
		LogRetentionDays:   30,
		Interval:           time.Hour,
	}
	svc := NewService(cfg,
		services.NewEventService(client.Client),
		services.NewPlayerLogService(client.Client))
	return context.Background(), world, svc
}

func seedEvent(t *testing.T, ctx context.Context, world *services.World, id string, age time.Duration) {
	t.Helper()
	require.NoError(t, world.Events().Append(ctx, &models.GameEvent{
		ID:           id,
		Type:         models.EventSpeech,
		Timestamp:    time.Now().Add(-age),
		OriginRoomID: "square",
		Visibility:   models.VisibilityRoom,
		Content:      "narration",
		Payload:      &models.SpeechPayload{ActorID: "c1", ActorName: "Mira", Message: "hi"},
	}))
}

func TestServicePrunesOldEvents(t *testing.T) {
	ctx, world, svc := setupRetention(t)
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID: "square", Name: "The Square", IsStarting: true, Exits: map[string]string{},
	}))

	seedEvent(t, ctx, world, "old", 40*24*time.Hour)
	seedEvent(t, ctx, world, "recent", time.Hour)

	svc.runAll(ctx)

	remaining, err := world.Events().List(ctx, store.EventFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "recent", remaining[0].ID)
}

func TestServicePrunesOldPlayerLogs(t *testing.T) {
	ctx, world, svc := setupRetention(t)
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID: "square", Name: "The Square", IsStarting: true, Exits: map[string]string{},
	}))
	require.NoError(t, world.Characters().Create(ctx, &models.Character{
		ID: "c1", Name: "Mira", RoomID: "square", HP: 10, MaxHP: 10, IsAlive: true,
	}))

	appendLog := func(age time.Duration) {
		require.NoError(t, world.PlayerLogs().Append(ctx, &models.PlayerLog{
			CharacterID: "c1",
			Kind:        models.LogOutput,
			Payload:     "entry",
			Timestamp:   time.Now().Add(-age),
		}))
	}
	appendLog(40 * 24 * time.Hour)
	appendLog(time.Hour)

	svc.runAll(ctx)

	logs, err := world.PlayerLogs().ListByCharacter(ctx, "c1", 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestServiceZeroRetentionDisablesPruning(t *testing.T) {
	ctx, world, svc := setupRetention(t)
	svc.cfg.EventRetentionDays = 0
	require.NoError(t, world.Rooms().Create(ctx, &models.Room{
		ID: "square", Name: "The Square", IsStarting: true, Exits: map[string]string{},
	}))

	seedEvent(t, ctx, world, "ancient", 400*24*time.Hour)

	svc.runAll(ctx)

	remaining, err := world.Events().List(ctx, store.EventFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestServiceStartStop(t *testing.T) {
	_, _, svc := setupRetention(t)
	svc.cfg.Interval = 10 * time.Millisecond

	svc.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	svc.Stop()
}
