package database_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/database"
	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/services"
	testdb "github.com/elliotbonneville/silt/test/database"
)

// recordingBroadcaster collects notifications dispatched by the listener.
type recordingBroadcaster struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (r *recordingBroadcaster) Broadcast(channel string, payload []byte) {
	if channel != events.AdminChannel {
		return
	}
	r.mu.Lock()
	r.payloads = append(r.payloads, payload)
	r.mu.Unlock()
}

func (r *recordingBroadcaster) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payloads)
}

func (r *recordingBroadcaster) last() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.payloads) == 0 {
		return nil
	}
	return r.payloads[len(r.payloads)-1]
}

func TestNotifyListenerAdminMirror(t *testing.T) {
	ctx := context.Background()
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	recorder := &recordingBroadcaster{}
	listener := database.NewNotifyListener(shared.ConnString(), recorder)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	require.NoError(t, listener.Subscribe(ctx, events.AdminChannel))

	publisher := services.NewAdminEventPublisher(client.DB())
	envelope := &events.EventWithRecipients{
		Event: &events.WireEvent{
			ID:           "e1",
			Type:         "speech",
			OriginRoomID: "square",
			Content:      "Mira says, \"Hello.\"",
		},
		Rendered:   "Mira says, \"Hello.\"",
		Recipients: []string{"c1", "c2"},
	}
	require.NoError(t, publisher.MirrorEvent(ctx, envelope))

	require.Eventually(t, func() bool { return recorder.count() == 1 },
		5*time.Second, 50*time.Millisecond, "notification not delivered")

	var got events.EventWithRecipients
	require.NoError(t, json.Unmarshal(recorder.last(), &got))
	require.NotNil(t, got.Event)
	assert.Equal(t, "e1", got.Event.ID)
	assert.Equal(t, []string{"c1", "c2"}, got.Recipients)
}

func TestNotifyListenerTruncatesOversizedPayload(t *testing.T) {
	ctx := context.Background()
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	recorder := &recordingBroadcaster{}
	listener := database.NewNotifyListener(shared.ConnString(), recorder)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	require.NoError(t, listener.Subscribe(ctx, events.AdminChannel))

	publisher := services.NewAdminEventPublisher(client.DB())
	envelope := &events.EventWithRecipients{
		Event: &events.WireEvent{
			ID:      "e-big",
			Type:    "speech",
			Content: strings.Repeat("a very long narration ", 1000),
		},
	}
	require.NoError(t, publisher.MirrorEvent(ctx, envelope))

	require.Eventually(t, func() bool { return recorder.count() == 1 },
		5*time.Second, 50*time.Millisecond, "notification not delivered")

	var got map[string]any
	require.NoError(t, json.Unmarshal(recorder.last(), &got))
	assert.Equal(t, true, got["truncated"])
	event := got["event"].(map[string]any)
	assert.Equal(t, "e-big", event["id"])
}

func TestNotifyListenerUnsubscribe(t *testing.T) {
	ctx := context.Background()
	shared := testdb.NewSharedTestDB(t)
	client := shared.NewClient(t)

	recorder := &recordingBroadcaster{}
	listener := database.NewNotifyListener(shared.ConnString(), recorder)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })

	require.NoError(t, listener.Subscribe(ctx, events.AdminChannel))
	require.NoError(t, listener.Unsubscribe(ctx, events.AdminChannel))

	publisher := services.NewAdminEventPublisher(client.DB())
	require.NoError(t, publisher.MirrorEvent(ctx, &events.EventWithRecipients{
		Event: &events.WireEvent{ID: "e2", Type: "speech"},
	}))

	// Give a misdelivered notification time to arrive before asserting.
	time.Sleep(500 * time.Millisecond)
	assert.Zero(t, recorder.count())
}

// Two listeners on separate replicas both receive the same mirror, which is
// what lets every replica serve admin sockets.
func TestNotifyListenerCrossReplica(t *testing.T) {
	ctx := context.Background()
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	_ = shared.NewClient(t)

	recorderA := &recordingBroadcaster{}
	recorderB := &recordingBroadcaster{}

	listenerA := database.NewNotifyListener(shared.ConnString(), recorderA)
	require.NoError(t, listenerA.Start(ctx))
	t.Cleanup(func() { listenerA.Stop(ctx) })
	listenerB := database.NewNotifyListener(shared.ConnString(), recorderB)
	require.NoError(t, listenerB.Start(ctx))
	t.Cleanup(func() { listenerB.Stop(ctx) })

	require.NoError(t, listenerA.Subscribe(ctx, events.AdminChannel))
	require.NoError(t, listenerB.Subscribe(ctx, events.AdminChannel))

	publisher := services.NewAdminEventPublisher(clientA.DB())
	require.NoError(t, publisher.MirrorEvent(ctx, &events.EventWithRecipients{
		Event: &events.WireEvent{ID: "e3", Type: "speech"},
	}))

	require.Eventually(t, func() bool {
		return recorderA.count() == 1 && recorderB.count() == 1
	}, 5*time.Second, 50*time.Millisecond, "both replicas should receive the mirror")
}
