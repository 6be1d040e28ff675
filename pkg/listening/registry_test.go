package listening

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListenReplacesPriorSubscription(t *testing.T) {
	r := NewRegistry()

	r.Listen("obs", "alice")
	r.Listen("obs", "bob")

	subject, ok := r.Subject("obs")
	assert.True(t, ok)
	assert.Equal(t, "bob", subject)
}

func TestStopReportsExistence(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Stop("obs"))
	r.Listen("obs", "alice")
	assert.True(t, r.Stop("obs"))
	_, ok := r.Subject("obs")
	assert.False(t, ok)
}

func TestIsListeningToMatchesAnyParticipant(t *testing.T) {
	r := NewRegistry()
	r.Listen("obs", "alice")

	assert.True(t, r.IsListeningTo("obs", "bob", "alice"))
	assert.False(t, r.IsListeningTo("obs", "bob", "carol"))
	assert.False(t, r.IsListeningTo("stranger", "alice"))
}

func TestDropClearsBothDirections(t *testing.T) {
	r := NewRegistry()
	r.Listen("alice", "bob")
	r.Listen("carol", "alice")

	r.Drop("alice")

	_, ok := r.Subject("alice")
	assert.False(t, ok, "dropped character's own subscription should go")
	_, ok = r.Subject("carol")
	assert.False(t, ok, "subscriptions targeting the dropped character should go")
}
