package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"say", "hello", "there"}, tokenize("say hello   there"))
	assert.Equal(t, []string{"tell", "Old Man Jenkins", "hi"}, tokenize(`tell "Old Man Jenkins" hi`))
	assert.Empty(t, tokenize("   "))
	assert.Equal(t, []string{"look"}, tokenize("look\n"))
}

func TestResolveGreedyLongestWins(t *testing.T) {
	cands := []candidate{
		{id: "1", name: "Old Man"},
		{id: "2", name: "Old Man Jenkins"},
		{id: "3", name: "sword"},
	}

	c, rest, ok := resolveGreedy([]string{"old", "man", "jenkins", "hello"}, cands)
	require.True(t, ok)
	assert.Equal(t, "2", c.id, "longest name prefix wins over the shorter candidate")
	assert.Equal(t, []string{"hello"}, rest)

	c, rest, ok = resolveGreedy([]string{"old", "man", "hello"}, cands)
	require.True(t, ok)
	assert.Equal(t, "1", c.id)
	assert.Equal(t, []string{"hello"}, rest)
}

func TestResolveGreedyQuotedName(t *testing.T) {
	cands := []candidate{{id: "2", name: "Old Man Jenkins"}}

	// A quoted name arrives as a single token.
	c, rest, ok := resolveGreedy([]string{"Old Man Jenkins", "hi"}, cands)
	require.True(t, ok)
	assert.Equal(t, "2", c.id)
	assert.Equal(t, []string{"hi"}, rest)
}

func TestResolveGreedyIDReference(t *testing.T) {
	cands := []candidate{{id: "abc-123", name: "sword"}}

	c, rest, ok := resolveGreedy([]string{"@id:abc-123", "now"}, cands)
	require.True(t, ok)
	assert.Equal(t, "abc-123", c.id)
	assert.Equal(t, []string{"now"}, rest)

	_, _, ok = resolveGreedy([]string{"@id:missing"}, cands)
	assert.False(t, ok)
}

func TestResolveGreedyPrefixFallback(t *testing.T) {
	cands := []candidate{{id: "3", name: "rusty sword"}}

	c, _, ok := resolveGreedy([]string{"sw"}, cands)
	require.True(t, ok)
	assert.Equal(t, "3", c.id)

	_, _, ok = resolveGreedy([]string{"axe"}, cands)
	assert.False(t, ok)
}

func TestQueueDrainPreservesOrder(t *testing.T) {
	q := NewQueue()
	q.Enqueue(Command{ActorID: "a", Text: "look"})
	q.Enqueue(Command{ActorID: "a", Text: "go north"})
	q.Enqueue(Command{ActorID: "b", Text: "say hi"})

	batch := q.Drain(2)
	require.Len(t, batch, 2)
	assert.Equal(t, "look", batch[0].Text)
	assert.Equal(t, "go north", batch[1].Text)
	assert.Equal(t, 1, q.Len(), "overflow stays queued")

	batch = q.Drain(DrainCap)
	require.Len(t, batch, 1)
	assert.Equal(t, "say hi", batch[0].Text)
	assert.Nil(t, q.Drain(DrainCap))
}
