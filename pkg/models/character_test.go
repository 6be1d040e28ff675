package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthDescriptionBands(t *testing.T) {
	tests := []struct {
		hp   int
		want string
	}{
		{100, "perfect"},
		{80, "slightly scratched"},
		{50, "wounded"},
		{25, "badly wounded"},
		{10, "near death"},
		{0, "dead"},
	}
	for _, tt := range tests {
		c := &Character{HP: tt.hp, MaxHP: 100, IsAlive: tt.hp > 0}
		assert.Equal(t, tt.want, c.HealthDescription(), "hp=%d", tt.hp)
	}
}

func TestKillSetsDeathInvariants(t *testing.T) {
	now := time.Now()
	c := &Character{HP: 42, MaxHP: 100, IsAlive: true}

	c.Kill(now)

	assert.Zero(t, c.HP)
	assert.False(t, c.IsAlive)
	assert.True(t, c.IsDead)
	require.NotNil(t, c.DiedAt)
	assert.Equal(t, now, *c.DiedAt)
	assert.Equal(t, "dead", c.HealthDescription())
}

func TestIsNPC(t *testing.T) {
	assert.True(t, (&Character{}).IsNPC())
	assert.False(t, (&Character{AccountID: "acct1"}).IsNPC())
}

func TestTouchClampsAndAdvancesFamiliarity(t *testing.T) {
	a := &AIAgent{}
	now := time.Now()

	a.Touch("Mira", 8, 4, now)
	a.Touch("Mira", 8, 9, now)

	rel := a.Relationships["Mira"]
	assert.Equal(t, 10, rel.Sentiment)
	assert.Equal(t, 10, rel.Trust)
	assert.Equal(t, 2, rel.Familiarity)

	a.Touch("Mira", -25, -25, now)
	rel = a.Relationships["Mira"]
	assert.Equal(t, -10, rel.Sentiment)
	assert.Equal(t, 0, rel.Trust)
}

func TestRecordConversationTrimsHistory(t *testing.T) {
	a := &AIAgent{}
	for i := 0; i < ConversationLimit+5; i++ {
		a.RecordConversation(ConversationEntry{Speaker: "Mira", Message: "line"})
	}
	assert.Len(t, a.Conversation, ConversationLimit)
}
