package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elliotbonneville/silt/pkg/models"
)

func stubServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
			"usage": map[string]int{
				"prompt_tokens": 120, "completion_tokens": 30, "total_tokens": 150,
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testContext() *AgentContext {
	return &AgentContext{
		SystemPrompt:        "You are a gruff blacksmith.",
		AgentID:             "a1",
		AgentName:           "Greta",
		Events:              []string{`Mira says, "hello"`},
		Adjacencies:         []string{"north: The Old Mill"},
		CharactersPresent:   []string{"Mira"},
		Relationships:       []string{"Mira: sentiment 2, trust 4"},
		TimeSinceLastAction: 12 * time.Second,
		RoomName:            "The Forge",
		RoomDescription:     "Heat shimmers over the anvil.",
		Commands:            []string{"say", "go", "emote"},
	}
}

func TestDecideActionParsesToolCall(t *testing.T) {
	srv := stubServer(t, `{"action":"say","arguments":"Welcome to my forge.","reasoning":"greet the visitor"}`)
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL, Model: "test-model"})
	require.NoError(t, err)

	decision, usage, err := o.DecideAction(context.Background(), testContext())
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, "say", decision.Action)
	assert.Equal(t, "Welcome to my forge.", decision.Arguments)
	assert.Equal(t, "greet the visitor", decision.Reasoning)

	require.NotNil(t, usage)
	assert.Equal(t, 150, usage.TotalTokens)
	assert.Equal(t, models.UsageDecision, usage.Source)
	assert.Equal(t, "a1", usage.AgentID)
	assert.Equal(t, "test-model", usage.Model)
}

func TestDecideActionNoOp(t *testing.T) {
	srv := stubServer(t, `{"action":"none","arguments":"","reasoning":"nothing to do"}`)
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	decision, usage, err := o.DecideAction(context.Background(), testContext())
	require.NoError(t, err)
	assert.Nil(t, decision, "a none action is a no-op, not an error")
	assert.NotNil(t, usage, "even no-ops cost tokens")
}

func TestDecideActionStripsCodeFence(t *testing.T) {
	srv := stubServer(t, "```json\n{\"action\":\"emote\",\"arguments\":\"hums while working.\",\"reasoning\":\"idle\"}\n```")
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	decision, _, err := o.DecideAction(context.Background(), testContext())
	require.NoError(t, err)
	require.NotNil(t, decision)
	assert.Equal(t, "emote", decision.Action)
}

func TestDecideResponse(t *testing.T) {
	srv := stubServer(t, `{"shouldRespond":true,"response":"Aye, what do you need?","reasoning":"customer","sentimentDelta":1,"trustDelta":0}`)
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, usage, err := o.DecideResponse(context.Background(), testContext(), "Mira", "can you fix my sword?")
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.ShouldRespond)
	assert.Equal(t, "Aye, what do you need?", resp.Response)
	assert.Equal(t, 1, resp.SentimentDelta)
	assert.Equal(t, models.UsageDecisionResponse, usage.Source)
}

func TestSummarizeSpatialMap(t *testing.T) {
	srv := stubServer(t, "The forge sits at the village center.\nThe mill lies one road north.")
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	summary, usage, err := o.SummarizeSpatialMap(context.Background(), "a1", "room map text")
	require.NoError(t, err)
	assert.Contains(t, summary, "forge")
	assert.Equal(t, models.UsageSpatialMemory, usage.Source)
}

func TestOracleHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)
	o, err := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, _, err = o.DecideAction(context.Background(), testContext())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestMissingAPIKey(t *testing.T) {
	_, err := NewOpenAIOracle(OpenAIConfig{})
	require.Error(t, err)
}
