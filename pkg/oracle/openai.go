package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/models"
)

// DefaultBaseURL targets the OpenAI API; override for compatible providers.
const DefaultBaseURL = "https://api.openai.com/v1"

// OpenAIConfig configures the chat-completions oracle.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// OpenAIOracle implements Oracle over any OpenAI-compatible chat-completions
// endpoint.
type OpenAIOracle struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

// NewOpenAIOracle creates an oracle client. The API key is required; base URL
// and model fall back to defaults.
func NewOpenAIOracle(cfg OpenAIConfig) (*OpenAIOracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("oracle: API key is required")
	}
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIOracle{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// DecideAction implements Oracle.
func (o *OpenAIOracle) DecideAction(ctx context.Context, in *AgentContext) (*Decision, *models.TokenUsage, error) {
	prompt := buildActionPrompt(in)
	content, usage, err := o.complete(ctx, in.SystemPrompt, prompt, in.AgentID, models.UsageDecision)
	if err != nil {
		return nil, usage, err
	}

	var decision Decision
	if err := json.Unmarshal(stripFences(content), &decision); err != nil {
		return nil, usage, fmt.Errorf("parse decision: %w", err)
	}
	if decision.Action == "" || strings.EqualFold(decision.Action, "none") ||
		strings.EqualFold(decision.Action, "no-op") {
		return nil, usage, nil
	}
	return &decision, usage, nil
}

// DecideResponse implements Oracle.
func (o *OpenAIOracle) DecideResponse(ctx context.Context, in *AgentContext, speaker, message string) (*Response, *models.TokenUsage, error) {
	prompt := buildActionPrompt(in) + fmt.Sprintf(
		"\n%s just said to you: %q\n"+
			"Decide whether to respond. Reply with JSON: "+
			`{"shouldRespond": bool, "response": string, "reasoning": string, `+
			`"sentimentDelta": int (-2..2), "trustDelta": int (-2..2)}`+"\n",
		speaker, message)

	content, usage, err := o.complete(ctx, in.SystemPrompt, prompt, in.AgentID, models.UsageDecisionResponse)
	if err != nil {
		return nil, usage, err
	}
	var resp Response
	if err := json.Unmarshal(stripFences(content), &resp); err != nil {
		return nil, usage, fmt.Errorf("parse response: %w", err)
	}
	return &resp, usage, nil
}

// SummarizeSpatialMap implements Oracle.
func (o *OpenAIOracle) SummarizeSpatialMap(ctx context.Context, agentID, mapText string) (string, *models.TokenUsage, error) {
	system := "You compress room maps into a short mental model an inhabitant " +
		"would keep in their head. At most 7 lines. Plain text, no JSON."
	prompt := "Summarize this map:\n\n" + mapText
	content, usage, err := o.complete(ctx, system, prompt, agentID, models.UsageSpatialMemory)
	if err != nil {
		return "", usage, err
	}
	return strings.TrimSpace(content), usage, nil
}

func (o *OpenAIOracle) complete(ctx context.Context, system, user, agentID string, source models.UsageSource) (string, *models.TokenUsage, error) {
	reqBody := chatRequest{
		Model:       o.model,
		Temperature: 0.7,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	if source != models.UsageSpatialMemory {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return "", nil, fmt.Errorf("call oracle: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, fmt.Errorf("read oracle response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("oracle returned HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", nil, fmt.Errorf("decode oracle response: %w", err)
	}
	if parsed.Error != nil {
		return "", nil, fmt.Errorf("oracle error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", nil, fmt.Errorf("oracle returned no choices")
	}

	usage := &models.TokenUsage{
		ID:               uuid.NewString(),
		Model:            o.model,
		Provider:         "openai",
		PromptTokens:     parsed.Usage.PromptTokens,
		CompletionTokens: parsed.Usage.CompletionTokens,
		TotalTokens:      parsed.Usage.TotalTokens,
		Source:           source,
		AgentID:          agentID,
		CreatedAt:        time.Now(),
	}
	return parsed.Choices[0].Message.Content, usage, nil
}

// buildActionPrompt assembles the world snapshot into the user message.
func buildActionPrompt(in *AgentContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a character in a living text world.\n\n", in.AgentName)

	fmt.Fprintf(&b, "You are in: %s\n%s\n", in.RoomName, in.RoomDescription)
	if len(in.Adjacencies) > 0 {
		b.WriteString("Exits:\n")
		for _, a := range in.Adjacencies {
			b.WriteString("  " + a + "\n")
		}
	}
	if len(in.CharactersPresent) > 0 {
		b.WriteString("Present: " + strings.Join(in.CharactersPresent, ", ") + "\n")
	}
	if len(in.ItemsPresent) > 0 {
		b.WriteString("Items here: " + strings.Join(in.ItemsPresent, ", ") + "\n")
	}
	if len(in.Relationships) > 0 {
		b.WriteString("People you know:\n")
		for _, r := range in.Relationships {
			b.WriteString("  " + r + "\n")
		}
	}
	if in.SpatialMemory != "" {
		b.WriteString("Your mental map:\n" + in.SpatialMemory + "\n")
	}
	if len(in.Events) > 0 {
		b.WriteString("\nRecently you noticed:\n")
		for _, e := range in.Events {
			b.WriteString("  " + e + "\n")
		}
	}
	fmt.Fprintf(&b, "\nIt has been %s since you last acted.\n", in.TimeSinceLastAction.Round(time.Second))
	if len(in.Commands) > 0 {
		b.WriteString("Available commands: " + strings.Join(in.Commands, ", ") + "\n")
	}
	b.WriteString("\nChoose at most one command. Reply with JSON: " +
		`{"action": string (a command verb, or "none"), "arguments": string, "reasoning": string}` + "\n")
	return b.String()
}

// stripFences removes a markdown code fence if the model wrapped its JSON.
func stripFences(s string) []byte {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return []byte(strings.TrimSpace(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
