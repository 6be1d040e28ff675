// Package oracle abstracts the language model that drives AI agents. The core
// only knows the contract: given world context, decide an action or a reply,
// and report token spend for accounting. Oracle failures are never fatal to
// the simulation.
package oracle

import (
	"context"
	"time"

	"github.com/elliotbonneville/silt/pkg/models"
)

// Decision is the oracle's chosen tool invocation. Action names the command
// verb; Arguments is the rest of the command line. A nil Decision means the
// agent chose to do nothing this round.
type Decision struct {
	Action    string `json:"action"`
	Arguments string `json:"arguments"`
	Reasoning string `json:"reasoning"`
}

// Response is the oracle's answer to being directly addressed.
type Response struct {
	ShouldRespond  bool   `json:"shouldRespond"`
	Response       string `json:"response"`
	Reasoning      string `json:"reasoning"`
	SentimentDelta int    `json:"sentimentDelta"`
	TrustDelta     int    `json:"trustDelta"`
}

// AgentContext is the world snapshot handed to the oracle for a decision.
type AgentContext struct {
	SystemPrompt        string
	AgentID             string
	AgentName           string
	Events              []string // formatted perception, oldest first
	Adjacencies         []string // "north: The Old Mill"
	CharactersPresent   []string
	ItemsPresent        []string
	Relationships       []string // "Mira: sentiment 3, trust 5, familiar"
	TimeSinceLastAction time.Duration
	RoomName            string
	RoomDescription     string
	SpatialMemory       string // may be empty; agent then plans only locally
	Commands            []string
}

// Oracle decides agent behaviour. Every call may return a token-usage record;
// callers forward non-nil records to the usage log.
type Oracle interface {
	// DecideAction picks the agent's next proactive command, or nil for no-op.
	DecideAction(ctx context.Context, in *AgentContext) (*Decision, *models.TokenUsage, error)

	// DecideResponse reacts to a message directed at the agent.
	DecideResponse(ctx context.Context, in *AgentContext, speaker, message string) (*Response, *models.TokenUsage, error)

	// SummarizeSpatialMap compresses a structured room map into a short
	// navigable mental model, at most a handful of lines.
	SummarizeSpatialMap(ctx context.Context, agentID, mapText string) (string, *models.TokenUsage, error)
}
