// Package game implements the command pipeline: the queue fed by sockets and
// the AI manager, the text parser, and the dispatcher that turns a command
// line into world mutations, events, and a structured reply.
package game

import (
	"time"

	"github.com/elliotbonneville/silt/pkg/models"
)

// CommandSource distinguishes player input from AI-chosen actions.
type CommandSource string

// Command sources.
const (
	SourcePlayer CommandSource = "player"
	SourceAI     CommandSource = "ai"
)

// Command is one queued input line.
type Command struct {
	Source     CommandSource
	ActorID    string
	Text       string
	EnqueuedAt time.Time
}

// CommandResult is what dispatching one command produced. Events are handed to
// the propagator after Output has been sent to the commanding socket, so the
// reply always precedes its own fallout.
type CommandResult struct {
	Success bool
	Events  []*models.GameEvent
	Output  *models.StructuredOutput
	Err     error
}

func failure(err error) *CommandResult {
	return &CommandResult{Success: false, Err: err}
}

func success(output *models.StructuredOutput, events ...*models.GameEvent) *CommandResult {
	return &CommandResult{Success: true, Output: output, Events: events}
}
