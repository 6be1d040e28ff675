package services

import (
	"context"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/aiagent"
	"github.com/elliotbonneville/silt/pkg/models"
)

// AgentService manages AI agent brains.
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Get retrieves an agent by id.
func (s *AgentService) Get(ctx context.Context, id string) (*models.AIAgent, error) {
	row, err := s.client.AIAgent.Get(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "agent", id)
	}
	return agentToModel(row)
}

// GetByCharacter retrieves the agent bound to a character.
func (s *AgentService) GetByCharacter(ctx context.Context, characterID string) (*models.AIAgent, error) {
	row, err := s.client.AIAgent.Query().
		Where(aiagent.CharacterID(characterID)).
		Only(ctx)
	if err != nil {
		return nil, wrapNotFound(err, "agent for character", characterID)
	}
	return agentToModel(row)
}

// All lists every agent.
func (s *AgentService) All(ctx context.Context) ([]*models.AIAgent, error) {
	rows, err := s.client.AIAgent.Query().Order(ent.Asc(aiagent.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	agents := make([]*models.AIAgent, 0, len(rows))
	for _, row := range rows {
		agent, err := agentToModel(row)
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

// Create inserts an agent.
func (s *AgentService) Create(ctx context.Context, a *models.AIAgent) error {
	relationships, conversation, err := agentJSONColumns(a)
	if err != nil {
		return err
	}
	builder := s.client.AIAgent.Create().
		SetID(a.ID).
		SetCharacterID(a.CharacterID).
		SetSystemPrompt(a.SystemPrompt).
		SetHomeRoomID(a.HomeRoomID).
		SetMaxRoomsFromHome(a.MaxRoomsFromHome).
		SetSpatialMemory(a.SpatialMemory).
		SetRelationships(relationships).
		SetConversation(conversation).
		SetLastActionAt(a.LastActionAt)
	if a.SpatialMemoryUpdatedAt != nil {
		builder.SetSpatialMemoryUpdatedAt(*a.SpatialMemoryUpdatedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create agent %s: %w", a.ID, err)
	}
	return nil
}

// Update rewrites an agent's mutable state.
func (s *AgentService) Update(ctx context.Context, a *models.AIAgent) error {
	relationships, conversation, err := agentJSONColumns(a)
	if err != nil {
		return err
	}
	builder := s.client.AIAgent.UpdateOneID(a.ID).
		SetSystemPrompt(a.SystemPrompt).
		SetHomeRoomID(a.HomeRoomID).
		SetMaxRoomsFromHome(a.MaxRoomsFromHome).
		SetSpatialMemory(a.SpatialMemory).
		SetRelationships(relationships).
		SetConversation(conversation).
		SetLastActionAt(a.LastActionAt)
	if a.SpatialMemoryUpdatedAt != nil {
		builder.SetSpatialMemoryUpdatedAt(*a.SpatialMemoryUpdatedAt)
	}
	if err := builder.Exec(ctx); err != nil {
		return wrapNotFound(err, "agent", a.ID)
	}
	return nil
}

// Delete removes an agent. Its character reverts to a plain NPC.
func (s *AgentService) Delete(ctx context.Context, id string) error {
	if err := s.client.AIAgent.DeleteOneID(id).Exec(ctx); err != nil {
		return wrapNotFound(err, "agent", id)
	}
	return nil
}

func agentJSONColumns(a *models.AIAgent) (map[string]interface{}, []interface{}, error) {
	var relationships map[string]interface{}
	if err := jsonRoundTrip(a.Relationships, &relationships); err != nil {
		return nil, nil, fmt.Errorf("agent %s relationships: %w", a.ID, err)
	}
	var conversation []interface{}
	if err := jsonRoundTrip(a.Conversation, &conversation); err != nil {
		return nil, nil, fmt.Errorf("agent %s conversation: %w", a.ID, err)
	}
	return relationships, conversation, nil
}

func agentToModel(row *ent.AIAgent) (*models.AIAgent, error) {
	agent := &models.AIAgent{
		ID:                     row.ID,
		CharacterID:            row.CharacterID,
		SystemPrompt:           row.SystemPrompt,
		HomeRoomID:             row.HomeRoomID,
		MaxRoomsFromHome:       row.MaxRoomsFromHome,
		SpatialMemory:          row.SpatialMemory,
		SpatialMemoryUpdatedAt: row.SpatialMemoryUpdatedAt,
		LastActionAt:           row.LastActionAt,
	}
	if row.Relationships != nil {
		if err := jsonRoundTrip(row.Relationships, &agent.Relationships); err != nil {
			return nil, fmt.Errorf("agent %s relationships: %w", row.ID, err)
		}
	}
	if row.Conversation != nil {
		if err := jsonRoundTrip(row.Conversation, &agent.Conversation); err != nil {
			return nil, fmt.Errorf("agent %s conversation: %w", row.ID, err)
		}
	}
	return agent, nil
}
