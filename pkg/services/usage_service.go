package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// TokenUsageService records LLM token accounting.
type TokenUsageService struct {
	client *ent.Client
}

// NewTokenUsageService creates a new TokenUsageService.
func NewTokenUsageService(client *ent.Client) *TokenUsageService {
	return &TokenUsageService{client: client}
}

// Record persists one usage row.
func (s *TokenUsageService) Record(ctx context.Context, usage *models.TokenUsage) error {
	id := usage.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := usage.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	builder := s.client.TokenUsageLog.Create().
		SetID(id).
		SetModel(usage.Model).
		SetProvider(usage.Provider).
		SetPromptTokens(usage.PromptTokens).
		SetCompletionTokens(usage.CompletionTokens).
		SetTotalTokens(usage.TotalTokens).
		SetCost(usage.Cost).
		SetSource(tokenusagelog.Source(usage.Source)).
		SetCreatedAt(createdAt)
	if usage.AgentID != "" {
		builder.SetAgentID(usage.AgentID)
	}
	if usage.SourceEventID != "" {
		builder.SetSourceEventID(usage.SourceEventID)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("record token usage: %w", err)
	}
	return nil
}

// Totals aggregates all usage rows for the admin dashboard.
func (s *TokenUsageService) Totals(ctx context.Context) (*store.UsageTotals, error) {
	rows, err := s.client.TokenUsageLog.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list token usage: %w", err)
	}

	totals := &store.UsageTotals{
		BySource: make(map[models.UsageSource]int),
		ByAgent:  make(map[string]int),
	}
	for _, row := range rows {
		totals.PromptTokens += row.PromptTokens
		totals.CompletionTokens += row.CompletionTokens
		totals.TotalTokens += row.TotalTokens
		totals.Cost += row.Cost
		totals.BySource[models.UsageSource(row.Source)] += row.TotalTokens
		if row.AgentID != "" {
			totals.ByAgent[row.AgentID] += row.TotalTokens
		}
	}
	return totals, nil
}
