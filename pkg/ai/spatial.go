package ai

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/elliotbonneville/silt/pkg/models"
)

// SpatialMemoryTTL is how long a generated mental map stays fresh.
const SpatialMemoryTTL = 24 * time.Hour

// spatialMemoryLines caps the compressed mental map.
const spatialMemoryLines = 7

// RefreshSpatialMemories regenerates the mental map of every agent whose
// memory is missing or stale. Called on boot and from the admin surface.
// Failures are per-agent and non-fatal; an agent without memory just plans
// less far.
func (m *Manager) RefreshSpatialMemories(ctx context.Context) error {
	agents, err := m.world.Agents().All(ctx)
	if err != nil {
		return fmt.Errorf("list agents: %w", err)
	}
	now := m.now()
	for _, agent := range agents {
		if agent.SpatialMemoryUpdatedAt != nil && now.Sub(*agent.SpatialMemoryUpdatedAt) < SpatialMemoryTTL {
			continue
		}
		if err := m.refreshSpatialMemory(ctx, agent); err != nil {
			slog.Warn("Spatial memory refresh failed", "agent_id", agent.ID, "error", err)
		}
	}
	return nil
}

// RefreshAgentSpatialMemory regenerates one agent's mental map regardless of
// staleness.
func (m *Manager) RefreshAgentSpatialMemory(ctx context.Context, agentID string) error {
	agent, err := m.world.Agents().Get(ctx, agentID)
	if err != nil {
		return fmt.Errorf("load agent %s: %w", agentID, err)
	}
	return m.refreshSpatialMemory(ctx, agent)
}

func (m *Manager) refreshSpatialMemory(ctx context.Context, agent *models.AIAgent) error {
	mapText, err := m.surveyFromHome(ctx, agent)
	if err != nil {
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, m.callTimeout)
	summary, usage, err := m.oracle.SummarizeSpatialMap(callCtx, agent.ID, mapText)
	cancel()
	m.recordUsage(ctx, usage)
	if err != nil {
		return fmt.Errorf("summarize map: %w", err)
	}
	summary = clampLines(summary, spatialMemoryLines)

	now := m.now()
	agent.SpatialMemory = summary
	agent.SpatialMemoryUpdatedAt = &now
	if err := m.world.Agents().Update(ctx, agent); err != nil {
		return fmt.Errorf("persist spatial memory: %w", err)
	}
	slog.Info("Spatial memory refreshed", "agent_id", agent.ID, "lines", strings.Count(summary, "\n")+1)
	return nil
}

// surveyFromHome walks the room graph out to the agent's roaming radius plus
// two hops and renders a structured map the oracle can compress.
func (m *Manager) surveyFromHome(ctx context.Context, agent *models.AIAgent) (string, error) {
	maxHops := agent.MaxRoomsFromHome + 2
	dist := map[string]int{agent.HomeRoomID: 0}
	frontier := []string{agent.HomeRoomID}
	for depth := 1; depth <= maxHops && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			room, err := m.world.Rooms().Get(ctx, id)
			if err != nil {
				continue
			}
			for _, dest := range room.Exits {
				if _, seen := dist[dest]; seen {
					continue
				}
				dist[dest] = depth
				next = append(next, dest)
			}
		}
		frontier = next
	}

	ids := make([]string, 0, len(dist))
	for id := range dist {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if dist[ids[i]] != dist[ids[j]] {
			return dist[ids[i]] < dist[ids[j]]
		}
		return ids[i] < ids[j]
	})

	var b strings.Builder
	for _, id := range ids {
		room, err := m.world.Rooms().Get(ctx, id)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%s (distance %d)\n", room.Name, dist[id])
		for _, dir := range room.SortedExits() {
			destName := room.Exits[dir]
			if dest, err := m.world.Rooms().Get(ctx, room.Exits[dir]); err == nil {
				destName = dest.Name
			}
			fmt.Fprintf(&b, "  %s -> %s\n", dir, destName)
		}
	}
	return b.String(), nil
}

func clampLines(s string, max int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > max {
		lines = lines[:max]
	}
	return strings.Join(lines, "\n")
}
