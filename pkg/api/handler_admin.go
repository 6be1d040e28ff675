package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/elliotbonneville/silt/pkg/engine"
	"github.com/elliotbonneville/silt/pkg/events"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// defaultEventLimit caps GET /admin/events when no limit is given.
const defaultEventLimit = 100

// defaultLogLimit caps GET /admin/characters/:id/logs when no limit is given.
const defaultLogLimit = 200

// --- Response types ---

// MapRoom is one node of the world map with its current occupants.
type MapRoom struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Exits      map[string]string `json:"exits"`
	IsStarting bool              `json:"isStarting"`
	Characters []MapCharacter    `json:"characters"`
	Items      []MapItem         `json:"items"`
}

// MapCharacter is a character entry on the world map.
type MapCharacter struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	HP      int    `json:"hp"`
	MaxHP   int    `json:"maxHp"`
	IsNPC   bool   `json:"isNpc"`
	IsAlive bool   `json:"isAlive"`
}

// MapItem is an item entry on the world map.
type MapItem struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Type models.ItemType `json:"type"`
}

// AdminEvent is one row of GET /admin/events: the wire form plus the computed
// recipient list persisted with the event.
type AdminEvent struct {
	*events.WireEvent
	Recipients []string `json:"recipients,omitempty"`
}

// AgentResponse joins an agent with its character for the admin dashboard.
type AgentResponse struct {
	ID                     string     `json:"id"`
	CharacterID            string     `json:"characterId"`
	Name                   string     `json:"name"`
	RoomID                 string     `json:"roomId"`
	HP                     int        `json:"hp"`
	MaxHP                  int        `json:"maxHp"`
	IsAlive                bool       `json:"isAlive"`
	SystemPrompt           string     `json:"systemPrompt"`
	HomeRoomID             string     `json:"homeRoomId"`
	MaxRoomsFromHome       int        `json:"maxRoomsFromHome"`
	SpatialMemory          string     `json:"spatialMemory,omitempty"`
	SpatialMemoryUpdatedAt *time.Time `json:"spatialMemoryUpdatedAt,omitempty"`
	LastActionAt           time.Time  `json:"lastActionAt"`
}

// CreateAgentRequest is the body of POST /admin/agents: a new NPC plus its
// brain in one call.
type CreateAgentRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	RoomID           string `json:"roomId"`
	SystemPrompt     string `json:"systemPrompt"`
	MaxRoomsFromHome *int   `json:"maxRoomsFromHome"`
	HP               int    `json:"hp"`
	Attack           int    `json:"attack"`
	Defense          int    `json:"defense"`
	Speed            int    `json:"speed"`
}

// UpdateAgentRequest is the body of PUT /admin/agents/:id. Nil fields are
// left unchanged.
type UpdateAgentRequest struct {
	SystemPrompt     *string `json:"systemPrompt"`
	MaxRoomsFromHome *int    `json:"maxRoomsFromHome"`
}

// StatusResponse is the body of GET /admin/status.
type StatusResponse struct {
	engine.Status
	ActiveConnections int `json:"activeConnections"`
	CombatEngagements int `json:"combatEngagements"`
	AgentCount        int `json:"agentCount"`
}

// PlayerLogEntry is one row of GET /admin/characters/:id/logs.
type PlayerLogEntry struct {
	Kind      models.LogKind `json:"kind"`
	Payload   string         `json:"payload"`
	Timestamp time.Time      `json:"timestamp"`
}

// --- Handlers ---

// adminMapHandler handles GET /admin/map: the whole world graph with live
// occupancy.
func (s *Server) adminMapHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	rooms, err := s.world.Rooms().All(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]MapRoom, 0, len(rooms))
	for _, room := range rooms {
		entry := MapRoom{
			ID:         room.ID,
			Name:       room.Name,
			Exits:      room.Exits,
			IsStarting: room.IsStarting,
			Characters: []MapCharacter{},
			Items:      []MapItem{},
		}

		chars, err := s.world.Characters().ListByRoom(ctx, room.ID)
		if err != nil {
			return mapServiceError(err)
		}
		for _, ch := range chars {
			entry.Characters = append(entry.Characters, MapCharacter{
				ID:      ch.ID,
				Name:    ch.Name,
				HP:      ch.HP,
				MaxHP:   ch.MaxHP,
				IsNPC:   ch.IsNPC(),
				IsAlive: ch.IsAlive,
			})
		}

		items, err := s.world.Items().ListByRoom(ctx, room.ID)
		if err != nil {
			return mapServiceError(err)
		}
		for _, item := range items {
			entry.Items = append(entry.Items, MapItem{ID: item.ID, Name: item.Name, Type: item.Type})
		}

		out = append(out, entry)
	}
	return c.JSON(http.StatusOK, out)
}

// adminEventsHandler handles GET /admin/events with room, type, since, and
// limit query filters.
func (s *Server) adminEventsHandler(c *echo.Context) error {
	filter := store.EventFilter{
		RoomID: c.QueryParam("room"),
		Limit:  defaultEventLimit,
	}
	if v := c.QueryParam("type"); v != "" {
		for _, t := range strings.Split(v, ",") {
			filter.Types = append(filter.Types, models.EventType(strings.TrimSpace(t)))
		}
	}
	if v := c.QueryParam("since"); v != "" {
		since, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid since timestamp")
		}
		filter.Since = since
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		filter.Limit = limit
	}

	list, err := s.world.Events().List(c.Request().Context(), filter)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]AdminEvent, 0, len(list))
	for _, e := range list {
		out = append(out, AdminEvent{
			WireEvent:  events.ToWire(e, e.Content),
			Recipients: e.Recipients,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// adminListAgentsHandler handles GET /admin/agents.
func (s *Server) adminListAgentsHandler(c *echo.Context) error {
	agents, err := s.world.Agents().All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]AgentResponse, 0, len(agents))
	for _, agent := range agents {
		resp, err := s.agentResponse(c, agent)
		if err != nil {
			return mapServiceError(err)
		}
		out = append(out, resp)
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) agentResponse(c *echo.Context, agent *models.AIAgent) (AgentResponse, error) {
	character, err := s.world.Characters().Get(c.Request().Context(), agent.CharacterID)
	if err != nil {
		return AgentResponse{}, err
	}
	return AgentResponse{
		ID:                     agent.ID,
		CharacterID:            agent.CharacterID,
		Name:                   character.Name,
		RoomID:                 character.RoomID,
		HP:                     character.HP,
		MaxHP:                  character.MaxHP,
		IsAlive:                character.IsAlive,
		SystemPrompt:           agent.SystemPrompt,
		HomeRoomID:             agent.HomeRoomID,
		MaxRoomsFromHome:       agent.MaxRoomsFromHome,
		SpatialMemory:          agent.SpatialMemory,
		SpatialMemoryUpdatedAt: agent.SpatialMemoryUpdatedAt,
		LastActionAt:           agent.LastActionAt,
	}, nil
}

// adminCreateAgentHandler handles POST /admin/agents: creates the NPC
// character and its agent record, then primes the agent's spatial memory.
func (s *Server) adminCreateAgentHandler(c *echo.Context) error {
	var req CreateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Name) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if strings.TrimSpace(req.SystemPrompt) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "systemPrompt is required")
	}
	maxRooms := 3
	if req.MaxRoomsFromHome != nil {
		maxRooms = *req.MaxRoomsFromHome
	}
	if maxRooms < 0 || maxRooms > 10 {
		return echo.NewHTTPError(http.StatusBadRequest, "maxRoomsFromHome must be between 0 and 10")
	}

	ctx := c.Request().Context()
	if _, err := s.world.Rooms().Get(ctx, req.RoomID); err != nil {
		return mapServiceError(err)
	}

	hp := req.HP
	if hp <= 0 {
		hp = models.DefaultMaxHP
	}
	attack := req.Attack
	if attack <= 0 {
		attack = models.BaseAttack
	}
	defense := req.Defense
	if defense <= 0 {
		defense = models.BaseDefense
	}
	speed := req.Speed
	if speed <= 0 {
		speed = models.DefaultSpeed
	}

	character := &models.Character{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		RoomID:      req.RoomID,
		HP:          hp,
		MaxHP:       hp,
		Attack:      attack,
		Defense:     defense,
		Speed:       speed,
		IsAlive:     true,
		CreatedAt:   time.Now(),
	}
	if err := s.world.Characters().Create(ctx, character); err != nil {
		return mapServiceError(err)
	}

	agent := &models.AIAgent{
		ID:               uuid.NewString(),
		CharacterID:      character.ID,
		SystemPrompt:     req.SystemPrompt,
		HomeRoomID:       req.RoomID,
		MaxRoomsFromHome: maxRooms,
	}
	if err := s.world.Agents().Create(ctx, agent); err != nil {
		return mapServiceError(err)
	}

	if s.agents != nil {
		if err := s.agents.RefreshAgentSpatialMemory(ctx, agent.ID); err != nil {
			// Memory can be regenerated later; creation still succeeded.
			agent.SpatialMemory = ""
		}
	}

	resp, err := s.agentResponse(c, agent)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// adminGetAgentHandler handles GET /admin/agents/:id.
func (s *Server) adminGetAgentHandler(c *echo.Context) error {
	agent, err := s.world.Agents().Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	resp, err := s.agentResponse(c, agent)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// adminUpdateAgentHandler handles PUT /admin/agents/:id.
func (s *Server) adminUpdateAgentHandler(c *echo.Context) error {
	var req UpdateAgentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	agent, err := s.world.Agents().Get(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}

	if req.SystemPrompt != nil {
		if strings.TrimSpace(*req.SystemPrompt) == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "systemPrompt must not be empty")
		}
		agent.SystemPrompt = *req.SystemPrompt
	}
	if req.MaxRoomsFromHome != nil {
		if *req.MaxRoomsFromHome < 0 || *req.MaxRoomsFromHome > 10 {
			return echo.NewHTTPError(http.StatusBadRequest, "maxRoomsFromHome must be between 0 and 10")
		}
		agent.MaxRoomsFromHome = *req.MaxRoomsFromHome
	}

	if err := s.world.Agents().Update(ctx, agent); err != nil {
		return mapServiceError(err)
	}
	resp, err := s.agentResponse(c, agent)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// adminDeleteAgentHandler handles DELETE /admin/agents/:id. The NPC character
// is retired with its brain.
func (s *Server) adminDeleteAgentHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	agent, err := s.world.Agents().Get(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	if err := s.world.Agents().Delete(ctx, agent.ID); err != nil {
		return mapServiceError(err)
	}
	if err := s.world.Characters().Delete(ctx, agent.CharacterID); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// adminRegenerateMemoryHandler handles
// POST /admin/agents/:id/regenerate-spatial-memory.
func (s *Server) adminRegenerateMemoryHandler(c *echo.Context) error {
	if s.agents == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "agent manager not available")
	}
	ctx := c.Request().Context()
	if err := s.agents.RefreshAgentSpatialMemory(ctx, c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	agent, err := s.world.Agents().Get(ctx, c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	resp, err := s.agentResponse(c, agent)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, resp)
}

// adminPauseHandler handles POST /admin/pause.
func (s *Server) adminPauseHandler(c *echo.Context) error {
	if s.engine == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "engine not available")
	}
	if err := s.engine.Pause(c.Request().Context()); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, s.statusResponse())
}

// adminResumeHandler handles POST /admin/resume.
func (s *Server) adminResumeHandler(c *echo.Context) error {
	if s.engine == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "engine not available")
	}
	if err := s.engine.Resume(c.Request().Context()); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, s.statusResponse())
}

// adminStatusHandler handles GET /admin/status.
func (s *Server) adminStatusHandler(c *echo.Context) error {
	resp := s.statusResponse()
	if agents, err := s.world.Agents().All(c.Request().Context()); err == nil {
		resp.AgentCount = len(agents)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) statusResponse() StatusResponse {
	resp := StatusResponse{}
	if s.engine != nil {
		resp.Status = s.engine.Status()
	}
	if s.connManager != nil {
		resp.ActiveConnections = s.connManager.ActiveConnections()
	}
	if s.combat != nil {
		resp.CombatEngagements = s.combat.Engagements()
	}
	return resp
}

// adminTokenUsageHandler handles GET /admin/token-usage.
func (s *Server) adminTokenUsageHandler(c *echo.Context) error {
	totals, err := s.world.TokenUsage().Totals(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, totals)
}

// adminPlayerLogsHandler handles GET /admin/characters/:id/logs.
func (s *Server) adminPlayerLogsHandler(c *echo.Context) error {
	if s.playerLogs == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "player logs not available")
	}

	limit := defaultLogLimit
	if v := c.QueryParam("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	logs, err := s.playerLogs.ListByCharacter(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]PlayerLogEntry, 0, len(logs))
	for _, entry := range logs {
		out = append(out, PlayerLogEntry{
			Kind:      entry.Kind,
			Payload:   entry.Payload,
			Timestamp: entry.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, out)
}
