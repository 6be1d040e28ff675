package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/elliotbonneville/silt/pkg/ai"
	"github.com/elliotbonneville/silt/pkg/combat"
	"github.com/elliotbonneville/silt/pkg/database"
	"github.com/elliotbonneville/silt/pkg/engine"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// PlayerLogReader exposes the per-character narrative trace to the admin
// surface. Implemented by services.PlayerLogService.
type PlayerLogReader interface {
	ListByCharacter(ctx context.Context, characterID string, limit int) ([]*models.PlayerLog, error)
}

// Server is the HTTP and WebSocket front of the game.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	world       store.World
	dbClient    *database.Client
	engine      *engine.Engine
	agents      *ai.Manager
	combat      *combat.System
	connManager *ConnectionManager
	playerLogs  PlayerLogReader

	clientURL string
}

// NewServer wires the server over the running simulation.
func NewServer(world store.World, dbClient *database.Client, eng *engine.Engine, agents *ai.Manager, combatSys *combat.System, connManager *ConnectionManager) *Server {
	e := echo.New()

	s := &Server{
		echo:        e,
		world:       world,
		dbClient:    dbClient,
		engine:      eng,
		agents:      agents,
		combat:      combatSys,
		connManager: connManager,
	}
	s.registerRoutes()
	return s
}

// SetPlayerLogReader attaches the player log trace for the admin surface.
func (s *Server) SetPlayerLogReader(r PlayerLogReader) {
	s.playerLogs = r
}

// SetClientURL restricts CORS to the given origin. Empty allows any origin
// (development).
func (s *Server) SetClientURL(url string) {
	s.clientURL = url
}

func (s *Server) registerRoutes() {
	s.echo.Use(securityHeaders())
	s.echo.Use(s.cors())

	s.echo.GET("/health", s.healthHandler)
	s.echo.GET("/ws", s.wsHandler)

	s.echo.GET("/api/accounts/:username/characters", s.listCharactersHandler)
	s.echo.POST("/api/accounts/:username/characters", s.createCharacterHandler)
	s.echo.GET("/api/characters/:id", s.getCharacterHandler)
	s.echo.DELETE("/api/characters/:id", s.deleteCharacterHandler)
	s.echo.GET("/api/accounts/:username/preferences", s.getPreferencesHandler)
	s.echo.PATCH("/api/accounts/:username/preferences", s.updatePreferencesHandler)

	s.echo.GET("/admin/map", s.adminMapHandler)
	s.echo.GET("/admin/events", s.adminEventsHandler)
	s.echo.GET("/admin/agents", s.adminListAgentsHandler)
	s.echo.POST("/admin/agents", s.adminCreateAgentHandler)
	s.echo.GET("/admin/agents/:id", s.adminGetAgentHandler)
	s.echo.PUT("/admin/agents/:id", s.adminUpdateAgentHandler)
	s.echo.DELETE("/admin/agents/:id", s.adminDeleteAgentHandler)
	s.echo.POST("/admin/agents/:id/regenerate-spatial-memory", s.adminRegenerateMemoryHandler)
	s.echo.POST("/admin/pause", s.adminPauseHandler)
	s.echo.POST("/admin/resume", s.adminResumeHandler)
	s.echo.GET("/admin/status", s.adminStatusHandler)
	s.echo.GET("/admin/token-usage", s.adminTokenUsageHandler)
	s.echo.GET("/admin/characters/:id/logs", s.adminPlayerLogsHandler)
}

// Start runs the HTTP server. Blocks until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// securityHeaders sets standard security response headers.
func securityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			return next(c)
		}
	}
}

// cors allows the configured client origin, or any origin when none is set.
func (s *Server) cors() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			origin := s.clientURL
			if origin == "" {
				origin = "*"
			}
			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
