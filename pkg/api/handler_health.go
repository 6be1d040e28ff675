package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/elliotbonneville/silt/pkg/database"
	"github.com/elliotbonneville/silt/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Error    string                 `json:"error,omitempty"`
}

// healthHandler handles GET /health. Only the database is checked; the LLM
// provider is deliberately excluded so an oracle outage cannot get the server
// restarted out from under connected players.
func (s *Server) healthHandler(c *echo.Context) error {
	if s.dbClient == nil {
		return c.JSON(http.StatusOK, &HealthResponse{
			Status:  healthStatusHealthy,
			Version: version.Full(),
		})
	}

	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(reqCtx, s.dbClient.DB())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status:   healthStatusUnhealthy,
			Version:  version.Full(),
			Database: dbHealth,
			Error:    err.Error(),
		})
	}

	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   healthStatusHealthy,
		Version:  version.Full(),
		Database: dbHealth,
	})
}
