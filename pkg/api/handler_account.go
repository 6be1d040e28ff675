package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	echo "github.com/labstack/echo/v5"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/services"
	"github.com/elliotbonneville/silt/pkg/store"
)

// CreateCharacterRequest is the body of POST /api/accounts/:username/characters.
type CreateCharacterRequest struct {
	Name string `json:"name"`
}

// CharacterDetailResponse is the body of GET /api/characters/:id.
type CharacterDetailResponse struct {
	CharacterSummary
	Description string    `json:"description,omitempty"`
	Attack      int       `json:"attack"`
	Defense     int       `json:"defense"`
	Speed       int       `json:"speed"`
	CreatedAt   time.Time `json:"createdAt"`
}

// newCharacter validates the name and creates a fresh character in the
// starting room with base stats. Shared by the REST handler and the socket
// character:create flow.
func newCharacter(ctx context.Context, world store.World, accountID, name string) (*models.Character, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, services.NewValidationError("name", "must not be empty")
	}
	if len(trimmed) > maxCharacterName {
		return nil, services.NewValidationError("name", "must be at most 32 characters")
	}

	start, err := world.Rooms().Starting(ctx)
	if err != nil {
		return nil, err
	}

	character := &models.Character{
		ID:        uuid.NewString(),
		Name:      trimmed,
		AccountID: accountID,
		RoomID:    start.ID,
		HP:        models.DefaultMaxHP,
		MaxHP:     models.DefaultMaxHP,
		Attack:    models.BaseAttack,
		Defense:   models.BaseDefense,
		Speed:     models.DefaultSpeed,
		IsAlive:   true,
		CreatedAt: time.Now(),
	}
	if items, err := world.Items().ListByRoom(ctx, start.ID); err == nil {
		for _, item := range items {
			if item.Type == models.ItemTypeSpawnPoint {
				character.SpawnPointID = item.ID
				break
			}
		}
	}

	if err := world.Characters().Create(ctx, character); err != nil {
		return nil, err
	}
	return character, nil
}

// listCharactersHandler handles GET /api/accounts/:username/characters.
func (s *Server) listCharactersHandler(c *echo.Context) error {
	account, err := s.world.Accounts().GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapServiceError(err)
	}

	chars, err := s.world.Characters().ListByAccount(c.Request().Context(), account.ID)
	if err != nil {
		return mapServiceError(err)
	}

	summaries := make([]CharacterSummary, 0, len(chars))
	for _, ch := range chars {
		summaries = append(summaries, summarize(ch))
	}
	return c.JSON(http.StatusOK, summaries)
}

// createCharacterHandler handles POST /api/accounts/:username/characters.
func (s *Server) createCharacterHandler(c *echo.Context) error {
	account, err := s.world.Accounts().GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapServiceError(err)
	}

	var req CreateCharacterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	character, err := newCharacter(c.Request().Context(), s.world, account.ID, req.Name)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, summarize(character))
}

// getCharacterHandler handles GET /api/characters/:id.
func (s *Server) getCharacterHandler(c *echo.Context) error {
	character, err := s.world.Characters().Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, CharacterDetailResponse{
		CharacterSummary: summarize(character),
		Description:      character.Description,
		Attack:           character.Attack,
		Defense:          character.Defense,
		Speed:            character.Speed,
		CreatedAt:        character.CreatedAt,
	})
}

// deleteCharacterHandler handles DELETE /api/characters/:id. Historical events
// keep referencing the retired id.
func (s *Server) deleteCharacterHandler(c *echo.Context) error {
	id := c.Param("id")
	if _, err := s.world.Characters().Get(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	if err := s.world.Characters().Delete(c.Request().Context(), id); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// getPreferencesHandler handles GET /api/accounts/:username/preferences.
func (s *Server) getPreferencesHandler(c *echo.Context) error {
	account, err := s.world.Accounts().GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return mapServiceError(err)
	}
	prefs := account.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return c.JSON(http.StatusOK, prefs)
}

// updatePreferencesHandler handles PATCH /api/accounts/:username/preferences.
// The patch deep-merges into the stored document; the merged result is
// returned.
func (s *Server) updatePreferencesHandler(c *echo.Context) error {
	username := c.Param("username")

	var patch map[string]any
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := s.world.Accounts().UpdatePreferences(c.Request().Context(), username, patch); err != nil {
		return mapServiceError(err)
	}

	account, err := s.world.Accounts().GetByUsername(c.Request().Context(), username)
	if err != nil {
		return mapServiceError(err)
	}
	prefs := account.Preferences
	if prefs == nil {
		prefs = map[string]any{}
	}
	return c.JSON(http.StatusOK, prefs)
}
