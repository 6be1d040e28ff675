package services

import (
	"context"
	"fmt"

	"github.com/elliotbonneville/silt/ent"
	"github.com/elliotbonneville/silt/ent/room"
	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// RoomService manages the room graph.
type RoomService struct {
	client *ent.Client
}

// NewRoomService creates a new RoomService.
func NewRoomService(client *ent.Client) *RoomService {
	return &RoomService{client: client}
}

// Get retrieves a room by id.
func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	row, err := s.client.Room.Get(ctx, id)
	if err != nil {
		return nil, wrapNotFound(err, "room", id)
	}
	return roomToModel(row), nil
}

// All lists every room.
func (s *RoomService) All(ctx context.Context) ([]*models.Room, error) {
	rows, err := s.client.Room.Query().Order(ent.Asc(room.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	rooms := make([]*models.Room, 0, len(rows))
	for _, row := range rows {
		rooms = append(rooms, roomToModel(row))
	}
	return rooms, nil
}

// Starting returns the room new characters spawn in.
func (s *RoomService) Starting(ctx context.Context) (*models.Room, error) {
	row, err := s.client.Room.Query().
		Where(room.IsStarting(true)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("starting room: %w", store.ErrNotFound)
		}
		return nil, fmt.Errorf("get starting room: %w", err)
	}
	return roomToModel(row), nil
}

// Create inserts a room. Used by the world seeder and admin tooling.
func (s *RoomService) Create(ctx context.Context, r *models.Room) error {
	_, err := s.client.Room.Create().
		SetID(r.ID).
		SetName(r.Name).
		SetDescription(r.Description).
		SetExits(r.Exits).
		SetIsStarting(r.IsStarting).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create room %s: %w", r.ID, err)
	}
	return nil
}

// Update rewrites a room.
func (s *RoomService) Update(ctx context.Context, r *models.Room) error {
	err := s.client.Room.UpdateOneID(r.ID).
		SetName(r.Name).
		SetDescription(r.Description).
		SetExits(r.Exits).
		SetIsStarting(r.IsStarting).
		Exec(ctx)
	if err != nil {
		return wrapNotFound(err, "room", r.ID)
	}
	return nil
}

func roomToModel(row *ent.Room) *models.Room {
	return &models.Room{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Exits:       row.Exits,
		IsStarting:  row.IsStarting,
	}
}
