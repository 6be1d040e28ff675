package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// WorldSeed is the YAML shape of a world file.
type WorldSeed struct {
	Rooms []SeedRoom `yaml:"rooms"`
	Items []SeedItem `yaml:"items"`
	NPCs  []SeedNPC  `yaml:"npcs"`
}

// SeedRoom declares one room of the world graph.
type SeedRoom struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Exits       map[string]string `yaml:"exits"`
	Starting    bool              `yaml:"starting"`
}

// SeedItem declares one item placed in a room.
type SeedItem struct {
	ID          string           `yaml:"id"`
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Type        string           `yaml:"type"`
	Room        string           `yaml:"room"`
	Stats       models.ItemStats `yaml:"stats"`
}

// SeedNPC declares one NPC, optionally with an AI agent brain.
type SeedNPC struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Room        string     `yaml:"room"`
	HP          int        `yaml:"hp"`
	Attack      int        `yaml:"attack"`
	Defense     int        `yaml:"defense"`
	Speed       int        `yaml:"speed"`
	Agent       *SeedAgent `yaml:"agent"`
}

// SeedAgent declares the brain attached to a seeded NPC.
type SeedAgent struct {
	SystemPrompt     string `yaml:"systemPrompt"`
	MaxRoomsFromHome *int   `yaml:"maxRoomsFromHome"`
}

// LoadWorldSeed parses and validates a world file.
func LoadWorldSeed(path string) (*WorldSeed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}

	var seed WorldSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse world file: %w", err)
	}
	if err := seed.validate(); err != nil {
		return nil, fmt.Errorf("world file %s: %w", path, err)
	}
	return &seed, nil
}

func (s *WorldSeed) validate() error {
	if len(s.Rooms) == 0 {
		return fmt.Errorf("no rooms declared")
	}

	roomIDs := make(map[string]bool, len(s.Rooms))
	starting := 0
	for _, room := range s.Rooms {
		if room.ID == "" || room.Name == "" {
			return fmt.Errorf("room %q: id and name are required", room.ID)
		}
		if roomIDs[room.ID] {
			return fmt.Errorf("duplicate room id %q", room.ID)
		}
		roomIDs[room.ID] = true
		if room.Starting {
			starting++
		}
	}
	if starting != 1 {
		return fmt.Errorf("exactly one room must be marked starting, found %d", starting)
	}

	for _, room := range s.Rooms {
		for dir, dest := range room.Exits {
			if !roomIDs[dest] {
				return fmt.Errorf("room %q: exit %q leads to unknown room %q", room.ID, dir, dest)
			}
		}
	}

	for _, item := range s.Items {
		if item.ID == "" || item.Name == "" {
			return fmt.Errorf("item %q: id and name are required", item.ID)
		}
		if !roomIDs[item.Room] {
			return fmt.Errorf("item %q: unknown room %q", item.ID, item.Room)
		}
		switch models.ItemType(item.Type) {
		case models.ItemTypeWeapon, models.ItemTypeArmor, models.ItemTypeConsumable,
			models.ItemTypeSpawnPoint, models.ItemTypeMisc:
		default:
			return fmt.Errorf("item %q: unknown type %q", item.ID, item.Type)
		}
	}

	for _, npc := range s.NPCs {
		if npc.ID == "" || npc.Name == "" {
			return fmt.Errorf("npc %q: id and name are required", npc.ID)
		}
		if !roomIDs[npc.Room] {
			return fmt.Errorf("npc %q: unknown room %q", npc.ID, npc.Room)
		}
		if npc.Agent != nil && npc.Agent.SystemPrompt == "" {
			return fmt.Errorf("npc %q: agent requires a systemPrompt", npc.ID)
		}
		if npc.Agent != nil && npc.Agent.MaxRoomsFromHome != nil {
			if v := *npc.Agent.MaxRoomsFromHome; v < 0 || v > 10 {
				return fmt.Errorf("npc %q: maxRoomsFromHome %d out of range", npc.ID, v)
			}
		}
	}
	return nil
}

// SeedWorld populates an empty world from the seed. A world that already has
// rooms is left untouched, so restarting against a live database is safe.
func SeedWorld(ctx context.Context, world store.World, seed *WorldSeed) error {
	existing, err := world.Rooms().All(ctx)
	if err != nil {
		return fmt.Errorf("check existing world: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("World already seeded, skipping", "rooms", len(existing))
		return nil
	}

	for _, room := range seed.Rooms {
		exits := room.Exits
		if exits == nil {
			exits = map[string]string{}
		}
		err := world.Rooms().Create(ctx, &models.Room{
			ID:          room.ID,
			Name:        room.Name,
			Description: room.Description,
			Exits:       exits,
			IsStarting:  room.Starting,
		})
		if err != nil {
			return fmt.Errorf("seed room %s: %w", room.ID, err)
		}
	}

	for _, item := range seed.Items {
		err := world.Items().Create(ctx, &models.Item{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Type:        models.ItemType(item.Type),
			Stats:       item.Stats,
			RoomID:      item.Room,
		})
		if err != nil {
			return fmt.Errorf("seed item %s: %w", item.ID, err)
		}
	}

	for _, npc := range seed.NPCs {
		hp := npc.HP
		if hp <= 0 {
			hp = models.DefaultMaxHP
		}
		attack := npc.Attack
		if attack <= 0 {
			attack = models.BaseAttack
		}
		defense := npc.Defense
		if defense <= 0 {
			defense = models.BaseDefense
		}
		speed := npc.Speed
		if speed <= 0 {
			speed = models.DefaultSpeed
		}

		character := &models.Character{
			ID:          npc.ID,
			Name:        npc.Name,
			Description: npc.Description,
			RoomID:      npc.Room,
			HP:          hp,
			MaxHP:       hp,
			Attack:      attack,
			Defense:     defense,
			Speed:       speed,
			IsAlive:     true,
			CreatedAt:   time.Now(),
		}
		if err := world.Characters().Create(ctx, character); err != nil {
			return fmt.Errorf("seed npc %s: %w", npc.ID, err)
		}

		if npc.Agent == nil {
			continue
		}
		maxRooms := 3
		if npc.Agent.MaxRoomsFromHome != nil {
			maxRooms = *npc.Agent.MaxRoomsFromHome
		}
		agent := &models.AIAgent{
			ID:               uuid.NewString(),
			CharacterID:      npc.ID,
			SystemPrompt:     npc.Agent.SystemPrompt,
			HomeRoomID:       npc.Room,
			MaxRoomsFromHome: maxRooms,
		}
		if err := world.Agents().Create(ctx, agent); err != nil {
			return fmt.Errorf("seed agent for npc %s: %w", npc.ID, err)
		}
	}

	slog.Info("World seeded",
		"rooms", len(seed.Rooms), "items", len(seed.Items), "npcs", len(seed.NPCs))
	return nil
}
