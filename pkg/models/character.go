// Package models defines the domain types shared across the simulation core.
// Repositories convert between these and their persisted form at the store
// boundary; nothing in here touches the database.
package models

import "time"

// Base combat stats before equipment contributions.
const (
	BaseAttack  = 10
	BaseDefense = 5
)

// Defaults for freshly created player characters.
const (
	DefaultMaxHP = 100
	DefaultSpeed = 100
)

// Character is any actor in the world — a player's character when AccountID is
// set, an NPC otherwise.
type Character struct {
	ID           string
	Name         string
	Description  string
	AccountID    string // empty ⇒ NPC
	RoomID       string
	SpawnPointID string
	HP           int
	MaxHP        int
	Attack       int
	Defense      int
	Speed        int
	IsAlive      bool
	IsDead       bool
	DiedAt       *time.Time
	LastActionAt time.Time
	CreatedAt    time.Time
}

// IsNPC reports whether the character is AI-controlled.
func (c *Character) IsNPC() bool {
	return c.AccountID == ""
}

// HealthDescription buckets hp/max-hp into the narrative health words used by
// examine and character detail views.
func (c *Character) HealthDescription() string {
	if c.IsDead || c.HP <= 0 {
		return "dead"
	}
	if c.MaxHP <= 0 {
		return "perfect"
	}
	ratio := float64(c.HP) / float64(c.MaxHP)
	switch {
	case ratio >= 1.0:
		return "perfect"
	case ratio >= 0.8:
		return "slightly scratched"
	case ratio >= 0.5:
		return "wounded"
	case ratio >= 0.25:
		return "badly wounded"
	default:
		return "near death"
	}
}

// Kill marks the character dead at the given time. HP clamping is the caller's
// responsibility; invariants hp==0 and is_alive==!is_dead hold afterwards.
func (c *Character) Kill(at time.Time) {
	c.HP = 0
	c.IsAlive = false
	c.IsDead = true
	t := at
	c.DiedAt = &t
}
