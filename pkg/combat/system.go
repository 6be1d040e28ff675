// Package combat runs the gauge-based melee loop. Each combatant carries a
// gauge that fills by their speed every tick; at 100 the gauge pays for one
// swing. All state lives in memory and is rebuilt empty on restart — combat
// does not survive a server bounce.
package combat

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/elliotbonneville/silt/pkg/models"
	"github.com/elliotbonneville/silt/pkg/store"
)

// SwingCost is the gauge charge consumed by one attack.
const SwingCost = 100

type entry struct {
	targetID string
	gauge    int
}

// System owns the combat table. It is driven exclusively from the simulation
// goroutine: no internal locking.
type System struct {
	world   store.World
	now     func() time.Time
	entries map[string]*entry // attacker id → entry
}

// NewSystem creates an empty combat table over the given world.
func NewSystem(world store.World) *System {
	return &System{
		world:   world,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
}

// Start registers attacker → target. Starting a new fight replaces the
// attacker's previous target but keeps the accumulated gauge, so target
// switching is not a free gauge reset.
func (s *System) Start(attackerID, targetID string) {
	if e, ok := s.entries[attackerID]; ok {
		e.targetID = targetID
		return
	}
	s.entries[attackerID] = &entry{targetID: targetID}
}

// Stop removes the attacker's own entry. Anyone attacking them keeps swinging.
func (s *System) Stop(attackerID string) bool {
	_, ok := s.entries[attackerID]
	delete(s.entries, attackerID)
	return ok
}

// Disengage removes every entry involving the character, in both directions.
// Used on death, flee, and disconnect-despawn.
func (s *System) Disengage(characterID string) {
	delete(s.entries, characterID)
	for attacker, e := range s.entries {
		if e.targetID == characterID {
			delete(s.entries, attacker)
		}
	}
}

// Engagements reports the number of active attacker entries. Advisory only:
// read by the admin status endpoint off the simulation goroutine.
func (s *System) Engagements() int {
	return len(s.entries)
}

// InCombat reports whether the character is attacking anyone.
func (s *System) InCombat(characterID string) bool {
	_, ok := s.entries[characterID]
	return ok
}

// Target returns who the character is attacking.
func (s *System) Target(characterID string) (string, bool) {
	e, ok := s.entries[characterID]
	if !ok {
		return "", false
	}
	return e.targetID, true
}

// Attackers returns everyone currently targeting the character.
func (s *System) Attackers(characterID string) []string {
	var out []string
	for attacker, e := range s.entries {
		if e.targetID == characterID {
			out = append(out, attacker)
		}
	}
	sort.Strings(out)
	return out
}

// TickResult is what one combat tick produced.
type TickResult struct {
	Events []*models.GameEvent
	Deaths []string // character ids killed this tick
}

// Tick advances every gauge and resolves at most one swing per combatant.
// Entries referencing missing, dead, or separated combatants are dropped.
func (s *System) Tick(ctx context.Context) (*TickResult, error) {
	res := &TickResult{}

	attackers := make([]string, 0, len(s.entries))
	for id := range s.entries {
		attackers = append(attackers, id)
	}
	sort.Strings(attackers)

	for _, attackerID := range attackers {
		e, ok := s.entries[attackerID]
		if !ok {
			// removed mid-tick by an earlier death
			continue
		}

		attacker, err := s.world.Characters().Get(ctx, attackerID)
		if err != nil || !attacker.IsAlive {
			delete(s.entries, attackerID)
			continue
		}
		target, err := s.world.Characters().Get(ctx, e.targetID)
		if err != nil || !target.IsAlive || target.RoomID != attacker.RoomID {
			delete(s.entries, attackerID)
			continue
		}

		e.gauge += attacker.Speed
		if e.gauge < SwingCost {
			continue
		}
		e.gauge -= SwingCost

		if err := s.resolveSwing(ctx, attacker, target, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (s *System) resolveSwing(ctx context.Context, attacker, target *models.Character, res *TickResult) error {
	damage := attacker.Attack - target.Defense
	if damage < 1 {
		damage = 1
	}
	target.HP -= damage
	if target.HP < 0 {
		target.HP = 0
	}

	now := s.now()
	res.Events = append(res.Events, &models.GameEvent{
		ID:           uuid.NewString(),
		Type:         models.EventCombatHit,
		Timestamp:    now,
		OriginRoomID: target.RoomID,
		Visibility:   models.VisibilityRoom,
		Payload: &models.CombatHitPayload{
			AttackerID:   attacker.ID,
			AttackerName: attacker.Name,
			TargetID:     target.ID,
			TargetName:   target.Name,
			Damage:       damage,
			TargetHP:     target.HP,
			TargetMaxHP:  target.MaxHP,
		},
		RelatedEntities: []string{attacker.ID, target.ID},
	})

	if target.HP > 0 {
		if err := s.world.Characters().Update(ctx, target); err != nil {
			return fmt.Errorf("persist hit on %s: %w", target.ID, err)
		}
		return nil
	}
	return s.kill(ctx, attacker, target, res)
}

// kill finalises a death: flag the victim, drop their inventory, leave a
// corpse describing the spill, tear down their combat entries, and emit the
// death event.
func (s *System) kill(ctx context.Context, killer, victim *models.Character, res *TickResult) error {
	now := s.now()
	victim.Kill(now)
	if err := s.world.Characters().Update(ctx, victim); err != nil {
		return fmt.Errorf("persist death of %s: %w", victim.ID, err)
	}

	dropped, err := s.dropInventory(ctx, victim)
	if err != nil {
		return err
	}
	if err := s.leaveCorpse(ctx, victim, dropped); err != nil {
		return err
	}

	s.Disengage(victim.ID)

	res.Events = append(res.Events, &models.GameEvent{
		ID:           uuid.NewString(),
		Type:         models.EventDeath,
		Timestamp:    now,
		OriginRoomID: victim.RoomID,
		Visibility:   models.VisibilityRoom,
		Payload: &models.DeathPayload{
			VictimID:   victim.ID,
			VictimName: victim.Name,
			KillerID:   killer.ID,
			KillerName: killer.Name,
		},
		RelatedEntities: []string{killer.ID, victim.ID},
	})
	res.Deaths = append(res.Deaths, victim.ID)

	slog.Info("Character died",
		"victim", victim.Name,
		"victim_id", victim.ID,
		"killer", killer.Name,
		"room_id", victim.RoomID)
	return nil
}

func (s *System) dropInventory(ctx context.Context, victim *models.Character) ([]*models.Item, error) {
	items, err := s.world.Items().ListByCharacter(ctx, victim.ID)
	if err != nil {
		return nil, fmt.Errorf("list inventory of %s: %w", victim.ID, err)
	}
	for _, item := range items {
		item.CharacterID = ""
		item.RoomID = victim.RoomID
		item.IsEquipped = false
		if err := s.world.Items().Update(ctx, item); err != nil {
			return nil, fmt.Errorf("drop %s from corpse: %w", item.ID, err)
		}
	}
	return items, nil
}

func (s *System) leaveCorpse(ctx context.Context, victim *models.Character, dropped []*models.Item) error {
	desc := fmt.Sprintf("The lifeless body of %s.", victim.Name)
	if len(dropped) > 0 {
		names := make([]string, len(dropped))
		for i, item := range dropped {
			names[i] = item.Name
		}
		desc = fmt.Sprintf("%s Scattered around it: %s.", desc, strings.Join(names, ", "))
	}
	corpse := &models.Item{
		ID:          uuid.NewString(),
		Name:        victim.Name + "'s corpse",
		Description: desc,
		Type:        models.ItemTypeMisc,
		RoomID:      victim.RoomID,
	}
	if err := s.world.Items().Create(ctx, corpse); err != nil {
		return fmt.Errorf("create corpse for %s: %w", victim.ID, err)
	}
	return nil
}
