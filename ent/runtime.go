// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/elliotbonneville/silt/ent/account"
	"github.com/elliotbonneville/silt/ent/aiagent"
	"github.com/elliotbonneville/silt/ent/character"
	"github.com/elliotbonneville/silt/ent/gameevent"
	"github.com/elliotbonneville/silt/ent/gamestate"
	"github.com/elliotbonneville/silt/ent/item"
	"github.com/elliotbonneville/silt/ent/playerlog"
	"github.com/elliotbonneville/silt/ent/room"
	"github.com/elliotbonneville/silt/ent/schema"
	"github.com/elliotbonneville/silt/ent/tokenusagelog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	aiagentFields := schema.AIAgent{}.Fields()
	_ = aiagentFields
	// aiagentDescMaxRoomsFromHome is the schema descriptor for max_rooms_from_home field.
	aiagentDescMaxRoomsFromHome := aiagentFields[4].Descriptor()
	// aiagent.DefaultMaxRoomsFromHome holds the default value on creation for the max_rooms_from_home field.
	aiagent.DefaultMaxRoomsFromHome = aiagentDescMaxRoomsFromHome.Default.(int)
	// aiagent.MaxRoomsFromHomeValidator is a validator for the "max_rooms_from_home" field. It is called by the builders before save.
	aiagent.MaxRoomsFromHomeValidator = func() func(int) error {
		validators := aiagentDescMaxRoomsFromHome.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(max_rooms_from_home int) error {
			for _, fn := range fns {
				if err := fn(max_rooms_from_home); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[3].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	characterFields := schema.Character{}.Fields()
	_ = characterFields
	// characterDescIsAlive is the schema descriptor for is_alive field.
	characterDescIsAlive := characterFields[11].Descriptor()
	// character.DefaultIsAlive holds the default value on creation for the is_alive field.
	character.DefaultIsAlive = characterDescIsAlive.Default.(bool)
	// characterDescIsDead is the schema descriptor for is_dead field.
	characterDescIsDead := characterFields[12].Descriptor()
	// character.DefaultIsDead holds the default value on creation for the is_dead field.
	character.DefaultIsDead = characterDescIsDead.Default.(bool)
	// characterDescCreatedAt is the schema descriptor for created_at field.
	characterDescCreatedAt := characterFields[15].Descriptor()
	// character.DefaultCreatedAt holds the default value on creation for the created_at field.
	character.DefaultCreatedAt = characterDescCreatedAt.Default.(func() time.Time)
	gameeventFields := schema.GameEvent{}.Fields()
	_ = gameeventFields
	// gameeventDescTimestamp is the schema descriptor for timestamp field.
	gameeventDescTimestamp := gameeventFields[2].Descriptor()
	// gameevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gameevent.DefaultTimestamp = gameeventDescTimestamp.Default.(func() time.Time)
	gamestateFields := schema.GameState{}.Fields()
	_ = gamestateFields
	// gamestateDescIsPaused is the schema descriptor for is_paused field.
	gamestateDescIsPaused := gamestateFields[1].Descriptor()
	// gamestate.DefaultIsPaused holds the default value on creation for the is_paused field.
	gamestate.DefaultIsPaused = gamestateDescIsPaused.Default.(bool)
	// gamestateDescGameTime is the schema descriptor for game_time field.
	gamestateDescGameTime := gamestateFields[2].Descriptor()
	// gamestate.DefaultGameTime holds the default value on creation for the game_time field.
	gamestate.DefaultGameTime = gamestateDescGameTime.Default.(float64)
	itemFields := schema.Item{}.Fields()
	_ = itemFields
	// itemDescIsEquipped is the schema descriptor for is_equipped field.
	itemDescIsEquipped := itemFields[7].Descriptor()
	// item.DefaultIsEquipped holds the default value on creation for the is_equipped field.
	item.DefaultIsEquipped = itemDescIsEquipped.Default.(bool)
	playerlogFields := schema.PlayerLog{}.Fields()
	_ = playerlogFields
	// playerlogDescTimestamp is the schema descriptor for timestamp field.
	playerlogDescTimestamp := playerlogFields[3].Descriptor()
	// playerlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	playerlog.DefaultTimestamp = playerlogDescTimestamp.Default.(func() time.Time)
	roomFields := schema.Room{}.Fields()
	_ = roomFields
	// roomDescIsStarting is the schema descriptor for is_starting field.
	roomDescIsStarting := roomFields[4].Descriptor()
	// room.DefaultIsStarting holds the default value on creation for the is_starting field.
	room.DefaultIsStarting = roomDescIsStarting.Default.(bool)
	tokenusagelogFields := schema.TokenUsageLog{}.Fields()
	_ = tokenusagelogFields
	// tokenusagelogDescCost is the schema descriptor for cost field.
	tokenusagelogDescCost := tokenusagelogFields[6].Descriptor()
	// tokenusagelog.DefaultCost holds the default value on creation for the cost field.
	tokenusagelog.DefaultCost = tokenusagelogDescCost.Default.(float64)
	// tokenusagelogDescCreatedAt is the schema descriptor for created_at field.
	tokenusagelogDescCreatedAt := tokenusagelogFields[10].Descriptor()
	// tokenusagelog.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenusagelog.DefaultCreatedAt = tokenusagelogDescCreatedAt.Default.(func() time.Time)
}
