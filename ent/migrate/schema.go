// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AiAgentsColumns holds the columns for the "ai_agents" table.
	AiAgentsColumns = []*schema.Column{
		{Name: "agent_id", Type: field.TypeString, Unique: true},
		{Name: "character_id", Type: field.TypeString, Unique: true},
		{Name: "system_prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "home_room_id", Type: field.TypeString},
		{Name: "max_rooms_from_home", Type: field.TypeInt, Default: 3},
		{Name: "spatial_memory", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "spatial_memory_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "relationships", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation", Type: field.TypeJSON, Nullable: true},
		{Name: "last_action_at", Type: field.TypeTime, Nullable: true},
	}
	// AiAgentsTable holds the schema information for the "ai_agents" table.
	AiAgentsTable = &schema.Table{
		Name:       "ai_agents",
		Columns:    AiAgentsColumns,
		PrimaryKey: []*schema.Column{AiAgentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "aiagent_character_id",
				Unique:  false,
				Columns: []*schema.Column{AiAgentsColumns[1]},
			},
		},
	}
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "account_id", Type: field.TypeString, Unique: true},
		{Name: "username", Type: field.TypeString, Unique: true},
		{Name: "preferences", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "account_username",
				Unique:  false,
				Columns: []*schema.Column{AccountsColumns[1]},
			},
		},
	}
	// CharactersColumns holds the columns for the "characters" table.
	CharactersColumns = []*schema.Column{
		{Name: "character_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "account_id", Type: field.TypeString, Nullable: true},
		{Name: "room_id", Type: field.TypeString},
		{Name: "spawn_point_id", Type: field.TypeString, Nullable: true},
		{Name: "hp", Type: field.TypeInt},
		{Name: "max_hp", Type: field.TypeInt},
		{Name: "attack", Type: field.TypeInt},
		{Name: "defense", Type: field.TypeInt},
		{Name: "speed", Type: field.TypeInt},
		{Name: "is_alive", Type: field.TypeBool, Default: true},
		{Name: "is_dead", Type: field.TypeBool, Default: false},
		{Name: "died_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_action_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CharactersTable holds the schema information for the "characters" table.
	CharactersTable = &schema.Table{
		Name:       "characters",
		Columns:    CharactersColumns,
		PrimaryKey: []*schema.Column{CharactersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "character_room_id",
				Unique:  false,
				Columns: []*schema.Column{CharactersColumns[4]},
			},
			{
				Name:    "character_account_id",
				Unique:  false,
				Columns: []*schema.Column{CharactersColumns[3]},
			},
			{
				Name:    "character_room_id_is_alive",
				Unique:  false,
				Columns: []*schema.Column{CharactersColumns[4], CharactersColumns[11]},
			},
		},
	}
	// GameEventsColumns holds the columns for the "game_events" table.
	GameEventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "origin_room_id", Type: field.TypeString, Nullable: true},
		{Name: "visibility", Type: field.TypeEnum, Enums: []string{"room", "private", "global", "admin"}, Default: "room"},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "recipients", Type: field.TypeJSON, Nullable: true},
		{Name: "related_entities", Type: field.TypeJSON, Nullable: true},
	}
	// GameEventsTable holds the schema information for the "game_events" table.
	GameEventsTable = &schema.Table{
		Name:       "game_events",
		Columns:    GameEventsColumns,
		PrimaryKey: []*schema.Column{GameEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "gameevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[2]},
			},
			{
				Name:    "gameevent_origin_room_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[3], GameEventsColumns[2]},
			},
			{
				Name:    "gameevent_type_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GameEventsColumns[1], GameEventsColumns[2]},
			},
		},
	}
	// GameStatesColumns holds the columns for the "game_states" table.
	GameStatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "is_paused", Type: field.TypeBool, Default: false},
		{Name: "game_time", Type: field.TypeFloat64, Default: 0},
	}
	// GameStatesTable holds the schema information for the "game_states" table.
	GameStatesTable = &schema.Table{
		Name:       "game_states",
		Columns:    GameStatesColumns,
		PrimaryKey: []*schema.Column{GameStatesColumns[0]},
	}
	// ItemsColumns holds the columns for the "items" table.
	ItemsColumns = []*schema.Column{
		{Name: "item_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"weapon", "armor", "consumable", "spawn_point", "misc"}},
		{Name: "stats", Type: field.TypeJSON, Nullable: true},
		{Name: "room_id", Type: field.TypeString, Nullable: true},
		{Name: "character_id", Type: field.TypeString, Nullable: true},
		{Name: "is_equipped", Type: field.TypeBool, Default: false},
	}
	// ItemsTable holds the schema information for the "items" table.
	ItemsTable = &schema.Table{
		Name:       "items",
		Columns:    ItemsColumns,
		PrimaryKey: []*schema.Column{ItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "item_room_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[5]},
			},
			{
				Name:    "item_character_id",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[6]},
			},
			{
				Name:    "item_character_id_is_equipped",
				Unique:  false,
				Columns: []*schema.Column{ItemsColumns[6], ItemsColumns[7]},
			},
		},
	}
	// PlayerLogsColumns holds the columns for the "player_logs" table.
	PlayerLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "character_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"command", "output", "event"}},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// PlayerLogsTable holds the schema information for the "player_logs" table.
	PlayerLogsTable = &schema.Table{
		Name:       "player_logs",
		Columns:    PlayerLogsColumns,
		PrimaryKey: []*schema.Column{PlayerLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "playerlog_character_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PlayerLogsColumns[1], PlayerLogsColumns[4]},
			},
		},
	}
	// RoomsColumns holds the columns for the "rooms" table.
	RoomsColumns = []*schema.Column{
		{Name: "room_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "exits", Type: field.TypeJSON, Nullable: true},
		{Name: "is_starting", Type: field.TypeBool, Default: false},
	}
	// RoomsTable holds the schema information for the "rooms" table.
	RoomsTable = &schema.Table{
		Name:       "rooms",
		Columns:    RoomsColumns,
		PrimaryKey: []*schema.Column{RoomsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "room_is_starting",
				Unique:  false,
				Columns: []*schema.Column{RoomsColumns[4]},
			},
		},
	}
	// TokenUsageLogsColumns holds the columns for the "token_usage_logs" table.
	TokenUsageLogsColumns = []*schema.Column{
		{Name: "usage_id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString},
		{Name: "prompt_tokens", Type: field.TypeInt},
		{Name: "completion_tokens", Type: field.TypeInt},
		{Name: "total_tokens", Type: field.TypeInt},
		{Name: "cost", Type: field.TypeFloat64, Default: 0},
		{Name: "source", Type: field.TypeEnum, Enums: []string{"conversation", "decision", "decision_response", "spatial_memory"}},
		{Name: "agent_id", Type: field.TypeString, Nullable: true},
		{Name: "source_event_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TokenUsageLogsTable holds the schema information for the "token_usage_logs" table.
	TokenUsageLogsTable = &schema.Table{
		Name:       "token_usage_logs",
		Columns:    TokenUsageLogsColumns,
		PrimaryKey: []*schema.Column{TokenUsageLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tokenusagelog_agent_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageLogsColumns[8], TokenUsageLogsColumns[10]},
			},
			{
				Name:    "tokenusagelog_source",
				Unique:  false,
				Columns: []*schema.Column{TokenUsageLogsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AiAgentsTable,
		AccountsTable,
		CharactersTable,
		GameEventsTable,
		GameStatesTable,
		ItemsTable,
		PlayerLogsTable,
		RoomsTable,
		TokenUsageLogsTable,
	}
)

func init() {
}
