// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AIAgent is the predicate function for aiagent builders.
type AIAgent func(*sql.Selector)

// Account is the predicate function for account builders.
type Account func(*sql.Selector)

// Character is the predicate function for character builders.
type Character func(*sql.Selector)

// GameEvent is the predicate function for gameevent builders.
type GameEvent func(*sql.Selector)

// GameState is the predicate function for gamestate builders.
type GameState func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// PlayerLog is the predicate function for playerlog builders.
type PlayerLog func(*sql.Selector)

// Room is the predicate function for room builders.
type Room func(*sql.Selector)

// TokenUsageLog is the predicate function for tokenusagelog builders.
type TokenUsageLog func(*sql.Selector)
