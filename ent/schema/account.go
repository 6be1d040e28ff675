package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("account_id").
			Unique().
			Immutable(),
		field.String("username").
			Unique().
			Comment("Login identity; characters hang off the account"),
		field.JSON("preferences", map[string]interface{}{}).
			Optional().
			Comment("Client preferences, deep-merged on PATCH"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username"),
	}
}
