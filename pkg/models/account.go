package models

import "time"

// Account is a login identity owning zero or more characters. Created lazily
// on first player:join.
type Account struct {
	ID          string
	Username    string
	CreatedAt   time.Time
	Preferences map[string]any
}
