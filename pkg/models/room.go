package models

import "sort"

// Room is a node in the world graph. Exits map a direction label to the
// destination room id; symmetry is not guaranteed and is treated as a runtime
// query by the propagator.
type Room struct {
	ID          string
	Name        string
	Description string
	Exits       map[string]string
	IsStarting  bool
}

// SortedExits returns the exit direction labels in lexical order, for stable
// room descriptions and deterministic tests.
func (r *Room) SortedExits() []string {
	dirs := make([]string, 0, len(r.Exits))
	for d := range r.Exits {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	return dirs
}

// Exit resolves a direction label against the room's exits.
func (r *Room) Exit(direction string) (string, bool) {
	id, ok := r.Exits[direction]
	return id, ok
}
