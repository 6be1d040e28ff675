package game

import (
	"context"
	"errors"

	"github.com/elliotbonneville/silt/pkg/store"
)

// roomDistance returns the BFS hop count from one room to another over live
// exits, or -1 when unreachable. Used to hold AI characters inside their
// allowed radius from home.
func roomDistance(ctx context.Context, rooms store.RoomStore, fromID, toID string) (int, error) {
	if fromID == toID {
		return 0, nil
	}
	visited := map[string]bool{fromID: true}
	frontier := []string{fromID}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			room, err := rooms.Get(ctx, id)
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					continue
				}
				return -1, err
			}
			for _, dest := range room.Exits {
				if visited[dest] {
					continue
				}
				if dest == toID {
					return depth, nil
				}
				visited[dest] = true
				next = append(next, dest)
			}
		}
		frontier = next
	}
	return -1, nil
}
