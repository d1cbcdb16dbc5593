package dungeon

import (
	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// Path returns the shortest walkable path from one coordinate to another,
// both ends included, or nil if to cannot be reached
func Path(grid *world.Grid, from, to hex.Coord) []hex.Coord {
	if grid == nil || !grid.IsWalkable(from) || !grid.IsWalkable(to) {
		return nil
	}
	if from == to {
		return []hex.Coord{from}
	}

	parent := map[hex.Coord]hex.Coord{from: from}
	queue := []hex.Coord{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if _, seen := parent[n]; seen || !grid.IsWalkable(n) {
				continue
			}
			parent[n] = current
			if n == to {
				return unwind(parent, from, to)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func unwind(parent map[hex.Coord]hex.Coord, from, to hex.Coord) []hex.Coord {
	var path []hex.Coord
	for c := to; c != from; c = parent[c] {
		path = append(path, c)
	}
	path = append(path, from)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathTo returns the shortest path from the start to c
func (d *Dungeon) PathTo(c hex.Coord) []hex.Coord {
	return Path(d.grid, d.start, c)
}
