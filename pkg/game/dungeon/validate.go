package dungeon

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
)

// Placement errors reported by CheckPlacements
var (
	ErrNoStairs    = errors.New("no stairs placed")
	ErrOverlap     = errors.New("placements overlap")
	ErrNotWalkable = errors.New("placement on an unwalkable tile")
)

// Reachable returns every walkable coordinate reachable from start by BFS
func Reachable(grid *world.Grid, start hex.Coord) *mapset.Set[hex.Coord] {
	reachable := mapset.New[hex.Coord]()
	if grid == nil || !grid.IsWalkable(start) {
		return &reachable
	}

	queue := []hex.Coord{start}
	reachable.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, n := range current.Neighbors() {
			if grid.IsWalkable(n) && !reachable.Has(n) {
				reachable.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return &reachable
}

// Validate returns true if the stairs, every gold pile and every enemy spawn
// can be reached on foot from the start. It does not modify the dungeon.
func Validate(d *Dungeon) bool {
	if d == nil || d.grid == nil || !d.hasStairs {
		return false
	}

	reachable := Reachable(d.grid, d.start)
	if !reachable.Has(d.stairs) {
		return false
	}
	for _, c := range d.gold {
		if !reachable.Has(c) {
			return false
		}
	}
	for _, s := range d.spawns {
		if !reachable.Has(s.Coord) {
			return false
		}
	}
	return true
}

// Validate is shorthand for Validate(d)
func (d *Dungeon) Validate() bool {
	return Validate(d)
}

// CheckPlacements reports the first placement that sits on a wall, carries the
// wrong tile kind, or shares a tile with another placement.
func (d *Dungeon) CheckPlacements() error {
	if !d.hasStairs {
		return ErrNoStairs
	}

	seen := mapset.New[hex.Coord]()
	check := func(what string, c hex.Coord, want world.Kind) error {
		if seen.Has(c) {
			return fmt.Errorf("%s at %v: %w", what, c, ErrOverlap)
		}
		seen.Put(c)
		if got := d.grid.Get(c).Kind; got != want {
			if !got.Walkable() {
				return fmt.Errorf("%s at %v: %w", what, c, ErrNotWalkable)
			}
			return fmt.Errorf("%s at %v is %v, want %v: %w", what, c, got, want, ErrOverlap)
		}
		return nil
	}

	if err := check("start", d.start, world.Floor); err != nil {
		return err
	}
	if err := check("stairs", d.stairs, world.Stairs); err != nil {
		return err
	}
	for _, c := range d.gold {
		if err := check("gold", c, world.Gold); err != nil {
			return err
		}
	}
	for _, s := range d.spawns {
		if err := check("spawn", s.Coord, world.EnemySpawn); err != nil {
			return err
		}
	}
	return nil
}
