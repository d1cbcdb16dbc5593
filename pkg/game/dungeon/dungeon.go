// Package dungeon holds one generated floor: its grid, start and stairs, and
// the gold and enemy spawns placed on it. A Dungeon is built by the generator,
// sealed, and from then on only its fog of war changes.
package dungeon

import (
	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/entities"
	"hexcrawl/pkg/game/floor"
)

// Spawn is an enemy spawn point
type Spawn struct {
	Coord hex.Coord
	Kind  entities.EnemyKind
}

// Dungeon is a single floor
type Dungeon struct {
	Depth    int
	Area     floor.AreaType
	Seed     int64
	Attempts int  // generation attempts used, including the successful one
	Fallback bool // true if the minimal fallback layout was used

	grid   *world.Grid
	start  hex.Coord
	stairs hex.Coord

	hasStairs  bool
	gold       []hex.Coord
	goldValues map[hex.Coord]int
	spawns     []Spawn
}

// New creates a dungeon around a grid with the player starting at start.
// The start tile is carved to floor if it is not walkable yet.
func New(grid *world.Grid, start hex.Coord) *Dungeon {
	if !grid.IsWalkable(start) {
		grid.SetKind(start, world.Floor)
	}
	return &Dungeon{
		grid:       grid,
		start:      start,
		goldValues: make(map[hex.Coord]int),
	}
}

// Grid returns the underlying grid
func (d *Dungeon) Grid() *world.Grid {
	return d.grid
}

// Start returns the player start coordinate
func (d *Dungeon) Start() hex.Coord {
	return d.start
}

// Stairs returns the stairs coordinate
func (d *Dungeon) Stairs() hex.Coord {
	return d.stairs
}

// HasStairs returns true once stairs have been placed
func (d *Dungeon) HasStairs() bool {
	return d.hasStairs
}

// GoldCoords returns the gold pile coordinates in placement order
func (d *Dungeon) GoldCoords() []hex.Coord {
	return append([]hex.Coord(nil), d.gold...)
}

// GoldValue returns the value of the gold pile at c, or 0 if there is none
func (d *Dungeon) GoldValue(c hex.Coord) int {
	return d.goldValues[c]
}

// EnemySpawnCoords returns the enemy spawn coordinates in placement order
func (d *Dungeon) EnemySpawnCoords() []hex.Coord {
	out := make([]hex.Coord, len(d.spawns))
	for i, s := range d.spawns {
		out[i] = s.Coord
	}
	return out
}

// Spawns returns the enemy spawns in placement order
func (d *Dungeon) Spawns() []Spawn {
	return append([]Spawn(nil), d.spawns...)
}

// TileAt returns the tile at c
func (d *Dungeon) TileAt(c hex.Coord) world.Tile {
	return d.grid.Get(c)
}

// IsWalkable returns true if c can be entered
func (d *Dungeon) IsWalkable(c hex.Coord) bool {
	return d.grid.IsWalkable(c)
}

// Neighbors returns the six coordinates adjacent to c
func (d *Dungeon) Neighbors(c hex.Coord) []hex.Coord {
	return d.grid.Neighbors(c)
}

// WalkableNeighbors returns the adjacent coordinates that can be entered
func (d *Dungeon) WalkableNeighbors(c hex.Coord) []hex.Coord {
	return d.grid.WalkableNeighbors(c)
}

// WalkableCount returns the number of walkable tiles on the floor
func (d *Dungeon) WalkableCount() int {
	return d.grid.WalkableCount()
}

// Occupied returns true if c already holds the start, stairs, gold or a spawn
func (d *Dungeon) Occupied(c hex.Coord) bool {
	if c == d.start || (d.hasStairs && c == d.stairs) {
		return true
	}
	if _, ok := d.goldValues[c]; ok {
		return true
	}
	for _, s := range d.spawns {
		if s.Coord == c {
			return true
		}
	}
	return false
}

// SetStairs places the stairs. Returns false if c is not walkable, is
// occupied, or the dungeon is sealed.
func (d *Dungeon) SetStairs(c hex.Coord) bool {
	if d.hasStairs || !d.placeable(c) {
		return false
	}
	if !d.grid.SetKind(c, world.Stairs) {
		return false
	}
	d.stairs = c
	d.hasStairs = true
	return true
}

// AddGold places a gold pile worth value. Returns false if c is not free.
func (d *Dungeon) AddGold(c hex.Coord, value int) bool {
	if !d.placeable(c) || !d.grid.SetKind(c, world.Gold) {
		return false
	}
	d.gold = append(d.gold, c)
	d.goldValues[c] = value
	return true
}

// AddSpawn places an enemy spawn. Returns false if c is not free.
func (d *Dungeon) AddSpawn(c hex.Coord, kind entities.EnemyKind) bool {
	if !d.placeable(c) || !d.grid.SetKind(c, world.EnemySpawn) {
		return false
	}
	d.spawns = append(d.spawns, Spawn{Coord: c, Kind: kind})
	return true
}

func (d *Dungeon) placeable(c hex.Coord) bool {
	return d.grid.Get(c).Kind == world.Floor && !d.Occupied(c)
}

// Seal freezes the grid. Only fog of war can change afterwards.
func (d *Dungeon) Seal() {
	d.grid.Freeze()
}

// Sealed returns true once Seal has been called
func (d *Dungeon) Sealed() bool {
	return d.grid.Frozen()
}

// Reveal marks c as currently visible
func (d *Dungeon) Reveal(c hex.Coord) bool {
	return d.grid.SetFog(c, world.Visible)
}

// Remember marks c as seen before but not currently visible
func (d *Dungeon) Remember(c hex.Coord) bool {
	return d.grid.SetFog(c, world.Remembered)
}

// RevealFrom updates fog for a viewer standing at c
func (d *Dungeon) RevealFrom(c hex.Coord, radius int) []hex.Coord {
	return world.RevealFOV(d.grid, c, radius)
}
