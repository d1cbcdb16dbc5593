package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
)

// Grid is a sparse hex map. Coordinates without an entry are walls.
// A bounded grid also treats everything beyond its radius as permanent wall.
type Grid struct {
	tiles   map[hex.Coord]Tile
	visible mapset.Set[hex.Coord]

	center hex.Coord
	radius int // 0 means unbounded

	walkable int
	frozen   bool
}

// NewGrid creates an empty, unbounded grid
func NewGrid() *Grid {
	return &Grid{
		tiles:   make(map[hex.Coord]Tile),
		visible: mapset.New[hex.Coord](),
	}
}

// NewBoundedGrid creates an empty grid that only accepts coordinates within
// radius of the origin. A radius below 1 gives an unbounded grid.
func NewBoundedGrid(radius int) *Grid {
	g := NewGrid()
	if radius > 0 {
		g.radius = radius
	}
	return g
}

// Radius returns the bounding radius, or 0 if the grid is unbounded
func (g *Grid) Radius() int {
	return g.radius
}

// InBounds checks if a coordinate can hold a tile
func (g *Grid) InBounds(c hex.Coord) bool {
	return g.radius == 0 || hex.Distance(g.center, c) <= g.radius
}

// IsPlayable checks if a coordinate is inside the border ring.
// This leaves room for a wall around everything walkable.
func (g *Grid) IsPlayable(c hex.Coord) bool {
	return g.radius == 0 || hex.Distance(g.center, c) < g.radius
}

// Get returns the tile at c. Absent and out-of-range coordinates are walls.
func (g *Grid) Get(c hex.Coord) Tile {
	return g.tiles[c]
}

// Has returns true if the grid stores an entry for c
func (g *Grid) Has(c hex.Coord) bool {
	_, ok := g.tiles[c]
	return ok
}

// Set overwrites the tile at c. Returns false if c is out of bounds or the
// grid has been frozen.
func (g *Grid) Set(c hex.Coord, t Tile) bool {
	if g.frozen || !g.InBounds(c) {
		return false
	}

	old, existed := g.tiles[c]
	if existed && old.Walkable() {
		g.walkable--
	}
	if t.Walkable() {
		g.walkable++
	}
	g.tiles[c] = t

	if t.Fog == Visible {
		g.visible.Put(c)
	} else if existed && old.Fog == Visible {
		g.visible.Remove(c)
	}
	return true
}

// SetKind changes the terrain at c and keeps its fog state
func (g *Grid) SetKind(c hex.Coord, k Kind) bool {
	t := g.Get(c)
	t.Kind = k
	return g.Set(c, t)
}

// SetFog changes the fog state of a stored tile. Fog is the one thing that
// may still change after the grid is frozen. Returns false if c has no entry.
func (g *Grid) SetFog(c hex.Coord, f Fog) bool {
	t, ok := g.tiles[c]
	if !ok {
		return false
	}
	t.Fog = f
	g.tiles[c] = t
	if f == Visible {
		g.visible.Put(c)
	} else {
		g.visible.Remove(c)
	}
	return true
}

// ClearVisible demotes every visible tile to remembered
func (g *Grid) ClearVisible() {
	for _, c := range g.VisibleCoords() {
		g.SetFog(c, Remembered)
	}
}

// VisibleCoords returns the currently visible coordinates in canonical order
func (g *Grid) VisibleCoords() []hex.Coord {
	out := make([]hex.Coord, 0, g.visible.Size())
	g.visible.Each(func(c hex.Coord) {
		out = append(out, c)
	})
	sortCoords(out)
	return out
}

// IsWalkable returns true if the tile at c is not a wall
func (g *Grid) IsWalkable(c hex.Coord) bool {
	return g.Get(c).Walkable()
}

// WalkableCount returns the number of non-wall tiles
func (g *Grid) WalkableCount() int {
	return g.walkable
}

// Len returns the number of stored entries, walls included
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Freeze stops all further structural changes
func (g *Grid) Freeze() {
	g.frozen = true
}

// Frozen returns true once Freeze has been called
func (g *Grid) Frozen() bool {
	return g.frozen
}

// Coords returns every stored coordinate in canonical order
func (g *Grid) Coords() []hex.Coord {
	out := make([]hex.Coord, 0, len(g.tiles))
	for c := range g.tiles {
		out = append(out, c)
	}
	sortCoords(out)
	return out
}

// WalkableCoords returns every walkable coordinate in canonical order
func (g *Grid) WalkableCoords() []hex.Coord {
	out := make([]hex.Coord, 0, g.walkable)
	for c, t := range g.tiles {
		if t.Walkable() {
			out = append(out, c)
		}
	}
	sortCoords(out)
	return out
}

// ForEachTile calls fn for every stored tile in canonical order
func (g *Grid) ForEachTile(fn func(c hex.Coord, t Tile)) {
	for _, c := range g.Coords() {
		fn(c, g.tiles[c])
	}
}

// Neighbors returns the six coordinates adjacent to c
func (g *Grid) Neighbors(c hex.Coord) []hex.Coord {
	n := c.Neighbors()
	return n[:]
}

// WalkableNeighbors returns the adjacent coordinates that can be entered
func (g *Grid) WalkableNeighbors(c hex.Coord) []hex.Coord {
	var out []hex.Coord
	for _, n := range c.Neighbors() {
		if g.IsWalkable(n) {
			out = append(out, n)
		}
	}
	return out
}

// Bounds returns the smallest and largest offset (col, row) covered by stored tiles
func (g *Grid) Bounds() (minCol, minRow, maxCol, maxRow int) {
	first := true
	for c := range g.tiles {
		col, row := hex.ToOffset(c)
		if first {
			minCol, maxCol, minRow, maxRow = col, col, row, row
			first = false
			continue
		}
		minCol = min(minCol, col)
		maxCol = max(maxCol, col)
		minRow = min(minRow, row)
		maxRow = max(maxRow, row)
	}
	return minCol, minRow, maxCol, maxRow
}

func sortCoords(cs []hex.Coord) {
	sort.Slice(cs, func(i, j int) bool {
		return hex.Less(cs[i], cs[j])
	})
}
