// Package world provides sparse hex-grid world primitives: tiles, the grid
// that stores them, and fog of war. These are engine-level constructs with no
// knowledge of how a floor was generated.
package world

// Kind is the terrain of a tile
type Kind int

// Tile kinds. Wall is the zero value so absent tiles read as walls.
const (
	Wall Kind = iota
	Floor
	Stairs
	Gold
	EnemySpawn
)

// String returns the string representation of a kind
func (k Kind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Stairs:
		return "Stairs"
	case Gold:
		return "Gold"
	case EnemySpawn:
		return "EnemySpawn"
	default:
		return "Unknown"
	}
}

// Walkable returns true for every kind except Wall.
// Stairs, gold and spawns are overlays on floor and stay passable.
func (k Kind) Walkable() bool {
	return k != Wall
}

// Fog is the visibility state of a tile
type Fog int

// Fog states
const (
	Unseen Fog = iota
	Remembered
	Visible
)

// String returns the string representation of a fog state
func (f Fog) String() string {
	switch f {
	case Unseen:
		return "Unseen"
	case Remembered:
		return "Remembered"
	case Visible:
		return "Visible"
	default:
		return "Unknown"
	}
}

// Tile is one hex of the map. Terrain and fog are independent.
type Tile struct {
	Kind Kind
	Fog  Fog
}

// Walkable returns true if the tile can be entered
func (t Tile) Walkable() bool {
	return t.Kind.Walkable()
}

// Explored returns true if the tile has ever been seen
func (t Tile) Explored() bool {
	return t.Fog != Unseen
}
