package hex

// Direction is one of the six hex headings
type Direction int

// Directions in canonical order, rotating counter-clockwise from east
const (
	East Direction = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
)

// DirectionCount is the number of hex directions
const DirectionCount = 6

var directionDeltas = [DirectionCount]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{East, NorthEast, NorthWest, West, SouthWest, SouthEast}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case East:
		return "East"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case West:
		return "West"
	case SouthWest:
		return "SouthWest"
	case SouthEast:
		return "SouthEast"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the six headings
func (d Direction) IsValid() bool {
	return d >= East && d <= SouthEast
}

// Rotate turns the heading by steps sixths of a circle.
// Positive steps turn counter-clockwise; the result always wraps into range.
func (d Direction) Rotate(steps int) Direction {
	n := (int(d) + steps) % DirectionCount
	if n < 0 {
		n += DirectionCount
	}
	return Direction(n)
}

// Opposite returns the reversed heading
func (d Direction) Opposite() Direction {
	return d.Rotate(3)
}

// Delta returns the axial offset for this direction, or the zero offset if invalid
func (d Direction) Delta() Coord {
	if !d.IsValid() {
		return Coord{}
	}
	return directionDeltas[d]
}
