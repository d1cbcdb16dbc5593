// Package hex provides axial hexagonal grid coordinates and the math on them.
// Coordinates are pointy-top axial (q, r); the third cube coordinate is
// derived as s = -q - r.
package hex

import (
	"fmt"
	"math"
)

// Coord is an axial hex coordinate. It is a value type and can be used as a map key.
type Coord struct {
	Q int
	R int
}

// Origin is the coordinate at (0, 0)
var Origin = Coord{}

// S returns the implicit third cube coordinate
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns the component-wise sum of two coordinates
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Neighbor returns the adjacent coordinate in the given direction
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Delta())
}

// Neighbors returns the six adjacent coordinates in canonical direction order
func (c Coord) Neighbors() [6]Coord {
	var out [6]Coord
	for i, d := range directionDeltas {
		out[i] = c.Add(d)
	}
	return out
}

// DistanceTo returns the hex distance from c to o
func (c Coord) DistanceTo(o Coord) int {
	return Distance(c, o)
}

// String returns the coordinate as "q,r"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.Q, c.R)
}

// Less orders coordinates by row (r) and then by column (q).
// Used wherever iteration order has to be deterministic.
func Less(a, b Coord) bool {
	if a.R != b.R {
		return a.R < b.R
	}
	return a.Q < b.Q
}

// Distance returns the number of steps between two hexes
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

// Ring returns every coordinate at exactly radius steps from center.
// A radius of zero returns the center alone.
func Ring(center Coord, radius int) []Coord {
	if radius <= 0 {
		return []Coord{center}
	}

	ring := make([]Coord, 0, radius*6)

	// Start radius steps to the south-west and walk the six sides
	c := center.Add(Coord{Q: SouthWest.Delta().Q * radius, R: SouthWest.Delta().R * radius})
	for _, d := range AllDirections() {
		for i := 0; i < radius; i++ {
			ring = append(ring, c)
			c = c.Neighbor(d)
		}
	}
	return ring
}

// Spiral returns every coordinate within radius of center, center first,
// then ring by ring outward.
func Spiral(center Coord, radius int) []Coord {
	out := []Coord{center}
	for r := 1; r <= radius; r++ {
		out = append(out, Ring(center, r)...)
	}
	return out
}

// CountWithin returns how many hexes lie within radius of a center
func CountWithin(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*(radius+1) + 1
}

// Round converts fractional axial coordinates to the nearest hex
func Round(q, r float64) Coord {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	qDiff := math.Abs(rq - q)
	rDiff := math.Abs(rr - r)
	sDiff := math.Abs(rs - s)

	if qDiff > rDiff && qDiff > sDiff {
		rq = -rr - rs
	} else if rDiff > sDiff {
		rr = -rq - rs
	}

	return Coord{Q: int(rq), R: int(rr)}
}

// Line returns the hexes on the straight line from a to b, both ends included
func Line(a, b Coord) []Coord {
	n := Distance(a, b)
	if n == 0 {
		return []Coord{a}
	}

	// Nudge off exact hex edges so ties round consistently
	const eps = 1e-6
	aq, ar := float64(a.Q)+eps, float64(a.R)+eps
	bq, br := float64(b.Q)+eps, float64(b.R)+eps

	line := make([]Coord, 0, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		line = append(line, Round(aq+(bq-aq)*t, ar+(br-ar)*t))
	}
	return line
}

// ToOffset converts axial to "odd-r" offset coordinates (col, row),
// where odd rows are shoved half a hex to the right.
func ToOffset(c Coord) (col, row int) {
	col = c.Q + (c.R-(c.R&1))/2
	return col, c.R
}

// FromOffset converts "odd-r" offset coordinates back to axial
func FromOffset(col, row int) Coord {
	return Coord{Q: col - (row-(row&1))/2, R: row}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
