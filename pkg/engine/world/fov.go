package world

import (
	"hexcrawl/pkg/engine/hex"
)

// DefaultVisionRange is how far the player sees, in hex steps
const DefaultVisionRange = 3

// CalculateFOV returns the coordinates visible from center within radius.
// Walls block sight past themselves but are visible. Only stored tiles are
// returned since fog can only be tracked on stored tiles.
func CalculateFOV(grid *Grid, center hex.Coord, radius int) []hex.Coord {
	if grid == nil {
		return nil
	}

	var visible []hex.Coord
	for _, c := range hex.Spiral(center, radius) {
		if !grid.Has(c) {
			continue
		}
		if hasLineOfSight(grid, center, c) {
			visible = append(visible, c)
		}
	}
	return visible
}

// hasLineOfSight returns true if no wall sits strictly between from and to
func hasLineOfSight(grid *Grid, from, to hex.Coord) bool {
	line := hex.Line(from, to)
	for i := 1; i < len(line)-1; i++ {
		if !grid.IsWalkable(line[i]) {
			return false
		}
	}
	return true
}

// RevealFOV demotes what was visible to remembered, then marks everything
// within sight of center as visible
func RevealFOV(grid *Grid, center hex.Coord, radius int) []hex.Coord {
	if grid == nil {
		return nil
	}
	grid.ClearVisible()
	visible := CalculateFOV(grid, center, radius)
	for _, c := range visible {
		grid.SetFog(c, Visible)
	}
	return visible
}

// RevealFOVDefault reveals using the default vision range
func RevealFOVDefault(grid *Grid, center hex.Coord) []hex.Coord {
	return RevealFOV(grid, center, DefaultVisionRange)
}
