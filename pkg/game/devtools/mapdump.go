// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
)

const mapDumpFilename = "map.txt"

// ErrNoDungeon is returned when there is nothing to dump
var ErrNoDungeon = errors.New("no dungeon")

// tileSymbol returns the single-character symbol for a tile (no player overlay).
// If revealedOnly is true, unexplored tiles return ' '.
func tileSymbol(t world.Tile, revealedOnly bool) rune {
	if revealedOnly && !t.Explored() {
		return ' '
	}
	switch t.Kind {
	case world.Floor:
		return '.'
	case world.Stairs:
		return '>'
	case world.Gold:
		return '$'
	case world.EnemySpawn:
		return 'e'
	default:
		return '#'
	}
}

// forEachRow walks the stored tiles in odd-r offset order, one call per row.
// Odd rows are indented.
func forEachRow(grid *world.Grid, fn func(indent bool, cols []hex.Coord)) {
	if grid.Len() == 0 {
		return
	}
	minCol, minRow, maxCol, maxRow := grid.Bounds()
	cols := make([]hex.Coord, 0, maxCol-minCol+1)
	for row := minRow; row <= maxRow; row++ {
		cols = cols[:0]
		for col := minCol; col <= maxCol; col++ {
			cols = append(cols, hex.FromOffset(col, row))
		}
		fn(row&1 == 1, cols)
	}
}

// Overlay rewrites the symbol drawn at c. sym is the stored tile symbol, or
// ' ' for hexes that are empty or hidden by fog.
type Overlay func(c hex.Coord, sym rune) rune

// PlayerAt draws the player as '@' at player
func PlayerAt(player hex.Coord) Overlay {
	return func(c hex.Coord, sym rune) rune {
		if c == player {
			return '@'
		}
		return sym
	}
}

// symbolAt returns the symbol for c before any overlay
func symbolAt(grid *world.Grid, c hex.Coord, revealedOnly bool) rune {
	if !grid.Has(c) {
		return ' '
	}
	return tileSymbol(grid.Get(c), revealedOnly)
}

// WriteMap writes the floor as ASCII with the start marked '@'
func WriteMap(w io.Writer, d *dungeon.Dungeon, revealedOnly bool) error {
	if d == nil {
		return ErrNoDungeon
	}
	return WriteMapAt(w, d, d.Start(), revealedOnly)
}

// WriteMapAt writes the floor as ASCII with the player marked '@' at player.
// Odd rows are indented half a hex.
func WriteMapAt(w io.Writer, d *dungeon.Dungeon, player hex.Coord, revealedOnly bool) error {
	return WriteMapOverlay(w, d, revealedOnly, PlayerAt(player))
}

// WriteMapOverlay writes the floor as ASCII, letting o redraw any hex
func WriteMapOverlay(w io.Writer, d *dungeon.Dungeon, revealedOnly bool, o Overlay) error {
	if d == nil {
		return ErrNoDungeon
	}
	bw := bufio.NewWriter(w)
	grid := d.Grid()

	forEachRow(grid, func(indent bool, cols []hex.Coord) {
		if indent {
			bw.WriteByte(' ')
		}
		for i, c := range cols {
			if i > 0 {
				bw.WriteByte(' ')
			}
			sym := symbolAt(grid, c, revealedOnly)
			if o != nil {
				sym = o(c, sym)
			}
			bw.WriteRune(sym)
		}
		bw.WriteByte('\n')
	})
	return bw.Flush()
}

// WriteDump writes a full debug dump: metadata, legend, revealed-only map,
// fully-revealed map, and the placement lists
func WriteDump(w io.Writer, d *dungeon.Dungeon) error {
	if d == nil {
		return ErrNoDungeon
	}
	bw := bufio.NewWriter(w)
	start := d.Start()

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (floor layout, placements) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "depth: %d\n", d.Depth)
	fmt.Fprintf(bw, "seed: %d\n", d.Seed)
	fmt.Fprintf(bw, "area: %s\n", d.Area.Name)
	fmt.Fprintf(bw, "attempts: %d\n", d.Attempts)
	fmt.Fprintf(bw, "fallback: %v\n", d.Fallback)
	fmt.Fprintf(bw, "radius: %d\n", d.Grid().Radius())
	fmt.Fprintf(bw, "walkable_tiles: %d\n", d.WalkableCount())
	fmt.Fprintf(bw, "stored_tiles: %d\n", d.Grid().Len())
	fmt.Fprintf(bw, "coordinate_system: axial q,r (pointy-top, printed as odd-r offset rows)\n")
	fmt.Fprintf(bw, "start: %v\n", start)
	fmt.Fprintf(bw, "stairs: %v distance: %d\n", d.Stairs(), hex.Distance(start, d.Stairs()))
	fmt.Fprintf(bw, "valid: %v\n", d.Validate())
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (tile symbols) ---")
	fmt.Fprintln(bw, ". = floor  # = wall  > = stairs  $ = gold  e = enemy spawn  @ = start  (blank) = unexplored or outside")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (explored tiles only) ---")
	if err := WriteMap(bw, d, true); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (fully revealed) ---")
	if err := WriteMap(bw, d, false); err != nil {
		return err
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Gold:")
	for _, c := range d.GoldCoords() {
		fmt.Fprintf(bw, "  at: %v value: %d distance: %d\n", c, d.GoldValue(c), hex.Distance(start, c))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Enemy spawns:")
	for _, s := range d.Spawns() {
		fmt.Fprintf(bw, "  at: %v kind: %s distance: %d\n", s.Coord, s.Kind, hex.Distance(start, s.Coord))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END MAP DUMP ===")
	return bw.Flush()
}

// DumpMapToFile writes the debug dump for d to path, or to map.txt in the
// working directory if path is empty. Returns the absolute path written.
func DumpMapToFile(d *dungeon.Dungeon, path string) (string, error) {
	if d == nil {
		return "", ErrNoDungeon
	}
	if path == "" {
		path = mapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteDump(f, d); err != nil {
		return absPath, fmt.Errorf("write map dump: %w", err)
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
