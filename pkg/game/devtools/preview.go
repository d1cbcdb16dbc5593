package devtools

import (
	"bufio"
	"io"

	"github.com/gookit/color"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/terminal"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
)

// Palette holds the styles used by Preview
type Palette struct {
	Floor      color.Style
	Wall       color.Style
	Stairs     color.Style
	Gold       color.Style
	Enemy      color.Style
	Player     color.Style
	Remembered color.Style
}

// DefaultPalette returns the preview colours
func DefaultPalette() Palette {
	return Palette{
		Floor:      color.Style{color.FgWhite},
		Wall:       color.Style{color.FgBlue},
		Stairs:     color.Style{color.FgGreen, color.OpBold},
		Gold:       color.Style{color.FgYellow, color.OpBold},
		Enemy:      color.Style{color.FgRed, color.OpBold},
		Player:     color.Style{color.FgGreen, color.BgBlack, color.OpBold},
		Remembered: color.Style{color.FgDarkGray},
	}
}

// styleFor picks the style for a drawn symbol. Symbols other than the
// tile symbols are monsters.
func (p Palette) styleFor(sym rune, t world.Tile) color.Style {
	if sym == '@' {
		return p.Player
	}
	if t.Fog == world.Remembered {
		return p.Remembered
	}
	switch sym {
	case '.':
		return p.Floor
	case '>':
		return p.Stairs
	case '$':
		return p.Gold
	case '#':
		return p.Wall
	default:
		return p.Enemy
	}
}

// Preview renders the floor in colour with the player at player. Rows are
// cropped to width columns; a width below 1 uses the terminal width.
func Preview(w io.Writer, d *dungeon.Dungeon, player hex.Coord, revealedOnly bool, width int) error {
	return PreviewWith(w, d, revealedOnly, width, DefaultPalette(), PlayerAt(player))
}

// PreviewWith is Preview with a custom palette, letting o redraw any hex
func PreviewWith(w io.Writer, d *dungeon.Dungeon, revealedOnly bool, width int, p Palette, o Overlay) error {
	if d == nil {
		return ErrNoDungeon
	}
	if width < 1 {
		width = terminal.GetWidth()
	}
	bw := bufio.NewWriter(w)
	grid := d.Grid()

	forEachRow(grid, func(indent bool, cols []hex.Coord) {
		used := 0
		if indent {
			bw.WriteByte(' ')
			used++
		}
		for i, c := range cols {
			cell := 1
			if i > 0 {
				cell = 2
			}
			if used+cell > width {
				break
			}
			if i > 0 {
				bw.WriteByte(' ')
			}
			used += cell

			sym := symbolAt(grid, c, revealedOnly)
			if o != nil {
				sym = o(c, sym)
			}
			if sym == ' ' {
				bw.WriteByte(' ')
				continue
			}
			bw.WriteString(p.styleFor(sym, grid.Get(c)).Sprint(string(sym)))
		}
		bw.WriteByte('\n')
	})
	return bw.Flush()
}
