package main

import (
	"bytes"
	"strings"
	"testing"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/floor"
	"hexcrawl/pkg/game/generator"
)

// corridorGen builds an empty eastward corridor with the stairs at the end
type corridorGen struct {
	length int
}

func (c corridorGen) Generate(depth int, seed int64) *dungeon.Dungeon {
	grid := world.NewGrid()
	for q := 0; q < c.length; q++ {
		grid.Set(hex.Coord{Q: q, R: 0}, world.Tile{Kind: world.Floor})
	}
	d := dungeon.New(grid, hex.Origin)
	d.SetStairs(hex.Coord{Q: c.length - 1, R: 0})
	d.Depth, d.Seed, d.Attempts = depth, seed, 1
	d.Area = floor.Dungeon
	d.Seal()
	return d
}

func (corridorGen) Name() string { return "corridor" }

func runExplore(t *testing.T, gen generator.GridGenerator, commands string) string {
	t.Helper()
	initGettext("en_GB")
	var out bytes.Buffer
	if err := explore(strings.NewReader(commands), &out, gen, 1, false); err != nil {
		t.Fatalf("explore() = %v", err)
	}
	if strings.Contains(out.String(), "%!") {
		t.Errorf("badly formatted message in output:\n%s", out.String())
	}
	return out.String()
}

func TestPrintFloor(t *testing.T) {
	initGettext("en_GB")
	var out bytes.Buffer
	d := generator.GenerateFloor(1, 42)
	if err := printFloor(&out, 1, d, false); err != nil {
		t.Fatalf("printFloor() = %v", err)
	}

	got := out.String()
	for _, want := range []string{"Floor 1: ", "(seed 42)", "walkable tiles", "@"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "%!") {
		t.Errorf("badly formatted message in output:\n%s", got)
	}
}

func TestExplore_MovesAndQuits(t *testing.T) {
	got := runExplore(t, corridorGen{length: 5}, "d\na\nnope\nq\n")
	for _, want := range []string{
		"Type a command and press Enter:",
		"Floor 1 (Dungeon)  HP: 100/100  Gold: 0",
		"Unknown command: nope",
		"Goodbye.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if !strings.Contains(got, ". @") {
		t.Errorf("player did not move east:\n%s", got)
	}
}

func TestExplore_BlockedMove(t *testing.T) {
	got := runExplore(t, corridorGen{length: 3}, "a\nq\n")
	if !strings.Contains(got, "You can't go that way.") {
		t.Errorf("no blocked message:\n%s", got)
	}
}

func TestExplore_Descends(t *testing.T) {
	got := runExplore(t, corridorGen{length: 2}, ">\nd\n>\nq\n")
	if !strings.Contains(got, "There are no stairs here.") {
		t.Errorf("descended off the stairs:\n%s", got)
	}
	if !strings.Contains(got, "You descend to floor 2.") {
		t.Errorf("did not descend:\n%s", got)
	}
	if !strings.Contains(got, "HP: 110/110") {
		t.Errorf("health not raised on the new floor:\n%s", got)
	}
}

func TestExplore_EndOfInput(t *testing.T) {
	got := runExplore(t, corridorGen{length: 3}, "")
	if strings.Contains(got, "Goodbye.") {
		t.Errorf("end of input printed the quit message:\n%s", got)
	}
}
