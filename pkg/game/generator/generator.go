package generator

import (
	"time"

	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/floor"
)

// GridGenerator is an interface for floor generation algorithms
type GridGenerator interface {
	Generate(depth int, seed int64) *dungeon.Dungeon
	Name() string
}

// DefaultGenerator is the FloorMaker generator over the default depth table
var DefaultGenerator GridGenerator = mustFloorMaker(floor.DefaultTable())

func mustFloorMaker(table floor.Table) *FloorMakerGenerator {
	g, err := NewFloorMaker(table)
	if err != nil {
		panic("invalid default floor table: " + err.Error())
	}
	return g
}

// GenerateFloor builds the floor at depth with the default generator.
// The same depth and seed always give the same floor.
func GenerateFloor(depth int, seed int64) *dungeon.Dungeon {
	return DefaultGenerator.Generate(depth, seed)
}

// GenerateFloorRandom builds the floor at depth with a time-based seed
func GenerateFloorRandom(depth int) *dungeon.Dungeon {
	return GenerateFloor(depth, time.Now().UnixNano())
}

// Pregenerate builds a floor on its own goroutine. The channel receives the
// finished Dungeon and is then closed; nothing is sent before generation,
// validation and any retries are complete.
func Pregenerate(gen GridGenerator, depth int, seed int64) <-chan *dungeon.Dungeon {
	ch := make(chan *dungeon.Dungeon, 1)
	go func() {
		defer close(ch)
		ch <- gen.Generate(depth, seed)
	}()
	return ch
}
