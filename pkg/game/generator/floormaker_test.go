package generator

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/floor"
)

func quietLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

// starvedTable returns a table whose seed walker always dies after three
// steps, well short of the 50 tile target
func starvedTable() floor.Table {
	area := floor.AreaType{Name: "starved", RoomRadiusMin: 0, RoomRadiusMax: 0}
	t := floor.DefaultTable()
	t.Brackets = []floor.Bracket{{MaxDepth: t.MaxDepth, Area: area}}
	t.Scaling.BaseFloorTiles = 50
	t.Scaling.FloorTilesPerDepth = 0
	t.Scaling.FixedLifespan = 3
	return t
}

// checkFloor asserts every structural guarantee a generated floor must meet
func checkFloor(t *testing.T, d *dungeon.Dungeon, p floor.Params) {
	t.Helper()

	if d == nil {
		t.Fatal("Generate returned nil")
	}
	if !d.Sealed() {
		t.Error("floor is not sealed")
	}
	if !d.Validate() {
		t.Error("placements not reachable from start")
	}
	if err := d.CheckPlacements(); err != nil {
		t.Errorf("CheckPlacements() = %v", err)
	}
	if d.Depth != p.Depth {
		t.Errorf("Depth = %d, want %d", d.Depth, p.Depth)
	}

	start := d.Start()
	if got := hex.Distance(start, d.Stairs()); got < p.MinStairsDistance {
		t.Errorf("stairs at distance %d, want >= %d", got, p.MinStairsDistance)
	}
	if got := len(d.GoldCoords()); got != p.GoldCount {
		t.Errorf("gold piles = %d, want %d", got, p.GoldCount)
	}
	if got := len(d.Spawns()); got != p.EnemyCount {
		t.Errorf("spawns = %d, want %d", got, p.EnemyCount)
	}
	for _, c := range d.EnemySpawnCoords() {
		if got := hex.Distance(start, c); got < p.EnemySafeDistance {
			t.Errorf("spawn %v at distance %d, want >= %d", c, got, p.EnemySafeDistance)
		}
	}
	for _, c := range d.GoldCoords() {
		if d.GoldValue(c) <= 0 {
			t.Errorf("gold at %v has value %d", c, d.GoldValue(c))
		}
	}

	stairs := 0
	grid := d.Grid()
	for _, c := range grid.WalkableCoords() {
		if grid.Get(c).Kind == world.Stairs {
			stairs++
		}
		for _, n := range c.Neighbors() {
			if !grid.Has(n) {
				t.Errorf("walkable %v has no stored neighbour at %v", c, n)
			}
		}
	}
	if stairs != 1 {
		t.Errorf("stairs tiles = %d, want 1", stairs)
	}

	if !d.Fallback && d.WalkableCount() < p.TargetFloorTiles {
		t.Errorf("walkable = %d, want >= %d", d.WalkableCount(), p.TargetFloorTiles)
	}
}

func TestGenerate_FloorInvariants(t *testing.T) {
	table := floor.DefaultTable()
	g, err := NewFloorMaker(table, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewFloorMaker() = %v", err)
	}

	for depth := 1; depth <= 12; depth++ {
		for seed := int64(1); seed <= 5; seed++ {
			d := g.Generate(depth, seed)
			checkFloor(t, d, table.ParamsFor(depth))
		}
	}
}

func TestGenerate_Depth1Seed42(t *testing.T) {
	table := floor.DefaultTable()
	p := table.ParamsFor(1)
	d := GenerateFloor(1, 42)

	checkFloor(t, d, p)
	if d.Fallback {
		t.Skip("fallback layout, density check does not apply")
	}
	if least := p.TargetFloorTiles * 8 / 10; d.WalkableCount() < least {
		t.Errorf("walkable = %d, want >= %d", d.WalkableCount(), least)
	}
	if d.Area.Name != floor.Dungeon.Name {
		t.Errorf("area = %q, want %q", d.Area.Name, floor.Dungeon.Name)
	}
}

// snapshot captures everything observable about a floor
type snapshot struct {
	Tiles  map[hex.Coord]world.Tile
	Start  hex.Coord
	Stairs hex.Coord
	Gold   []hex.Coord
	Values []int
	Spawns []dungeon.Spawn
}

func snap(d *dungeon.Dungeon) snapshot {
	s := snapshot{
		Tiles:  make(map[hex.Coord]world.Tile),
		Start:  d.Start(),
		Stairs: d.Stairs(),
		Gold:   d.GoldCoords(),
		Spawns: d.Spawns(),
	}
	d.Grid().ForEachTile(func(c hex.Coord, t world.Tile) {
		s.Tiles[c] = t
	})
	for _, c := range s.Gold {
		s.Values = append(s.Values, d.GoldValue(c))
	}
	return s
}

func TestGenerate_Deterministic(t *testing.T) {
	for _, depth := range []int{1, 4, 9} {
		a := GenerateFloor(depth, 1234)
		b := GenerateFloor(depth, 1234)
		if !reflect.DeepEqual(snap(a), snap(b)) {
			t.Errorf("depth %d: same seed gave different floors", depth)
		}
		if a.Attempts != b.Attempts {
			t.Errorf("depth %d: attempts %d vs %d", depth, a.Attempts, b.Attempts)
		}
	}
}

func TestGenerate_SeedsDiffer(t *testing.T) {
	first := snap(GenerateFloor(3, 1))
	for seed := int64(2); seed <= 6; seed++ {
		if !reflect.DeepEqual(first, snap(GenerateFloor(3, seed))) {
			return
		}
	}
	t.Error("six seeds produced identical floors")
}

func TestGenerate_DeeperFloorsAreLarger(t *testing.T) {
	table := floor.DefaultTable()
	if table.ParamsFor(10).TargetFloorTiles <= table.ParamsFor(1).TargetFloorTiles {
		t.Fatal("depth 10 target should exceed depth 1")
	}

	shallow := GenerateFloor(1, 7)
	deep := GenerateFloor(10, 7)
	if shallow.Fallback || deep.Fallback {
		t.Skip("fallback layout used")
	}
	if deep.WalkableCount() <= shallow.WalkableCount() {
		t.Errorf("depth 10 walkable %d <= depth 1 walkable %d", deep.WalkableCount(), shallow.WalkableCount())
	}
}

func TestGenerate_MostSeedsAvoidFallback(t *testing.T) {
	fallbacks := 0
	for seed := int64(0); seed < 20; seed++ {
		if GenerateFloor(2, seed).Fallback {
			fallbacks++
		}
	}
	if fallbacks > 2 {
		t.Errorf("%d of 20 floors used the fallback layout", fallbacks)
	}
}

func TestGenerate_ClampsDepth(t *testing.T) {
	table := floor.DefaultTable()
	if d := GenerateFloor(0, 5); d.Depth != table.MinDepth {
		t.Errorf("depth 0 clamped to %d, want %d", d.Depth, table.MinDepth)
	}
	if d := GenerateFloor(-4, 5); d.Depth != table.MinDepth {
		t.Errorf("depth -4 clamped to %d, want %d", d.Depth, table.MinDepth)
	}
	d := GenerateFloor(table.MaxDepth+50, 5)
	if d.Depth != table.MaxDepth {
		t.Errorf("depth beyond table clamped to %d, want %d", d.Depth, table.MaxDepth)
	}
	checkFloor(t, d, table.ParamsFor(table.MaxDepth))
}

func TestGenerate_StarvedWalkersFallBack(t *testing.T) {
	table := starvedTable()
	g, err := NewFloorMaker(table, WithMaxAttempts(3), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewFloorMaker() = %v", err)
	}

	d := g.Generate(1, 99)
	if !d.Fallback {
		t.Fatal("Fallback = false, want true")
	}
	if d.Attempts != 4 {
		t.Errorf("Attempts = %d, want 4", d.Attempts)
	}
	if d.Seed != 99 {
		t.Errorf("Seed = %d, want 99", d.Seed)
	}

	p := table.ParamsFor(1)
	checkFloor(t, d, p)
	if path := d.PathTo(d.Stairs()); path == nil {
		t.Error("stairs unreachable on fallback floor")
	}
	if got, want := d.WalkableCount(), fallbackLength(p)+1; got != want {
		t.Errorf("fallback walkable = %d, want %d", got, want)
	}
}

func TestAttempt_RejectsUndersized(t *testing.T) {
	table := starvedTable()
	g, err := NewFloorMaker(table, WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("NewFloorMaker() = %v", err)
	}
	_, err = g.attempt(table.ParamsFor(1), 1)
	if !errors.Is(err, ErrUndersized) {
		t.Errorf("attempt() = %v, want ErrUndersized", err)
	}
}

func TestNewFloorMaker_RejectsInvalidTable(t *testing.T) {
	table := floor.DefaultTable()
	table.Brackets = nil
	if _, err := NewFloorMaker(table); !errors.Is(err, floor.ErrBrackets) {
		t.Errorf("NewFloorMaker() = %v, want ErrBrackets", err)
	}
}

func TestWithMaxAttempts_IgnoresNonPositive(t *testing.T) {
	g, err := NewFloorMaker(floor.DefaultTable(), WithMaxAttempts(0))
	if err != nil {
		t.Fatalf("NewFloorMaker() = %v", err)
	}
	if g.MaxAttempts() != DefaultMaxAttempts {
		t.Errorf("MaxAttempts() = %d, want %d", g.MaxAttempts(), DefaultMaxAttempts)
	}
	if g.Name() != "FloorMaker" {
		t.Errorf("Name() = %q", g.Name())
	}
}

func TestPregenerate_DeliversCompleteFloor(t *testing.T) {
	ch := Pregenerate(DefaultGenerator, 3, 11)
	d, ok := <-ch
	if !ok || d == nil {
		t.Fatal("Pregenerate channel closed without a floor")
	}
	if !d.Sealed() || !d.Validate() {
		t.Error("pregenerated floor is incomplete")
	}
	if _, ok := <-ch; ok {
		t.Error("channel still open after delivery")
	}
	if !reflect.DeepEqual(snap(d), snap(GenerateFloor(3, 11))) {
		t.Error("pregenerated floor differs from synchronous generation")
	}
}
