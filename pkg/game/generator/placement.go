package generator

import (
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/entities"
	"hexcrawl/pkg/game/floor"
)

// populate places the stairs, then gold, then enemy spawns
func populate(d *dungeon.Dungeon, rng *rand.Rand, p floor.Params) error {
	avoid := mapset.New[hex.Coord]()
	avoid.Put(d.Start())

	if err := placeStairs(d, rng, p, &avoid); err != nil {
		return err
	}
	if err := placeGold(d, rng, p, &avoid); err != nil {
		return err
	}
	return placeEnemies(d, rng, p, &avoid)
}

// freeFloor returns the plain floor tiles not in avoid with at least
// minDistance between them and the start, in canonical order
func freeFloor(d *dungeon.Dungeon, avoid *mapset.Set[hex.Coord], minDistance int) []hex.Coord {
	var out []hex.Coord
	start := d.Start()
	for _, c := range d.Grid().WalkableCoords() {
		if d.TileAt(c).Kind != world.Floor || avoid.Has(c) {
			continue
		}
		if hex.Distance(start, c) < minDistance {
			continue
		}
		out = append(out, c)
	}
	return out
}

func shuffle(rng *rand.Rand, cs []hex.Coord) {
	rng.Shuffle(len(cs), func(i, j int) { cs[i], cs[j] = cs[j], cs[i] })
}

// placeStairs samples the far tiles and puts the stairs on the one furthest from start
func placeStairs(d *dungeon.Dungeon, rng *rand.Rand, p floor.Params, avoid *mapset.Set[hex.Coord]) error {
	far := freeFloor(d, avoid, p.MinStairsDistance)
	if len(far) == 0 {
		return fmt.Errorf("min distance %d: %w", p.MinStairsDistance, ErrNoStairsSite)
	}

	shuffle(rng, far)
	if len(far) > p.StairsSampleSize {
		far = far[:p.StairsSampleSize]
	}

	start := d.Start()
	best := far[0]
	bestDist := hex.Distance(start, best)
	for _, c := range far[1:] {
		dist := hex.Distance(start, c)
		if dist > bestDist || (dist == bestDist && hex.Less(c, best)) {
			best, bestDist = c, dist
		}
	}

	if !d.SetStairs(best) {
		return fmt.Errorf("stairs at %v: %w", best, ErrNoStairsSite)
	}
	avoid.Put(best)
	return nil
}

func placeGold(d *dungeon.Dungeon, rng *rand.Rand, p floor.Params, avoid *mapset.Set[hex.Coord]) error {
	free := freeFloor(d, avoid, 1)
	if len(free) < p.GoldCount {
		return fmt.Errorf("%d gold piles, %d free tiles: %w", p.GoldCount, len(free), ErrCrowded)
	}

	shuffle(rng, free)
	for _, c := range free[:p.GoldCount] {
		if !d.AddGold(c, entities.GoldValue(p.Depth, rng)) {
			return fmt.Errorf("gold at %v: %w", c, ErrCrowded)
		}
		avoid.Put(c)
	}
	return nil
}

func placeEnemies(d *dungeon.Dungeon, rng *rand.Rand, p floor.Params, avoid *mapset.Set[hex.Coord]) error {
	free := freeFloor(d, avoid, p.EnemySafeDistance)
	if len(free) < p.EnemyCount {
		return fmt.Errorf("%d enemies, %d free tiles beyond %d: %w", p.EnemyCount, len(free), p.EnemySafeDistance, ErrCrowded)
	}

	shuffle(rng, free)
	for _, c := range free[:p.EnemyCount] {
		if !d.AddSpawn(c, entities.KindForDepth(p.Depth, rng)) {
			return fmt.Errorf("spawn at %v: %w", c, ErrCrowded)
		}
		avoid.Put(c)
	}
	return nil
}

// encloseWalls stores an explicit wall on every empty hex next to a walkable one
func encloseWalls(grid *world.Grid) {
	for _, c := range grid.WalkableCoords() {
		for _, n := range c.Neighbors() {
			if !grid.Has(n) {
				grid.Set(n, world.Tile{Kind: world.Wall})
			}
		}
	}
}
