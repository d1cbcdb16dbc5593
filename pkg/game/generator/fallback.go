package generator

import (
	"math/rand"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/entities"
	"hexcrawl/pkg/game/floor"
)

// fallbackLength is the corridor length needed to fit every placement of p
func fallbackLength(p floor.Params) int {
	return p.MinStairsDistance + p.GoldCount + p.EnemyCount + p.EnemySafeDistance
}

// fallbackFloor builds a straight corridor from the origin with the stairs at
// the far end and the spawns and gold lined up beyond the safe distance.
// It is connected by construction and meets every placement constraint.
func fallbackFloor(p floor.Params, seed int64) *dungeon.Dungeon {
	rng := rand.New(rand.NewSource(seed))
	length := fallbackLength(p)
	grid := world.NewBoundedGrid(max(p.Radius, length+2))

	heading := hex.Direction(rng.Intn(hex.DirectionCount))
	path := make([]hex.Coord, 0, length+1)
	c := hex.Origin
	for i := 0; i <= length; i++ {
		grid.Set(c, world.Tile{Kind: world.Floor})
		path = append(path, c)
		c = c.Neighbor(heading)
	}

	d := dungeon.New(grid, hex.Origin)
	d.Depth = p.Depth
	d.Area = p.Area
	d.Fallback = true
	d.SetStairs(path[length])

	next := p.EnemySafeDistance
	for i := 0; i < p.EnemyCount; i++ {
		d.AddSpawn(path[next], entities.KindForDepth(p.Depth, rng))
		next++
	}
	for i := 0; i < p.GoldCount; i++ {
		d.AddGold(path[next], entities.GoldValue(p.Depth, rng))
		next++
	}

	encloseWalls(grid)
	return d
}
