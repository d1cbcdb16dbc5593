package state

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/entities"
)

// Fight is the outcome of one bump attack
type Fight struct {
	Kind   entities.EnemyKind
	Dealt  int // damage dealt to the enemy
	Taken  int // damage taken by the player
	Won    bool
	Reward int
}

// spawnEnemies puts a live enemy on every spawn point of the floor
func (g *Game) spawnEnemies() {
	spawns := g.Dungeon.Spawns()
	g.Enemies = make([]*entities.Enemy, 0, len(spawns))
	for _, s := range spawns {
		heading := hex.Direction(g.rng.Intn(hex.DirectionCount))
		g.Enemies = append(g.Enemies, entities.NewEnemy(s.Kind, s.Coord, heading))
	}
}

// EnemyAt returns the living enemy at c, or nil
func (g *Game) EnemyAt(c hex.Coord) *entities.Enemy {
	for _, e := range g.Enemies {
		if e.Alive() && e.Pos == c {
			return e
		}
	}
	return nil
}

// fight trades blows with e until one side falls. The player strikes first.
func (g *Game) fight(e *entities.Enemy) Fight {
	f := Fight{Kind: e.Kind}
	for !g.Dead() && e.Alive() {
		f.Dealt += e.TakeDamage(entities.PlayerDamageRoll(g.Level, g.rng))
		if !e.Alive() {
			break
		}
		hit := e.AttackRoll(g.rng)
		f.Taken += hit
		g.Health = max(0, g.Health-hit)
	}
	if !e.Alive() {
		f.Won = true
		f.Reward = e.Kind.Info().GoldReward
		g.Gold += f.Reward
	}
	return f
}

func (g *Game) report(f Fight) {
	name := f.Kind.DisplayName()
	if f.Won {
		g.AddMessage(fmt.Sprintf(gotext.Get("FIGHT_WON"), name, f.Dealt, f.Taken, f.Reward))
		return
	}
	g.AddMessage(fmt.Sprintf(gotext.Get("FIGHT_LOST"), name, f.Dealt))
}

// enemyTurns gives every living enemy its turn. Enemies chase the player
// once noticed and wander otherwise.
func (g *Game) enemyTurns() {
	for _, e := range g.Enemies {
		if !e.Alive() || !e.Ready() {
			continue
		}
		e.Notice(hex.Distance(e.Pos, g.Player))

		var next hex.Coord
		var ok bool
		if e.Chasing {
			next, ok = g.chaseStep(e)
		} else {
			next, ok = g.wanderStep(e)
		}
		if ok {
			e.Pos = next
		}
	}
}

// canEnter reports whether an enemy may step onto c
func (g *Game) canEnter(c hex.Coord) bool {
	return c != g.Player && g.Dungeon.IsWalkable(c) && g.EnemyAt(c) == nil
}

// chaseStep follows the shortest path to the player. If another enemy blocks
// the path the free neighbour closest to the player is taken instead.
func (g *Game) chaseStep(e *entities.Enemy) (hex.Coord, bool) {
	path := dungeon.Path(g.Dungeon.Grid(), e.Pos, g.Player)
	if len(path) < 3 {
		return e.Pos, false
	}
	if g.canEnter(path[1]) {
		return path[1], true
	}

	best, bestDist := e.Pos, hex.Distance(e.Pos, g.Player)
	for _, n := range e.Pos.Neighbors() {
		if dist := hex.Distance(n, g.Player); dist < bestDist && g.canEnter(n) {
			best, bestDist = n, dist
		}
	}
	return best, best != e.Pos
}

// wanderStep keeps the enemy's heading, picking a random open one when blocked
func (g *Game) wanderStep(e *entities.Enemy) (hex.Coord, bool) {
	if n := e.Pos.Neighbor(e.Heading); g.canEnter(n) {
		return n, true
	}
	dirs := append([]hex.Direction(nil), hex.AllDirections()...)
	g.rng.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })
	for _, d := range dirs {
		if n := e.Pos.Neighbor(d); g.canEnter(n) {
			e.Heading = d
			return n, true
		}
	}
	return e.Pos, false
}

// Symbol draws the live floor over a stored tile symbol: the player, visible
// enemies, and picked-up gold. Spawn markers are hidden since the enemies
// move off them. It fits devtools.Overlay.
func (g *Game) Symbol(c hex.Coord, sym rune) rune {
	if c == g.Player {
		return '@'
	}
	if sym == ' ' {
		return sym
	}
	if e := g.EnemyAt(c); e != nil && g.Dungeon.TileAt(c).Fog == world.Visible {
		return e.Kind.Info().Icon
	}
	switch {
	case sym == '$' && g.Collected.Has(c):
		return '.'
	case sym == 'e':
		return '.'
	}
	return sym
}
