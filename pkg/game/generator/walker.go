package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/queue"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/floor"
)

// Walker is a FloorMaker: a random-walk agent that carves floor as it goes
type Walker struct {
	Pos      hex.Coord
	Heading  hex.Direction
	Lifespan int // steps left before it dies of old age
	Steps    int // steps taken so far
}

// CarveResult summarises one engine run
type CarveResult struct {
	Carved    int  // walkable tiles on the grid when the engine stopped
	Steps     int  // walker steps processed
	Spawned   int  // walkers created by splits
	Peak      int  // most walkers alive at once
	TargetMet bool // Carved reached the target
}

// Split tuning. Fewer walkers split more eagerly, crowds split less.
const (
	splitBoostBelow    = 3
	splitBoost         = 2.0
	splitDampenAbove   = 6
	splitDampen        = 0.3
	childLifespanShare = 2 // child gets 1/childLifespanShare of the parent's remaining life
)

var turnSteps = [...]int{-2, -1, 1, 2}

// Engine drives a worklist of walkers over a grid until the floor target is
// met, every walker has died, or the step budget runs out
type Engine struct {
	Area       floor.AreaType
	Target     int
	MaxWalkers int
	StepBudget int

	grid   *world.Grid
	rng    *rand.Rand
	active int
}

// NewEngine creates an engine carving into grid with the parameters of one floor
func NewEngine(grid *world.Grid, rng *rand.Rand, p floor.Params) *Engine {
	return &Engine{
		Area:       p.Area,
		Target:     p.TargetFloorTiles,
		MaxWalkers: p.MaxWalkers,
		StepBudget: p.StepBudget,
		grid:       grid,
		rng:        rng,
	}
}

// Run processes the walkers round-robin, one step per dequeue, and reports
// how much was carved
func (e *Engine) Run(seeds ...Walker) CarveResult {
	var res CarveResult

	work := queue.New[*Walker]()
	for i := range seeds {
		w := seeds[i]
		work.Enqueue(&w)
		e.active++
	}
	res.Peak = e.active

	for !work.Empty() {
		if e.budgetMet() || res.Steps >= e.StepBudget {
			break
		}

		w := work.Dequeue()
		res.Steps++

		alive, child := e.step(w)
		if child != nil {
			work.Enqueue(child)
			e.active++
			res.Spawned++
			if e.active > res.Peak {
				res.Peak = e.active
			}
		}
		if alive {
			work.Enqueue(w)
		} else {
			e.active--
		}
	}

	res.Carved = e.grid.WalkableCount()
	res.TargetMet = res.Carved >= e.Target
	return res
}

// step runs one walker step and reports whether it survives and any walker it split off
func (e *Engine) step(w *Walker) (bool, *Walker) {
	e.carve(w.Pos)
	if e.budgetMet() {
		return true, nil
	}

	a := e.Area

	if e.rng.Float64() < a.TurnChance {
		if e.rng.Float64() < a.UTurnChance {
			w.Heading = w.Heading.Opposite()
		} else {
			w.Heading = w.Heading.Rotate(e.randomTurn())
		}
	}

	if e.rng.Float64() < a.RoomChance {
		radius := a.RoomRadiusMin + e.rng.Intn(a.RoomRadiusMax-a.RoomRadiusMin+1)
		e.carveRoom(w.Pos, radius)
	}

	var child *Walker
	if e.rng.Float64() < e.splitChance() && e.active < e.MaxWalkers {
		child = &Walker{
			Pos:      w.Pos,
			Heading:  w.Heading.Rotate(e.randomTurn()),
			Lifespan: max(1, w.Lifespan/childLifespanShare),
		}
	}

	w.Steps++
	w.Lifespan--
	if w.Lifespan <= 0 || e.rng.Float64() < e.deathChance(w) {
		return false, child
	}

	e.advance(w)
	return true, child
}

func (e *Engine) budgetMet() bool {
	return e.grid.WalkableCount() >= e.Target
}

func (e *Engine) randomTurn() int {
	return turnSteps[e.rng.Intn(len(turnSteps))]
}

func (e *Engine) splitChance() float64 {
	chance := e.Area.SplitChance
	switch {
	case e.active < splitBoostBelow:
		chance *= splitBoost
	case e.active > splitDampenAbove:
		chance *= splitDampen
	}
	return chance
}

func (e *Engine) deathChance(w *Walker) float64 {
	a := e.Area
	return a.DeathChance + float64(e.active-1)*a.DeathPerWalker + float64(w.Steps)*a.DeathPerStep
}

// carve turns c into floor if it lies in the playable area and is still wall
func (e *Engine) carve(c hex.Coord) {
	if e.grid.IsPlayable(c) && !e.grid.IsWalkable(c) {
		e.grid.SetKind(c, world.Floor)
	}
}

// carveRoom carves the hexes within radius of center, stopping once the target is met
func (e *Engine) carveRoom(center hex.Coord, radius int) {
	for _, c := range hex.Spiral(center, radius) {
		if e.budgetMet() {
			return
		}
		e.carve(c)
	}
}

// advance moves the walker one hex forward, reversing at the edge of the playable area
func (e *Engine) advance(w *Walker) {
	next := w.Pos.Neighbor(w.Heading)
	if !e.grid.IsPlayable(next) {
		w.Heading = w.Heading.Opposite()
		next = w.Pos.Neighbor(w.Heading)
		if !e.grid.IsPlayable(next) {
			return
		}
	}
	w.Pos = next
}
