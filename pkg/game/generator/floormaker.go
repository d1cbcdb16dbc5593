// Package generator builds dungeon floors with FloorMakers: random walkers
// that carve corridors and round rooms into an empty hex grid, followed by
// stairs, gold and enemy placement and a reachability check.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/floor"
	"hexcrawl/pkg/logger"
)

// DefaultMaxAttempts is how many walker layouts are tried before falling back
const DefaultMaxAttempts = 5

// attemptSeedStride separates the seeds of successive attempts on one floor
const attemptSeedStride int64 = 1_000_003

// Reasons an attempt is thrown away
var (
	ErrUndersized   = errors.New("walkers died before the floor target was met")
	ErrNoStairsSite = errors.New("no floor tile far enough for the stairs")
	ErrCrowded      = errors.New("not enough free floor for placements")
	ErrDisconnected = errors.New("placements unreachable from start")
)

// FloorMakerGenerator generates floors with walker carving
type FloorMakerGenerator struct {
	table       floor.Table
	maxAttempts int
	log         *logrus.Entry
}

// Option configures a FloorMakerGenerator
type Option func(*FloorMakerGenerator)

// WithMaxAttempts sets how many layouts are tried before the fallback.
// Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(g *FloorMakerGenerator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithLogger replaces the generator's log entry
func WithLogger(l *logrus.Entry) Option {
	return func(g *FloorMakerGenerator) {
		if l != nil {
			g.log = l
		}
	}
}

// NewFloorMaker creates a generator over table. Fails if the table is invalid.
func NewFloorMaker(table floor.Table, opts ...Option) (*FloorMakerGenerator, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("floor table: %w", err)
	}
	g := &FloorMakerGenerator{
		table:       table,
		maxAttempts: DefaultMaxAttempts,
		log:         logger.Component("generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Name returns the name of this generator
func (g *FloorMakerGenerator) Name() string {
	return "FloorMaker"
}

// Table returns the depth table the generator was built with
func (g *FloorMakerGenerator) Table() floor.Table {
	return g.table
}

// MaxAttempts returns how many layouts are tried before the fallback
func (g *FloorMakerGenerator) MaxAttempts() int {
	return g.maxAttempts
}

// Generate builds the floor at depth. Depths outside the table are clamped.
// It always returns a sealed, connected floor: bad layouts are retried with
// a derived seed and, once attempts run out, replaced by a minimal corridor.
func (g *FloorMakerGenerator) Generate(depth int, seed int64) *dungeon.Dungeon {
	p := g.table.ParamsFor(depth)
	log := g.log.WithFields(logrus.Fields{
		"depth": p.Depth,
		"seed":  seed,
		"area":  p.Area.Name,
	})

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		d, err := g.attempt(p, attemptSeed(seed, attempt))
		if err != nil {
			log.WithField("attempt", attempt).WithError(err).Debug("Floor attempt rejected")
			continue
		}
		d.Seed = seed
		d.Attempts = attempt
		d.Seal()
		log.WithFields(logrus.Fields{
			"attempt": attempt,
			"carved":  d.WalkableCount(),
			"target":  p.TargetFloorTiles,
		}).Debug("Floor generated")
		return d
	}

	d := fallbackFloor(p, seed)
	d.Seed = seed
	d.Attempts = g.maxAttempts + 1
	d.Seal()
	if !d.Validate() {
		log.Error("Fallback floor failed validation")
	}
	log.WithField("attempts", g.maxAttempts).Warn("Using fallback floor layout")
	return d
}

// attemptSeed derives the seed of one attempt from the floor seed
func attemptSeed(seed int64, attempt int) int64 {
	return seed + int64(attempt-1)*attemptSeedStride
}

// attempt carves and populates one candidate floor
func (g *FloorMakerGenerator) attempt(p floor.Params, seed int64) (*dungeon.Dungeon, error) {
	rng := rand.New(rand.NewSource(seed))
	grid := world.NewBoundedGrid(p.Radius)
	start := hex.Origin

	engine := NewEngine(grid, rng, p)
	res := engine.Run(Walker{
		Pos:      start,
		Heading:  hex.Direction(rng.Intn(hex.DirectionCount)),
		Lifespan: p.WalkerLifespan,
	})
	if !res.TargetMet {
		return nil, fmt.Errorf("carved %d of %d in %d steps: %w", res.Carved, p.TargetFloorTiles, res.Steps, ErrUndersized)
	}

	d := dungeon.New(grid, start)
	d.Depth = p.Depth
	d.Area = p.Area

	if err := populate(d, rng, p); err != nil {
		return nil, err
	}
	encloseWalls(grid)

	if !d.Validate() {
		return nil, ErrDisconnected
	}
	return d, nil
}
