// Package floor defines the per-depth generation parameters: which area type
// a floor is carved as and how difficulty scales the deeper the player goes.
// Everything here is an immutable value handed to the generator explicitly.
package floor

import (
	"errors"
	"fmt"

	"github.com/leonelquinteros/gotext"

	"hexcrawl/pkg/engine/hex"
)

// AreaType is a named bundle of walker probabilities that gives a floor its layout style
type AreaType struct {
	Name string

	TurnChance  float64 // chance to turn on a given step
	UTurnChance float64 // chance that a turn is a full reversal
	RoomChance  float64 // chance to carve a round room around the walker
	SplitChance float64 // chance to spawn another walker

	DeathChance    float64 // base chance for a walker to die on a step
	DeathPerWalker float64 // added per other active walker
	DeathPerStep   float64 // added per step the walker has taken

	RoomRadiusMin int
	RoomRadiusMax int
}

// Built-in area types
var (
	Dungeon = AreaType{
		Name:           "dungeon",
		TurnChance:     0.15,
		UTurnChance:    0.05,
		RoomChance:     0.08,
		SplitChance:    0.03,
		DeathChance:    0.001,
		DeathPerWalker: 0.002,
		DeathPerStep:   0.0001,
		RoomRadiusMin:  2,
		RoomRadiusMax:  3,
	}
	Corridors = AreaType{
		Name:           "corridors",
		TurnChance:     0.08,
		UTurnChance:    0.02,
		RoomChance:     0.04,
		SplitChance:    0.02,
		DeathChance:    0.001,
		DeathPerWalker: 0.002,
		DeathPerStep:   0.0001,
		RoomRadiusMin:  1,
		RoomRadiusMax:  2,
	}
	Caverns = AreaType{
		Name:           "caverns",
		TurnChance:     0.25,
		UTurnChance:    0.12,
		RoomChance:     0.15,
		SplitChance:    0.08,
		DeathChance:    0.001,
		DeathPerWalker: 0.002,
		DeathPerStep:   0.0001,
		RoomRadiusMin:  2,
		RoomRadiusMax:  4,
	}
)

// DisplayName returns the translated area name.
// Uses gotext.Get with constant keys to satisfy vet.
func (a AreaType) DisplayName() string {
	switch a.Name {
	case Dungeon.Name:
		return gotext.Get("AREA_DUNGEON")
	case Corridors.Name:
		return gotext.Get("AREA_CORRIDORS")
	case Caverns.Name:
		return gotext.Get("AREA_CAVERNS")
	default:
		return a.Name
	}
}

// Validate checks that every probability is in [0, 1] and the room radius range is sane
func (a AreaType) Validate() error {
	probs := []struct {
		name string
		p    float64
	}{
		{"turn", a.TurnChance},
		{"u-turn", a.UTurnChance},
		{"room", a.RoomChance},
		{"split", a.SplitChance},
		{"death", a.DeathChance},
		{"death per walker", a.DeathPerWalker},
		{"death per step", a.DeathPerStep},
	}
	for _, p := range probs {
		if p.p < 0 || p.p > 1 {
			return fmt.Errorf("area %q: %s chance %v: %w", a.Name, p.name, p.p, ErrProbability)
		}
	}
	if a.RoomRadiusMin < 0 || a.RoomRadiusMax < a.RoomRadiusMin {
		return fmt.Errorf("area %q: room radius %d..%d: %w", a.Name, a.RoomRadiusMin, a.RoomRadiusMax, ErrRoomRadius)
	}
	return nil
}

// Bracket assigns an area type to every depth up to and including MaxDepth
type Bracket struct {
	MaxDepth int
	Area     AreaType
}

// Scaling holds the coefficients of the difficulty formulas
type Scaling struct {
	BaseFloorTiles     int
	FloorTilesPerDepth int

	BaseEnemies int
	EnemyEvery  int // one extra enemy every EnemyEvery depths

	BaseGold  int
	GoldEvery int // one extra gold pile every GoldEvery depths

	BaseStairsDistance int
	StairsEvery        int // stairs one hex further every StairsEvery depths

	EnemySafeDistance int // no spawn closer than this to the start

	BaseRadius     int // bounding radius of the floor
	RadiusPerDepth int

	MaxWalkers       int
	LifespanFactor   int // seed walker lifespan = target * LifespanFactor
	FixedLifespan    int // when positive, used as the seed walker lifespan instead
	StepBudgetFactor int // hard cap on walker steps = target * StepBudgetFactor
	StairsSampleSize int // far tiles sampled when choosing the stairs
}

// Params are the resolved generation parameters for one depth
type Params struct {
	Depth int
	Area  AreaType

	TargetFloorTiles  int
	EnemyCount        int
	GoldCount         int
	MinStairsDistance int
	EnemySafeDistance int

	Radius           int
	MaxWalkers       int
	WalkerLifespan   int
	StepBudget       int
	StairsSampleSize int
}

// Table is the depth-keyed configuration consumed by the generator
type Table struct {
	MinDepth int
	MaxDepth int
	Brackets []Bracket // ascending by MaxDepth
	Scaling  Scaling
}

// Sentinel errors returned by Validate
var (
	ErrProbability = errors.New("probability out of range")
	ErrRoomRadius  = errors.New("invalid room radius range")
	ErrDepthRange  = errors.New("invalid depth range")
	ErrBrackets    = errors.New("invalid area brackets")
	ErrScaling     = errors.New("invalid scaling")
)

// DefaultTable returns the shipped configuration: dungeon on the first two
// floors, corridors to floor five, caverns beyond.
func DefaultTable() Table {
	return Table{
		MinDepth: 1,
		MaxDepth: 30,
		Brackets: []Bracket{
			{MaxDepth: 2, Area: Dungeon},
			{MaxDepth: 5, Area: Corridors},
			{MaxDepth: 30, Area: Caverns},
		},
		Scaling: Scaling{
			BaseFloorTiles:     80,
			FloorTilesPerDepth: 15,
			BaseEnemies:        2,
			EnemyEvery:         2,
			BaseGold:           3,
			GoldEvery:          2,
			BaseStairsDistance: 4,
			StairsEvery:        2,
			EnemySafeDistance:  3,
			BaseRadius:         10,
			RadiusPerDepth:     1,
			MaxWalkers:         8,
			LifespanFactor:     3,
			StepBudgetFactor:   20,
			StairsSampleSize:   12,
		},
	}
}

// Validate checks the table for values the generator cannot work with
func (t Table) Validate() error {
	if t.MinDepth < 0 || t.MaxDepth < t.MinDepth {
		return fmt.Errorf("depth %d..%d: %w", t.MinDepth, t.MaxDepth, ErrDepthRange)
	}
	if len(t.Brackets) == 0 {
		return fmt.Errorf("no brackets: %w", ErrBrackets)
	}
	prev := t.MinDepth - 1
	for i, b := range t.Brackets {
		if b.MaxDepth <= prev {
			return fmt.Errorf("bracket %d max depth %d not above %d: %w", i, b.MaxDepth, prev, ErrBrackets)
		}
		if err := b.Area.Validate(); err != nil {
			return fmt.Errorf("bracket %d: %w", i, err)
		}
		prev = b.MaxDepth
	}
	if prev < t.MaxDepth {
		return fmt.Errorf("brackets end at depth %d, table runs to %d: %w", prev, t.MaxDepth, ErrBrackets)
	}

	s := t.Scaling
	switch {
	case s.BaseFloorTiles < 1, s.FloorTilesPerDepth < 0:
		return fmt.Errorf("floor tiles: %w", ErrScaling)
	case s.BaseEnemies < 0, s.BaseGold < 0, s.BaseStairsDistance < 1, s.EnemySafeDistance < 1:
		return fmt.Errorf("placement counts: %w", ErrScaling)
	case s.EnemyEvery < 1, s.GoldEvery < 1, s.StairsEvery < 1:
		return fmt.Errorf("depth divisors must be positive: %w", ErrScaling)
	case s.MaxWalkers < 1, s.LifespanFactor < 0, s.FixedLifespan < 0, s.StepBudgetFactor < 1, s.StairsSampleSize < 1:
		return fmt.Errorf("walker limits: %w", ErrScaling)
	case s.BaseRadius < 2, s.RadiusPerDepth < 0:
		return fmt.Errorf("radius: %w", ErrScaling)
	}
	return nil
}

// ClampDepth pulls a depth into the table's defined range
func (t Table) ClampDepth(depth int) int {
	if depth < t.MinDepth {
		return t.MinDepth
	}
	if depth > t.MaxDepth {
		return t.MaxDepth
	}
	return depth
}

// AreaFor returns the area type of the bracket containing depth (after clamping)
func (t Table) AreaFor(depth int) AreaType {
	depth = t.ClampDepth(depth)
	for _, b := range t.Brackets {
		if depth <= b.MaxDepth {
			return b.Area
		}
	}
	if len(t.Brackets) == 0 {
		return Dungeon
	}
	return t.Brackets[len(t.Brackets)-1].Area
}

// ParamsFor resolves the generation parameters for depth.
// Depths outside the table clamp to the nearest defined depth.
func (t Table) ParamsFor(depth int) Params {
	depth = t.ClampDepth(depth)
	s := t.Scaling

	target := s.BaseFloorTiles + depth*s.FloorTilesPerDepth

	// Keep the playable area at least twice the target so walkers have room to roam
	radius := s.BaseRadius + depth*s.RadiusPerDepth
	for hex.CountWithin(radius-1) < 2*target {
		radius++
	}

	lifespan := target * s.LifespanFactor
	if s.FixedLifespan > 0 {
		lifespan = s.FixedLifespan
	}
	if lifespan < 1 {
		lifespan = 1
	}

	return Params{
		Depth:             depth,
		Area:              t.AreaFor(depth),
		TargetFloorTiles:  target,
		EnemyCount:        s.BaseEnemies + depth/s.EnemyEvery,
		GoldCount:         s.BaseGold + depth/s.GoldEvery,
		MinStairsDistance: s.BaseStairsDistance + depth/s.StairsEvery,
		EnemySafeDistance: s.EnemySafeDistance,
		Radius:            radius,
		MaxWalkers:        s.MaxWalkers,
		WalkerLifespan:    lifespan,
		StepBudget:        target * s.StepBudgetFactor,
		StairsSampleSize:  s.StairsSampleSize,
	}
}
