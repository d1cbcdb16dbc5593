package entities

import (
	"math/rand"

	"github.com/leonelquinteros/gotext"

	"hexcrawl/pkg/engine/hex"
)

// EnemyKind represents the different monsters that can spawn on a floor
type EnemyKind int

const (
	EnemyGoblin   EnemyKind = iota // Fast, weak, shallow floors
	EnemySkeleton                  // Fragile but far-sighted
	EnemyOrc                       // Mid-depth bruiser
	EnemyTroll                     // Slow, heavy hitter on deep floors
)

// EnemyInfo contains stats and behavior tuning for each enemy kind
type EnemyInfo struct {
	Icon           rune
	Health         int
	Attack         int
	Defense        int
	GoldReward     int
	MoveFrequency  int // turns between moves
	DetectionRange int // hexes at which the player is noticed
	ChaseRange     int // hexes the enemy will follow before giving up
}

// EnemyTypes maps each enemy kind to its info
var EnemyTypes = map[EnemyKind]EnemyInfo{
	EnemyGoblin: {
		Icon: 'g',
		Health: 20, Attack: 8, Defense: 2, GoldReward: 15,
		MoveFrequency: 2, DetectionRange: 2, ChaseRange: 4,
	},
	EnemySkeleton: {
		Icon: 's',
		Health: 15, Attack: 10, Defense: 1, GoldReward: 10,
		MoveFrequency: 1, DetectionRange: 4, ChaseRange: 6,
	},
	EnemyOrc: {
		Icon: 'o',
		Health: 35, Attack: 12, Defense: 4, GoldReward: 25,
		MoveFrequency: 3, DetectionRange: 3, ChaseRange: 5,
	},
	EnemyTroll: {
		Icon: 'T',
		Health: 60, Attack: 18, Defense: 8, GoldReward: 50,
		MoveFrequency: 4, DetectionRange: 2, ChaseRange: 3,
	},
}

// String returns the untranslated name of the kind
func (k EnemyKind) String() string {
	switch k {
	case EnemyGoblin:
		return "goblin"
	case EnemySkeleton:
		return "skeleton"
	case EnemyOrc:
		return "orc"
	case EnemyTroll:
		return "troll"
	default:
		return "unknown"
	}
}

// Info returns the stats for the kind, falling back to goblin stats
func (k EnemyKind) Info() EnemyInfo {
	if info, ok := EnemyTypes[k]; ok {
		return info
	}
	return EnemyTypes[EnemyGoblin]
}

// DisplayName returns the translated enemy name
func (k EnemyKind) DisplayName() string {
	switch k {
	case EnemySkeleton:
		return gotext.Get("ENEMY_SKELETON")
	case EnemyOrc:
		return gotext.Get("ENEMY_ORC")
	case EnemyTroll:
		return gotext.Get("ENEMY_TROLL")
	default:
		return gotext.Get("ENEMY_GOBLIN")
	}
}

// enemyPools lists which kinds can appear up to a given depth.
// Trolls appear twice in the deepest pool so they turn up more often.
var enemyPools = []struct {
	maxDepth int
	kinds    []EnemyKind
}{
	{1, []EnemyKind{EnemyGoblin, EnemySkeleton}},
	{3, []EnemyKind{EnemyGoblin, EnemySkeleton, EnemyOrc}},
	{5, []EnemyKind{EnemyOrc, EnemySkeleton, EnemyTroll}},
}

var deepPool = []EnemyKind{EnemyOrc, EnemyTroll, EnemyTroll}

// EnemyPoolForDepth returns the kinds that may spawn at depth
func EnemyPoolForDepth(depth int) []EnemyKind {
	for _, p := range enemyPools {
		if depth <= p.maxDepth {
			return p.kinds
		}
	}
	return deepPool
}

// KindForDepth picks a random enemy kind appropriate for depth
func KindForDepth(depth int, rng *rand.Rand) EnemyKind {
	pool := EnemyPoolForDepth(depth)
	return pool[rng.Intn(len(pool))]
}

// Enemy is a live monster on the current floor
type Enemy struct {
	Kind      EnemyKind
	Pos       hex.Coord
	Health    int
	MaxHealth int
	Chasing   bool
	Heading   hex.Direction // preferred wander direction

	turnsSinceMove int
}

// NewEnemy creates a full-health enemy of kind at pos
func NewEnemy(kind EnemyKind, pos hex.Coord, heading hex.Direction) *Enemy {
	info := kind.Info()
	return &Enemy{
		Kind:      kind,
		Pos:       pos,
		Health:    info.Health,
		MaxHealth: info.Health,
		Heading:   heading,
	}
}

// Alive returns true while the enemy has health left
func (e *Enemy) Alive() bool {
	return e.Health > 0
}

// TakeDamage applies damage reduced by defense, never less than 1.
// Returns the damage actually dealt.
func (e *Enemy) TakeDamage(damage int) int {
	dealt := max(1, damage-e.Kind.Info().Defense)
	e.Health = max(0, e.Health-dealt)
	return dealt
}

// AttackRoll rolls the damage of one enemy attack
func (e *Enemy) AttackRoll(rng *rand.Rand) int {
	return max(1, e.Kind.Info().Attack+rng.Intn(5)-2)
}

// Ready counts one turn and returns true when the enemy may move this turn
func (e *Enemy) Ready() bool {
	e.turnsSinceMove++
	if e.turnsSinceMove < e.Kind.Info().MoveFrequency {
		return false
	}
	e.turnsSinceMove = 0
	return true
}

// Notice updates the chase state for a player distance hexes away.
// Enemies start chasing inside DetectionRange and give up beyond ChaseRange.
func (e *Enemy) Notice(distance int) {
	info := e.Kind.Info()
	switch {
	case distance <= info.DetectionRange:
		e.Chasing = true
	case e.Chasing && distance > info.ChaseRange:
		e.Chasing = false
	}
}

// PlayerDamageRoll rolls the damage of one player attack on floor level
func PlayerDamageRoll(level int, rng *rand.Rand) int {
	const base, perLevel = 15, 2
	return base + (max(1, level)-1)*perLevel + rng.Intn(7) - 3
}
