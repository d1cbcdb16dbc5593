package state

import (
	"fmt"
	"math/rand"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"hexcrawl/pkg/engine/hex"
	"hexcrawl/pkg/engine/world"
	"hexcrawl/pkg/game/dungeon"
	"hexcrawl/pkg/game/entities"
	"hexcrawl/pkg/game/generator"
)

// Player health at the start and the max health gained per floor descended
const (
	StartingHealth = 100
	HealthPerFloor = 10
)

// Game represents the state of one crawl
type Game struct {
	Level   int   // Current floor number
	Seed    int64 // Base seed, each floor uses Seed + Level
	Dungeon *dungeon.Dungeon
	Player  hex.Coord

	Health    int
	MaxHealth int

	Gold      int // Total gold collected
	Collected *mapset.Set[hex.Coord]

	Enemies []*entities.Enemy // live monsters on this floor, dead ones included

	Messages []string

	VisionRange int

	gen  generator.GridGenerator
	next <-chan *dungeon.Dungeon
	rng  *rand.Rand
}

// NewGame creates a new game on floor 1 and starts building floor 2 in the background
func NewGame(gen generator.GridGenerator, seed int64) *Game {
	if gen == nil {
		gen = generator.DefaultGenerator
	}
	g := &Game{
		Level:       1,
		Seed:        seed,
		Health:      StartingHealth,
		MaxHealth:   StartingHealth,
		Messages:    make([]string, 0),
		VisionRange: world.DefaultVisionRange,
		gen:         gen,
	}
	g.enter(gen.Generate(g.Level, g.FloorSeed(g.Level)))
	return g
}

// FloorSeed returns the seed used for the floor at level
func (g *Game) FloorSeed(level int) int64 {
	return g.Seed + int64(level)
}

// enter installs d as the current floor and queues the one below it
func (g *Game) enter(d *dungeon.Dungeon) {
	g.Dungeon = d
	g.Player = d.Start()
	collected := mapset.New[hex.Coord]()
	g.Collected = &collected
	g.rng = rand.New(rand.NewSource(g.FloorSeed(g.Level)))
	g.spawnEnemies()
	g.reveal()
	g.next = generator.Pregenerate(g.gen, g.Level+1, g.FloorSeed(g.Level+1))
}

func (g *Game) reveal() {
	g.Dungeon.RevealFrom(g.Player, g.VisionRange)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// MoveTo moves the player to an adjacent walkable hex, picking up any gold
// there. Moving into a living enemy attacks it instead. Enemies take their
// turn afterwards. Returns false if the move is not allowed.
func (g *Game) MoveTo(c hex.Coord) bool {
	if g.Dead() || hex.Distance(g.Player, c) != 1 || !g.Dungeon.IsWalkable(c) {
		return false
	}

	if e := g.EnemyAt(c); e != nil {
		g.report(g.fight(e))
	} else {
		g.Player = c
		g.collect(c)
	}

	if !g.Dead() {
		g.enemyTurns()
	}
	g.reveal()
	return true
}

func (g *Game) collect(c hex.Coord) {
	value := g.Dungeon.GoldValue(c)
	if value <= 0 || g.Collected.Has(c) {
		return
	}
	g.Collected.Put(c)
	g.Gold += value
	g.AddMessage(fmt.Sprintf(gotext.Get("PICKED_UP_GOLD"), value))
}

// Dead returns true once the player has no health left
func (g *Game) Dead() bool {
	return g.Health <= 0
}

// Step moves the player one hex in direction d
func (g *Game) Step(d hex.Direction) bool {
	return g.MoveTo(g.Player.Neighbor(d))
}

// HasGoldAt returns true if uncollected gold lies at c
func (g *Game) HasGoldAt(c hex.Coord) bool {
	return g.Dungeon.GoldValue(c) > 0 && !g.Collected.Has(c)
}

// OnStairs returns true if the player stands on the stairs
func (g *Game) OnStairs() bool {
	return g.Dungeon.HasStairs() && g.Player == g.Dungeon.Stairs()
}

// Descend discards the current floor and moves to the next one, restoring
// health. Returns false if the player is not on the stairs.
func (g *Game) Descend() bool {
	if !g.OnStairs() {
		return false
	}
	g.Level++
	g.MaxHealth += HealthPerFloor
	g.Health = g.MaxHealth
	d := <-g.next
	if d == nil {
		d = g.gen.Generate(g.Level, g.FloorSeed(g.Level))
	}
	g.enter(d)
	return true
}
