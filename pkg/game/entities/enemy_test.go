package entities

import (
	"math/rand"
	"testing"

	"hexcrawl/pkg/engine/hex"
)

func TestKindForDepth_StaysInPool(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, depth := range []int{1, 2, 3, 4, 5, 6, 20} {
		pool := EnemyPoolForDepth(depth)
		allowed := make(map[EnemyKind]bool)
		for _, k := range pool {
			allowed[k] = true
		}
		for i := 0; i < 50; i++ {
			if k := KindForDepth(depth, rng); !allowed[k] {
				t.Fatalf("KindForDepth(%d) = %v, not in pool %v", depth, k, pool)
			}
		}
	}
}

func TestEnemyPoolForDepth_ShallowHasNoTrolls(t *testing.T) {
	for _, k := range EnemyPoolForDepth(1) {
		if k == EnemyTroll {
			t.Error("depth 1 pool contains trolls")
		}
	}
	hasTroll := false
	for _, k := range EnemyPoolForDepth(12) {
		if k == EnemyTroll {
			hasTroll = true
		}
	}
	if !hasTroll {
		t.Error("deep pool has no trolls")
	}
}

func TestEnemyTypes_AllKindsHaveInfo(t *testing.T) {
	for _, k := range []EnemyKind{EnemyGoblin, EnemySkeleton, EnemyOrc, EnemyTroll} {
		info, ok := EnemyTypes[k]
		if !ok {
			t.Errorf("no info for %v", k)
			continue
		}
		if info.Health <= 0 || info.Icon == 0 {
			t.Errorf("%v info incomplete: %+v", k, info)
		}
	}
	if EnemyKind(99).Info() != EnemyTypes[EnemyGoblin] {
		t.Error("unknown kind should fall back to goblin info")
	}
}

func TestGoldValue_ScalesWithDepth(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := GoldValue(3, rng)
		if v < GoldMinValue*3 || v > GoldMaxValue*3 {
			t.Fatalf("GoldValue(3) = %d, want within [%d, %d]", v, GoldMinValue*3, GoldMaxValue*3)
		}
	}
	if v := GoldValue(-2, rng); v < GoldMinValue || v > GoldMaxValue {
		t.Errorf("GoldValue(-2) = %d, want depth clamped to 1", v)
	}
}

func TestEnemy_TakeDamageRespectsDefense(t *testing.T) {
	e := NewEnemy(EnemyTroll, hex.Origin, hex.East)
	if got := e.TakeDamage(3); got != 1 {
		t.Errorf("TakeDamage(3) vs defense 8 = %d, want 1", got)
	}
	if got := e.TakeDamage(20); got != 12 {
		t.Errorf("TakeDamage(20) = %d, want 12", got)
	}
	if e.Health != e.MaxHealth-13 {
		t.Errorf("Health = %d, want %d", e.Health, e.MaxHealth-13)
	}
	e.TakeDamage(1000)
	if e.Alive() || e.Health != 0 {
		t.Errorf("Health = %d after overkill, want 0", e.Health)
	}
}

func TestEnemy_AttackRollRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	e := NewEnemy(EnemyOrc, hex.Origin, hex.East)
	attack := EnemyOrc.Info().Attack
	for i := 0; i < 100; i++ {
		if got := e.AttackRoll(rng); got < attack-2 || got > attack+2 {
			t.Fatalf("AttackRoll() = %d, want within [%d, %d]", got, attack-2, attack+2)
		}
	}
}

func TestEnemy_ReadyFollowsMoveFrequency(t *testing.T) {
	e := NewEnemy(EnemyTroll, hex.Origin, hex.East)
	freq := EnemyTroll.Info().MoveFrequency
	for turn := 1; turn <= 3*freq; turn++ {
		if got, want := e.Ready(), turn%freq == 0; got != want {
			t.Errorf("turn %d: Ready() = %v, want %v", turn, got, want)
		}
	}
}

func TestEnemy_NoticeChaseAndGiveUp(t *testing.T) {
	e := NewEnemy(EnemyGoblin, hex.Origin, hex.East)
	info := EnemyGoblin.Info()

	e.Notice(info.DetectionRange + 1)
	if e.Chasing {
		t.Fatal("chasing before the player was detected")
	}
	e.Notice(info.DetectionRange)
	if !e.Chasing {
		t.Fatal("not chasing inside detection range")
	}
	e.Notice(info.ChaseRange)
	if !e.Chasing {
		t.Error("gave up inside chase range")
	}
	e.Notice(info.ChaseRange + 1)
	if e.Chasing {
		t.Error("still chasing beyond chase range")
	}
}

func TestPlayerDamageRoll_ScalesWithLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		if got := PlayerDamageRoll(1, rng); got < 12 || got > 18 {
			t.Fatalf("PlayerDamageRoll(1) = %d, want within [12, 18]", got)
		}
		if got := PlayerDamageRoll(4, rng); got < 18 || got > 24 {
			t.Fatalf("PlayerDamageRoll(4) = %d, want within [18, 24]", got)
		}
	}
}
