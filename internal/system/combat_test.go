package system

import (
	"testing"

	"minion-valley/internal/component"
	"minion-valley/internal/defs"
	"minion-valley/internal/entity"
	"minion-valley/internal/types"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
	"minion-valley/pkg/gridmap"
)

// addTower ставит боеготовую башню: кулдаун уже прошёл.
func addTower(ecs *entity.ECS, defID string, pos geom.Vec2) (types.EntityID, *component.Tower) {
	def := defs.TowerLibrary[defID]
	id := ecs.NewEntity()
	tower := component.NewTower(def, gridmap.Cell{})
	tower.LastShotTime = ecs.GameTime - tower.Cooldown
	ecs.Towers[id] = tower
	ecs.Positions[id] = &component.Position{Point: pos}
	return id, tower
}

func firstProjectile(ecs *entity.ECS) *component.Projectile {
	for _, proj := range ecs.Projectiles {
		return proj
	}
	return nil
}

func TestCombatRangeBoundary(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	_, tower := addTower(ecs, "TOWER_BASIC", geom.Vec2{}) // радиус 150
	inRange := addEnemy(ecs, geom.Vec2{X: 149}, 100)

	sys.Update(1.0 / 60.0)
	if tower.TargetID != inRange {
		t.Fatalf("enemy at 149 should be targeted with range 150")
	}
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(ecs.Projectiles))
	}
}

func TestCombatOutOfRangeIgnored(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	_, tower := addTower(ecs, "TOWER_BASIC", geom.Vec2{})
	addEnemy(ecs, geom.Vec2{X: 151}, 100)

	sys.Update(1.0 / 60.0)
	if tower.TargetID != 0 {
		t.Fatalf("enemy at 151 should not be targeted with range 150")
	}
	if len(ecs.Projectiles) != 0 {
		t.Fatalf("no projectile expected, got %d", len(ecs.Projectiles))
	}
}

func TestCombatClosestTieBreaksByID(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	_, tower := addTower(ecs, "TOWER_BASIC", geom.Vec2{})
	first := addEnemy(ecs, geom.Vec2{X: 50}, 100)
	addEnemy(ecs, geom.Vec2{X: -50}, 100) // та же дистанция, больший ID

	sys.Update(1.0 / 60.0)
	if tower.TargetID != first {
		t.Fatalf("equidistant tie should resolve to the lowest ID")
	}
}

func TestCombatFirstAndLastStrategies(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	path := []geom.Vec2{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 100, Y: 0}}
	behind := addWalker(ecs, path, 1.0, 1)
	ahead := addWalker(ecs, path, 1.0, 2)

	_, tower := addTower(ecs, "TOWER_BASIC", geom.Vec2{X: 50, Y: 10})
	tower.Strategy = defs.TargetFirst
	sys.Update(1.0 / 60.0)
	if tower.TargetID != ahead {
		t.Fatalf("first strategy should pick the enemy furthest along the path")
	}

	tower.Strategy = defs.TargetLast
	tower.TargetID = 0
	sys.Update(1.0 / 60.0)
	if tower.TargetID != behind {
		t.Fatalf("last strategy should pick the enemy earliest on the path")
	}
}

func TestCombatCooldownGating(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	addTower(ecs, "TOWER_BASIC", geom.Vec2{}) // кулдаун 1.0
	addEnemy(ecs, geom.Vec2{X: 50}, 1000)

	sys.Update(1.0 / 60.0)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("first shot should fire, projectiles = %d", len(ecs.Projectiles))
	}

	// Кулдаун ещё не прошёл.
	ecs.GameTime += 0.5
	sys.Update(1.0 / 60.0)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("no second shot before cooldown, projectiles = %d", len(ecs.Projectiles))
	}

	ecs.GameTime += 0.5
	sys.Update(1.0 / 60.0)
	if len(ecs.Projectiles) != 2 {
		t.Fatalf("second shot after cooldown, projectiles = %d", len(ecs.Projectiles))
	}
}

func TestCombatSupportTowerNeverFires(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	addTower(ecs, "TOWER_SUPPORT", geom.Vec2{})
	addEnemy(ecs, geom.Vec2{X: 50}, 100)

	sys.Update(1.0 / 60.0)
	if len(ecs.Projectiles) != 0 {
		t.Fatalf("support tower must not fire, projectiles = %d", len(ecs.Projectiles))
	}
}

func TestCombatBuffMultipliesDamage(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	towerID, _ := addTower(ecs, "TOWER_BASIC", geom.Vec2{})
	ecs.Buffs[towerID] = &component.Buff{DamageMultiplier: 1.2}
	addEnemy(ecs, geom.Vec2{X: 50}, 100)

	sys.Update(1.0 / 60.0)
	proj := firstProjectile(ecs)
	if proj == nil {
		t.Fatalf("expected a projectile")
	}
	if proj.Damage != 12 {
		t.Fatalf("buffed damage = %v, want 12", proj.Damage)
	}
}

func TestCombatGuaranteedCritDoublesDamage(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	_, tower := addTower(ecs, "TOWER_BASIC", geom.Vec2{})
	tower.AddsCritical = true
	tower.CriticalChance = 1.0
	addEnemy(ecs, geom.Vec2{X: 50}, 100)

	sys.Update(1.0 / 60.0)
	proj := firstProjectile(ecs)
	if proj == nil {
		t.Fatalf("expected a projectile")
	}
	if !proj.IsCritical || proj.Damage != 20 {
		t.Fatalf("crit = %v damage = %v, want critical 20", proj.IsCritical, proj.Damage)
	}
}

func TestCombatBurningTowerArmsProjectile(t *testing.T) {
	ecs, _ := newTestWorld()
	sys := NewCombatSystem(ecs, utils.NewPRNGService(1))

	_, tower := addTower(ecs, "TOWER_AREA", geom.Vec2{})
	tower.AddsBurning = true
	tower.BurningDamageMult = 2.0
	addEnemy(ecs, geom.Vec2{X: 50}, 100)

	sys.Update(1.0 / 60.0)
	proj := firstProjectile(ecs)
	if proj == nil {
		t.Fatalf("expected a projectile")
	}
	if !proj.AppliesBurning || proj.BurnDamagePerSec != 10 {
		t.Fatalf("burn dps = %v, want 5 * 2 = 10", proj.BurnDamagePerSec)
	}
	if proj.SplashRadius != 80 {
		t.Fatalf("projectile splash = %v, want 80", proj.SplashRadius)
	}
}
