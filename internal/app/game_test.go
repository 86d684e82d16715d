package app

import (
	"testing"

	"minion-valley/internal/component"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/event"
	"minion-valley/internal/system"
	"minion-valley/internal/types"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
	"minion-valley/pkg/gridmap"
)

func newTestGame() *Game {
	m := gridmap.NewMinionValley(config.CellSize)
	return NewGame(m, defs.TowerLibrary, defs.EnemyLibrary, utils.NewPRNGService(1))
}

func buildCell() gridmap.Cell { return gridmap.Cell{X: 5, Y: 5} }

// addFieldEnemy кладёт врага прямо на арену, минуя систему волн.
func addFieldEnemy(g *Game, pos geom.Vec2, health float64, reward, damage int) types.EntityID {
	id := g.ECS.NewEntity()
	g.ECS.Positions[id] = &component.Position{Point: pos}
	g.ECS.Healths[id] = &component.Health{Current: health, Max: health}
	g.ECS.Enemies[id] = &component.Enemy{DefID: "ENEMY_BASIC", Reward: reward, Damage: damage}
	return id
}

func TestPlaceTowerDeductsCost(t *testing.T) {
	g := newTestGame()

	if !g.PlaceTower(buildCell(), "TOWER_BASIC") {
		t.Fatalf("placing on a free cell should succeed")
	}
	if g.Economy.Coins() != config.StartingCoins-100 {
		t.Fatalf("coins = %d, want %d", g.Economy.Coins(), config.StartingCoins-100)
	}
	if len(g.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(g.ECS.Towers))
	}
}

func TestPlaceTowerRejections(t *testing.T) {
	g := newTestGame()

	cases := []struct {
		name  string
		cell  gridmap.Cell
		defID string
	}{
		{"path cell", gridmap.Cell{X: 1, Y: 5}, "TOWER_BASIC"},
		{"border cell", gridmap.Cell{X: 0, Y: 0}, "TOWER_BASIC"},
		{"outside the map", gridmap.Cell{X: 50, Y: 50}, "TOWER_BASIC"},
		{"unknown definition", buildCell(), "TOWER_NOPE"},
	}
	for _, c := range cases {
		if g.PlaceTower(c.cell, c.defID) {
			t.Fatalf("%s: placement should fail", c.name)
		}
		if g.Economy.Coins() != config.StartingCoins {
			t.Fatalf("%s: failed placement must not charge, coins = %d", c.name, g.Economy.Coins())
		}
	}
}

func TestPlaceTowerOccupiedCell(t *testing.T) {
	g := newTestGame()

	g.PlaceTower(buildCell(), "TOWER_BASIC")
	if g.PlaceTower(buildCell(), "TOWER_BASIC") {
		t.Fatalf("second tower on the same cell should fail")
	}
	if g.Economy.Coins() != config.StartingCoins-100 {
		t.Fatalf("coins = %d, only one tower should be charged", g.Economy.Coins())
	}
}

func TestPlaceTowerInsufficientFunds(t *testing.T) {
	g := newTestGame()
	g.Economy.Spend(450) // остаётся 50

	if g.PlaceTower(buildCell(), "TOWER_BASIC") {
		t.Fatalf("placement without funds should fail")
	}
	if g.Economy.Coins() != 50 {
		t.Fatalf("coins = %d, want 50 untouched", g.Economy.Coins())
	}
	if len(g.ECS.Towers) != 0 {
		t.Fatalf("no tower should appear")
	}
}

func TestKillRewardsCoins(t *testing.T) {
	g := newTestGame()

	id := addFieldEnemy(g, geom.Vec2{X: 100, Y: 100}, 10, 10, 1)
	system.ApplyDamage(g.ECS, g.EventDispatcher, id, 10)

	if g.Economy.Coins() != config.StartingCoins+10 {
		t.Fatalf("coins = %d, want %d", g.Economy.Coins(), config.StartingCoins+10)
	}
	if g.Lives() != config.StartingLives {
		t.Fatalf("a kill must not cost lives, lives = %d", g.Lives())
	}
}

func TestLeakCostsLivesNotCoins(t *testing.T) {
	g := newTestGame()

	id := addFieldEnemy(g, geom.Vec2{}, 10, 10, 2)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})

	if g.Lives() != config.StartingLives-2 {
		t.Fatalf("lives = %d, want %d", g.Lives(), config.StartingLives-2)
	}
	if g.Economy.Coins() != config.StartingCoins {
		t.Fatalf("a leak must not grant coins, coins = %d", g.Economy.Coins())
	}
}

func TestSellTowerRefund(t *testing.T) {
	g := newTestGame()

	g.PlaceTower(buildCell(), "TOWER_SNIPER") // 250 монет
	var id types.EntityID
	for towerID := range g.ECS.Towers {
		id = towerID
	}

	refund := g.SellTower(id)
	if refund != 125 {
		t.Fatalf("refund = %d, want floor(250/2) = 125", refund)
	}
	if g.Economy.Coins() != config.StartingCoins-250+125 {
		t.Fatalf("coins = %d after sale", g.Economy.Coins())
	}
	if len(g.ECS.Towers) != 0 {
		t.Fatalf("sold tower should be removed")
	}

	// Повторная продажа по протухшей ссылке — no-op.
	if g.SellTower(id) != 0 {
		t.Fatalf("selling a stale tower should refund 0")
	}
}

func TestSellRefundIgnoresUpgrades(t *testing.T) {
	g := newTestGame()
	g.Economy.Credit(1000)

	g.PlaceTower(buildCell(), "TOWER_BASIC")
	var id types.EntityID
	for towerID := range g.ECS.Towers {
		id = towerID
	}
	if !g.UpgradeTower(id, component.TrackPath1) {
		t.Fatalf("upgrade should succeed")
	}

	// Возврат считается от цены покупки, вложения в улучшения сгорают.
	if refund := g.SellTower(id); refund != 50 {
		t.Fatalf("refund = %d, want 50", refund)
	}
}

func TestUpgradeTowerAtomicity(t *testing.T) {
	g := newTestGame()

	g.PlaceTower(buildCell(), "TOWER_BASIC") // остаётся 400
	var id types.EntityID
	var tower *component.Tower
	for towerID, tw := range g.ECS.Towers {
		id, tower = towerID, tw
	}

	g.Economy.Spend(300) // остаётся 100, первый тир стоит 150

	if g.UpgradeTower(id, component.TrackPath1) {
		t.Fatalf("upgrade without funds should fail")
	}
	if g.Economy.Coins() != 100 {
		t.Fatalf("failed upgrade must not charge, coins = %d", g.Economy.Coins())
	}
	if tower.Tracks[component.TrackPath1].Level != 0 {
		t.Fatalf("failed upgrade must not change the track")
	}

	g.Economy.Credit(50) // ровно 150
	if !g.UpgradeTower(id, component.TrackPath1) {
		t.Fatalf("upgrade with exact funds should succeed")
	}
	if g.Economy.Coins() != 0 {
		t.Fatalf("coins = %d, want 0", g.Economy.Coins())
	}
	if tower.Tracks[component.TrackPath1].Level != 1 {
		t.Fatalf("track level = %d, want 1", tower.Tracks[component.TrackPath1].Level)
	}
}

func TestStaleReferencesAreNoOps(t *testing.T) {
	g := newTestGame()
	const ghost types.EntityID = 12345

	if g.UpgradeTower(ghost, component.TrackPath1) {
		t.Fatalf("upgrading a missing tower should fail")
	}
	if g.SellTower(ghost) != 0 {
		t.Fatalf("selling a missing tower should refund 0")
	}
	if g.SetTargetingStrategy(ghost, defs.TargetFirst) {
		t.Fatalf("setting strategy on a missing tower should fail")
	}
	if g.Economy.Coins() != config.StartingCoins {
		t.Fatalf("no-ops must not touch the balance, coins = %d", g.Economy.Coins())
	}
}

func TestSetTargetingStrategy(t *testing.T) {
	g := newTestGame()

	g.PlaceTower(buildCell(), "TOWER_BASIC")
	var id types.EntityID
	var tower *component.Tower
	for towerID, tw := range g.ECS.Towers {
		id, tower = towerID, tw
	}

	if !g.SetTargetingStrategy(id, defs.TargetLast) {
		t.Fatalf("setting a valid strategy should succeed")
	}
	if tower.Strategy != defs.TargetLast {
		t.Fatalf("strategy = %v, want last", tower.Strategy)
	}

	if g.SetTargetingStrategy(id, defs.TargetingStrategy("BOGUS")) {
		t.Fatalf("unknown strategy should be rejected")
	}
	if tower.Strategy != defs.TargetLast {
		t.Fatalf("rejected strategy must not change the tower")
	}
}

func TestSupportBuffAppliedOnPlacement(t *testing.T) {
	g := newTestGame()
	g.Economy.Credit(1000)

	g.PlaceTower(gridmap.Cell{X: 5, Y: 5}, "TOWER_BASIC")
	g.PlaceTower(gridmap.Cell{X: 6, Y: 5}, "TOWER_SUPPORT")

	if len(g.ECS.Buffs) != 1 {
		t.Fatalf("buffs = %d, want 1 after placing a support tower", len(g.ECS.Buffs))
	}
}

func TestSelectTowerAt(t *testing.T) {
	g := newTestGame()

	cell := buildCell()
	g.PlaceTower(cell, "TOWER_BASIC")
	center := g.Map.CellToPixel(cell)

	id, ok := g.SelectTowerAt(center.Add(geom.Vec2{X: 10}))
	if !ok || id == 0 {
		t.Fatalf("click near the tower should select it")
	}
	if !g.ECS.Towers[id].IsSelected {
		t.Fatalf("selected tower should be flagged")
	}

	if _, ok := g.SelectTowerAt(center.Add(geom.Vec2{X: 100})); ok {
		t.Fatalf("click far away should not select")
	}
	if g.ECS.Towers[id].IsSelected {
		t.Fatalf("previous selection should be cleared")
	}
}

func TestGameOverOnZeroLives(t *testing.T) {
	g := newTestGame()

	id := addFieldEnemy(g, geom.Vec2{}, 10, 10, config.StartingLives)
	g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyReachedEnd, Data: id})
	g.ECS.RemoveEntity(id)
	g.Update(0.01)

	if !g.IsGameOver() {
		t.Fatalf("game should be over at zero lives")
	}

	// После поражения симуляция стоит.
	before := g.GameTime()
	g.Update(1.0)
	if g.GameTime() != before {
		t.Fatalf("simulation should not advance after game over")
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame()

	g.TogglePause()
	g.Update(1.0)
	if g.GameTime() != 0 {
		t.Fatalf("paused game should not advance, time = %v", g.GameTime())
	}

	g.TogglePause()
	g.Update(1.0)
	if g.GameTime() != 1.0 {
		t.Fatalf("resumed game should advance, time = %v", g.GameTime())
	}
}

func TestVictoryAfterFinalWave(t *testing.T) {
	g := newTestGame()

	for wave := 1; wave <= config.FinalWave; wave++ {
		g.ECS.GameTime += config.WaveCooldown
		if !g.StartNextWave() {
			t.Fatalf("wave %d should start", wave)
		}

		for i := 0; i < 10000 && g.EnemiesRemaining() > 0; i++ {
			g.Update(0.1)
			for id := range g.ECS.Enemies {
				g.EventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: id})
				g.ECS.RemoveEntity(id)
			}
		}
		g.Update(0.1)
	}

	if !g.IsGameWon() {
		t.Fatalf("clearing the final wave with lives left should win the game")
	}
	if g.IsGameOver() {
		t.Fatalf("victory and defeat are mutually exclusive")
	}
}

func TestStartNextWaveCooldownGate(t *testing.T) {
	g := newTestGame()

	if !g.StartNextWave() {
		t.Fatalf("first wave should start immediately")
	}
	if g.StartNextWave() {
		t.Fatalf("wave in progress, second start should fail")
	}
	if g.WaveNumber() != 1 {
		t.Fatalf("wave number = %d, want 1", g.WaveNumber())
	}
}
