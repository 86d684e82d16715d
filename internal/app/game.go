// internal/app/game.go
package app

import (
	"minion-valley/internal/component"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/entity"
	"minion-valley/internal/event"
	"minion-valley/internal/system"
	"minion-valley/internal/types"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
	"minion-valley/pkg/gridmap"
)

// Game владеет симуляцией: ECS-ареной, системами и экономикой.
// Каталоги башен и врагов передаются при создании — скрытого
// глобального состояния внутри симуляции нет.
type Game struct {
	Map *gridmap.Map
	ECS *entity.ECS

	MovementSystem     *system.MovementSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	SupportSystem      *system.SupportSystem
	ProjectileSystem   *system.ProjectileSystem
	WaveSystem         *system.WaveSystem
	EventDispatcher    *event.Dispatcher

	Economy *Economy
	Rng     *utils.PRNGService

	towerLib map[string]defs.TowerDefinition

	lives         int
	gameOver      bool
	gameWon       bool
	paused        bool
	selectedTower types.EntityID
}

// NewGame собирает симуляцию над картой и каталогами. Сид rng задаёт
// всю случайность игры (перемешивание волн, криты, случайные цели).
func NewGame(m *gridmap.Map, towerLib map[string]defs.TowerDefinition,
	enemyLib map[string]defs.EnemyDefinition, rng *utils.PRNGService) *Game {
	if m == nil {
		panic("map cannot be nil")
	}

	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()

	g := &Game{
		Map:             m,
		ECS:             ecs,
		EventDispatcher: dispatcher,
		Economy:         NewEconomy(config.StartingCoins),
		Rng:             rng,
		towerLib:        towerLib,
		lives:           config.StartingLives,
	}

	g.MovementSystem = system.NewMovementSystem(ecs, dispatcher)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, dispatcher)
	g.CombatSystem = system.NewCombatSystem(ecs, rng)
	g.SupportSystem = system.NewSupportSystem(ecs)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, dispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, dispatcher, rng, enemyLib, m.Path())

	// Награда — только за убийство; проход до конца пути стоит жизней,
	// но монет не приносит.
	dispatcher.SubscribeFunc(event.EnemyKilled, func(e event.Event) {
		id := e.Data.(types.EntityID)
		if enemy, ok := ecs.Enemies[id]; ok {
			g.Economy.Credit(enemy.Reward)
		}
	})
	dispatcher.SubscribeFunc(event.EnemyReachedEnd, func(e event.Event) {
		id := e.Data.(types.EntityID)
		if enemy, ok := ecs.Enemies[id]; ok {
			g.lives -= enemy.Damage
		}
	})

	return g
}

// Update продвигает симуляцию на один тик. Порядок фаз фиксирован:
// спавн волны → эффекты и движение врагов → башни → снаряды →
// проверка условий конца игры.
func (g *Game) Update(deltaTime float64) {
	if g.gameOver || g.gameWon || g.paused {
		return
	}

	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.StatusEffectSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)

	g.checkEndConditions()
}

func (g *Game) checkEndConditions() {
	if g.lives <= 0 {
		g.lives = 0
		g.gameOver = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameOver})
		return
	}
	if g.WaveSystem.CurrentWave() >= config.FinalWave &&
		!g.WaveSystem.WaveInProgress() &&
		g.WaveSystem.EnemiesRemaining() == 0 {
		g.gameWon = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameWon})
	}
}

// PlaceTower строит башню в клетке. Отказ (чужая клетка, занято,
// нет денег, неизвестный тип) не меняет состояние игры.
func (g *Game) PlaceTower(cell gridmap.Cell, defID string) bool {
	def, ok := g.towerLib[defID]
	if !ok {
		return false
	}
	if !g.Map.IsBuildable(cell) {
		return false
	}
	for _, tower := range g.ECS.Towers {
		if tower.Cell == cell {
			return false
		}
	}
	if !g.Economy.Spend(def.Cost) {
		return false
	}

	id := g.ECS.NewEntity()
	tower := component.NewTower(def, cell)
	// Свежая башня стреляет сразу, не дожидаясь первого кулдауна.
	tower.LastShotTime = g.ECS.GameTime - tower.Cooldown
	g.ECS.Towers[id] = tower
	g.ECS.Positions[id] = &component.Position{Point: g.Map.CellToPixel(cell)}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:     def.Visuals.Color,
		Radius:    float32(config.CellSize * def.Visuals.RadiusFactor),
		HasStroke: def.Visuals.StrokeWidth > 0,
	}

	g.SupportSystem.RecalculateBuffs()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return true
}

// UpgradeTower улучшает башню по ветке (TrackPath1/TrackPath2).
// Списание атомарно: при любом отказе баланс не трогается.
func (g *Game) UpgradeTower(id types.EntityID, track int) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return false
	}
	cost := tower.UpgradeCost(track)
	if cost == 0 {
		return false
	}
	if !g.Economy.CanAfford(cost) {
		return false
	}
	if !tower.Upgrade(track) {
		return false
	}
	g.Economy.Spend(cost)

	g.SupportSystem.RecalculateBuffs()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return true
}

// SellTower продаёт башню и возвращает floor(cost/2) монет.
// Несуществующая башня — no-op с нулевым возвратом.
func (g *Game) SellTower(id types.EntityID) int {
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0
	}
	refund := tower.Cost / config.SellRefundDivisor
	g.Economy.Credit(refund)
	g.ECS.RemoveEntity(id)
	if g.selectedTower == id {
		g.selectedTower = 0
	}

	g.SupportSystem.RecalculateBuffs()
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return refund
}

// SetTargetingStrategy меняет стратегию прицеливания башни и сбрасывает
// текущую цель, чтобы выбор произошёл заново.
func (g *Game) SetTargetingStrategy(id types.EntityID, strategy defs.TargetingStrategy) bool {
	tower, ok := g.ECS.Towers[id]
	if !ok || !defs.ValidStrategy(strategy) {
		return false
	}
	tower.Strategy = strategy
	tower.TargetID = 0
	return true
}

// SelectTowerAt выбирает ближайшую башню в радиусе клика.
// Возвращает 0, false при промахе; предыдущий выбор снимается.
func (g *Game) SelectTowerAt(p geom.Vec2) (types.EntityID, bool) {
	if prev, ok := g.ECS.Towers[g.selectedTower]; ok {
		prev.IsSelected = false
	}
	g.selectedTower = 0

	var best types.EntityID
	bestDist := config.TowerSelectionRadius
	for id := range g.ECS.Towers {
		pos, ok := g.ECS.Positions[id]
		if !ok {
			continue
		}
		dist := p.Dist(pos.Point)
		if dist < bestDist || (dist == bestDist && (best == 0 || id < best)) {
			best = id
			bestDist = dist
		}
	}
	if best == 0 {
		return 0, false
	}
	g.ECS.Towers[best].IsSelected = true
	g.selectedTower = best
	return best, true
}

// DeselectTower снимает текущий выбор.
func (g *Game) DeselectTower() {
	if prev, ok := g.ECS.Towers[g.selectedTower]; ok {
		prev.IsSelected = false
	}
	g.selectedTower = 0
}

func (g *Game) SelectedTower() (types.EntityID, bool) {
	_, ok := g.ECS.Towers[g.selectedTower]
	return g.selectedTower, ok
}

// StartNextWave запускает волну, если перерыв прошёл и волна не идёт.
func (g *Game) StartNextWave() bool {
	if g.gameOver || g.gameWon {
		return false
	}
	if !g.WaveSystem.CanStartNextWave(g.ECS.GameTime) {
		return false
	}
	return g.WaveSystem.StartWave()
}

func (g *Game) TowerDefinition(defID string) (defs.TowerDefinition, bool) {
	def, ok := g.towerLib[defID]
	return def, ok
}

func (g *Game) Lives() int        { return g.lives }
func (g *Game) IsGameOver() bool  { return g.gameOver }
func (g *Game) IsGameWon() bool   { return g.gameWon }
func (g *Game) IsPaused() bool    { return g.paused }
func (g *Game) TogglePause()      { g.paused = !g.paused }
func (g *Game) GameTime() float64 { return g.ECS.GameTime }

func (g *Game) WaveNumber() int            { return g.WaveSystem.CurrentWave() }
func (g *Game) EnemiesRemaining() int      { return g.WaveSystem.EnemiesRemaining() }
func (g *Game) CooldownRemaining() float64 { return g.WaveSystem.CooldownRemaining(g.ECS.GameTime) }
