// internal/state/game_state.go
package state

import (
	game "minion-valley/internal/app"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/system"
	"minion-valley/internal/types"
	"minion-valley/internal/ui"
	"minion-valley/internal/utils"
	"minion-valley/pkg/geom"
	"minion-valley/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GameState — состояние игры
type GameState struct {
	sm       *StateMachine
	opts     Options
	game     *game.Game
	gridMap  *gridmap.Map
	renderer *system.RenderSystem
	sidebar  *ui.Sidebar
}

func NewGameState(sm *StateMachine, opts Options) *GameState {
	m := gridmap.NewMinionValley(config.CellSize)
	rng := utils.NewPRNGService(opts.Seed)
	gameLogic := game.NewGame(m, opts.TowerLib, opts.EnemyLib, rng)

	return &GameState{
		sm:       sm,
		opts:     opts,
		game:     gameLogic,
		gridMap:  m,
		renderer: system.NewRenderSystem(gameLogic.ECS, m),
		sidebar:  ui.NewSidebar(opts.Faces, opts.TowerOrder, opts.TowerLib),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.game.TogglePause()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.game.IsGameOver() || g.game.IsGameWon() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sm.SetState(NewGameState(g.sm, g.opts))
		}
		return
	}

	g.handleKeys()
	g.game.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.sidebar.Contains(x, y) {
			g.handleSidebarClick(x, y)
		} else {
			g.handleGameClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		// Правый клик отменяет режим строительства и выбор башни.
		g.sidebar.SelectedDefID = ""
		g.game.DeselectTower()
	}
}

func (g *GameState) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.game.StartNextWave()
	}

	hotkeys := map[ebiten.Key]int{
		ebiten.Key1: 0,
		ebiten.Key2: 1,
		ebiten.Key3: 2,
		ebiten.Key4: 3,
	}
	for key, idx := range hotkeys {
		if inpututil.IsKeyJustPressed(key) && idx < len(g.opts.TowerOrder) {
			g.toggleBuildSelection(g.opts.TowerOrder[idx])
		}
	}

	if id, ok := g.game.SelectedTower(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyT) {
			g.cycleStrategy(id)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			g.game.UpgradeTower(id, 0)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyW) {
			g.game.UpgradeTower(id, 1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyX) {
			g.game.SellTower(id)
		}
	}
}

func (g *GameState) toggleBuildSelection(defID string) {
	if g.sidebar.SelectedDefID == defID {
		g.sidebar.SelectedDefID = ""
	} else {
		g.sidebar.SelectedDefID = defID
	}
}

func (g *GameState) cycleStrategy(id types.EntityID) {
	tower, ok := g.game.ECS.Towers[id]
	if !ok {
		return
	}
	order := []defs.TargetingStrategy{
		defs.TargetClosest, defs.TargetFirst, defs.TargetLast, defs.TargetRandom,
	}
	for i, strategy := range order {
		if tower.Strategy == strategy {
			g.game.SetTargetingStrategy(id, order[(i+1)%len(order)])
			return
		}
	}
	g.game.SetTargetingStrategy(id, defs.TargetClosest)
}

func (g *GameState) handleSidebarClick(x, y int) {
	for _, b := range g.sidebar.BuildButtons {
		if b.Contains(x, y) && !b.Disabled {
			g.toggleBuildSelection(b.DefID)
			return
		}
	}
	if g.sidebar.StartWaveButton.Contains(x, y) {
		g.game.StartNextWave()
		return
	}

	id, ok := g.game.SelectedTower()
	if !ok {
		return
	}
	if g.sidebar.StrategyButton.Contains(x, y) {
		g.cycleStrategy(id)
		return
	}
	for track := range g.sidebar.UpgradeButtons {
		if g.sidebar.UpgradeButtons[track].Contains(x, y) {
			g.game.UpgradeTower(id, track)
			return
		}
	}
	if g.sidebar.SellButton.Contains(x, y) {
		g.game.SellTower(id)
	}
}

func (g *GameState) handleGameClick(x, y int) {
	p := geom.Vec2{X: float64(x), Y: float64(y)}

	if g.sidebar.SelectedDefID != "" {
		cell := g.gridMap.PixelToCell(p)
		g.game.PlaceTower(cell, g.sidebar.SelectedDefID)
		return
	}

	g.game.SelectTowerAt(p)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	g.drawPlacementPreview(screen)
	g.sidebar.Draw(screen, g.game)

	if g.game.IsGameOver() {
		ui.DrawOverlay(screen, g.opts.Faces, "Game Over", "Press R to restart")
	} else if g.game.IsGameWon() {
		ui.DrawOverlay(screen, g.opts.Faces, "Victory!", "Press R to play again")
	}
}

// drawPlacementPreview подсвечивает клетку под курсором в режиме
// строительства: зелёным, если башню можно поставить и хватает денег.
func (g *GameState) drawPlacementPreview(screen *ebiten.Image) {
	if g.sidebar.SelectedDefID == "" {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.sidebar.Contains(x, y) {
		return
	}
	cell := g.gridMap.PixelToCell(geom.Vec2{X: float64(x), Y: float64(y)})
	if !g.gridMap.Contains(cell) {
		return
	}

	ok := g.gridMap.IsBuildable(cell) && !g.cellOccupied(cell)
	if def, found := g.game.TowerDefinition(g.sidebar.SelectedDefID); found {
		ok = ok && g.game.Economy.CanAfford(def.Cost)
	}
	previewColor := config.PlacementOKColor
	if !ok {
		previewColor = config.PlacementBadColor
	}
	cellSize := float32(g.gridMap.CellSize)
	vector.DrawFilledRect(screen, float32(cell.X)*cellSize, float32(cell.Y)*cellSize, cellSize, cellSize, previewColor, false)
}

func (g *GameState) cellOccupied(cell gridmap.Cell) bool {
	for _, tower := range g.game.ECS.Towers {
		if tower.Cell == cell {
			return true
		}
	}
	return false
}

func (g *GameState) Exit() {}
