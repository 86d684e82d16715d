// internal/ui/hud.go
package ui

import (
	"fmt"
	"strings"

	"minion-valley/internal/app"
	"minion-valley/internal/config"
	"minion-valley/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BuildButton — кнопка строительства конкретного типа башни.
type BuildButton struct {
	Button
	DefID string
	Cost  int
}

// Sidebar — боковая панель: статистика, кнопки строительства и
// управление выбранной башней.
type Sidebar struct {
	faces *Faces

	BuildButtons    []*BuildButton
	StartWaveButton *Button
	StrategyButton  *Button
	UpgradeButtons  [2]*Button
	SellButton      *Button

	// SelectedDefID — тип башни, выбранный для строительства.
	SelectedDefID string
}

const (
	sidebarPadding = 12
	buttonHeight   = 28
	buttonSpacing  = 8
	statsHeight    = 120
)

func NewSidebar(faces *Faces, towerOrder []string, towerLib map[string]defs.TowerDefinition) *Sidebar {
	s := &Sidebar{faces: faces}

	x := config.ScreenWidth - config.SidebarWidth + sidebarPadding
	w := config.SidebarWidth - 2*sidebarPadding
	y := statsHeight

	for _, id := range towerOrder {
		def, ok := towerLib[id]
		if !ok {
			continue
		}
		b := &BuildButton{
			Button: *NewButton(x, y, w, buttonHeight, fmt.Sprintf("%s (%d)", def.Name, def.Cost)),
			DefID:  def.ID,
			Cost:   def.Cost,
		}
		s.BuildButtons = append(s.BuildButtons, b)
		y += buttonHeight + buttonSpacing
	}

	y += buttonSpacing
	s.StartWaveButton = NewButton(x, y, w, buttonHeight+6, "Start Wave")
	y += buttonHeight + 6 + 2*buttonSpacing

	s.StrategyButton = NewButton(x, y, w, buttonHeight, "Strategy")
	y += buttonHeight + buttonSpacing
	s.UpgradeButtons[0] = NewButton(x, y, w, buttonHeight, "Upgrade A")
	y += buttonHeight + buttonSpacing
	s.UpgradeButtons[1] = NewButton(x, y, w, buttonHeight, "Upgrade B")
	y += buttonHeight + buttonSpacing
	s.SellButton = NewButton(x, y, w, buttonHeight, "Sell")

	return s
}

// Contains сообщает, попадает ли точка в область панели.
func (s *Sidebar) Contains(x, y int) bool {
	return x >= config.ScreenWidth-config.SidebarWidth
}

// Draw отрисовывает панель по текущему состоянию игры.
func (s *Sidebar) Draw(screen *ebiten.Image, g *app.Game) {
	panelX := float32(config.ScreenWidth - config.SidebarWidth)
	vector.DrawFilledRect(screen, panelX, 0, config.SidebarWidth, config.ScreenHeight, config.SidebarColor, false)

	s.drawStats(screen, g)
	s.drawBuildButtons(screen, g)
	s.drawWaveButton(screen, g)
	s.drawTowerPanel(screen, g)
}

func (s *Sidebar) drawStats(screen *ebiten.Image, g *app.Game) {
	x := config.ScreenWidth - config.SidebarWidth + sidebarPadding
	y := 24

	text.Draw(screen, fmt.Sprintf("Coins: %d", g.Economy.Coins()), s.faces.Title, x, y, config.HighlightColor)
	y += 24
	livesColor := config.TextColor
	if g.Lives() <= 20 {
		livesColor = config.DangerColor
	}
	text.Draw(screen, fmt.Sprintf("Lives: %d", g.Lives()), s.faces.Title, x, y, livesColor)
	y += 24

	wave := g.WaveNumber()
	if wave > 0 {
		waveColor := config.TextColor
		if wave%config.BossWaveInterval == 0 {
			waveColor = config.DangerColor
		}
		text.Draw(screen, "Wave "+toRoman(wave), s.faces.Title, x, y, waveColor)
	} else {
		text.Draw(screen, "Wave 0", s.faces.Title, x, y, config.TextColor)
	}
	y += 24

	if g.EnemiesRemaining() > 0 {
		text.Draw(screen, fmt.Sprintf("Enemies: %d", g.EnemiesRemaining()), s.faces.Text, x, y, config.TextColor)
	} else if cd := g.CooldownRemaining(); cd > 0 {
		text.Draw(screen, fmt.Sprintf("Next wave in %.1fs", cd), s.faces.Text, x, y, config.TextColor)
	}
}

func (s *Sidebar) drawBuildButtons(screen *ebiten.Image, g *app.Game) {
	for _, b := range s.BuildButtons {
		b.Active = b.DefID == s.SelectedDefID
		b.Disabled = !g.Economy.CanAfford(b.Cost)
		b.Button.Draw(screen, s.faces.Text)
	}
}

func (s *Sidebar) drawWaveButton(screen *ebiten.Image, g *app.Game) {
	s.StartWaveButton.Disabled = g.WaveSystem.WaveInProgress() ||
		!g.WaveSystem.CanStartNextWave(g.GameTime())
	s.StartWaveButton.Draw(screen, s.faces.Text)
}

func (s *Sidebar) drawTowerPanel(screen *ebiten.Image, g *app.Game) {
	id, ok := g.SelectedTower()
	if !ok {
		return
	}
	tower := g.ECS.Towers[id]
	if tower == nil {
		return
	}

	s.StrategyButton.Text = "Target: " + strategyLabel(tower.Strategy)
	s.StrategyButton.Disabled = tower.Class == defs.TowerSupport
	s.StrategyButton.Draw(screen, s.faces.Text)

	labels := [2]string{"A", "B"}
	for i := range s.UpgradeButtons {
		b := s.UpgradeButtons[i]
		tr := tower.Tracks[i]
		switch {
		case tr.Locked:
			b.Text = fmt.Sprintf("Path %s: locked", labels[i])
			b.Disabled = true
		case tr.Level >= len(tr.Tiers):
			b.Text = fmt.Sprintf("Path %s: max", labels[i])
			b.Disabled = true
		default:
			cost := tower.UpgradeCost(i)
			b.Text = fmt.Sprintf("%s (%d)", tr.Tiers[tr.Level].Name, cost)
			b.Disabled = !g.Economy.CanAfford(cost)
		}
		b.Draw(screen, s.faces.Text)
	}

	s.SellButton.Text = fmt.Sprintf("Sell (+%d)", tower.Cost/config.SellRefundDivisor)
	s.SellButton.Disabled = false
	s.SellButton.Draw(screen, s.faces.Text)
}

func strategyLabel(strategy defs.TargetingStrategy) string {
	switch strategy {
	case defs.TargetFirst:
		return "First"
	case defs.TargetLast:
		return "Last"
	case defs.TargetRandom:
		return "Random"
	default:
		return "Closest"
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
