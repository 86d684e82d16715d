// internal/system/render.go
package system

import (
	"math"

	"minion-valley/internal/config"
	"minion-valley/internal/entity"
	"minion-valley/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует карту и сущности
type RenderSystem struct {
	ecs *entity.ECS
	m   *gridmap.Map
}

func NewRenderSystem(ecs *entity.ECS, m *gridmap.Map) *RenderSystem {
	return &RenderSystem{ecs: ecs, m: m}
}

func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawMap(screen)
	s.drawRangeRings(screen)

	// Сущности с Renderable: башни, враги, снаряды
	for id, render := range s.ecs.Renderables {
		pos, hasPos := s.ecs.Positions[id]
		if !hasPos {
			continue
		}
		if render.HasStroke {
			strokeRadius := render.Radius + 2
			vector.DrawFilledCircle(screen, float32(pos.Point.X), float32(pos.Point.Y), strokeRadius, config.TowerStrokeColor, true)
		}
		vector.DrawFilledCircle(screen, float32(pos.Point.X), float32(pos.Point.Y), render.Radius, render.Color, true)
	}

	s.drawTowerBarrels(screen)
	s.drawEnemyOverlays(screen)
}

func (s *RenderSystem) drawMap(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	cellSize := float32(s.m.CellSize)
	for cell, tile := range s.m.Tiles {
		x := float32(cell.X) * cellSize
		y := float32(cell.Y) * cellSize
		if tile.IsPath {
			vector.DrawFilledRect(screen, x, y, cellSize, cellSize, config.PathColor, false)
		}
	}

	// Сетка поверх тайлов
	for x := 0; x <= s.m.Width; x++ {
		px := float32(x) * cellSize
		vector.StrokeLine(screen, px, 0, px, float32(s.m.Height)*cellSize, 1.0, config.GridLineColor, false)
	}
	for y := 0; y <= s.m.Height; y++ {
		py := float32(y) * cellSize
		vector.StrokeLine(screen, 0, py, float32(s.m.Width)*cellSize, py, 1.0, config.GridLineColor, false)
	}
}

// drawRangeRings рисует радиус атаки выбранной башни под сущностями.
func (s *RenderSystem) drawRangeRings(screen *ebiten.Image) {
	for id, tower := range s.ecs.Towers {
		if !tower.IsSelected {
			continue
		}
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		vector.StrokeCircle(screen, float32(pos.Point.X), float32(pos.Point.Y), float32(tower.Range), 2.0, config.RangeRingColor, true)
	}
}

// drawTowerBarrels рисует направление ствола башни к её цели.
func (s *RenderSystem) drawTowerBarrels(screen *ebiten.Image) {
	for id, tower := range s.ecs.Towers {
		render, hasRender := s.ecs.Renderables[id]
		pos, hasPos := s.ecs.Positions[id]
		if !hasRender || !hasPos {
			continue
		}
		if _, hasTarget := s.ecs.Enemies[tower.TargetID]; !hasTarget {
			continue
		}
		length := float64(render.Radius) * 1.4
		endX := pos.Point.X + math.Cos(tower.Angle)*length
		endY := pos.Point.Y + math.Sin(tower.Angle)*length
		vector.StrokeLine(screen, float32(pos.Point.X), float32(pos.Point.Y), float32(endX), float32(endY), 3.0, config.TowerStrokeColor, true)
	}
}

func (s *RenderSystem) drawEnemyOverlays(screen *ebiten.Image) {
	for id := range s.ecs.Enemies {
		pos, hasPos := s.ecs.Positions[id]
		health, hasHealth := s.ecs.Healths[id]
		render, hasRender := s.ecs.Renderables[id]
		if !hasPos || !hasHealth || !hasRender {
			continue
		}

		barX := float32(pos.Point.X) - config.HealthBarWidth/2
		barY := float32(pos.Point.Y) - render.Radius - 10
		vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBackColor, false)
		if health.Max > 0 {
			ratio := float32(health.Current / health.Max)
			vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth*ratio, config.HealthBarHeight, config.HealthBarFillColor, false)
		}

		// Точки статусов над полосой здоровья
		pipY := barY - 5
		if _, burning := s.ecs.Burns[id]; burning {
			vector.DrawFilledCircle(screen, barX+4, pipY, 3, config.BurningPipColor, true)
		}
		if _, slowed := s.ecs.Slows[id]; slowed {
			vector.DrawFilledCircle(screen, barX+12, pipY, 3, config.SlowPipColor, true)
		}
	}
}
