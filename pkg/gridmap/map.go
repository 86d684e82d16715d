// pkg/gridmap/map.go
package gridmap

import (
	"minion-valley/pkg/geom"
)

// Cell — координаты клетки сетки (столбец, строка).
type Cell struct {
	X, Y int
}

type Tile struct {
	IsPath        bool
	CanPlaceTower bool
}

// Map — игровая карта: квадратная сетка с фиксированным путём врагов.
// Путь неизменяем после создания карты: враги читают его по индексу,
// башни его никогда не трогают.
type Map struct {
	Name     string
	CellSize int
	Width    int // в клетках
	Height   int // в клетках
	Tiles    map[Cell]Tile

	waypoints []Cell      // путь в координатах сетки
	path      []geom.Vec2 // путь в пикселях (центры клеток)
}

// New создаёт карту из списка путевых точек. Клетки пути и граница
// карты непригодны для строительства.
func New(name string, width, height, cellSize int, waypoints []Cell) *Map {
	m := &Map{
		Name:      name,
		CellSize:  cellSize,
		Width:     width,
		Height:    height,
		Tiles:     make(map[Cell]Tile),
		waypoints: waypoints,
	}

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			border := x == 0 || y == 0 || x == width-1 || y == height-1
			m.Tiles[Cell{x, y}] = Tile{CanPlaceTower: !border}
		}
	}

	m.tracePath()

	m.path = make([]geom.Vec2, len(waypoints))
	for i, wp := range waypoints {
		m.path[i] = m.CellToPixel(wp)
	}
	return m
}

// tracePath помечает все клетки между соседними путевыми точками как путь.
// Сегменты пути строго горизонтальные или вертикальные.
func (m *Map) tracePath() {
	for i := 0; i < len(m.waypoints)-1; i++ {
		cur := m.waypoints[i]
		end := m.waypoints[i+1]
		dx := sign(end.X - cur.X)
		dy := sign(end.Y - cur.Y)
		for {
			m.Tiles[cur] = Tile{IsPath: true, CanPlaceTower: false}
			if cur == end {
				break
			}
			cur.X += dx
			cur.Y += dy
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Path возвращает путь врагов в пиксельных координатах.
func (m *Map) Path() []geom.Vec2 {
	return m.path
}

func (m *Map) SpawnPoint() geom.Vec2 {
	return m.path[0]
}

func (m *Map) EndPoint() geom.Vec2 {
	return m.path[len(m.path)-1]
}

func (m *Map) Contains(c Cell) bool {
	_, ok := m.Tiles[c]
	return ok
}

// IsBuildable сообщает, можно ли строить башню в клетке.
func (m *Map) IsBuildable(c Cell) bool {
	t, ok := m.Tiles[c]
	return ok && t.CanPlaceTower
}

func (m *Map) IsPath(c Cell) bool {
	t, ok := m.Tiles[c]
	return ok && t.IsPath
}

// CellToPixel возвращает пиксельный центр клетки.
func (m *Map) CellToPixel(c Cell) geom.Vec2 {
	half := float64(m.CellSize) / 2
	return geom.Vec2{
		X: float64(c.X*m.CellSize) + half,
		Y: float64(c.Y*m.CellSize) + half,
	}
}

// PixelToCell возвращает клетку, содержащую пиксельную координату.
func (m *Map) PixelToCell(p geom.Vec2) Cell {
	return Cell{
		X: int(p.X) / m.CellSize,
		Y: int(p.Y) / m.CellSize,
	}
}
