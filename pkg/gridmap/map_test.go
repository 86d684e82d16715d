package gridmap

import (
	"testing"

	"minion-valley/pkg/geom"
)

func TestMinionValleyLayout(t *testing.T) {
	m := NewMinionValley(64)

	if m.Width != 16 || m.Height != 10 {
		t.Fatalf("map size = %dx%d, want 16x10", m.Width, m.Height)
	}
	if len(m.Path()) != 8 {
		t.Fatalf("path waypoints = %d, want 8", len(m.Path()))
	}

	spawn := m.SpawnPoint()
	if spawn != (geom.Vec2{X: 32, Y: 5*64 + 32}) {
		t.Fatalf("spawn point = %v", spawn)
	}
	end := m.EndPoint()
	if end != (geom.Vec2{X: 15*64 + 32, Y: 4*64 + 32}) {
		t.Fatalf("end point = %v", end)
	}
}

func TestPathCellsNotBuildable(t *testing.T) {
	m := NewMinionValley(64)

	// Путевые точки и промежуточные клетки сегментов помечены как путь.
	pathCells := []Cell{{0, 5}, {1, 5}, {3, 5}, {3, 3}, {5, 2}, {8, 5}, {12, 6}, {15, 4}}
	for _, c := range pathCells {
		if !m.IsPath(c) {
			t.Fatalf("cell %v should be path", c)
		}
		if m.IsBuildable(c) {
			t.Fatalf("path cell %v should not be buildable", c)
		}
	}
}

func TestBorderNotBuildable(t *testing.T) {
	m := NewMinionValley(64)

	border := []Cell{{0, 0}, {15, 0}, {0, 9}, {15, 9}, {7, 0}, {7, 9}}
	for _, c := range border {
		if m.IsBuildable(c) {
			t.Fatalf("border cell %v should not be buildable", c)
		}
	}

	if !m.IsBuildable(Cell{5, 5}) {
		t.Fatalf("interior free cell should be buildable")
	}
}

func TestOutOfBounds(t *testing.T) {
	m := NewMinionValley(64)

	outside := []Cell{{-1, 0}, {16, 0}, {0, 10}, {100, 100}}
	for _, c := range outside {
		if m.Contains(c) {
			t.Fatalf("cell %v should be outside the map", c)
		}
		if m.IsBuildable(c) {
			t.Fatalf("cell %v outside the map should not be buildable", c)
		}
	}
}

func TestCellPixelRoundTrip(t *testing.T) {
	m := NewMinionValley(64)

	cell := Cell{7, 3}
	px := m.CellToPixel(cell)
	if px != (geom.Vec2{X: 7*64 + 32, Y: 3*64 + 32}) {
		t.Fatalf("CellToPixel = %v", px)
	}
	if back := m.PixelToCell(px); back != cell {
		t.Fatalf("PixelToCell(CellToPixel(%v)) = %v", cell, back)
	}

	// Любая точка внутри клетки попадает в ту же клетку.
	if got := m.PixelToCell(geom.Vec2{X: 7*64 + 1, Y: 3*64 + 63}); got != cell {
		t.Fatalf("PixelToCell corner = %v, want %v", got, cell)
	}
}
