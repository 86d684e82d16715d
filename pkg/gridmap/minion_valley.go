// pkg/gridmap/minion_valley.go
package gridmap

// NewMinionValley строит встроенную карту "Minion Valley":
// S-образный путь слева направо на сетке 16x10.
func NewMinionValley(cellSize int) *Map {
	waypoints := []Cell{
		{0, 5}, // вход слева
		{3, 5},
		{3, 2},
		{8, 2},
		{8, 8},
		{12, 8},
		{12, 4},
		{15, 4}, // выход справа
	}
	return New("Minion Valley", 16, 10, cellSize, waypoints)
}
