// component/movement.go
package component

import "minion-valley/pkg/geom"

// Position — компонент позиции
type Position struct {
	Point geom.Vec2
}

// Velocity — компонент скорости (в "пикселях за кадр", см. config.FrameRateScale)
type Velocity struct {
	Speed float64
}

// Path — компонент следования по пути
type Path struct {
	Waypoints    []geom.Vec2
	CurrentIndex int
}
