package component

import "image/color"

// Renderable — компонент отрисовки
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
