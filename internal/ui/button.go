// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Active   bool // подсветка выбранной кнопки
}

var (
	buttonBgColor       = color.RGBA{70, 90, 110, 255}
	buttonActiveColor   = color.RGBA{41, 128, 185, 255}
	buttonDisabledColor = color.RGBA{55, 65, 75, 255}
	buttonBorderColor   = color.RGBA{120, 140, 160, 255}
	buttonTextColor     = color.RGBA{236, 240, 241, 255}
	buttonMutedColor    = color.RGBA{140, 150, 160, 255}
)

func NewButton(x, y, w, h int, label string) *Button {
	return &Button{
		Rect: image.Rect(x, y, x+w, y+h),
		Text: label,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Point{X: x, Y: y}.In(b.Rect)
}

// Draw отрисовывает кнопку с текстом по центру.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := buttonBgColor
	fg := buttonTextColor
	switch {
	case b.Disabled:
		bg = buttonDisabledColor
		fg = buttonMutedColor
	case b.Active:
		bg = buttonActiveColor
	}

	x := float32(b.Rect.Min.X)
	y := float32(b.Rect.Min.Y)
	w := float32(b.Rect.Dx())
	h := float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1.0, buttonBorderColor, false)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, textX, textY, fg)
}
