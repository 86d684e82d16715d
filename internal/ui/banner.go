// internal/ui/banner.go
package ui

import (
	"image/color"

	"minion-valley/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var overlayColor = color.RGBA{0, 0, 0, 160}

// DrawOverlay затемняет экран и выводит заголовок с подсказкой.
func DrawOverlay(screen *ebiten.Image, faces *Faces, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, overlayColor, false)

	titleBounds := text.BoundString(faces.Title, title)
	titleX := (config.ScreenWidth - titleBounds.Dx()) / 2
	titleY := config.ScreenHeight/2 - 10
	text.Draw(screen, title, faces.Title, titleX, titleY, config.TextColor)

	if subtitle != "" {
		subBounds := text.BoundString(faces.Text, subtitle)
		subX := (config.ScreenWidth - subBounds.Dx()) / 2
		text.Draw(screen, subtitle, faces.Text, subX, titleY+28, config.TextColor)
	}
}
