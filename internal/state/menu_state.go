// internal/state/menu_state.go
package state

import (
	"minion-valley/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuState — стартовый экран
type MenuState struct {
	sm   *StateMachine
	opts Options
}

func NewMenuState(sm *StateMachine, opts Options) *MenuState {
	return &MenuState{sm: sm, opts: opts}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		m.sm.SetState(NewGameState(m.sm, m.opts))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	ui.DrawOverlay(screen, m.opts.Faces, "Minion Valley", "Press Space to start")
}

func (m *MenuState) Exit() {}
