// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"minion-valley/internal/config"
	"minion-valley/internal/defs"
	"minion-valley/internal/state"
	"minion-valley/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	towersPath := flag.String("towers", "", "path to tower definitions JSON (builtin catalog if empty)")
	enemiesPath := flag.String("enemies", "", "path to enemy definitions JSON (builtin catalog if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 means time-based")
	skipMenu := flag.Bool("skip-menu", false, "start the game without the menu screen")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	// Битые каталоги — фатальная ошибка при старте, не во время игры.
	if *towersPath != "" {
		if err := defs.LoadTowerDefinitions(*towersPath); err != nil {
			log.Fatalf("loading tower definitions: %v", err)
		}
	}
	if *enemiesPath != "" {
		if err := defs.LoadEnemyDefinitions(*enemiesPath); err != nil {
			log.Fatalf("loading enemy definitions: %v", err)
		}
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	faces, err := ui.LoadFaces()
	if err != nil {
		log.Fatalf("loading fonts: %v", err)
	}

	opts := state.Options{
		TowerLib:   defs.TowerLibrary,
		EnemyLib:   defs.EnemyLibrary,
		TowerOrder: []string{"TOWER_BASIC", "TOWER_SNIPER", "TOWER_AREA", "TOWER_SUPPORT"},
		Seed:       *seed,
		Faces:      faces,
	}

	sm := state.NewStateMachine()
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, opts))
	} else {
		sm.SetState(state.NewMenuState(sm, opts))
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Minion Valley")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
