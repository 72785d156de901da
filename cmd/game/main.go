// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	elapsed := now.Sub(a.lastUpdateTime)
	a.lastUpdateTime = now
	a.stateMachine.Update(elapsed)
	return a.stateMachine.Err()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settingsPath := flag.String("config", "settings.toml", "Path to the TOML settings file")
	writeConfig := flag.Bool("write-config", false, "Write the settings file with all keys filled in and exit")
	flag.Parse()

	if *writeConfig {
		if _, err := config.WriteSettingsFile(*settingsPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("Settings written to %s", *settingsPath)
		return
	}

	env, err := app.Bootstrap(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	defer env.Close()

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm, &state.Env{
		Settings: env.Settings,
		Levels:   env.Levels,
		Sounds:   env.Sounds,
		Face:     basicfont.Face7x13,
	}))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetTPS(config.TicksPerSecond)
	ebiten.SetWindowSize(config.ScreenWidth*2, config.ScreenHeight*2)
	ebiten.SetWindowTitle("Battle City")
	ebiten.SetFullscreen(env.Settings.Fullscreen)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
