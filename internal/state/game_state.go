// internal/state/game_state.go
package state

import (
	"image"
	"log"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	irender "go-battle-city/internal/render"
	"go-battle-city/internal/types"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// gameOverStop - где останавливается надпись GAME OVER.
	gameOverStop = 188
	// gameOverSpeed - скорость надписи, пикселей в секунду.
	gameOverSpeed = 200
)

// GameState - состояние игры
type GameState struct {
	sm        *StateMachine
	env       *Env
	game      *app.Game
	terrain   *render.TerrainRenderer
	entities  *irender.RenderSystem
	sidebar   *ui.Sidebar
	gameOverY float64
}

func NewGameState(sm *StateMachine, env *Env, game *app.Game) *GameState {
	colors := &render.TerrainColors{
		Background: config.BackgroundColor,
		Brick:      config.BrickColor,
		Steel:      config.SteelColor,
		Grass:      config.GrassColor,
		Ice:        config.IceColor,
		Water:      config.WaterColors,
	}
	return &GameState{
		sm:        sm,
		env:       env,
		game:      game,
		terrain:   render.NewTerrainRenderer(game.World.Grid, colors, image.Point{}),
		entities:  irender.NewRenderSystem(game.World, env.Face, image.Point{}),
		sidebar:   ui.NewSidebar(config.ArenaSize, env.Face),
		gameOverY: config.ScreenHeight,
	}
}

// Game возвращает партию, которую ведёт это состояние.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(elapsed time.Duration) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.sm.Stop(nil)
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.game.ToggleSound()
	}

	for slot, c := range DefaultControls {
		for i, key := range c.Keys() {
			g.game.Press(slot, types.Direction(i), ebiten.IsKeyPressed(key))
		}
		if inpututil.IsKeyJustPressed(c.Fire) {
			g.game.Fire(slot)
		}
	}

	if err := g.game.Update(elapsed); err != nil {
		log.Printf("Game update failed: %v", err)
		g.sm.Stop(err)
		return
	}

	if g.game.Phase == component.PhaseGameOver && g.gameOverY > gameOverStop {
		g.gameOverY -= gameOverSpeed * elapsed.Seconds()
		if g.gameOverY < gameOverStop {
			g.gameOverY = gameOverStop
		}
	}

	if g.game.ScoresDue {
		g.sm.SetState(NewScoreState(g.sm, g.env, g.game))
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.terrain.Draw(screen)
	g.entities.Draw(screen, g.game.GameTime())
	g.terrain.DrawCanopy(screen)

	if g.game.Phase == component.PhaseGameOver {
		render.DrawOutlinedText(screen, "GAME OVER", g.env.Face, config.ArenaSize/2-render.TextWidth("GAME OVER", g.env.Face)/2, int(g.gameOverY), 1, config.TitleColor, config.LabelColor)
	}

	lives := make([]int, len(g.game.World.Players))
	for _, p := range g.game.World.Players {
		if p.Player.Slot < len(lives) {
			lives[p.Player.Slot] = p.Player.Lives
		}
	}
	g.sidebar.Draw(screen, ui.SidebarInfo{
		EnemiesLeft: g.game.EnemiesLeft(),
		Lives:       lives,
		Stage:       g.game.Stage,
	})
}

func (g *GameState) Exit() {
	// Клавиши, зажатые при выходе, не должны вести танк после возврата
	for slot := range DefaultControls {
		g.game.Release(slot)
	}
}
