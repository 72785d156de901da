// internal/state/menu_state.go
package state

import (
	"fmt"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/ui"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// introSpeed - скорость выезда заставки снизу, пикселей в секунду.
const introSpeed = 200

// MenuState - заставка с выбором числа игроков
type MenuState struct {
	sm      *StateMachine
	env     *Env
	menu    *ui.Menu
	hiscore int
	offset  float64
	title   *ebiten.Image
	frame   *ebiten.Image
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	menu := ui.NewMenu(165, 250, env.Face, "1 PLAYER", "2 PLAYERS")
	if env.Settings.Players == 2 {
		menu.Selected = 1
	}
	return &MenuState{sm: sm, env: env, menu: menu}
}

func (m *MenuState) Enter() {
	m.hiscore = app.LoadHiscore(m.env.Settings.HiscoreFile)
	m.offset = config.ScreenHeight
	m.frame = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	m.title = ebiten.NewImage(render.TextWidth("BATTLE", m.env.Face), 2*m.env.Face.Metrics().Height.Ceil())
	render.DrawText(m.title, "BATTLE", m.env.Face, 0, 0, config.BrickColor)
	render.DrawText(m.title, " CITY", m.env.Face, 0, m.env.Face.Metrics().Height.Ceil(), config.BrickColor)
}

// Players возвращает выбранное число игроков.
func (m *MenuState) Players() int {
	return m.menu.Selected + 1
}

func (m *MenuState) Update(elapsed time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		m.sm.Stop(nil)
		return
	}
	// Пока заставка выезжает, Enter только досрочно её показывает
	if m.offset > 0 {
		m.offset -= introSpeed * elapsed.Seconds()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			m.offset = 0
		}
		if m.offset < 0 {
			m.offset = 0
		}
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		m.menu.Prev()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		m.menu.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		game := app.NewGame(m.env.Settings, m.env.Levels, m.env.Sounds)
		game.Start(m.Players())
		m.sm.SetState(NewGameState(m.sm, m.env, game))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	frame := m.frame
	frame.Clear()

	render.DrawText(frame, fmt.Sprintf("HI- %d", m.hiscore), m.env.Face, 170, 35, config.LabelColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(5, 5)
	op.GeoM.Translate(65, 80)
	frame.DrawImage(m.title, op)
	m.menu.Draw(frame)
	render.DrawText(frame, "M - SOUND  P - PAUSE  Q - QUIT", m.env.Face, 65, 350, config.LabelColor)

	fop := &ebiten.DrawImageOptions{}
	fop.GeoM.Translate(0, m.offset)
	screen.DrawImage(frame, fop)
}

func (m *MenuState) Exit() {
	for _, img := range []*ebiten.Image{m.title, m.frame} {
		if img != nil {
			img.Deallocate()
		}
	}
}
