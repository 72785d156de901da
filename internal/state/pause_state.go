// internal/state/pause_state.go
package state

import (
	"image/color"
	"time"

	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает партию: время игры не идёт, пока он активен.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(elapsed time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.stateMachine.Stop(nil)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ArenaSize, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	face := s.previousState.env.Face
	render.DrawTextCentered(screen, "PAUSED", face, config.ArenaSize/2, config.ScreenHeight/2-10, config.LabelColor)
}

func (s *PauseState) Exit() {}
