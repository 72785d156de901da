// internal/state/score_state.go
package state

import (
	"log"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ScoreState показывает очки за стадию и решает, что дальше: следующая
// стадия или возврат в меню после поражения.
type ScoreState struct {
	sm    *StateMachine
	env   *Env
	game  *app.Game
	table *ui.ScoreTable
}

func NewScoreState(sm *StateMachine, env *Env, game *app.Game) *ScoreState {
	return &ScoreState{sm: sm, env: env, game: game}
}

func (s *ScoreState) Enter() {
	hiscore := s.game.RecordHiscore()
	players := make([]*component.PlayerState, 0, len(s.game.World.Players))
	for _, p := range s.game.World.Players {
		players = append(players, p.Player)
	}
	s.table = ui.NewScoreTable(s.game.Stage, hiscore, players)
}

func (s *ScoreState) Update(elapsed time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.sm.Stop(nil)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.table.Skip()
	}
	if s.table.Update(elapsed) {
		s.game.World.PlaySound(audio.SoundScore)
	}
	if !s.table.Finished() {
		return
	}
	if s.game.Phase == component.PhaseGameOver {
		log.Printf("Game over, final stage %d", s.game.Stage)
		s.sm.SetState(NewMenuState(s.sm, s.env))
		return
	}
	s.game.NextStage()
	s.sm.SetState(NewGameState(s.sm, s.env, s.game))
}

func (s *ScoreState) Draw(screen *ebiten.Image) {
	s.table.Draw(screen, s.env.Face)
}

func (s *ScoreState) Exit() {}
