// internal/tty/session.go
package tty

import (
	"context"
	"log"
	"time"

	"go-battle-city/internal/app"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"

	"github.com/gdamore/tcell/v2"
)

// Session ведёт партию в терминале: ввод, такты, смена стадий.
type Session struct {
	Game    *app.Game
	Paused  bool
	Over    bool
	Hiscore int

	input *Input
	view  *View
}

func NewSession(screen tcell.Screen, game *app.Game) *Session {
	return &Session{
		Game:    game,
		Hiscore: app.LoadHiscore(game.Settings.HiscoreFile),
		input:   NewInput(game),
		view:    NewView(screen),
	}
}

// Key обрабатывает клавишу. Возвращает false, когда пора выходить.
func (s *Session) Key(ev *tcell.EventKey) bool {
	switch s.input.HandleKey(ev) {
	case CmdQuit:
		return false
	case CmdPause:
		s.Paused = !s.Paused
		s.input.ReleaseAll()
	}
	return true
}

// Step продвигает партию на elapsed. После экрана очков начинается
// следующая стадия; после поражения партия стоит до выхода.
func (s *Session) Step(elapsed time.Duration) error {
	if s.Paused || s.Over {
		return nil
	}
	s.input.Tick(elapsed)
	if err := s.Game.Update(elapsed); err != nil {
		return err
	}
	if !s.Game.ScoresDue {
		return nil
	}
	s.Hiscore = s.Game.RecordHiscore()
	if s.Game.Phase == component.PhaseGameOver {
		log.Printf("Game over on stage %d", s.Game.Stage)
		s.Over = true
		return nil
	}
	s.Game.NextStage()
	return nil
}

// Draw рисует текущий кадр.
func (s *Session) Draw() {
	s.view.Draw(s.Game, s.Paused, s.Hiscore)
}

// Run крутит цикл до выхода игрока или отмены ctx.
func (s *Session) Run(ctx context.Context, screen tcell.Screen) error {
	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / config.TicksPerSecond)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.Key(ev) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			if err := s.Step(elapsed); err != nil {
				return err
			}
			s.Draw()
		}
	}
}
