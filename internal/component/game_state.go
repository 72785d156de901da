// internal/component/game_state.go
package component

// GamePhase - фаза текущей стадии.
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	// PhaseFinished - враги кончились, ждём экрана очков.
	PhaseFinished
	// PhaseGameOver - штаб разрушен или кончились жизни.
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}
