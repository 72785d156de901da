// internal/tty/input.go
package tty

import (
	"time"
	"unicode"

	"go-battle-city/internal/interfaces"
	"go-battle-city/internal/types"

	"github.com/gdamore/tcell/v2"
)

// HoldTime - сколько направление считается зажатым после нажатия.
// Терминал не присылает отпускания клавиш, поэтому танк едет, пока
// автоповтор клавиатуры подтверждает нажатие.
const HoldTime = 250 * time.Millisecond

// Command - что терминальный цикл должен сделать после клавиши.
type Command int

const (
	CmdNone Command = iota
	CmdQuit
	CmdPause
)

type heldKey struct {
	dir  types.Direction
	left time.Duration
	on   bool
}

// Input переводит клавиши терминала в команды партии.
type Input struct {
	ctl  interfaces.Controller
	held [2]heldKey
}

func NewInput(ctl interfaces.Controller) *Input {
	return &Input{ctl: ctl}
}

var secondPlayerKeys = map[rune]types.Direction{
	'w': types.DirUp,
	'd': types.DirRight,
	's': types.DirDown,
	'a': types.DirLeft,
}

// HandleKey обрабатывает одно нажатие.
func (in *Input) HandleKey(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyUp:
		in.hold(0, types.DirUp)
	case tcell.KeyRight:
		in.hold(0, types.DirRight)
	case tcell.KeyDown:
		in.hold(0, types.DirDown)
	case tcell.KeyLeft:
		in.hold(0, types.DirLeft)
	case tcell.KeyRune:
		r := unicode.ToLower(ev.Rune())
		if dir, ok := secondPlayerKeys[r]; ok {
			in.hold(1, dir)
			break
		}
		switch r {
		case ' ':
			in.ctl.Fire(0)
		case 'f':
			in.ctl.Fire(1)
		case 'm':
			in.ctl.ToggleSound()
		case 'p':
			return CmdPause
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}

func (in *Input) hold(slot int, dir types.Direction) {
	h := &in.held[slot]
	if h.on && h.dir != dir {
		in.ctl.Press(slot, h.dir, false)
	}
	*h = heldKey{dir: dir, left: HoldTime, on: true}
	in.ctl.Press(slot, dir, true)
}

// Tick отпускает направления, которые не подтверждались дольше HoldTime.
func (in *Input) Tick(elapsed time.Duration) {
	for slot := range in.held {
		h := &in.held[slot]
		if !h.on {
			continue
		}
		h.left -= elapsed
		if h.left <= 0 {
			h.on = false
			in.ctl.Press(slot, h.dir, false)
		}
	}
}

// ReleaseAll отпускает все направления обоих игроков.
func (in *Input) ReleaseAll() {
	for slot := range in.held {
		in.held[slot] = heldKey{}
		in.ctl.Release(slot)
	}
}
