package tty

import (
	"testing"
	"time"

	"go-battle-city/internal/types"

	"github.com/gdamore/tcell/v2"
)

type press struct {
	slot int
	dir  types.Direction
	down bool
}

type fakeController struct {
	presses  []press
	fired    []int
	released []int
	toggles  int
}

func (f *fakeController) Press(slot int, dir types.Direction, down bool) {
	f.presses = append(f.presses, press{slot, dir, down})
}
func (f *fakeController) Release(slot int) { f.released = append(f.released, slot) }
func (f *fakeController) Fire(slot int) bool { f.fired = append(f.fired, slot); return true }
func (f *fakeController) ToggleSound() { f.toggles++ }

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		ev    *tcell.EventKey
		want  Command
		press *press
		fire  int
	}{
		{"arrow up", key(tcell.KeyUp), CmdNone, &press{0, types.DirUp, true}, -1},
		{"arrow left", key(tcell.KeyLeft), CmdNone, &press{0, types.DirLeft, true}, -1},
		{"second player", char('d'), CmdNone, &press{1, types.DirRight, true}, -1},
		{"second player caps", char('S'), CmdNone, &press{1, types.DirDown, true}, -1},
		{"first fire", char(' '), CmdNone, nil, 0},
		{"second fire", char('f'), CmdNone, nil, 1},
		{"pause", char('p'), CmdPause, nil, -1},
		{"quit", char('q'), CmdQuit, nil, -1},
		{"escape", key(tcell.KeyEscape), CmdQuit, nil, -1},
		{"unbound", char('z'), CmdNone, nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := &fakeController{}
			in := NewInput(ctl)
			if got := in.HandleKey(tt.ev); got != tt.want {
				t.Fatalf("HandleKey() = %v, want %v", got, tt.want)
			}
			if tt.press == nil && len(ctl.presses) != 0 {
				t.Fatalf("unexpected presses %v", ctl.presses)
			}
			if tt.press != nil && (len(ctl.presses) != 1 || ctl.presses[0] != *tt.press) {
				t.Fatalf("presses = %v, want %v", ctl.presses, *tt.press)
			}
			if tt.fire < 0 && len(ctl.fired) != 0 || tt.fire >= 0 && (len(ctl.fired) != 1 || ctl.fired[0] != tt.fire) {
				t.Fatalf("fired = %v", ctl.fired)
			}
		})
	}
}

func TestInputSoundToggle(t *testing.T) {
	ctl := &fakeController{}
	NewInput(ctl).HandleKey(char('m'))
	if ctl.toggles != 1 {
		t.Fatalf("toggles = %d", ctl.toggles)
	}
}

func TestHeldDirectionExpires(t *testing.T) {
	ctl := &fakeController{}
	in := NewInput(ctl)
	in.HandleKey(key(tcell.KeyUp))

	in.Tick(HoldTime - time.Millisecond)
	if len(ctl.presses) != 1 {
		t.Fatalf("released early: %v", ctl.presses)
	}
	// Автоповтор продлевает нажатие
	in.HandleKey(key(tcell.KeyUp))
	in.Tick(HoldTime - time.Millisecond)
	if len(ctl.presses) != 2 {
		t.Fatalf("repeat did not extend the hold: %v", ctl.presses)
	}
	in.Tick(time.Millisecond)
	last := ctl.presses[len(ctl.presses)-1]
	if last != (press{0, types.DirUp, false}) {
		t.Fatalf("last press = %v", last)
	}
	in.Tick(time.Second)
	if len(ctl.presses) != 3 {
		t.Fatalf("released twice: %v", ctl.presses)
	}
}

func TestNewDirectionReleasesOld(t *testing.T) {
	ctl := &fakeController{}
	in := NewInput(ctl)
	in.HandleKey(key(tcell.KeyUp))
	in.HandleKey(key(tcell.KeyRight))
	want := []press{{0, types.DirUp, true}, {0, types.DirUp, false}, {0, types.DirRight, true}}
	if len(ctl.presses) != len(want) {
		t.Fatalf("presses = %v", ctl.presses)
	}
	for i := range want {
		if ctl.presses[i] != want[i] {
			t.Fatalf("presses = %v, want %v", ctl.presses, want)
		}
	}

	in.ReleaseAll()
	if len(ctl.released) != 2 {
		t.Fatalf("released = %v", ctl.released)
	}
}
