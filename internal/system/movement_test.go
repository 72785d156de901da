package system

import (
	"image"
	"testing"

	"go-battle-city/internal/component"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/tilemap"
)

func TestTurnSnapsToLattice(t *testing.T) {
	f := newFixture(t)
	a := f.player(130, 200, types.DirUp)

	if !f.sys.Movement.Move(a, types.DirRight) {
		t.Fatalf("move refused")
	}
	if a.Direction != types.DirRight {
		t.Fatalf("direction = %v", a.Direction)
	}
	if got := a.Pos(); got != image.Pt(133, 203) {
		t.Fatalf("position = %v, want (133,203)", got)
	}
}

func TestRotateWithoutSnapKeepsPosition(t *testing.T) {
	f := newFixture(t)
	a := f.player(130, 200, types.DirUp)
	f.sys.Movement.Rotate(a, types.DirLeft, false)
	if a.Pos() != image.Pt(130, 200) || a.Direction != types.DirLeft {
		t.Fatalf("rotate moved the tank to %v", a.Pos())
	}
}

func TestSnapRange(t *testing.T) {
	tests := []struct {
		x, want int
	}{
		{207, 211},
		{134, 134},
		{131, 131},
		{128, 131},
	}
	for _, tt := range tests {
		f := newFixture(t)
		a := f.player(tt.x, 99, types.DirUp)
		f.sys.Movement.Rotate(a, types.DirRight, true)
		if got := a.Pos().X; got != tt.want {
			t.Errorf("snap from x=%d gave %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestParalysedTankOnlyTurns(t *testing.T) {
	f := newFixture(t)
	a := f.player(131, 203, types.DirUp)
	a.Paralysed = true

	if f.sys.Movement.Move(a, types.DirLeft) {
		t.Fatalf("paralysed tank moved")
	}
	if a.Direction != types.DirLeft || a.Pos() != image.Pt(131, 203) {
		t.Fatalf("got %v at %v", a.Direction, a.Pos())
	}
}

func TestMoveBlocked(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		dir   types.Direction
		setup func(f *fixture)
	}{
		{"arena edge", 1, 99, types.DirLeft, nil},
		{"bottom edge", 99, 389, types.DirDown, nil},
		{"brick", 131, 193, types.DirUp, func(f *fixture) { f.world.Grid.Set(image.Pt(128, 176), tilemap.Brick) }},
		{"steel", 131, 193, types.DirUp, func(f *fixture) { f.world.Grid.Set(image.Pt(144, 176), tilemap.Steel) }},
		{"water", 131, 193, types.DirUp, func(f *fixture) { f.world.Grid.Set(image.Pt(128, 176), tilemap.Water) }},
		{"fortress", 195, 357, types.DirDown, nil},
		{"enemy", 131, 203, types.DirUp, func(f *fixture) { f.enemy(131, 176, defs.EnemyBasic) }},
		{"player", 131, 203, types.DirUp, func(f *fixture) { f.player(140, 176, types.DirDown) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}
			a := f.player(tt.x, tt.y, tt.dir)
			if f.sys.Movement.Move(a, tt.dir) {
				t.Fatalf("moved to %v", a.Pos())
			}
			if a.Pos() != image.Pt(tt.x, tt.y) {
				t.Fatalf("blocked tank shifted to %v", a.Pos())
			}
		})
	}
}

func TestMovePassesThrough(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{"grass", func(f *fixture) { f.world.Grid.Set(image.Pt(128, 176), tilemap.Grass) }},
		{"ice", func(f *fixture) { f.world.Grid.Set(image.Pt(128, 176), tilemap.Ice) }},
		{"spawning player", func(f *fixture) {
			p := f.player(131, 176, types.DirUp)
			p.State = component.ActorSpawning
		}},
		{"dead player", func(f *fixture) {
			p := f.player(131, 176, types.DirUp)
			p.State = component.ActorDead
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)
			a := f.player(131, 203, types.DirUp)
			if !f.sys.Movement.Move(a, types.DirUp) {
				t.Fatalf("move refused")
			}
			if a.Pos() != image.Pt(131, 201) {
				t.Fatalf("position = %v", a.Pos())
			}
		})
	}
}

func TestInactiveTankDoesNotMove(t *testing.T) {
	for _, st := range []component.ActorState{component.ActorSpawning, component.ActorExploding, component.ActorDead} {
		f := newFixture(t)
		a := f.player(131, 203, types.DirUp)
		a.State = st
		if f.sys.Movement.Move(a, types.DirLeft) {
			t.Errorf("%v tank moved", st)
		}
		if a.Direction != types.DirUp {
			t.Errorf("%v tank turned", st)
		}
	}
}

func TestPlayerPicksUpBonus(t *testing.T) {
	f := newFixture(t)
	b := f.sys.Bonuses.Place(defs.BonusStar, image.Pt(128, 160))
	a := f.player(131, 193, types.DirUp)

	if !f.sys.Movement.Move(a, types.DirUp) {
		t.Fatalf("bonus must not block movement")
	}
	if a.Bonus != b.ID {
		t.Fatalf("bonus not picked up")
	}
	f.sys.Bonuses.Collect()
	if a.Superpowers != 1 || b.Active || a.Bonus != 0 {
		t.Fatalf("superpowers=%d bonus active=%v", a.Superpowers, b.Active)
	}
}

func TestEnemyDoesNotPickUpBonus(t *testing.T) {
	f := newFixture(t)
	f.sys.Bonuses.Place(defs.BonusStar, image.Pt(128, 160))
	e := f.enemy(131, 193, defs.EnemyBasic)
	e.Direction = types.DirUp
	f.sys.Movement.Move(e, types.DirUp)
	if e.Bonus != 0 {
		t.Fatalf("enemy picked up a bonus")
	}
}

func TestSteerTurnsAwayFromWall(t *testing.T) {
	f := newFixture(t)
	e := f.enemy(1, 99, defs.EnemyBasic)
	e.Direction = types.DirLeft
	for i := 0; i < 20; i++ {
		e.Direction = types.DirLeft
		e.MoveTo(image.Pt(1, 99))
		f.sys.Movement.Steer(e)
		if e.Direction == types.DirLeft {
			t.Fatalf("enemy kept facing the wall")
		}
	}
}
