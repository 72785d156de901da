// internal/app/players.go
package app

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/types"
)

// Player возвращает танк игрока в слоте slot или nil.
func (g *Game) Player(slot int) *component.Actor {
	for _, p := range g.World.Players {
		if p.Player != nil && p.Player.Slot == slot {
			return p
		}
	}
	return nil
}

// Press отмечает направление dir игрока slot зажатым или отпущенным.
// Танк едет в первом зажатом направлении по порядку: вверх, вправо,
// вниз, влево.
func (g *Game) Press(slot int, dir types.Direction, down bool) {
	p := g.Player(slot)
	if p == nil || dir < types.DirUp || dir > types.DirLeft {
		return
	}
	p.Player.Pressed[dir] = down
}

// Release отпускает все направления игрока slot.
func (g *Game) Release(slot int) {
	if p := g.Player(slot); p != nil {
		p.Player.Pressed = [4]bool{}
	}
}

// Fire стреляет за игрока slot. Вне игры и у неживого танка выстрела нет.
func (g *Game) Fire(slot int) bool {
	if g.Phase != component.PhasePlaying {
		return false
	}
	p := g.Player(slot)
	if p == nil {
		return false
	}
	return g.Systems.Actors.Fire(p, false)
}

func (g *Game) drivePlayer(p *component.Actor) {
	if !p.Active() || p.Player == nil {
		return
	}
	if dir, ok := p.Player.Heading(); ok {
		g.Systems.Movement.Move(p, dir)
	}
}
