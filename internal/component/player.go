// internal/component/player.go
package component

import (
	"image"

	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

// Trophies - счёт подбитых врагов по подтипам и подобранных бонусов
// за стадию.
type Trophies struct {
	Enemies [defs.EnemyKinds]int
	Bonuses int
}

// PlayerState хранит то, что есть только у танка игрока.
type PlayerState struct {
	Slot     int
	Lives    int
	Score    int
	Trophies Trophies

	StartPos image.Point
	StartDir types.Direction

	// Pressed - зажатые направления, порядок: вверх, вправо, вниз, влево.
	Pressed [4]bool
}

// Heading возвращает первое зажатое направление.
func (p *PlayerState) Heading() (types.Direction, bool) {
	for i, on := range p.Pressed {
		if on {
			return types.Direction(i), true
		}
	}
	return 0, false
}
