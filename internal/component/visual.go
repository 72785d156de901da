// internal/component/visual.go
package component

import (
	"image"

	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
)

// Explosion - анимация взрыва, встроенная в взрывающуюся сущность.
// Каждый шаг таймера показывает следующий кадр, шаг после последнего
// кадра выключает взрыв.
type Explosion struct {
	Center image.Point
	Frames int
	Frame  int
	Active bool
	Timer  scheduler.Handle
}

// NewExplosion создаёт активный взрыв с frames кадрами.
func NewExplosion(center image.Point, frames int) Explosion {
	return Explosion{Center: center, Frames: frames, Active: true}
}

// Step показывает следующий кадр или завершает анимацию.
func (e *Explosion) Step() {
	if !e.Active {
		return
	}
	if e.Frame < e.Frames-1 {
		e.Frame++
		return
	}
	e.Active = false
}

// Label - всплывающая надпись с очками.
type Label struct {
	ID     types.EntityID
	Pos    image.Point
	Text   string
	Active bool
}
