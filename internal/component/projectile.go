// internal/component/projectile.go
package component

import (
	"image"

	"go-battle-city/internal/config"
	"go-battle-city/internal/types"
)

// ProjectileState - состояние снаряда.
type ProjectileState int

const (
	ProjectileActive ProjectileState = iota
	ProjectileExploding
	ProjectileRemoved
)

func (s ProjectileState) String() string {
	switch s {
	case ProjectileActive:
		return "active"
	case ProjectileExploding:
		return "exploding"
	case ProjectileRemoved:
		return "removed"
	}
	return "unknown"
}

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID        types.EntityID
	Rect      image.Rectangle
	Direction types.Direction
	Owner     types.Side
	// OwnerID - слабая ссылка на стрелявший танк: только для начисления очков.
	OwnerID types.EntityID
	Damage  int
	Speed   int
	// Power 1 - обычный снаряд, 2 - пробивает сталь.
	Power int
	State ProjectileState

	Explosion Explosion
}

// BulletRect возвращает прямоугольник снаряда, вылетающего из танка
// с левым верхним углом tank в направлении dir.
func BulletRect(tank image.Point, dir types.Direction) image.Rectangle {
	const (
		l = config.BulletLength
		w = config.BulletWidth
		s = config.TankSize
		o = config.BulletOffset
	)
	var r image.Rectangle
	switch dir {
	case types.DirUp:
		r = image.Rect(o, -l, o+w, 0)
	case types.DirRight:
		r = image.Rect(s, o, s+l, o+w)
	case types.DirDown:
		r = image.Rect(o, s, o+w, s+l)
	default:
		r = image.Rect(-l, o, 0, o+w)
	}
	return r.Add(tank)
}

// Active сообщает, что снаряд летит.
func (p *Projectile) Active() bool {
	return p.State == ProjectileActive
}
