// internal/render/shape/shape.go

// Package shape описывает, как выглядят сущности мира, без привязки к
// конкретному экрану: геометрию танка, цвета и значки.
package shape

import (
	"image"
	"image/color"
	"time"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

const (
	barrelWidth = 4
	bodyInset   = 3
	trackWidth  = 5
	// carrierBlink - период мигания носителя бонуса.
	CarrierBlink = 200 * time.Millisecond
)

// Center возвращает центр прямоугольника r.
func Center(r image.Rectangle) image.Point {
	return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// TankShape возвращает корпус и ствол танка r, смотрящего в dir. Ствол
// идёт от центра до края танка, корпус отступает от этого края.
func TankShape(r image.Rectangle, dir types.Direction) (body, barrel image.Rectangle) {
	c := Center(r)
	h := barrelWidth / 2
	switch dir {
	case types.DirUp:
		body = image.Rect(r.Min.X, r.Min.Y+bodyInset, r.Max.X, r.Max.Y)
		barrel = image.Rect(c.X-h, r.Min.Y, c.X+h, c.Y)
	case types.DirDown:
		body = image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y-bodyInset)
		barrel = image.Rect(c.X-h, c.Y, c.X+h, r.Max.Y)
	case types.DirRight:
		body = image.Rect(r.Min.X, r.Min.Y, r.Max.X-bodyInset, r.Max.Y)
		barrel = image.Rect(c.X, c.Y-h, r.Max.X, c.Y+h)
	default:
		body = image.Rect(r.Min.X+bodyInset, r.Min.Y, r.Max.X, r.Max.Y)
		barrel = image.Rect(r.Min.X, c.Y-h, c.X, c.Y+h)
	}
	return body, barrel
}

// Tracks возвращает гусеницы корпуса body: по бокам вдоль хода танка.
func Tracks(body image.Rectangle, dir types.Direction) [2]image.Rectangle {
	if dir == types.DirUp || dir == types.DirDown {
		return [2]image.Rectangle{
			image.Rect(body.Min.X, body.Min.Y, body.Min.X+trackWidth, body.Max.Y),
			image.Rect(body.Max.X-trackWidth, body.Min.Y, body.Max.X, body.Max.Y),
		}
	}
	return [2]image.Rectangle{
		image.Rect(body.Min.X, body.Min.Y, body.Max.X, body.Min.Y+trackWidth),
		image.Rect(body.Min.X, body.Max.Y-trackWidth, body.Max.X, body.Max.Y),
	}
}

// TankColor возвращает цвет танка a в момент gameTime. Носитель бонуса
// мигает красным.
func TankColor(a *component.Actor, gameTime time.Duration) color.RGBA {
	switch {
	case a.Player != nil:
		return config.PlayerColors[a.Player.Slot%len(config.PlayerColors)]
	case a.Enemy != nil:
		if a.Enemy.CarriesBonus && (gameTime/CarrierBlink)%2 == 1 {
			return config.BonusCarrierColor
		}
		return config.EnemyColors[int(a.Enemy.Kind)%len(config.EnemyColors)]
	}
	return config.EnemyColors[0]
}

// BonusLetter - буква на значке бонуса.
func BonusLetter(k defs.BonusKind) string {
	switch k {
	case defs.BonusGrenade:
		return "G"
	case defs.BonusHelmet:
		return "H"
	case defs.BonusShovel:
		return "S"
	case defs.BonusStar:
		return "*"
	case defs.BonusTank:
		return "T"
	case defs.BonusTimer:
		return "C"
	}
	return "?"
}

// ExplosionRadius растёт с каждым кадром взрыва до половины ExplosionSize.
func ExplosionRadius(e component.Explosion) float32 {
	if e.Frames <= 0 {
		return 0
	}
	full := float32(config.ExplosionSize) / 2
	return full * float32(e.Frame+1) / float32(e.Frames)
}

// SpawnRadius - размер звезды появления в кадре frame.
func SpawnRadius(frame int) float32 {
	if frame%2 == 1 {
		return config.TankSize / 2
	}
	return config.TankSize / 4
}
