// internal/component/actor.go
package component

import (
	"image"

	"go-battle-city/internal/config"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
)

// ActorState - основное состояние танка. В любой момент верно ровно одно.
type ActorState int

const (
	ActorSpawning ActorState = iota
	ActorActive
	ActorExploding
	ActorDead
)

func (s ActorState) String() string {
	switch s {
	case ActorSpawning:
		return "spawning"
	case ActorActive:
		return "active"
	case ActorExploding:
		return "exploding"
	case ActorDead:
		return "dead"
	}
	return "unknown"
}

// Control - кто управляет танком.
type Control int

const (
	ControlInput Control = iota
	ControlAI
)

// Capability - то, чем стороны отличаются друг от друга.
type Capability struct {
	MaxBullets int
	Speed      int
	Control    Control
	// FriendlyFireStops - останавливает ли свой снаряд попадание в танк.
	// Свой снаряд парализует игрока, а сквозь врага пролетает.
	FriendlyFireStops bool
}

// Capabilities - таблица возможностей по сторонам.
var Capabilities = map[types.Side]Capability{
	types.SidePlayer: {MaxBullets: config.TankMaxBullets, Speed: config.TankSpeed, Control: ControlInput, FriendlyFireStops: true},
	types.SideEnemy:  {MaxBullets: config.TankMaxBullets, Speed: config.TankSpeed, Control: ControlAI},
}

// Actor - танк любой стороны.
type Actor struct {
	ID        types.EntityID
	Side      types.Side
	Rect      image.Rectangle
	Direction types.Direction
	Health    int
	State     ActorState

	// Флаги имеют смысл только в состоянии ActorActive
	Shielded  bool
	Paralysed bool
	Paused    bool

	Superpowers int
	MaxBullets  int
	Speed       int
	Control     Control

	// Bonus - подобранный, но ещё не применённый бонус.
	Bonus types.EntityID

	Explosion Explosion

	SpawnFrame  int
	ShieldFrame int

	SpawnBlinkTimer  scheduler.Handle
	SpawnEndTimer    scheduler.Handle
	ShieldBlinkTimer scheduler.Handle
	UnshieldTimer    scheduler.Handle
	ParalysisTimer   scheduler.Handle
	FireTimer        scheduler.Handle

	Player *PlayerState
	Enemy  *EnemyState
}

// NewActor создаёт танк в состоянии появления с возможностями его стороны.
func NewActor(id types.EntityID, side types.Side, pos image.Point, dir types.Direction) *Actor {
	caps := Capabilities[side]
	return &Actor{
		ID:         id,
		Side:       side,
		Rect:       image.Rect(pos.X, pos.Y, pos.X+config.TankSize, pos.Y+config.TankSize),
		Direction:  dir,
		Health:     config.TankHealth,
		State:      ActorSpawning,
		MaxBullets: caps.MaxBullets,
		Speed:      caps.Speed,
		Control:    caps.Control,
	}
}

// Active сообщает, что танк в бою.
func (a *Actor) Active() bool {
	return a.State == ActorActive
}

// Pos возвращает левый верхний угол танка.
func (a *Actor) Pos() image.Point {
	return a.Rect.Min
}

// MoveTo переносит танк, сохраняя размер.
func (a *Actor) MoveTo(p image.Point) {
	a.Rect = a.Rect.Add(p.Sub(a.Rect.Min))
}

// Capability возвращает строку таблицы возможностей для стороны танка.
func (a *Actor) Capability() Capability {
	return Capabilities[a.Side]
}
