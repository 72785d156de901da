// internal/system/movement.go
package system

import (
	"image"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"
	mathutil "go-battle-city/pkg/utils"
)

// MovementSystem двигает танки по полю.
type MovementSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewMovementSystem(world *entity.World, rng *utils.PRNGService) *MovementSystem {
	return &MovementSystem{world: world, rng: rng}
}

// Rotate поворачивает танк и, если snap, подравнивает его к решётке
// с шагом LatticeStep, когда он ближе LatticeSnapRange пикселей.
func (s *MovementSystem) Rotate(a *component.Actor, dir types.Direction, snap bool) {
	a.Direction = dir
	if !snap {
		return
	}
	p := a.Pos()
	nx := mathutil.Nearest(p.X, config.LatticeStep) + config.LatticeSnapPadding
	ny := mathutil.Nearest(p.Y, config.LatticeStep) + config.LatticeSnapPadding
	if mathutil.Abs(p.X-nx) < config.LatticeSnapRange {
		p.X = nx
	}
	if mathutil.Abs(p.Y-ny) < config.LatticeSnapRange {
		p.Y = ny
	}
	a.MoveTo(p)
}

// Move сдвигает танк на его скорость в направлении dir. Возвращает false,
// если танк не в бою, стоит или упёрся: в край поля, препятствие, живого
// игрока или любого врага. Игрок, наехавший на бонус, подбирает его.
func (s *MovementSystem) Move(a *component.Actor, dir types.Direction) bool {
	if !a.Active() || a.Paused {
		return false
	}
	if a.Direction != dir {
		s.Rotate(a, dir, true)
	}
	if a.Paralysed {
		return false
	}

	dx, dy := dir.Delta()
	next := a.Rect.Add(image.Pt(dx*a.Speed, dy*a.Speed))
	if !next.In(s.world.Grid.Bounds()) {
		return false
	}
	if s.world.Grid.Blocked(next) {
		return false
	}
	for _, p := range s.world.Players {
		if p != a && p.Active() && p.Rect.Overlaps(next) {
			return false
		}
	}
	for _, e := range s.world.Enemies {
		if e != a && e.Rect.Overlaps(next) {
			return false
		}
	}
	if a.Side == types.SidePlayer {
		for _, b := range s.world.Bonuses {
			if b.Active && b.Rect.Overlaps(next) {
				a.Bonus = b.ID
			}
		}
	}
	a.Rect = next
	return true
}

// Steer - простейшее поведение врага: ехать вперёд, а упёршись или
// проехав случайное число шагов, выбрать новое направление.
func (s *MovementSystem) Steer(a *component.Actor) {
	if !a.Active() || a.Paused || a.Enemy == nil {
		return
	}
	moved := s.Move(a, a.Direction)
	a.Enemy.Steps++
	if moved && s.rng.Intn(config.TileSize*8) > a.Enemy.Steps {
		return
	}
	a.Enemy.Steps = 0
	dir := types.Direction(s.rng.Intn(4))
	if !moved && dir == a.Direction {
		dir = dir.Opposite()
	}
	s.Rotate(a, dir, true)
}
