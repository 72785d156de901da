// internal/system/projectile.go
package system

import (
	"image"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/types"
)

// ProjectileSystem двигает снаряды и разрешает их столкновения.
type ProjectileSystem struct {
	world    *entity.World
	combat   *CombatSystem
	fortress *FortressSystem
}

func NewProjectileSystem(world *entity.World, combat *CombatSystem, fortress *FortressSystem) *ProjectileSystem {
	return &ProjectileSystem{world: world, combat: combat, fortress: fortress}
}

// Update проводит снаряд через один тик. Проверки идут строго по порядку:
// край поля, карта, встречные снаряды, игроки, враги, штаб. Первое
// попадание завершает проверки.
func (s *ProjectileSystem) Update(p *component.Projectile) {
	if p.State == component.ProjectileExploding {
		if !p.Explosion.Active {
			p.State = component.ProjectileRemoved
			p.Explosion = component.Explosion{}
		}
		return
	}
	if !p.Active() {
		return
	}

	dx, dy := p.Direction.Delta()
	p.Rect = p.Rect.Add(image.Pt(dx*p.Speed, dy*p.Speed))

	if s.outOfBounds(p) {
		if p.Owner == types.SidePlayer {
			s.world.PlaySound(audio.SoundSteel)
		}
		s.Explode(p)
		return
	}

	// Снаряд может разрушить несколько клеток сразу, но взрыв один
	stopped := false
	for _, r := range s.world.Grid.Colliding(p.Rect) {
		if s.world.Grid.HitTile(r.Min, p.Power, p.Owner == types.SidePlayer) {
			stopped = true
		}
	}
	if stopped {
		s.Explode(p)
		return
	}

	for _, other := range s.world.Projectiles {
		if other != p && other.Active() && other.Owner != p.Owner && other.Rect.Overlaps(p.Rect) {
			s.Explode(p)
			s.Explode(other)
			return
		}
	}

	for _, pl := range s.world.Players {
		if pl.Active() && pl.Rect.Overlaps(p.Rect) {
			if s.combat.BulletImpact(pl, p.Owner == types.SidePlayer, p.Damage, p.OwnerID) {
				s.Explode(p)
				return
			}
		}
	}

	for _, e := range s.world.Enemies {
		if e.Active() && e.Rect.Overlaps(p.Rect) {
			if s.combat.BulletImpact(e, p.Owner == types.SideEnemy, p.Damage, p.OwnerID) {
				s.Explode(p)
				return
			}
		}
	}

	if f := s.world.Fortress; f.Active && f.Rect.Overlaps(p.Rect) {
		s.fortress.Destroy()
		s.Explode(p)
	}
}

func (s *ProjectileSystem) outOfBounds(p *component.Projectile) bool {
	b := s.world.Grid.Bounds()
	r := p.Rect
	return r.Min.Y < b.Min.Y || r.Min.X < b.Min.X || r.Max.X > b.Max.X || r.Max.Y > b.Max.Y
}

// Explode переводит летящий снаряд во взрыв.
func (s *ProjectileSystem) Explode(p *component.Projectile) {
	if !p.Active() {
		return
	}
	p.State = component.ProjectileExploding
	p.Explosion = component.NewExplosion(center(p.Rect), config.SmallExplosionFrames)
	p.Explosion.Timer = s.world.Schedule(config.ExplosionFrame, entity.Job{Kind: entity.JobExplosionFrame, Target: p.ID}, config.SmallExplosionFrames)
}
