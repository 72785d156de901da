// internal/system/fortress.go
package system

import (
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/pkg/tilemap"
)

// FortressSystem ведёт штаб и стену вокруг него.
type FortressSystem struct {
	world       *entity.World
	events      *event.Dispatcher
	revertTimer scheduler.Handle
}

func NewFortressSystem(world *entity.World, events *event.Dispatcher) *FortressSystem {
	return &FortressSystem{world: world, events: events}
}

// Destroy взрывает штаб. Active падает сразу, не дожидаясь анимации.
func (s *FortressSystem) Destroy() {
	f := s.world.Fortress
	if !f.Active {
		return
	}
	f.Active = false
	f.State = component.FortressExploding
	f.Explosion = component.NewExplosion(center(f.Rect), config.BigExplosionFrames)
	f.Explosion.Timer = s.world.Schedule(config.ExplosionFrame, entity.Job{Kind: entity.JobExplosionFrame, Target: f.ID}, config.BigExplosionFrames)
	s.world.PlaySound(audio.SoundExplosion)
	s.events.Dispatch(event.Event{Type: event.FortressDestroyed, Data: f})
}

// Update завершает взрыв штаба.
func (s *FortressSystem) Update() {
	f := s.world.Fortress
	if f.State == component.FortressExploding && !f.Explosion.Active {
		f.State = component.FortressDestroyed
	}
}

// Fortify выкладывает стену из m и через d возвращает кирпич. Новый вызов
// заменяет прежний таймер.
func (s *FortressSystem) Fortify(m tilemap.Material, d time.Duration) {
	s.world.Cancel(&s.revertTimer)
	s.world.Grid.BuildFortress(m)
	s.revertTimer = s.world.Schedule(d, entity.Job{Kind: entity.JobFortressRevert, Arg: int(tilemap.Brick)}, 1)
}

// Revert выкладывает стену из материала m.
func (s *FortressSystem) Revert(m tilemap.Material) {
	s.revertTimer = scheduler.NoHandle
	s.world.Grid.BuildFortress(m)
}
