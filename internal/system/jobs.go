// internal/system/jobs.go
package system

import (
	"fmt"

	"go-battle-city/internal/component"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/tilemap"
)

// JobSystem исполняет сработавшие задачи планировщика. Цель задачи
// ищется в мире в момент срабатывания: если её уже нет или она не в том
// состоянии, задача ничего не делает, а повторяющаяся ещё и снимается.
type JobSystem struct {
	world    *entity.World
	actors   *ActorSystem
	fortress *FortressSystem
}

func NewJobSystem(world *entity.World, actors *ActorSystem, fortress *FortressSystem) *JobSystem {
	return &JobSystem{world: world, actors: actors, fortress: fortress}
}

// Run исполняет задачу job с хэндлом h. Неизвестный вид задачи - ошибка
// программы, она возвращается вызывающему.
func (s *JobSystem) Run(h scheduler.Handle, job entity.Job) error {
	w := s.world
	switch job.Kind {
	case entity.JobSpawnBlink:
		a := w.Actor(job.Target)
		if a == nil || a.State != component.ActorSpawning {
			w.Scheduler.Cancel(h)
			return nil
		}
		a.SpawnFrame ^= 1

	case entity.JobSpawnEnd:
		if a := w.Actor(job.Target); a != nil {
			s.actors.EndSpawn(a)
		}

	case entity.JobShieldBlink:
		a := w.Actor(job.Target)
		if a == nil || !a.Active() {
			w.Scheduler.Cancel(h)
			return nil
		}
		if a.Shielded {
			a.ShieldFrame ^= 1
		}

	case entity.JobUnshield:
		if a := w.Actor(job.Target); a != nil && a.Active() {
			a.UnshieldTimer = scheduler.NoHandle
			s.actors.Unshield(a)
		}

	case entity.JobUnparalyse:
		if a := w.Actor(job.Target); a != nil && a.Active() {
			a.Paralysed = false
			a.ParalysisTimer = scheduler.NoHandle
		}

	case entity.JobExplosionFrame:
		e := s.explosion(job.Target)
		if e == nil || !e.Active {
			w.Scheduler.Cancel(h)
			return nil
		}
		e.Step()

	case entity.JobEnemyFire:
		a := w.Actor(job.Target)
		if a == nil || !a.Active() {
			w.Scheduler.Cancel(h)
			return nil
		}
		s.actors.Fire(a, false)

	case entity.JobWaterToggle:
		w.Grid.ToggleWater()

	case entity.JobFortressRevert:
		s.fortress.Revert(tilemap.Material(job.Arg))

	case entity.JobUnfreeze:
		s.actors.Freeze(false)

	case entity.JobBonusBlink:
		b := w.Bonus(job.Target)
		if b == nil || !b.Active {
			w.Scheduler.Cancel(h)
			return nil
		}
		b.Visible = !b.Visible

	case entity.JobBonusExpire:
		if b := w.Bonus(job.Target); b != nil {
			b.Active = false
		}

	case entity.JobLabelExpire:
		if l := w.Label(job.Target); l != nil {
			l.Active = false
		}

	default:
		return fmt.Errorf("unhandled job %v", job.Kind)
	}
	return nil
}

func (s *JobSystem) explosion(id types.EntityID) *component.Explosion {
	w := s.world
	if a := w.Actor(id); a != nil {
		if a.State != component.ActorExploding {
			return nil
		}
		return &a.Explosion
	}
	if p := w.Projectile(id); p != nil {
		if p.State != component.ProjectileExploding {
			return nil
		}
		return &p.Explosion
	}
	if w.Fortress != nil && w.Fortress.ID == id && w.Fortress.State == component.FortressExploding {
		return &w.Fortress.Explosion
	}
	return nil
}
