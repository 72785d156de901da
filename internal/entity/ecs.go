// internal/entity/ecs.go
package entity

import (
	"image"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/tilemap"
)

// World - общий контекст стадии. Все сущности в нём равноправны и
// адресуются по EntityID, никто никем не владеет.
type World struct {
	NextID types.EntityID

	// Игроки всегда идут раньше врагов: в этом порядке их проверяют
	// снаряды и обновляет цикл.
	Players     []*component.Actor
	Enemies     []*component.Actor
	Projectiles []*component.Projectile
	Bonuses     []*component.Bonus
	Labels      []*component.Label

	Fortress  *component.Fortress
	Grid      *tilemap.Grid
	Scheduler *scheduler.Scheduler[Job]

	SoundEnabled bool
	Sounds       audio.Player

	// TimeFrozen - враги стоят по бонусу «часы».
	TimeFrozen bool
	// EnemyQueue - подтипы врагов, которые ещё не вышли на поле.
	EnemyQueue []defs.EnemyKind
}

// NewWorld создаёт пустой мир с картой и целым штабом.
func NewWorld(sounds audio.Player) *World {
	w := &World{
		NextID:       1,
		Scheduler:    scheduler.New[Job](),
		SoundEnabled: true,
		Sounds:       sounds,
	}
	if w.Sounds == nil {
		w.Sounds = audio.Nop{}
	}
	fortress := image.Rect(config.FortressX, config.FortressY, config.FortressX+config.FortressSize, config.FortressY+config.FortressSize)
	w.Grid = tilemap.NewGrid(config.TileSize, config.ArenaTiles, config.ArenaTiles, fortress)
	w.Grid.OnHit = w.tileSound
	w.Fortress = component.NewFortress(w.NewEntity(), fortress)
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Reset очищает мир перед новой стадией. Игроки, счёт и жизни остаются,
// все таймеры отменяются.
func (w *World) Reset() {
	w.Scheduler.Clear()
	w.Enemies = nil
	w.Projectiles = nil
	w.Bonuses = nil
	w.Labels = nil
	w.EnemyQueue = nil
	w.TimeFrozen = false
	w.Fortress.Rebuild()
}

// PlaySound проигрывает звук, если звук включён.
func (w *World) PlaySound(s audio.Sound) {
	if w.SoundEnabled {
		w.Sounds.Play(s)
	}
}

func (w *World) tileSound(m tilemap.Material) {
	switch m {
	case tilemap.Brick:
		w.PlaySound(audio.SoundBrick)
	case tilemap.Steel:
		w.PlaySound(audio.SoundSteel)
	}
}

// Schedule ставит задачу в планировщик мира.
func (w *World) Schedule(delay time.Duration, job Job, repeat int) scheduler.Handle {
	return w.Scheduler.Schedule(delay, job, repeat)
}

// Cancel отменяет задачу и обнуляет хэндл.
func (w *World) Cancel(h *scheduler.Handle) {
	if !h.IsZero() {
		w.Scheduler.Cancel(*h)
	}
	*h = scheduler.NoHandle
}

// Actor ищет танк любой стороны.
func (w *World) Actor(id types.EntityID) *component.Actor {
	for _, a := range w.Players {
		if a.ID == id {
			return a
		}
	}
	for _, a := range w.Enemies {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Projectile ищет снаряд.
func (w *World) Projectile(id types.EntityID) *component.Projectile {
	for _, p := range w.Projectiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Bonus ищет бонус.
func (w *World) Bonus(id types.EntityID) *component.Bonus {
	for _, b := range w.Bonuses {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Label ищет надпись.
func (w *World) Label(id types.EntityID) *component.Label {
	for _, l := range w.Labels {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// AddPlayer регистрирует танк игрока.
func (w *World) AddPlayer(a *component.Actor) {
	w.Players = append(w.Players, a)
}

// AddEnemy регистрирует вражеский танк.
func (w *World) AddEnemy(a *component.Actor) {
	w.Enemies = append(w.Enemies, a)
}

// AddProjectile регистрирует снаряд. Снаряд, добавленный во время прохода
// обновления, обновится только в следующем тике.
func (w *World) AddProjectile(p *component.Projectile) {
	w.Projectiles = append(w.Projectiles, p)
}

// AddBonus кладёт бонус на поле.
func (w *World) AddBonus(b *component.Bonus) {
	w.Bonuses = append(w.Bonuses, b)
}

// AddLabel показывает надпись на lifetime.
func (w *World) AddLabel(pos image.Point, text string, lifetime time.Duration) *component.Label {
	l := &component.Label{ID: w.NewEntity(), Pos: pos, Text: text, Active: true}
	w.Labels = append(w.Labels, l)
	w.Schedule(lifetime, Job{Kind: JobLabelExpire, Target: l.ID}, 1)
	return l
}

// ActiveProjectiles считает летящие снаряды танка owner.
func (w *World) ActiveProjectiles(owner types.EntityID) int {
	n := 0
	for _, p := range w.Projectiles {
		if p.OwnerID == owner && p.Active() {
			n++
		}
	}
	return n
}

// LiveEnemies считает врагов, которые ещё не умерли.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.State != component.ActorDead {
			n++
		}
	}
	return n
}

// Reap убирает из мира завершённые сущности: удалённые снаряды, мёртвых
// врагов, неактивные бонусы и надписи. Возвращает число убранных врагов.
// Мёртвые игроки остаются: их судьбу решает цикл игры.
func (w *World) Reap() int {
	w.Projectiles = filter(w.Projectiles, func(p *component.Projectile) bool {
		return p.State != component.ProjectileRemoved
	})
	before := len(w.Enemies)
	w.Enemies = filter(w.Enemies, func(a *component.Actor) bool {
		return a.State != component.ActorDead
	})
	w.Bonuses = filter(w.Bonuses, func(b *component.Bonus) bool { return b.Active })
	w.Labels = filter(w.Labels, func(l *component.Label) bool { return l.Active })
	return before - len(w.Enemies)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	var zero T
	for i := len(out); i < len(items); i++ {
		items[i] = zero
	}
	return out
}
