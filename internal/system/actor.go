// internal/system/actor.go
package system

import (
	"image"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"
)

// ActorSystem ведёт танки по жизненному циклу: появление, бой, взрыв,
// смерть. Флаги щита, паралича и паузы тоже живут здесь.
type ActorSystem struct {
	world       *entity.World
	events      *event.Dispatcher
	rng         *utils.PRNGService
	freezeTimer scheduler.Handle
	spawnSlot   int
}

func NewActorSystem(world *entity.World, events *event.Dispatcher, rng *utils.PRNGService) *ActorSystem {
	return &ActorSystem{world: world, events: events, rng: rng}
}

// Spawn запускает появление танка: мигание и переход в бой через
// SpawnDuration.
func (s *ActorSystem) Spawn(a *component.Actor) {
	s.world.Cancel(&a.SpawnBlinkTimer)
	s.world.Cancel(&a.SpawnEndTimer)
	a.State = component.ActorSpawning
	a.SpawnFrame = 0
	a.SpawnBlinkTimer = s.world.Schedule(config.SpawnBlinkInterval, entity.Job{Kind: entity.JobSpawnBlink, Target: a.ID}, scheduler.Forever)
	a.SpawnEndTimer = s.world.Schedule(config.SpawnDuration, entity.Job{Kind: entity.JobSpawnEnd, Target: a.ID}, 1)
}

// EndSpawn переводит появившийся танк в бой. Враги начинают стрелять
// по таймеру.
func (s *ActorSystem) EndSpawn(a *component.Actor) {
	if a.State != component.ActorSpawning {
		return
	}
	a.State = component.ActorActive
	a.SpawnEndTimer = scheduler.NoHandle
	if a.Side == types.SideEnemy {
		a.Paused = s.world.TimeFrozen
		a.FireTimer = s.world.Schedule(config.EnemyFireInterval, entity.Job{Kind: entity.JobEnemyFire, Target: a.ID}, scheduler.Forever)
	}
}

// NewPlayer создаёт танк игрока в слоте slot и запускает его появление.
func (s *ActorSystem) NewPlayer(slot, lives int) *component.Actor {
	pos := PlayerSpawn(slot)
	a := component.NewActor(s.world.NewEntity(), types.SidePlayer, pos, types.DirUp)
	a.Player = &component.PlayerState{Slot: slot, Lives: lives, StartPos: pos, StartDir: types.DirUp}
	s.world.AddPlayer(a)
	s.Spawn(a)
	return a
}

// PlayerSpawn возвращает точку появления игрока: слева или справа от штаба.
func PlayerSpawn(slot int) image.Point {
	x := 8*config.TileSize + config.LatticeSnapPadding
	if slot > 0 {
		x = 16*config.TileSize + config.LatticeSnapPadding
	}
	return image.Pt(x, 24*config.TileSize+config.LatticeSnapPadding)
}

// Respawn возвращает игрока на стартовую точку целым, без прокачки
// и под щитом.
func (s *ActorSystem) Respawn(a *component.Actor, shield time.Duration) {
	p := a.Player
	s.cancelTimers(a)
	a.MoveTo(p.StartPos)
	a.Direction = p.StartDir
	a.Health = config.TankHealth
	a.Superpowers = 0
	a.MaxBullets = a.Capability().MaxBullets
	a.Paralysed = false
	a.Paused = false
	a.Shielded = false
	a.Bonus = 0
	a.Explosion = component.Explosion{}
	p.Pressed = [4]bool{}
	a.State = component.ActorActive
	if shield > 0 {
		s.Shield(a, shield)
	}
}

var enemySpawns = [...]int{
	config.LatticeSnapPadding,
	12*config.TileSize + config.LatticeSnapPadding,
	24*config.TileSize + config.LatticeSnapPadding,
}

// SpawnEnemy выводит врага подтипа kind в первую свободную точку
// появления. Возвращает nil, если все точки заняты.
func (s *ActorSystem) SpawnEnemy(kind defs.EnemyKind) *component.Actor {
	for i := 0; i < len(enemySpawns); i++ {
		slot := (s.spawnSlot + i) % len(enemySpawns)
		pos := image.Pt(enemySpawns[slot], config.LatticeSnapPadding)
		rect := image.Rect(pos.X, pos.Y, pos.X+config.TankSize, pos.Y+config.TankSize)
		if s.occupied(rect, nil) {
			continue
		}
		s.spawnSlot = slot + 1

		dirs := [...]types.Direction{types.DirRight, types.DirDown, types.DirLeft}
		a := component.NewActor(s.world.NewEntity(), types.SideEnemy, pos, dirs[s.rng.Intn(len(dirs))])
		def := defs.Enemy(kind)
		a.Health = def.Health
		a.Speed = def.Speed
		a.Superpowers = def.Superpowers
		a.Enemy = &component.EnemyState{Kind: kind, CarriesBonus: s.rng.OneIn(config.BonusCarrierOdds)}
		s.world.AddEnemy(a)
		s.Spawn(a)
		return a
	}
	return nil
}

// occupied сообщает, занят ли r живым танком, кроме self.
func (s *ActorSystem) occupied(r image.Rectangle, self *component.Actor) bool {
	for _, group := range [][]*component.Actor{s.world.Players, s.world.Enemies} {
		for _, a := range group {
			if a != self && a.State != component.ActorDead && a.Rect.Overlaps(r) {
				return true
			}
		}
	}
	return false
}

// Fire выпускает снаряд. Отказывает, если танк не в бою, на паузе или,
// без forced, уже выпустил свою норму снарядов.
func (s *ActorSystem) Fire(a *component.Actor, forced bool) bool {
	if !a.Active() {
		s.world.Cancel(&a.FireTimer)
		return false
	}
	if a.Paused {
		return false
	}
	if !forced && s.world.ActiveProjectiles(a.ID) >= a.MaxBullets {
		return false
	}

	p := &component.Projectile{
		ID:        s.world.NewEntity(),
		Rect:      component.BulletRect(a.Pos(), a.Direction),
		Direction: a.Direction,
		Owner:     a.Side,
		OwnerID:   a.ID,
		Damage:    config.BulletDamage,
		Speed:     config.BulletSpeed,
		Power:     1,
		State:     component.ProjectileActive,
	}
	if a.Superpowers > 0 {
		p.Speed = config.BulletSpeedBoosted
	}
	if a.Superpowers >= config.SteelPiercingTier {
		p.Power = 2
	}
	s.world.AddProjectile(p)
	if a.Side == types.SidePlayer {
		s.world.PlaySound(audio.SoundFire)
	}
	return true
}

// Explode взрывает танк из боя или появления. Носитель бонуса при этом
// выбрасывает бонус.
func (s *ActorSystem) Explode(a *component.Actor) {
	if a.State == component.ActorDead || a.State == component.ActorExploding {
		return
	}
	s.cancelTimers(a)
	a.State = component.ActorExploding
	a.Shielded = false
	a.Paralysed = false
	a.Explosion = component.NewExplosion(center(a.Rect), config.BigExplosionFrames)
	a.Explosion.Timer = s.world.Schedule(config.ExplosionFrame, entity.Job{Kind: entity.JobExplosionFrame, Target: a.ID}, config.BigExplosionFrames)

	if a.Player != nil {
		s.events.Dispatch(event.Event{Type: event.PlayerDestroyed, Data: a})
	}
	if a.Enemy != nil && a.Enemy.CarriesBonus {
		a.Enemy.CarriesBonus = false
		s.events.Dispatch(event.Event{Type: event.CarrierExploded, Data: a})
	}
}

// Update завершает взрыв: когда анимация кончилась, танк мёртв.
func (s *ActorSystem) Update(a *component.Actor) {
	if a.State == component.ActorExploding && !a.Explosion.Active {
		a.State = component.ActorDead
		a.Explosion = component.Explosion{}
	}
}

// Shield включает щит. duration > 0 снимает его автоматически; повторный
// щит заменяет прежний таймер.
func (s *ActorSystem) Shield(a *component.Actor, duration time.Duration) {
	s.world.Cancel(&a.UnshieldTimer)
	s.world.Cancel(&a.ShieldBlinkTimer)
	a.Shielded = true
	a.ShieldBlinkTimer = s.world.Schedule(config.ShieldBlink, entity.Job{Kind: entity.JobShieldBlink, Target: a.ID}, scheduler.Forever)
	if duration > 0 {
		a.UnshieldTimer = s.world.Schedule(duration, entity.Job{Kind: entity.JobUnshield, Target: a.ID}, 1)
	}
}

// Unshield снимает щит.
func (s *ActorSystem) Unshield(a *component.Actor) {
	a.Shielded = false
	s.world.Cancel(&a.ShieldBlinkTimer)
	s.world.Cancel(&a.UnshieldTimer)
}

// Paralyse обездвиживает танк на ParalysisDuration. Повторный паралич
// не продлевает текущий.
func (s *ActorSystem) Paralyse(a *component.Actor) {
	if a.Paralysed {
		return
	}
	a.Paralysed = true
	a.ParalysisTimer = s.world.Schedule(config.ParalysisDuration, entity.Job{Kind: entity.JobUnparalyse, Target: a.ID}, 1)
}

// Freeze останавливает или отпускает всех врагов. Заморозка снимается
// сама через FreezeDuration; новая заморозка продлевает срок.
func (s *ActorSystem) Freeze(on bool) {
	s.world.Cancel(&s.freezeTimer)
	s.world.TimeFrozen = on
	for _, e := range s.world.Enemies {
		e.Paused = on
	}
	if on {
		s.freezeTimer = s.world.Schedule(config.FreezeDuration, entity.Job{Kind: entity.JobUnfreeze}, 1)
	}
}

func (s *ActorSystem) cancelTimers(a *component.Actor) {
	s.world.Cancel(&a.SpawnBlinkTimer)
	s.world.Cancel(&a.SpawnEndTimer)
	s.world.Cancel(&a.ShieldBlinkTimer)
	s.world.Cancel(&a.UnshieldTimer)
	s.world.Cancel(&a.ParalysisTimer)
	s.world.Cancel(&a.FireTimer)
	s.world.Cancel(&a.Explosion.Timer)
}

func center(r image.Rectangle) image.Point {
	return r.Min.Add(r.Max).Div(2)
}
