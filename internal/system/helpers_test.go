package system

import (
	"image"
	"testing"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"
)

type fixture struct {
	t      *testing.T
	world  *entity.World
	events *event.Dispatcher
	sys    *Systems
	sounds *audio.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	sounds := &audio.Recorder{}
	world := entity.NewWorld(sounds)
	events := event.NewDispatcher()
	return &fixture{
		t:      t,
		world:  world,
		events: events,
		sys:    New(world, events, utils.NewPRNGService(1)),
		sounds: sounds,
	}
}

func (f *fixture) advance(d time.Duration) {
	f.t.Helper()
	if err := f.world.Scheduler.Advance(d, f.sys.Jobs.Run); err != nil {
		f.t.Fatalf("advance: %v", err)
	}
}

// player добавляет игрока сразу в бою, без анимации появления.
func (f *fixture) player(x, y int, dir types.Direction) *component.Actor {
	a := component.NewActor(f.world.NewEntity(), types.SidePlayer, image.Pt(x, y), dir)
	a.Player = &component.PlayerState{Lives: 3, StartPos: image.Pt(x, y), StartDir: dir}
	a.State = component.ActorActive
	f.world.AddPlayer(a)
	return a
}

// enemy добавляет врага подтипа kind сразу в бою.
func (f *fixture) enemy(x, y int, kind defs.EnemyKind) *component.Actor {
	a := component.NewActor(f.world.NewEntity(), types.SideEnemy, image.Pt(x, y), types.DirDown)
	a.Health = defs.Enemy(kind).Health
	a.Enemy = &component.EnemyState{Kind: kind}
	a.State = component.ActorActive
	f.world.AddEnemy(a)
	return a
}

func (f *fixture) bullet(r image.Rectangle, dir types.Direction, owner types.Side) *component.Projectile {
	p := &component.Projectile{
		ID:        f.world.NewEntity(),
		Rect:      r,
		Direction: dir,
		Owner:     owner,
		Damage:    100,
		Speed:     5,
		Power:     1,
		State:     component.ProjectileActive,
	}
	f.world.AddProjectile(p)
	return p
}

// tick - одна фаза обновления без продвижения времени.
func (f *fixture) tick() {
	n := len(f.world.Projectiles)
	for i := 0; i < n; i++ {
		f.sys.Projectiles.Update(f.world.Projectiles[i])
	}
	for _, a := range f.world.Players {
		f.sys.Actors.Update(a)
	}
	for _, a := range f.world.Enemies {
		f.sys.Actors.Update(a)
	}
	f.sys.Fortress.Update()
}
