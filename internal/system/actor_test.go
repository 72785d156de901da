package system

import (
	"image"
	"testing"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/event"
	"go-battle-city/internal/types"
)

func TestPlayerSpawnLifecycle(t *testing.T) {
	f := newFixture(t)
	a := f.sys.Actors.NewPlayer(0, config.PlayerLives)

	if a.State != component.ActorSpawning {
		t.Fatalf("new player state = %v", a.State)
	}
	if a.Pos() != image.Pt(131, 387) {
		t.Fatalf("first player spawns at %v", a.Pos())
	}

	f.advance(config.SpawnBlinkInterval)
	if a.SpawnFrame != 1 {
		t.Fatalf("spawn animation did not blink")
	}
	for i := 1; i < 10; i++ {
		f.advance(config.SpawnBlinkInterval)
	}
	if a.State != component.ActorActive {
		t.Fatalf("state after spawn duration = %v", a.State)
	}

	f.advance(config.SpawnBlinkInterval)
	if n := f.world.Scheduler.Len(); n != 0 {
		t.Fatalf("spawn left %d timers behind", n)
	}
}

func TestPlayerSpawnPoints(t *testing.T) {
	tests := []struct {
		slot int
		want image.Point
	}{
		{0, image.Pt(131, 387)},
		{1, image.Pt(259, 387)},
	}
	for _, tt := range tests {
		if got := PlayerSpawn(tt.slot); got != tt.want {
			t.Errorf("PlayerSpawn(%d) = %v, want %v", tt.slot, got, tt.want)
		}
	}
}

func TestSpawnEnemyUsesFreeSpawnPoints(t *testing.T) {
	f := newFixture(t)
	seen := map[int]bool{}
	for i := 0; i < 3; i++ {
		e := f.sys.Actors.SpawnEnemy(defs.EnemyFast)
		if e == nil {
			t.Fatalf("spawn %d refused", i)
		}
		if e.Pos().Y != 3 {
			t.Fatalf("enemy spawned at %v", e.Pos())
		}
		if e.Direction == types.DirUp {
			t.Fatalf("enemy must not spawn facing the edge")
		}
		if e.Speed != 3 || e.Health != 100 {
			t.Fatalf("fast enemy stats: speed=%d health=%d", e.Speed, e.Health)
		}
		seen[e.Pos().X] = true
	}
	for _, x := range []int{3, 195, 387} {
		if !seen[x] {
			t.Errorf("spawn point x=%d unused: %v", x, seen)
		}
	}
	if e := f.sys.Actors.SpawnEnemy(defs.EnemyBasic); e != nil {
		t.Fatalf("spawned on an occupied point at %v", e.Pos())
	}
}

func TestEnemyStatsByKind(t *testing.T) {
	tests := []struct {
		kind        defs.EnemyKind
		health      int
		speed       int
		superpowers int
	}{
		{defs.EnemyBasic, 100, 1, 0},
		{defs.EnemyFast, 100, 3, 0},
		{defs.EnemyPower, 100, 2, 1},
		{defs.EnemyArmor, 400, 2, 0},
	}
	for _, tt := range tests {
		f := newFixture(t)
		e := f.sys.Actors.SpawnEnemy(tt.kind)
		if e.Health != tt.health || e.Speed != tt.speed || e.Superpowers != tt.superpowers {
			t.Errorf("kind %v: health=%d speed=%d superpowers=%d", tt.kind, e.Health, e.Speed, e.Superpowers)
		}
	}
}

func TestEnemyFiresOnTimer(t *testing.T) {
	f := newFixture(t)
	e := f.sys.Actors.SpawnEnemy(defs.EnemyBasic)
	for i := 0; i < 10; i++ {
		f.advance(config.SpawnBlinkInterval)
	}
	if !e.Active() {
		t.Fatalf("enemy not active after spawn")
	}
	if len(f.world.Projectiles) != 0 {
		t.Fatalf("enemy fired before its timer")
	}

	f.advance(config.EnemyFireInterval)
	if got := f.world.ActiveProjectiles(e.ID); got != 1 {
		t.Fatalf("active projectiles = %d, want 1", got)
	}
	// Норма снарядов не даёт выстрелить, пока первый летит
	f.advance(config.EnemyFireInterval)
	if got := len(f.world.Projectiles); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	if n := f.sounds.Count(audio.SoundFire); n != 0 {
		t.Fatalf("enemy fire is silent, got %d fire sounds", n)
	}
}

func TestFireQuota(t *testing.T) {
	f := newFixture(t)
	a := f.player(100, 200, types.DirUp)

	if !f.sys.Actors.Fire(a, false) {
		t.Fatalf("first shot refused")
	}
	if f.sys.Actors.Fire(a, false) {
		t.Fatalf("second shot allowed with one bullet in flight")
	}
	if !f.sys.Actors.Fire(a, true) {
		t.Fatalf("forced shot refused")
	}
	if got := f.world.ActiveProjectiles(a.ID); got != 2 {
		t.Fatalf("active projectiles = %d", got)
	}

	a.MaxBullets = 3
	if !f.sys.Actors.Fire(a, false) {
		t.Fatalf("shot under a raised quota refused")
	}
}

func TestFireRefusedWhenNotReady(t *testing.T) {
	tests := []struct {
		name  string
		setup func(a *component.Actor)
	}{
		{"spawning", func(a *component.Actor) { a.State = component.ActorSpawning }},
		{"exploding", func(a *component.Actor) { a.State = component.ActorExploding }},
		{"paused", func(a *component.Actor) { a.Paused = true }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			a := f.player(100, 200, types.DirUp)
			tt.setup(a)
			if f.sys.Actors.Fire(a, true) {
				t.Fatalf("fire allowed")
			}
			if len(f.world.Projectiles) != 0 {
				t.Fatalf("projectile created")
			}
		})
	}
}

func TestBulletStartsAtMuzzle(t *testing.T) {
	f := newFixture(t)
	a := f.player(100, 200, types.DirRight)
	f.sys.Actors.Fire(a, false)
	want := image.Rect(126, 211, 134, 217)
	if got := f.world.Projectiles[0].Rect; got != want {
		t.Fatalf("bullet rect = %v, want %v", got, want)
	}
}

func TestExplodeEndsInDeath(t *testing.T) {
	f := newFixture(t)
	e := f.enemy(100, 100, defs.EnemyBasic)
	f.sys.Actors.Explode(e)

	if e.State != component.ActorExploding || !e.Explosion.Active {
		t.Fatalf("state = %v", e.State)
	}
	for i := 0; i < config.BigExplosionFrames; i++ {
		f.sys.Actors.Update(e)
		if e.State != component.ActorExploding {
			t.Fatalf("died before the animation ended")
		}
		f.advance(config.ExplosionFrame)
	}
	f.sys.Actors.Update(e)
	if e.State != component.ActorDead {
		t.Fatalf("state after explosion = %v", e.State)
	}
	if n := f.world.Reap(); n != 1 || len(f.world.Enemies) != 0 {
		t.Fatalf("reaped %d, left %d", n, len(f.world.Enemies))
	}
}

func TestExplodeIsIdempotent(t *testing.T) {
	f := newFixture(t)
	p := f.player(100, 200, types.DirUp)
	destroyed := 0
	f.events.Subscribe(event.PlayerDestroyed, event.ListenerFunc(func(event.Event) { destroyed++ }))

	f.sys.Actors.Explode(p)
	f.sys.Actors.Explode(p)

	if destroyed != 1 {
		t.Fatalf("PlayerDestroyed dispatched %d times", destroyed)
	}
	if n := f.world.Scheduler.Len(); n != 1 {
		t.Fatalf("explosion timers = %d", n)
	}
}

func TestShieldRegrantReplacesTimer(t *testing.T) {
	f := newFixture(t)
	a := f.player(100, 200, types.DirUp)

	f.sys.Actors.Shield(a, config.HelmetShield)
	f.advance(6 * time.Second)
	f.sys.Actors.Shield(a, config.HelmetShield)
	f.advance(6 * time.Second)
	if !a.Shielded {
		t.Fatalf("first shield timer still fired")
	}
	f.advance(5 * time.Second)
	if a.Shielded {
		t.Fatalf("shield outlived its duration")
	}
	f.advance(config.ShieldBlink)
	if n := f.world.Scheduler.Len(); n != 0 {
		t.Fatalf("shield left %d timers", n)
	}
}

func TestPermanentShield(t *testing.T) {
	f := newFixture(t)
	a := f.player(100, 200, types.DirUp)
	f.sys.Actors.Shield(a, 0)
	f.advance(time.Minute)
	if !a.Shielded {
		t.Fatalf("shield without duration expired")
	}
	f.sys.Actors.Unshield(a)
	if a.Shielded || f.world.Scheduler.Len() != 0 {
		t.Fatalf("unshield left shielded=%v timers=%d", a.Shielded, f.world.Scheduler.Len())
	}
}

func TestRespawnRestoresPlayer(t *testing.T) {
	f := newFixture(t)
	a := f.player(131, 387, types.DirUp)
	a.Superpowers = 3
	a.MaxBullets = 2
	a.MoveTo(image.Pt(50, 50))
	a.Direction = types.DirLeft
	f.sys.Actors.Explode(a)

	f.sys.Actors.Respawn(a, config.RespawnShield)

	if a.State != component.ActorActive || a.Pos() != image.Pt(131, 387) || a.Direction != types.DirUp {
		t.Fatalf("respawned as %v at %v facing %v", a.State, a.Pos(), a.Direction)
	}
	if a.Superpowers != 0 || a.MaxBullets != 1 || a.Health != config.TankHealth {
		t.Fatalf("upgrades survived respawn: superpowers=%d bullets=%d", a.Superpowers, a.MaxBullets)
	}
	if !a.Shielded {
		t.Fatalf("respawn shield missing")
	}
	f.advance(config.RespawnShield)
	if a.Shielded {
		t.Fatalf("respawn shield did not expire")
	}
}

func TestFreezePausesEnemies(t *testing.T) {
	f := newFixture(t)
	e := f.enemy(100, 100, defs.EnemyBasic)

	f.sys.Actors.Freeze(true)
	if !e.Paused || !f.world.TimeFrozen {
		t.Fatalf("freeze did not pause enemies")
	}
	if f.sys.Movement.Move(e, types.DirDown) {
		t.Fatalf("frozen enemy moved")
	}

	late := f.sys.Actors.SpawnEnemy(defs.EnemyBasic)
	for i := 0; i < 10; i++ {
		f.advance(config.SpawnBlinkInterval)
	}
	if !late.Paused {
		t.Fatalf("enemy spawned during freeze is not paused")
	}

	// Повторная заморозка продлевает срок
	f.advance(5 * time.Second)
	f.sys.Actors.Freeze(true)
	f.advance(6 * time.Second)
	if !e.Paused {
		t.Fatalf("freeze ended early")
	}
	f.advance(4 * time.Second)
	if e.Paused || late.Paused || f.world.TimeFrozen {
		t.Fatalf("freeze did not end")
	}
}
