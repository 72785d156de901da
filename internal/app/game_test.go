package app

import (
	"bytes"
	"image"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/tilemap"
)

const tick = 20 * time.Millisecond

// fortressWall - клетки стены вокруг штаба на поле 26x26.
var fortressWall = []image.Point{
	{176, 368}, {176, 384}, {176, 400},
	{224, 368}, {224, 384}, {224, 400},
	{192, 368}, {208, 368},
}

func testLevels() fstest.MapFS {
	rows := make([][]byte, config.ArenaTiles)
	for i := range rows {
		rows[i] = bytes.Repeat([]byte{'.'}, config.ArenaTiles)
	}
	rows[160/config.TileSize][0] = '@'
	for _, c := range fortressWall {
		rows[c.Y/config.TileSize][c.X/config.TileSize] = '#'
	}
	return fstest.MapFS{"1": {Data: append(bytes.Join(rows, []byte("\n")), '\n')}}
}

func newTestGame(t *testing.T, levels fs.FS) (*Game, *audio.Recorder) {
	t.Helper()
	settings := config.DefaultSettings()
	settings.Seed = 1
	settings.HiscoreFile = filepath.Join(t.TempDir(), "hiscore")
	rec := &audio.Recorder{}
	return NewGame(settings, levels, rec), rec
}

func run(t *testing.T, g *Game, d time.Duration) {
	t.Helper()
	for d > 0 {
		step := tick
		if d < step {
			step = d
		}
		if err := g.Update(step); err != nil {
			t.Fatalf("update: %v", err)
		}
		d -= step
	}
}

func TestStartStage(t *testing.T) {
	g, rec := newTestGame(t, testLevels())
	var started []int
	g.Events.Subscribe(event.StageStarted, event.ListenerFunc(func(e event.Event) {
		started = append(started, e.Data.(int))
	}))

	g.Start(1)

	if g.Stage != 1 || g.Phase != component.PhasePlaying {
		t.Fatalf("stage=%d phase=%v", g.Stage, g.Phase)
	}
	if len(started) != 1 || started[0] != 1 {
		t.Fatalf("StageStarted events = %v", started)
	}
	p := g.Player(0)
	if p == nil || !p.Active() || !p.Shielded {
		t.Fatalf("player not ready: %+v", p)
	}
	if p.Pos() != image.Pt(131, 387) {
		t.Fatalf("player at %v", p.Pos())
	}
	if got := len(g.World.EnemyQueue); got != 20 {
		t.Fatalf("stage 1 queue = %d enemies", got)
	}
	if g.EnemiesLeft() != 20 {
		t.Fatalf("EnemiesLeft = %d", g.EnemiesLeft())
	}
	if g.World.Grid.At(image.Pt(0, 160)) != tilemap.Steel {
		t.Fatalf("level file not applied")
	}
	if rec.Count(audio.SoundStart) != 1 {
		t.Fatalf("start sound not played")
	}
}

func TestMissingLevelUsesEmptyArena(t *testing.T) {
	for _, levels := range []fs.FS{nil, fstest.MapFS{}} {
		g, _ := newTestGame(t, levels)
		g.Start(1)
		if got := len(g.World.Grid.Tiles); got != len(fortressWall) {
			t.Fatalf("empty arena has %d tiles", got)
		}
		for _, c := range fortressWall {
			if g.World.Grid.At(c) != tilemap.Brick {
				t.Fatalf("fortress wall missing at %v", c)
			}
		}
	}
}

func TestStagesPastLastLevelReuseMaps(t *testing.T) {
	g, _ := newTestGame(t, os.DirFS(filepath.Join("..", "..", "assets", "levels")))
	seen := make(map[int]map[image.Point]tilemap.Material)
	for _, stage := range []int{1, 2, 3, 4, 35} {
		g.StartStage(stage)
		if got := len(g.World.Grid.Tiles); got <= len(fortressWall) {
			t.Fatalf("stage %d played on an empty arena (%d tiles)", stage, got)
		}
		seen[stage] = maps.Clone(g.World.Grid.Tiles)
	}
	if !reflect.DeepEqual(seen[3], seen[1]) || !reflect.DeepEqual(seen[4], seen[2]) {
		t.Fatalf("stages past the last level file should repeat the maps in order")
	}
}

func TestShippedLevelsLoad(t *testing.T) {
	g, _ := newTestGame(t, os.DirFS(filepath.Join("..", "..", "assets", "levels")))
	for _, stage := range []int{1, 2} {
		if err := g.loadTerrain(stage); err != nil {
			t.Fatalf("stage %d: %v", stage, err)
		}
		for _, c := range fortressWall {
			if g.World.Grid.At(c) != tilemap.Brick {
				t.Fatalf("stage %d: fortress wall missing at %v", stage, c)
			}
		}
		if g.World.Grid.Blocked(image.Rect(131, 387, 157, 413)) {
			t.Fatalf("stage %d: first player spawn is blocked", stage)
		}
		if g.World.Grid.Blocked(image.Rect(259, 387, 285, 413)) {
			t.Fatalf("stage %d: second player spawn is blocked", stage)
		}
		for _, x := range []int{3, 195, 387} {
			if g.World.Grid.Blocked(image.Rect(x, 3, x+26, 29)) {
				t.Fatalf("stage %d: enemy spawn x=%d is blocked", stage, x)
			}
		}
	}
}

func TestEnemiesSpawnOnTimer(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)

	run(t, g, config.EnemySpawnInterval-tick)
	if len(g.World.Enemies) != 0 {
		t.Fatalf("enemy spawned early")
	}
	run(t, g, tick)
	if len(g.World.Enemies) != 1 || len(g.World.EnemyQueue) != 19 {
		t.Fatalf("enemies=%d queue=%d", len(g.World.Enemies), len(g.World.EnemyQueue))
	}
	if g.EnemiesLeft() != 20 {
		t.Fatalf("EnemiesLeft = %d", g.EnemiesLeft())
	}
}

func TestSpawnRespectsLimitAndFreeze(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	w := g.World
	spawn := func() {
		t.Helper()
		if err := g.runJob(scheduler.NoHandle, entity.Job{Kind: entity.JobEnemySpawn}); err != nil {
			t.Fatalf("spawn job: %v", err)
		}
	}

	for i := 0; i < config.MaxActiveEnemies; i++ {
		a := component.NewActor(w.NewEntity(), types.SideEnemy, image.Pt(100, 60+i*30), types.DirDown)
		a.Enemy = &component.EnemyState{}
		w.AddEnemy(a)
	}
	queued := len(w.EnemyQueue)
	spawn()
	if len(w.EnemyQueue) != queued {
		t.Fatalf("spawned over the limit")
	}

	w.Enemies = nil
	w.TimeFrozen = true
	spawn()
	if len(w.EnemyQueue) != queued {
		t.Fatalf("spawned during a freeze")
	}

	w.TimeFrozen = false
	spawn()
	if len(w.EnemyQueue) != queued-1 || len(w.Enemies) != 1 {
		t.Fatalf("queue=%d enemies=%d", len(w.EnemyQueue), len(w.Enemies))
	}
}

func TestStageClearedLeadsToNextStage(t *testing.T) {
	g, rec := newTestGame(t, testLevels())
	cleared := 0
	g.Events.Subscribe(event.StageCleared, event.ListenerFunc(func(event.Event) { cleared++ }))
	g.Start(1)
	p := g.Player(0)
	p.Player.Score = 1200
	p.Player.Trophies.Enemies[0] = 12

	g.World.EnemyQueue = nil
	run(t, g, tick)

	if g.Phase != component.PhaseFinished || cleared != 1 {
		t.Fatalf("phase=%v cleared=%d", g.Phase, cleared)
	}
	if rec.Stopped == 0 {
		t.Fatalf("music still playing after the stage")
	}
	if g.Fire(0) {
		t.Fatalf("player fired after the stage ended")
	}

	run(t, g, config.StageOutro-tick)
	if g.ScoresDue {
		t.Fatalf("scores shown early")
	}
	run(t, g, tick)
	if !g.ScoresDue {
		t.Fatalf("scores not due after the outro")
	}

	g.NextStage()
	if g.Stage != 2 || g.Phase != component.PhasePlaying || g.ScoresDue {
		t.Fatalf("stage=%d phase=%v", g.Stage, g.Phase)
	}
	if len(g.World.EnemyQueue) != 20 {
		t.Fatalf("stage 2 queue = %d", len(g.World.EnemyQueue))
	}
	if p.Player.Score != 1200 || p.Player.Trophies.Enemies[0] != 0 {
		t.Fatalf("score=%d trophies=%v", p.Player.Score, p.Player.Trophies)
	}
}

func TestFortressLossEndsGame(t *testing.T) {
	g, rec := newTestGame(t, testLevels())
	over := 0
	g.Events.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) { over++ }))
	g.Start(1)

	g.Systems.Fortress.Destroy()
	run(t, g, tick)

	if g.Phase != component.PhaseGameOver || over != 1 {
		t.Fatalf("phase=%v game over events=%d", g.Phase, over)
	}
	if rec.Count(audio.SoundEnd) != 1 {
		t.Fatalf("game over sound not played")
	}
	run(t, g, config.StageOutro)
	if !g.ScoresDue {
		t.Fatalf("scores not due after game over")
	}
	if g.World.Fortress.State != component.FortressDestroyed {
		t.Fatalf("fortress state = %v", g.World.Fortress.State)
	}
}

func TestPlayerDeathCostsLife(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	g.World.Cancel(&g.spawnTimer)
	p := g.Player(0)
	p.MoveTo(image.Pt(50, 50))
	p.Superpowers = 2

	g.Systems.Actors.Explode(p)
	run(t, g, 400*time.Millisecond)

	if p.Player.Lives != config.PlayerLives-1 {
		t.Fatalf("lives = %d", p.Player.Lives)
	}
	if !p.Active() || !p.Shielded || p.Pos() != image.Pt(131, 387) || p.Superpowers != 0 {
		t.Fatalf("respawn: state=%v shielded=%v pos=%v superpowers=%d", p.State, p.Shielded, p.Pos(), p.Superpowers)
	}
	if g.Phase != component.PhasePlaying {
		t.Fatalf("phase = %v", g.Phase)
	}
	run(t, g, config.RespawnShield)
	if p.Shielded {
		t.Fatalf("respawn shield did not expire")
	}
}

func TestLastLifeEndsGame(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	p := g.Player(0)
	p.Player.Lives = 1

	g.Systems.Actors.Explode(p)
	run(t, g, 400*time.Millisecond)

	if g.Phase != component.PhaseGameOver {
		t.Fatalf("phase = %v", g.Phase)
	}
	if p.State != component.ActorDead || p.Player.Lives != 0 {
		t.Fatalf("state=%v lives=%d", p.State, p.Player.Lives)
	}
}

func TestGameGoesOnWhileOnePlayerRemains(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(2)
	first, second := g.Player(0), g.Player(1)
	if second == nil || second.Pos() != image.Pt(259, 387) {
		t.Fatalf("second player missing")
	}
	first.Player.Lives = 1
	second.Player.Lives = 1

	g.Systems.Actors.Explode(first)
	run(t, g, 400*time.Millisecond)
	if g.Phase != component.PhasePlaying || first.State != component.ActorDead {
		t.Fatalf("phase=%v first=%v", g.Phase, first.State)
	}

	g.Systems.Actors.Explode(second)
	run(t, g, 400*time.Millisecond)
	if g.Phase != component.PhaseGameOver {
		t.Fatalf("phase = %v", g.Phase)
	}
}

func TestSoundToggle(t *testing.T) {
	g, rec := newTestGame(t, testLevels())
	g.Start(1)

	g.ToggleSound()
	if g.World.SoundEnabled || rec.Stopped != 1 {
		t.Fatalf("enabled=%v stopped=%d", g.World.SoundEnabled, rec.Stopped)
	}
	if !g.Fire(0) {
		t.Fatalf("fire refused")
	}
	if rec.Count(audio.SoundFire) != 0 {
		t.Fatalf("muted game played a shot")
	}

	g.ToggleSound()
	if !g.World.SoundEnabled || rec.Count(audio.SoundBackground) != 1 {
		t.Fatalf("unmute did not resume the music")
	}
}

func TestBackgroundMusicAfterIntro(t *testing.T) {
	g, rec := newTestGame(t, testLevels())
	g.Start(1)
	run(t, g, config.BackgroundMusicDelay-tick)
	if rec.Count(audio.SoundBackground) != 0 {
		t.Fatalf("music started during the intro")
	}
	run(t, g, tick)
	if rec.Count(audio.SoundBackground) != 1 {
		t.Fatalf("music did not start")
	}
}

func TestInputDrivesPlayer(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	p := g.Player(0)

	g.Press(0, types.DirUp, true)
	run(t, g, tick)
	if p.Pos() != image.Pt(131, 385) {
		t.Fatalf("position = %v", p.Pos())
	}

	g.Press(0, types.DirUp, false)
	run(t, g, tick)
	if p.Pos() != image.Pt(131, 385) {
		t.Fatalf("tank kept moving after release: %v", p.Pos())
	}

	g.Press(0, types.DirRight, true)
	g.Press(0, types.DirUp, true)
	run(t, g, tick)
	if p.Direction != types.DirUp {
		t.Fatalf("up must win over right, got %v", p.Direction)
	}
	g.Release(0)
	if _, ok := p.Player.Heading(); ok {
		t.Fatalf("release left keys pressed")
	}

	g.Press(5, types.DirUp, true)
	g.Press(0, types.Direction(9), true)
}

func TestUpdateClampsLongFrames(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	if err := g.Update(time.Minute); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.GameTime() != config.MaxDeltaTime {
		t.Fatalf("game time = %v", g.GameTime())
	}
}

func TestUpdateReportsBrokenJobs(t *testing.T) {
	g, _ := newTestGame(t, testLevels())
	g.Start(1)
	g.World.Schedule(tick, entity.Job{Kind: entity.JobKind(200)}, 1)
	if err := g.Update(tick); err == nil {
		t.Fatalf("unknown job went unnoticed")
	}
}
