// internal/app/game.go
package app

import (
	"fmt"
	"io/fs"
	"log"
	"time"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/system"
	"go-battle-city/internal/utils"
)

// Game holds one play session: the world, its systems and the stage
// lifecycle around them.
type Game struct {
	World    *entity.World
	Systems  *system.Systems
	Events   *event.Dispatcher
	Rng      *utils.PRNGService
	Settings config.Settings
	// Levels - каталог с файлами стадий. nil означает пустые арены.
	Levels fs.FS

	Stage int
	Phase component.GamePhase
	// ScoresDue выставляется через StageOutro после конца стадии
	// или партии: пора показать экран очков.
	ScoresDue bool

	gameTime   time.Duration
	spawnTimer scheduler.Handle
}

// NewGame создаёт партию без игроков. Звуки уходят в sounds.
func NewGame(settings config.Settings, levels fs.FS, sounds audio.Player) *Game {
	world := entity.NewWorld(sounds)
	world.SoundEnabled = settings.Sound
	events := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		World:    world,
		Systems:  system.New(world, events, rng),
		Events:   events,
		Rng:      rng,
		Settings: settings,
		Levels:   levels,
		Stage:    settings.StartStage,
	}

	listener := &GameEventListener{game: g}
	events.Subscribe(event.PlayerDestroyed, listener)
	events.Subscribe(event.FortressDestroyed, listener)
	return g
}

// Start начинает новую партию с players игроками со стадии из настроек.
func (g *Game) Start(players int) {
	g.World.Players = nil
	for slot := 0; slot < players; slot++ {
		g.Systems.Actors.NewPlayer(slot, g.Settings.Lives)
	}
	g.StartStage(g.Settings.StartStage)
}

// Update progresses the world by one tick of length elapsed. Фазы идут
// строго по порядку: таймеры, снаряды, танки, штаб, бонусы, уборка,
// проверка конца стадии.
func (g *Game) Update(elapsed time.Duration) error {
	if elapsed > config.MaxDeltaTime {
		elapsed = config.MaxDeltaTime
	}
	g.gameTime += elapsed
	w := g.World

	if err := w.Scheduler.Advance(elapsed, g.runJob); err != nil {
		return fmt.Errorf("tick at %v: %w", g.gameTime, err)
	}

	// Снаряды, выпущенные во время прохода, полетят со следующего тика
	n := len(w.Projectiles)
	for i := 0; i < n; i++ {
		g.Systems.Projectiles.Update(w.Projectiles[i])
	}
	for _, p := range w.Players {
		if g.Phase == component.PhasePlaying {
			g.drivePlayer(p)
		}
		g.Systems.Actors.Update(p)
	}
	for _, e := range w.Enemies {
		g.Systems.Movement.Steer(e)
		g.Systems.Actors.Update(e)
	}
	g.Systems.Fortress.Update()

	if g.Phase == component.PhasePlaying {
		g.Systems.Bonuses.Collect()
	}
	w.Reap()
	if g.Phase == component.PhasePlaying {
		g.settleDeadPlayers()
	}
	g.checkStage()
	return nil
}

// GameTime возвращает время, прошедшее с начала партии.
func (g *Game) GameTime() time.Duration {
	return g.gameTime
}

// ToggleSound включает и выключает звук. Выключение глушит всё, что
// играет; включение посреди стадии возвращает фоновую музыку.
func (g *Game) ToggleSound() {
	w := g.World
	w.SoundEnabled = !w.SoundEnabled
	if !w.SoundEnabled {
		w.Sounds.StopAll()
		return
	}
	if g.Phase == component.PhasePlaying {
		w.PlaySound(audio.SoundBackground)
	}
}

// EnemiesLeft возвращает, сколько врагов стадии ещё не уничтожено:
// очередь плюс те, что на поле.
func (g *Game) EnemiesLeft() int {
	return len(g.World.EnemyQueue) + g.World.LiveEnemies()
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDestroyed:
		if a, ok := e.Data.(*component.Actor); ok && a.Player != nil {
			log.Printf("Player %d destroyed, %d lives left", a.Player.Slot+1, a.Player.Lives-1)
		}
	case event.FortressDestroyed:
		log.Printf("Fortress destroyed on stage %d", l.game.Stage)
	}
}
