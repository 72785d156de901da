// internal/app/stage.go
package app

import (
	"fmt"
	"log"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/pkg/tilemap"
)

// StartStage готовит стадию stage: карта, очередь врагов, игроки и
// таймеры стадии. Все прежние таймеры отменяются.
func (g *Game) StartStage(stage int) {
	w := g.World
	w.Reset()
	g.Stage = stage
	g.Phase = component.PhasePlaying
	g.ScoresDue = false
	g.spawnTimer = scheduler.NoHandle

	if err := g.loadTerrain(stage); err != nil {
		log.Printf("Stage %d: %v, using an empty arena", stage, err)
		w.Grid.Apply(nil)
		w.Grid.BuildFortress(tilemap.Brick)
	}

	w.EnemyQueue = defs.StageRoster(stage).Queue(g.Rng.Shuffle)

	for _, p := range w.Players {
		if p.Player.Lives <= 0 {
			continue
		}
		p.Player.Trophies = component.Trophies{}
		g.Systems.Actors.Respawn(p, config.RespawnShield)
	}

	w.PlaySound(audio.SoundStart)
	w.Schedule(config.BackgroundMusicDelay, entity.Job{Kind: entity.JobBackgroundMusic}, 1)
	w.Schedule(config.WaterToggle, entity.Job{Kind: entity.JobWaterToggle}, scheduler.Forever)
	g.spawnTimer = w.Schedule(config.EnemySpawnInterval, entity.Job{Kind: entity.JobEnemySpawn}, scheduler.Forever)

	log.Printf("Stage %d started: %d enemies", stage, len(w.EnemyQueue))
	g.Events.Dispatch(event.Event{Type: event.StageStarted, Data: stage})
}

// NextStage переходит к следующей стадии.
func (g *Game) NextStage() {
	g.StartStage(g.Stage + 1)
}

// loadTerrain загружает карту стадии. Стадии за последним файлом уровня
// повторяют карты по кругу.
func (g *Game) loadTerrain(stage int) error {
	count := tilemap.CountStages(g.Levels)
	if count == 0 {
		return fmt.Errorf("no stage files: %w", tilemap.ErrLevelNotFound)
	}
	return g.World.Grid.LoadStage(g.Levels, stage, count)
}

// runJob исполняет задачи уровня партии, остальные отдаёт системам мира.
func (g *Game) runJob(h scheduler.Handle, job entity.Job) error {
	switch job.Kind {
	case entity.JobEnemySpawn:
		g.spawnEnemy()
	case entity.JobStageOutro:
		g.ScoresDue = true
	case entity.JobBackgroundMusic:
		if g.Phase == component.PhasePlaying {
			g.World.PlaySound(audio.SoundBackground)
		}
	default:
		return g.Systems.Jobs.Run(h, job)
	}
	return nil
}

// spawnEnemy выводит следующего врага из очереди, если на поле есть
// место и время не заморожено.
func (g *Game) spawnEnemy() {
	w := g.World
	if g.Phase != component.PhasePlaying || w.TimeFrozen || len(w.EnemyQueue) == 0 {
		return
	}
	if w.LiveEnemies() >= config.MaxActiveEnemies {
		return
	}
	if g.Systems.Actors.SpawnEnemy(w.EnemyQueue[0]) != nil {
		w.EnemyQueue = w.EnemyQueue[1:]
	}
}

// settleDeadPlayers списывает жизнь с каждого погибшего игрока и
// возрождает его под щитом. Когда возродить некого, партия проиграна.
func (g *Game) settleDeadPlayers() {
	players := g.World.Players
	out := 0
	for _, p := range players {
		if p.State != component.ActorDead {
			continue
		}
		if p.Player.Lives > 0 {
			p.Player.Lives--
			if p.Player.Lives > 0 {
				g.Systems.Actors.Respawn(p, config.RespawnShield)
				continue
			}
		}
		out++
	}
	if len(players) > 0 && out == len(players) {
		g.gameOver("no lives left")
	}
}

// checkStage проверяет поражение, затем победу.
func (g *Game) checkStage() {
	if g.Phase != component.PhasePlaying {
		return
	}
	w := g.World
	if !w.Fortress.Active {
		g.gameOver("fortress destroyed")
		return
	}
	if len(w.EnemyQueue) == 0 && len(w.Enemies) == 0 {
		g.finishStage()
	}
}

func (g *Game) finishStage() {
	w := g.World
	g.Phase = component.PhaseFinished
	w.Cancel(&g.spawnTimer)
	w.Sounds.StopAll()
	w.Schedule(config.StageOutro, entity.Job{Kind: entity.JobStageOutro}, 1)
	log.Printf("Stage %d completed", g.Stage)
	g.Events.Dispatch(event.Event{Type: event.StageCleared, Data: g.Stage})
}

func (g *Game) gameOver(reason string) {
	w := g.World
	g.Phase = component.PhaseGameOver
	w.Cancel(&g.spawnTimer)
	w.Sounds.StopAll()
	w.PlaySound(audio.SoundEnd)
	w.Schedule(config.StageOutro, entity.Job{Kind: entity.JobStageOutro}, 1)
	log.Printf("Game over on stage %d: %s", g.Stage, reason)
	g.Events.Dispatch(event.Event{Type: event.GameOver, Data: g.Stage})
}
