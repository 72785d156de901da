// internal/system/bonus.go
package system

import (
	"image"
	"strconv"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/scheduler"
	"go-battle-city/internal/utils"
	"go-battle-city/pkg/tilemap"
)

// BonusSystem выкладывает бонусы на поле и применяет подобранные.
type BonusSystem struct {
	world    *entity.World
	events   *event.Dispatcher
	rng      *utils.PRNGService
	actors   *ActorSystem
	fortress *FortressSystem
}

func NewBonusSystem(world *entity.World, events *event.Dispatcher, rng *utils.PRNGService, actors *ActorSystem, fortress *FortressSystem) *BonusSystem {
	s := &BonusSystem{world: world, events: events, rng: rng, actors: actors, fortress: fortress}
	events.Subscribe(event.CarrierExploded, s)
	return s
}

// OnEvent выкладывает бонус, когда взрывается враг-носитель.
func (s *BonusSystem) OnEvent(e event.Event) {
	if e.Type == event.CarrierExploded {
		s.Drop(s.rng.ChooseWeighted(defs.BonusTable))
	}
}

// Drop кладёт бонус kind в случайное место поля. На поле бывает только
// один бонус: прежний исчезает.
func (s *BonusSystem) Drop(kind defs.BonusKind) *component.Bonus {
	for _, b := range s.world.Bonuses {
		b.Active = false
	}
	cells := config.ArenaTiles - config.BonusSize/config.TileSize + 1
	pos := image.Pt(s.rng.Intn(cells)*config.TileSize, s.rng.Intn(cells)*config.TileSize)
	return s.Place(kind, pos)
}

// Place кладёт бонус kind в точку pos.
func (s *BonusSystem) Place(kind defs.BonusKind, pos image.Point) *component.Bonus {
	b := &component.Bonus{
		ID:      s.world.NewEntity(),
		Kind:    kind,
		Rect:    image.Rect(pos.X, pos.Y, pos.X+config.BonusSize, pos.Y+config.BonusSize),
		Active:  true,
		Visible: true,
	}
	s.world.AddBonus(b)
	s.world.Schedule(config.BonusBlink, entity.Job{Kind: entity.JobBonusBlink, Target: b.ID}, scheduler.Forever)
	s.world.Schedule(config.BonusLifetime, entity.Job{Kind: entity.JobBonusExpire, Target: b.ID}, 1)
	return b
}

// Collect применяет бонусы, подобранные живыми игроками.
func (s *BonusSystem) Collect() {
	for _, p := range s.world.Players {
		if !p.Active() || p.Bonus == 0 {
			continue
		}
		if b := s.world.Bonus(p.Bonus); b != nil && b.Active {
			s.Trigger(b, p)
		}
		p.Bonus = 0
	}
}

// Trigger применяет бонус b к игроку player.
func (s *BonusSystem) Trigger(b *component.Bonus, player *component.Actor) {
	s.world.PlaySound(audio.SoundBonus)
	if player.Player != nil {
		player.Player.Trophies.Bonuses++
		player.Player.Score += config.BonusPoints
	}

	switch b.Kind {
	case defs.BonusGrenade:
		for _, e := range s.world.Enemies {
			if e.State == component.ActorActive || e.State == component.ActorSpawning {
				s.actors.Explode(e)
			}
		}
	case defs.BonusHelmet:
		s.actors.Shield(player, config.HelmetShield)
	case defs.BonusShovel:
		s.fortress.Fortify(tilemap.Steel, config.ShovelDuration)
	case defs.BonusStar:
		if player.Superpowers < config.MaxSuperpowers {
			player.Superpowers++
		}
		if player.Superpowers >= config.DoubleFireSuperpowers {
			player.MaxBullets = 2
		}
	case defs.BonusTank:
		if player.Player != nil {
			player.Player.Lives++
		}
	case defs.BonusTimer:
		s.actors.Freeze(true)
	}

	b.Active = false
	s.world.AddLabel(b.Rect.Min, strconv.Itoa(config.BonusPoints), config.LabelLifetime)
	s.events.Dispatch(event.Event{Type: event.BonusCollected, Data: event.Pickup{Player: player, Kind: b.Kind}})
}
