// internal/system/combat.go
package system

import (
	"strconv"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/types"
)

// CombatSystem решает, что происходит с танком, в который попал снаряд.
type CombatSystem struct {
	world  *entity.World
	events *event.Dispatcher
	actors *ActorSystem
}

func NewCombatSystem(world *entity.World, events *event.Dispatcher, actors *ActorSystem) *CombatSystem {
	return &CombatSystem{world: world, events: events, actors: actors}
}

// BulletImpact применяет попадание к target и сообщает, должен ли снаряд
// погибнуть.
//
// Щит гасит любой снаряд без урона. Чужой снаряд снимает damage здоровья
// и при смертельном попадании во врага начисляет стрелявшему очки.
// Свой снаряд врага пролетает насквозь, а игрока парализует.
func (s *CombatSystem) BulletImpact(target *component.Actor, friendlyFire bool, damage int, attacker types.EntityID) bool {
	if target.Shielded {
		return true
	}

	if !friendlyFire {
		target.Health -= damage
		if target.Health <= 0 {
			if target.Enemy != nil {
				s.creditKill(target, attacker)
			}
			s.actors.Explode(target)
		}
		return true
	}

	if !target.Capability().FriendlyFireStops {
		return false
	}
	s.actors.Paralyse(target)
	return true
}

func (s *CombatSystem) creditKill(target *component.Actor, attackerID types.EntityID) {
	points := target.Enemy.Points()
	attacker := s.world.Actor(attackerID)
	if attacker != nil && attacker.Player != nil {
		attacker.Player.Trophies.Enemies[target.Enemy.Kind]++
		attacker.Player.Score += points
	}
	s.world.PlaySound(audio.SoundExplosion)
	s.world.AddLabel(target.Pos(), strconv.Itoa(points), config.LabelLifetime)
	s.events.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.Kill{Enemy: target, Attacker: attacker, Points: points}})
}
