// internal/system/systems.go
package system

import (
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/utils"
)

// Systems - все системы одного мира, связанные между собой.
type Systems struct {
	Actors      *ActorSystem
	Movement    *MovementSystem
	Combat      *CombatSystem
	Projectiles *ProjectileSystem
	Fortress    *FortressSystem
	Bonuses     *BonusSystem
	Jobs        *JobSystem
}

// New создаёт системы для world. События публикуются в events.
func New(world *entity.World, events *event.Dispatcher, rng *utils.PRNGService) *Systems {
	actors := NewActorSystem(world, events, rng)
	fortress := NewFortressSystem(world, events)
	combat := NewCombatSystem(world, events, actors)
	return &Systems{
		Actors:      actors,
		Movement:    NewMovementSystem(world, rng),
		Combat:      combat,
		Projectiles: NewProjectileSystem(world, combat, fortress),
		Fortress:    fortress,
		Bonuses:     NewBonusSystem(world, events, rng, actors, fortress),
		Jobs:        NewJobSystem(world, actors, fortress),
	}
}
