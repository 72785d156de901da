// internal/event/types.go
package event

import (
	"go-battle-city/internal/component"
	"go-battle-city/internal/defs"
)

const (
	EnemyKilled       EventType = "EnemyKilled"       // Игрок подбил врага
	CarrierExploded   EventType = "CarrierExploded"   // Взорвался враг-носитель бонуса
	BonusCollected    EventType = "BonusCollected"    // Игрок подобрал бонус
	FortressDestroyed EventType = "FortressDestroyed" // Штаб разрушен
	PlayerDestroyed   EventType = "PlayerDestroyed"   // Танк игрока взорван
	StageStarted      EventType = "StageStarted"      // Началась стадия, Data - её номер
	StageCleared      EventType = "StageCleared"      // Все враги стадии уничтожены
	GameOver          EventType = "GameOver"          // Партия проиграна
)

// Kill - данные события EnemyKilled.
type Kill struct {
	Enemy    *component.Actor
	Attacker *component.Actor // nil, если стрелявший уже убран
	Points   int
}

// Pickup - данные события BonusCollected.
type Pickup struct {
	Player *component.Actor
	Kind   defs.BonusKind
}
