// internal/component/enemy.go
package component

import "go-battle-city/internal/defs"

// EnemyState хранит то, что есть только у вражеского танка.
type EnemyState struct {
	Kind defs.EnemyKind
	// CarriesBonus - при взрыве на поле появится бонус.
	CarriesBonus bool
	// Steps - сколько шагов танк проехал в текущем направлении.
	Steps int
}

// Points возвращает очки за уничтожение врага.
func (e *EnemyState) Points() int {
	return defs.Enemy(e.Kind).Points
}
