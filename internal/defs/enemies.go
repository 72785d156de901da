// internal/defs/enemies.go
package defs

// EnemyKind - подтип вражеского танка, индекс в EnemyLibrary.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyPower
	EnemyArmor
)

// EnemyKinds - число подтипов врагов.
const EnemyKinds = 4

// EnemyDefinition holds the static data for one enemy sub-type.
type EnemyDefinition struct {
	Kind        EnemyKind `json:"kind"`
	Name        string    `json:"name"`
	Health      int       `json:"health"`
	Speed       int       `json:"speed"`
	Superpowers int       `json:"superpowers"`
	Points      int       `json:"points"`
}

// DefaultEnemies - встроенная таблица врагов. Очки за подтип: (kind+1)*100.
var DefaultEnemies = [EnemyKinds]EnemyDefinition{
	{Kind: EnemyBasic, Name: "basic", Health: 100, Speed: 1, Points: 100},
	{Kind: EnemyFast, Name: "fast", Health: 100, Speed: 3, Points: 200},
	{Kind: EnemyPower, Name: "power", Health: 100, Speed: 2, Superpowers: 1, Points: 300},
	{Kind: EnemyArmor, Name: "armor", Health: 400, Speed: 2, Points: 400},
}

// EnemyLibrary - действующая таблица врагов. LoadEnemyDefinitions может
// переопределить отдельные подтипы.
var EnemyLibrary = DefaultEnemies

// Enemy возвращает определение подтипа. Неизвестный подтип даёт базовый.
func Enemy(kind EnemyKind) EnemyDefinition {
	if kind < 0 || int(kind) >= EnemyKinds {
		return EnemyLibrary[EnemyBasic]
	}
	return EnemyLibrary[kind]
}
