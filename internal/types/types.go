// internal/types/types.go
package types

// EntityID - стабильный идентификатор сущности в мире.
// Ноль означает «нет сущности».
type EntityID uint32

// Direction - направление движения танка или снаряда.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite возвращает противоположное направление.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta возвращает единичный шаг по осям для направления.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	}
	return "unknown"
}

// Side - сторона конфликта.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}
