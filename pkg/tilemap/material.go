// pkg/tilemap/material.go
package tilemap

// Material - материал клетки карты.
type Material int

const (
	Empty Material = iota
	Brick
	Steel
	Water
	Grass
	Ice
)

// Blocks сообщает, входит ли материал в индекс препятствий.
func (m Material) Blocks() bool {
	return m == Brick || m == Steel || m == Water
}

// Destructible сообщает, может ли снаряд разрушить материал.
func (m Material) Destructible() bool {
	return m == Brick || m == Steel
}

func (m Material) String() string {
	switch m {
	case Brick:
		return "brick"
	case Steel:
		return "steel"
	case Water:
		return "water"
	case Grass:
		return "grass"
	case Ice:
		return "ice"
	}
	return "empty"
}

// materialFromCode переводит символ файла уровня в материал.
func materialFromCode(ch rune) Material {
	switch ch {
	case '#':
		return Brick
	case '@':
		return Steel
	case '~':
		return Water
	case '%':
		return Grass
	case '-':
		return Ice
	}
	return Empty
}
