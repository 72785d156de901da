// internal/interfaces/game.go
package interfaces

import "go-battle-city/internal/types"

// Controller - то, чем фронтенд управляет партией.
type Controller interface {
	Press(slot int, dir types.Direction, down bool)
	Release(slot int)
	Fire(slot int) bool
	ToggleSound()
}
