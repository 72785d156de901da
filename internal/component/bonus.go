// internal/component/bonus.go
package component

import (
	"image"

	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

// Bonus - бонус, лежащий на поле.
type Bonus struct {
	ID      types.EntityID
	Kind    defs.BonusKind
	Rect    image.Rectangle
	Active  bool
	Visible bool
}
