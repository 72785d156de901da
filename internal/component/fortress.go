// internal/component/fortress.go
package component

import (
	"image"

	"go-battle-city/internal/types"
)

// FortressState - состояние штаба.
type FortressState int

const (
	FortressStanding FortressState = iota
	FortressExploding
	FortressDestroyed
)

func (s FortressState) String() string {
	switch s {
	case FortressStanding:
		return "standing"
	case FortressExploding:
		return "exploding"
	case FortressDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Fortress - штаб игрока. Пока Active == false, игра проиграна.
type Fortress struct {
	ID        types.EntityID
	Rect      image.Rectangle
	State     FortressState
	Active    bool
	Explosion Explosion
}

// NewFortress создаёт целый штаб.
func NewFortress(id types.EntityID, rect image.Rectangle) *Fortress {
	f := &Fortress{ID: id, Rect: rect}
	f.Rebuild()
	return f
}

// Rebuild возвращает штаб в целое состояние, каким бы оно ни было.
func (f *Fortress) Rebuild() {
	f.State = FortressStanding
	f.Active = true
	f.Explosion = Explosion{}
}
