// internal/ui/lives_indicator.go
package ui

import (
	"strconv"

	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// LivesIndicator отображает номер игрока и его оставшиеся жизни.
type LivesIndicator struct {
	X, Y int
	Slot int
}

// NewLivesIndicator создает новый индикатор жизней игрока slot.
func NewLivesIndicator(x, y, slot int) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, Slot: slot}
}

// Label - подпись игрока: 1P, 2P.
func (i *LivesIndicator) Label() string {
	return strconv.Itoa(i.Slot+1) + "P"
}

// Draw отрисовывает индикатор.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives int, face font.Face) {
	render.DrawText(screen, i.Label(), face, i.X, i.Y, config.TextDarkColor)
	// Значок танка и число жизней рядом
	clr := config.PlayerColors[i.Slot%len(config.PlayerColors)]
	vector.DrawFilledRect(screen, float32(i.X+1), float32(i.Y+17), 11, 11, clr, false)
	render.DrawText(screen, strconv.Itoa(lives), face, i.X+15, i.Y+15, config.TextDarkColor)
}
