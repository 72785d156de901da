// internal/ui/menu.go
package ui

import (
	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const menuLineHeight = 25

// Menu - вертикальный список пунктов с курсором-танком.
type Menu struct {
	X, Y     int
	Options  []string
	Selected int
	font     font.Face
}

// NewMenu создает новое меню.
func NewMenu(x, y int, face font.Face, options ...string) *Menu {
	return &Menu{X: x, Y: y, Options: options, font: face}
}

// Next переводит курсор вниз, с последнего пункта на первый.
func (m *Menu) Next() {
	if len(m.Options) > 0 {
		m.Selected = (m.Selected + 1) % len(m.Options)
	}
}

// Prev переводит курсор вверх.
func (m *Menu) Prev() {
	if len(m.Options) > 0 {
		m.Selected = (m.Selected + len(m.Options) - 1) % len(m.Options)
	}
}

// Draw отрисовывает меню.
func (m *Menu) Draw(screen *ebiten.Image) {
	for i, opt := range m.Options {
		render.DrawText(screen, opt, m.font, m.X, m.Y+i*menuLineHeight, config.LabelColor)
	}
	y := float32(m.Y + m.Selected*menuLineHeight)
	vector.DrawFilledRect(screen, float32(m.X-36), y-3, 20, 18, config.PlayerColors[0], false)
	vector.DrawFilledRect(screen, float32(m.X-16), y+4, 8, 4, config.PlayerColors[0], false)
}
