// internal/ui/stage_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// StageIndicator отображает флаг и номер текущей стадии.
type StageIndicator struct {
	X, Y         int
	Color        color.RGBA
	OutlineColor color.RGBA
}

// NewStageIndicator создает новый индикатор стадии.
func NewStageIndicator(x, y int) *StageIndicator {
	return &StageIndicator{
		X:            x,
		Y:            y,
		Color:        config.TextDarkColor,
		OutlineColor: config.SidebarColor,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *StageIndicator) Draw(screen *ebiten.Image, stage int, face font.Face) {
	if stage <= 0 {
		return
	}
	x, y := float32(i.X), float32(i.Y)
	// Древко и полотнище
	vector.DrawFilledRect(screen, x+2, y, 2, 30, config.TextDarkColor, false)
	vector.DrawFilledRect(screen, x+4, y, 14, 10, config.TitleColor, false)
	render.DrawOutlinedText(screen, strconv.Itoa(stage), face, i.X, i.Y+32, 1, i.Color, i.OutlineColor)
}
