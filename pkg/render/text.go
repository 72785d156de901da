// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextWidth возвращает ширину строки s в пикселях.
func TextWidth(s string, face font.Face) int {
	return font.MeasureString(face, s).Ceil()
}

// DrawText рисует строку так, что (x, y) - её левый верхний угол.
func DrawText(dst *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// DrawTextCentered рисует строку, центрированную по cx.
func DrawTextCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	DrawText(dst, s, face, cx-TextWidth(s, face)/2, y, clr)
}

// DrawOutlinedText рисует строку с обводкой толщиной thickness.
func DrawOutlinedText(dst *ebiten.Image, s string, face font.Face, x, y, thickness int, clr, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			DrawText(dst, s, face, x+dx, y+dy, outline)
		}
	}
	DrawText(dst, s, face, x, y, clr)
}
