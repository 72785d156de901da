// pkg/render/color.go
package render

import "image/color"

// TerrainColors holds all the color definitions needed to render the arena tiles.
type TerrainColors struct {
	Background color.RGBA
	Brick      color.RGBA
	Steel      color.RGBA
	Grass      color.RGBA
	Ice        color.RGBA
	// Water - кадры анимации воды.
	Water []color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

