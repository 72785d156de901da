// pkg/render/terrain.go
package render

import (
	"image"

	"go-battle-city/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TerrainRenderer рисует клетки арены. Всё, кроме травы, предрендерено в
// mapImage и перерисовывается только при изменении карты или кадра воды.
type TerrainRenderer struct {
	grid     *tilemap.Grid
	colors   *TerrainColors
	origin   image.Point
	mapImage *ebiten.Image
	grass    []tilemap.Tile
	revision uint64
	water    int
}

// NewTerrainRenderer создаёт рендерер карты grid с левым верхним углом
// арены в точке origin экрана.
func NewTerrainRenderer(grid *tilemap.Grid, colors *TerrainColors, origin image.Point) *TerrainRenderer {
	b := grid.Bounds()
	r := &TerrainRenderer{
		grid:     grid,
		colors:   colors,
		origin:   origin,
		mapImage: ebiten.NewImage(b.Dx(), b.Dy()),
	}
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение пола арены.
func (r *TerrainRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.Background)
	for _, t := range r.grid.TilesOf(tilemap.Brick, tilemap.Steel, tilemap.Water, tilemap.Ice) {
		r.drawTile(r.mapImage, t, image.Point{})
	}
	r.grass = r.grid.TilesOf(tilemap.Grass)
	r.revision = r.grid.Revision
	r.water = r.grid.WaterFrame
}

// Stale сообщает, что карта изменилась с последней отрисовки.
func (r *TerrainRenderer) Stale() bool {
	return r.revision != r.grid.Revision || r.water != r.grid.WaterFrame
}

// Draw рисует пол арены. Вызывается до танков.
func (r *TerrainRenderer) Draw(screen *ebiten.Image) {
	if r.Stale() {
		r.RenderMapImage()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.origin.X), float64(r.origin.Y))
	screen.DrawImage(r.mapImage, op)
}

// DrawCanopy рисует траву поверх танков и снарядов.
func (r *TerrainRenderer) DrawCanopy(screen *ebiten.Image) {
	for _, t := range r.grass {
		r.drawTile(screen, t, r.origin)
	}
}

func (r *TerrainRenderer) drawTile(dst *ebiten.Image, t tilemap.Tile, offset image.Point) {
	s := float32(r.grid.TileSize)
	x := float32(t.Pos.X + offset.X)
	y := float32(t.Pos.Y + offset.Y)
	c := r.colors

	switch t.Material {
	case tilemap.Brick:
		vector.DrawFilledRect(dst, x, y, s, s, c.Brick, false)
		mortar := DarkenColor(c.Brick)
		row := s / 4
		for i := 0; i < 4; i++ {
			ry := y + float32(i)*row
			vector.StrokeLine(dst, x, ry, x+s, ry, 1, mortar, false)
			// Швы сдвинуты через ряд, как в кладке
			shift := float32(i%2) * s / 4
			for sx := shift; sx < s; sx += s / 2 {
				vector.StrokeLine(dst, x+sx, ry, x+sx, ry+row, 1, mortar, false)
			}
		}
	case tilemap.Steel:
		vector.DrawFilledRect(dst, x, y, s, s, DarkenColor(c.Steel), false)
		vector.DrawFilledRect(dst, x+2, y+2, s-4, s-4, c.Steel, false)
	case tilemap.Water:
		if len(c.Water) > 0 {
			vector.DrawFilledRect(dst, x, y, s, s, c.Water[r.grid.WaterFrame%len(c.Water)], false)
		}
	case tilemap.Ice:
		vector.DrawFilledRect(dst, x, y, s, s, c.Ice, false)
		vector.StrokeLine(dst, x, y+s, x+s, y, 1, DarkenColor(c.Ice), false)
	case tilemap.Grass:
		for dy := float32(0); dy < s; dy += 4 {
			for dx := float32(0); dx < s; dx += 4 {
				vector.DrawFilledRect(dst, x+dx, y+dy, 3, 3, c.Grass, false)
			}
		}
	}
}
