// pkg/tilemap/grid.go
package tilemap

import (
	"fmt"
	"image"
	"io"
	"io/fs"
	"sort"
)

// Tile - клетка карты с материалом.
type Tile struct {
	Pos      image.Point
	Material Material
}

// Rect возвращает прямоугольник клетки.
func (t Tile) Rect(tileSize int) image.Rectangle {
	return image.Rect(t.Pos.X, t.Pos.Y, t.Pos.X+tileSize, t.Pos.Y+tileSize)
}

// Grid - разрушаемая карта и производный от неё индекс препятствий.
type Grid struct {
	TileSize int
	Cols     int
	Rows     int

	// Tiles хранит не более одной записи на клетку.
	Tiles map[image.Point]Material

	// Obstacles пересчитывается после любого изменения Tiles.
	Obstacles []image.Rectangle

	// WaterFrame переключается таймером для анимации воды.
	WaterFrame int

	// Revision растёт при каждом изменении Tiles.
	Revision uint64

	// OnHit вызывается при попадании в кирпич или сталь, если попавший
	// снаряд должен звучать.
	OnHit func(m Material)

	fortress      image.Rectangle
	fortressCells []image.Point
}

// NewGrid создаёт пустую карту cols x rows клеток. fortress - прямоугольник
// штаба, который всегда входит в индекс препятствий.
func NewGrid(tileSize, cols, rows int, fortress image.Rectangle) *Grid {
	g := &Grid{
		TileSize: tileSize,
		Cols:     cols,
		Rows:     rows,
		Tiles:    make(map[image.Point]Material),
		fortress: fortress,
	}
	g.fortressCells = fortressLayout(tileSize, fortress)
	g.RebuildObstacleIndex()
	return g
}

// fortressLayout - восемь клеток стены вокруг штаба: левый и правый столбцы
// по три клетки и две клетки над штабом.
func fortressLayout(tileSize int, fortress image.Rectangle) []image.Point {
	fx := fortress.Min.X / tileSize
	fy := fortress.Min.Y / tileSize
	w := fortress.Dx() / tileSize
	cells := []image.Point{
		{fx - 1, fy - 1}, {fx - 1, fy}, {fx - 1, fy + 1},
		{fx + w, fy - 1}, {fx + w, fy}, {fx + w, fy + 1},
	}
	for x := fx; x < fx+w; x++ {
		cells = append(cells, image.Point{x, fy - 1})
	}
	for i := range cells {
		cells[i] = cells[i].Mul(tileSize)
	}
	return cells
}

// Bounds возвращает прямоугольник всей арены в пикселях.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Cols*g.TileSize, g.Rows*g.TileSize)
}

// Fortress возвращает прямоугольник штаба.
func (g *Grid) Fortress() image.Rectangle {
	return g.fortress
}

// FortressCells возвращает позиции клеток стены штаба.
func (g *Grid) FortressCells() []image.Point {
	out := make([]image.Point, len(g.fortressCells))
	copy(out, g.fortressCells)
	return out
}

// Apply заменяет содержимое карты раскладкой layout целиком.
func (g *Grid) Apply(layout Layout) {
	tiles := make(map[image.Point]Material, len(layout))
	for pos, m := range layout {
		if m != Empty {
			tiles[pos] = m
		}
	}
	g.Tiles = tiles
	g.RebuildObstacleIndex()
}

// Load читает уровень из r. При ошибке карта не меняется.
func (g *Grid) Load(r io.Reader) error {
	layout, err := ParseLayout(r, g.TileSize, g.Cols, g.Rows)
	if err != nil {
		return err
	}
	g.Apply(layout)
	return nil
}

// LoadStage загружает стадию stage из fsys. При ошибке карта не меняется.
func (g *Grid) LoadStage(fsys fs.FS, stage, count int) error {
	layout, err := ReadStage(fsys, stage, count, g.TileSize, g.Cols, g.Rows)
	if err != nil {
		return err
	}
	g.Apply(layout)
	return nil
}

// At возвращает материал клетки с левым верхним углом pos.
func (g *Grid) At(pos image.Point) Material {
	return g.Tiles[pos]
}

// Set кладёт материал в клетку, заменяя прежний.
func (g *Grid) Set(pos image.Point, m Material) {
	g.checkAligned(pos)
	if m == Empty {
		delete(g.Tiles, pos)
	} else {
		g.Tiles[pos] = m
	}
	g.RebuildObstacleIndex()
}

func (g *Grid) aligned(pos image.Point) bool {
	return pos.X%g.TileSize == 0 && pos.Y%g.TileSize == 0
}

func (g *Grid) checkAligned(pos image.Point) bool {
	if g.aligned(pos) {
		return true
	}
	if strictAlignment {
		panic(fmt.Sprintf("tilemap: position %v is not aligned to %d px grid", pos, g.TileSize))
	}
	return false
}

// HitTile обрабатывает попадание снаряда мощности power в клетку pos.
// Возвращает true, если снаряд остановлен. Кирпич разрушается всегда,
// сталь только при power >= 2, но останавливает снаряд в любом случае.
func (g *Grid) HitTile(pos image.Point, power int, playSound bool) bool {
	if !g.checkAligned(pos) {
		return false
	}
	m := g.Tiles[pos]
	if !m.Destructible() {
		return false
	}
	g.sound(m, playSound)
	if m == Brick || power >= 2 {
		g.Set(pos, Empty)
	}
	return true
}

func (g *Grid) sound(m Material, playSound bool) {
	if playSound && g.OnHit != nil {
		g.OnHit(m)
	}
}

// RebuildObstacleIndex пересчитывает прямоугольники, которые блокируют
// движение: штаб, затем кирпич, сталь и вода построчно.
func (g *Grid) RebuildObstacleIndex() {
	g.Revision++
	obstacles := make([]image.Rectangle, 0, len(g.Tiles)+1)
	obstacles = append(obstacles, g.fortress)
	for _, t := range g.TilesOf() {
		if t.Material.Blocks() {
			obstacles = append(obstacles, t.Rect(g.TileSize))
		}
	}
	g.Obstacles = obstacles
}

// BuildFortress выкладывает стену штаба из материала m, предварительно
// убирая всё, что лежало в этих клетках.
func (g *Grid) BuildFortress(m Material) {
	for _, pos := range g.fortressCells {
		delete(g.Tiles, pos)
	}
	if m != Empty {
		for _, pos := range g.fortressCells {
			g.Tiles[pos] = m
		}
	}
	g.RebuildObstacleIndex()
}

// TilesOf возвращает клетки с указанными материалами построчно, слева
// направо. Без аргументов возвращает все клетки.
func (g *Grid) TilesOf(materials ...Material) []Tile {
	want := func(m Material) bool {
		if len(materials) == 0 {
			return true
		}
		for _, w := range materials {
			if w == m {
				return true
			}
		}
		return false
	}
	tiles := make([]Tile, 0, len(g.Tiles))
	for pos, m := range g.Tiles {
		if want(m) {
			tiles = append(tiles, Tile{Pos: pos, Material: m})
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Pos.Y != tiles[j].Pos.Y {
			return tiles[i].Pos.Y < tiles[j].Pos.Y
		}
		return tiles[i].Pos.X < tiles[j].Pos.X
	})
	return tiles
}

// Colliding возвращает препятствия, пересекающиеся с r, в порядке индекса.
func (g *Grid) Colliding(r image.Rectangle) []image.Rectangle {
	var hits []image.Rectangle
	for _, o := range g.Obstacles {
		if o.Overlaps(r) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Blocked сообщает, пересекается ли r хоть с одним препятствием.
func (g *Grid) Blocked(r image.Rectangle) bool {
	for _, o := range g.Obstacles {
		if o.Overlaps(r) {
			return true
		}
	}
	return false
}

// ToggleWater переключает кадр анимации воды.
func (g *Grid) ToggleWater() {
	g.WaterFrame ^= 1
}
