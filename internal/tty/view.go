// internal/tty/view.go
package tty

import (
	"fmt"
	"image"
	"image/color"

	"go-battle-city/internal/app"
	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/render/shape"
	"go-battle-city/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
)

// Одна клетка терминала - полклетки карты по ширине и клетка по высоте.
const (
	CellWidth  = config.TileSize / 2
	CellHeight = config.TileSize
	ArenaCols  = config.ArenaSize / CellWidth
	ArenaRows  = config.ArenaSize / CellHeight
	SidebarCol = ArenaCols + 2
)

// Cell переводит точку арены в клетку терминала.
func Cell(p image.Point) (x, y int) {
	return p.X / CellWidth, p.Y / CellHeight
}

func styleOf(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

var tankGlyphs = [4]rune{'▲', '▶', '▼', '◀'}

// View рисует партию символами терминала.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Banner - надпись поверх арены.
func Banner(g *app.Game, paused bool) string {
	switch {
	case paused:
		return "PAUSED"
	case g.Phase == component.PhaseGameOver:
		return "GAME OVER"
	case g.Phase == component.PhaseFinished:
		return "STAGE CLEAR"
	}
	return ""
}

// Draw рисует кадр: пол, штаб, врагов, надписи, игроков, снаряды, бонусы,
// траву и боковую панель.
func (v *View) Draw(g *app.Game, paused bool, hiscore int) {
	s := v.screen
	s.Clear()
	w := g.World

	v.drawTiles(w.Grid, tilemap.Brick, tilemap.Steel, tilemap.Water, tilemap.Ice)
	v.drawFortress(w.Fortress)
	for _, e := range w.Enemies {
		v.drawActor(e, g)
	}
	for _, l := range w.Labels {
		if l.Active {
			x, y := Cell(l.Pos)
			v.put(x, y, l.Text, styleOf(config.LabelColor))
		}
	}
	for _, p := range w.Players {
		v.drawActor(p, g)
	}
	for _, p := range w.Projectiles {
		x, y := Cell(shape.Center(p.Rect))
		switch p.State {
		case component.ProjectileActive:
			s.SetContent(x, y, '•', nil, styleOf(config.BulletColor))
		case component.ProjectileExploding:
			s.SetContent(x, y, '*', nil, styleOf(config.ExplosionColor))
		}
	}
	for _, b := range w.Bonuses {
		if b.Active && b.Visible {
			x, y := Cell(shape.Center(b.Rect))
			v.put(x, y, shape.BonusLetter(b.Kind), styleOf(config.BonusCarrierColor).Reverse(true))
		}
	}
	v.drawTiles(w.Grid, tilemap.Grass)
	v.drawSidebar(g, hiscore)

	if text := Banner(g, paused); text != "" {
		v.put(ArenaCols/2-len(text)/2, ArenaRows/2, text, styleOf(config.TitleColor).Reverse(true))
	}
	s.Show()
}

func (v *View) put(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) drawTiles(grid *tilemap.Grid, materials ...tilemap.Material) {
	for _, t := range grid.TilesOf(materials...) {
		var glyph rune
		var style tcell.Style
		switch t.Material {
		case tilemap.Brick:
			glyph, style = '▓', styleOf(config.BrickColor)
		case tilemap.Steel:
			glyph, style = '█', styleOf(config.SteelColor)
		case tilemap.Water:
			glyph = '~'
			if grid.WaterFrame == 1 {
				glyph = '≈'
			}
			style = styleOf(config.WaterColors[grid.WaterFrame%len(config.WaterColors)])
		case tilemap.Ice:
			glyph, style = '░', styleOf(config.IceColor)
		case tilemap.Grass:
			glyph, style = '♣', styleOf(config.GrassColor)
		default:
			continue
		}
		x, y := Cell(t.Pos)
		for dx := 0; dx < config.TileSize/CellWidth; dx++ {
			v.screen.SetContent(x+dx, y, glyph, nil, style)
		}
	}
}

func (v *View) drawFortress(f *component.Fortress) {
	glyph, style := '#', styleOf(config.FortressColor)
	switch f.State {
	case component.FortressExploding:
		glyph, style = '*', styleOf(config.ExplosionColor)
	case component.FortressDestroyed:
		glyph, style = 'x', styleOf(config.RuinColor)
	}
	x0, y0 := Cell(f.Rect.Min)
	x1, y1 := Cell(f.Rect.Max)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (v *View) drawActor(a *component.Actor, g *app.Game) {
	x, y := Cell(shape.Center(a.Rect))
	switch a.State {
	case component.ActorSpawning:
		glyph := '+'
		if a.SpawnFrame == 1 {
			glyph = '✦'
		}
		v.screen.SetContent(x, y, glyph, nil, styleOf(config.ShieldColor))
	case component.ActorActive:
		if a.Paralysed && (g.GameTime()/(2*config.ShieldBlink))%2 == 1 {
			return
		}
		style := styleOf(shape.TankColor(a, g.GameTime()))
		if a.Shielded {
			style = style.Background(tcell.ColorGray)
		}
		glyph := tankGlyphs[a.Direction%4]
		v.screen.SetContent(x-1, y, glyph, nil, style)
		v.screen.SetContent(x, y, glyph, nil, style)
	case component.ActorExploding:
		v.put(x-1, y, "**", styleOf(config.ExplosionColor))
	}
}

func (v *View) drawSidebar(g *app.Game, hiscore int) {
	style := tcell.StyleDefault
	col := SidebarCol
	v.put(col, 1, fmt.Sprintf("HI %d", hiscore), style)
	v.put(col, 3, fmt.Sprintf("ENEMY %2d", g.EnemiesLeft()), style)
	for _, p := range g.World.Players {
		row := 6 + p.Player.Slot*2
		v.put(col, row, fmt.Sprintf("%dP %d", p.Player.Slot+1, p.Player.Lives), styleOf(config.PlayerColors[p.Player.Slot%len(config.PlayerColors)]))
		v.put(col, row+1, fmt.Sprintf("%7d", p.Player.Score), style)
	}
	v.put(col, 11, fmt.Sprintf("STAGE %d", g.Stage), style)
	sound := "OFF"
	if g.World.SoundEnabled {
		sound = "ON"
	}
	v.put(col, 13, "SOUND "+sound, style)
	v.put(col, ArenaRows-1, "q quit  p pause", style)
}
