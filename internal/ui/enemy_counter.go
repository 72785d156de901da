// internal/ui/enemy_counter.go
package ui

import (
	"image"

	"go-battle-city/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	EnemyIconCols    = 2
	EnemyIconSize    = 14
	EnemyIconSpacing = 17
)

// EnemyCounter показывает по значку на каждого оставшегося врага стадии.
type EnemyCounter struct {
	Position image.Point
}

// NewEnemyCounter создает новый счётчик врагов.
func NewEnemyCounter(x, y int) *EnemyCounter {
	return &EnemyCounter{Position: image.Pt(x, y)}
}

// IconPositions возвращает левые верхние углы n значков: по два в ряд.
func (c *EnemyCounter) IconPositions(n int) []image.Point {
	out := make([]image.Point, n)
	for j := 0; j < n; j++ {
		row := j / EnemyIconCols
		col := j % EnemyIconCols
		out[j] = c.Position.Add(image.Pt(col*EnemyIconSpacing, row*EnemyIconSpacing))
	}
	return out
}

// Draw рисует значки оставшихся врагов.
func (c *EnemyCounter) Draw(screen *ebiten.Image, left int) {
	for _, p := range c.IconPositions(left) {
		x, y := float32(p.X), float32(p.Y)
		vector.DrawFilledRect(screen, x, y+3, EnemyIconSize, EnemyIconSize-3, config.TextDarkColor, false)
		vector.DrawFilledRect(screen, x+EnemyIconSize/2-1, y, 2, 7, config.TextDarkColor, false)
	}
}
