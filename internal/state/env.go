// internal/state/env.go
package state

import (
	"io/fs"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// Env - то, что общее для всех экранов: настройки, уровни, звук и шрифт.
type Env struct {
	Settings config.Settings
	Levels   fs.FS
	Sounds   audio.Player
	Face     font.Face
}

// Controls - клавиши одного игрока.
type Controls struct {
	Fire  ebiten.Key
	Up    ebiten.Key
	Right ebiten.Key
	Down  ebiten.Key
	Left  ebiten.Key
}

// DefaultControls по слотам: первый игрок на стрелках, второй на WASD.
var DefaultControls = []Controls{
	{Fire: ebiten.KeySpace, Up: ebiten.KeyArrowUp, Right: ebiten.KeyArrowRight, Down: ebiten.KeyArrowDown, Left: ebiten.KeyArrowLeft},
	{Fire: ebiten.KeyF, Up: ebiten.KeyW, Right: ebiten.KeyD, Down: ebiten.KeyS, Left: ebiten.KeyA},
}

// Keys возвращает клавиши направлений в порядке вверх, вправо, вниз, влево.
func (c Controls) Keys() [4]ebiten.Key {
	return [4]ebiten.Key{c.Up, c.Right, c.Down, c.Left}
}
