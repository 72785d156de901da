// internal/ui/sidebar.go
package ui

import (
	"go-battle-city/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SidebarInfo - то, что показывает боковая панель.
type SidebarInfo struct {
	EnemiesLeft int
	// Lives по слотам игроков.
	Lives []int
	Stage int
}

// Sidebar - серая панель справа от арены.
type Sidebar struct {
	X        int
	fontFace font.Face
	enemies  *EnemyCounter
	lives    []*LivesIndicator
	stage    *StageIndicator
}

// NewSidebar создаёт панель с левым краем x.
func NewSidebar(x int, face font.Face) *Sidebar {
	return &Sidebar{
		X:        x,
		fontFace: face,
		enemies:  NewEnemyCounter(x+16, 16),
		lives: []*LivesIndicator{
			NewLivesIndicator(x+16, 200, 0),
			NewLivesIndicator(x+16, 240, 1),
		},
		stage: NewStageIndicator(x+17, 280),
	}
}

// Draw рисует панель.
func (s *Sidebar) Draw(screen *ebiten.Image, info SidebarInfo) {
	vector.DrawFilledRect(screen, float32(s.X), 0, config.SidebarSize, config.ScreenHeight, config.SidebarColor, false)
	s.enemies.Draw(screen, info.EnemiesLeft)
	for slot, lives := range info.Lives {
		if slot < len(s.lives) {
			s.lives[slot].Draw(screen, lives, s.fontFace)
		}
	}
	s.stage.Draw(screen, info.Stage, s.fontFace)
}
