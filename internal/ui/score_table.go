// internal/ui/score_table.go
package ui

import (
	"fmt"
	"time"

	"go-battle-city/internal/component"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	// TallyStep - пауза между шагами подсчёта очков.
	TallyStep = 200 * time.Millisecond
	// TallyHold - сколько итог висит на экране после подсчёта.
	TallyHold = 2 * time.Second
)

type tallyStep struct {
	row, player, count int
}

// ScoreTable - экран очков стадии. Подбитые враги каждого подтипа
// досчитываются по одному, затем показывается итог.
type ScoreTable struct {
	Stage   int
	Hiscore int
	Scores  []int

	kills [][defs.EnemyKinds]int
	shown [][defs.EnemyKinds]int
	steps []tallyStep
	next  int
	acc   time.Duration
	held  time.Duration
}

// NewScoreTable готовит подсчёт для игроков players.
func NewScoreTable(stage, hiscore int, players []*component.PlayerState) *ScoreTable {
	t := &ScoreTable{
		Stage:   stage,
		Hiscore: hiscore,
		Scores:  make([]int, len(players)),
		kills:   make([][defs.EnemyKinds]int, len(players)),
		shown:   make([][defs.EnemyKinds]int, len(players)),
	}
	for i, p := range players {
		t.Scores[i] = p.Score
		t.kills[i] = p.Trophies.Enemies
	}
	for row := 0; row < defs.EnemyKinds; row++ {
		for i := range players {
			for n := 0; n <= t.kills[i][row]; n++ {
				t.steps = append(t.steps, tallyStep{row: row, player: i, count: n})
			}
		}
	}
	return t
}

// Update продвигает подсчёт на elapsed. Возвращает true, если за это время
// счётчик вырос и пора проиграть звук очков.
func (t *ScoreTable) Update(elapsed time.Duration) bool {
	if t.Tallied() {
		t.held += elapsed
		return false
	}
	ticked := false
	t.acc += elapsed
	for t.acc >= TallyStep && !t.Tallied() {
		t.acc -= TallyStep
		s := t.steps[t.next]
		t.shown[s.player][s.row] = s.count
		if s.count > 0 {
			ticked = true
		}
		t.next++
	}
	return ticked
}

// Skip показывает итог сразу.
func (t *ScoreTable) Skip() {
	for ; t.next < len(t.steps); t.next++ {
		s := t.steps[t.next]
		t.shown[s.player][s.row] = s.count
	}
	t.held = TallyHold
}

// Tallied сообщает, что все счётчики досчитаны.
func (t *ScoreTable) Tallied() bool {
	return t.next >= len(t.steps)
}

// Finished сообщает, что итог показан достаточно долго.
func (t *ScoreTable) Finished() bool {
	return t.Tallied() && t.held >= TallyHold
}

// Shown возвращает уже досчитанное число врагов подтипа kind у игрока.
func (t *ScoreTable) Shown(player int, kind defs.EnemyKind) int {
	return t.shown[player][kind]
}

// Total возвращает всех подбитых игроком врагов.
func (t *ScoreTable) Total(player int) int {
	total := 0
	for _, n := range t.kills[player] {
		total += n
	}
	return total
}

// Draw рисует таблицу очков.
func (t *ScoreTable) Draw(screen *ebiten.Image, face font.Face) {
	screen.Fill(config.BackgroundColor)
	render.DrawText(screen, "HI-SCORE", face, 105, 35, config.TitleColor)
	render.DrawText(screen, fmt.Sprint(t.Hiscore), face, 295, 35, config.ScoreColor)
	render.DrawText(screen, fmt.Sprintf("STAGE%3d", t.Stage), face, 170, 65, config.LabelColor)

	columns := []struct{ title, score, kills, points int }{
		{25, 25, 170, 25},
		{310, 325, 277, 325},
	}
	titles := []string{"I-PLAYER", "II-PLAYER"}
	for i := range t.Scores {
		if i >= len(columns) {
			break
		}
		c := columns[i]
		render.DrawText(screen, titles[i], face, c.title, 95, config.TitleColor)
		render.DrawText(screen, fmt.Sprintf("%8d", t.Scores[i]), face, c.score, 125, config.ScoreColor)
		for row := 0; row < defs.EnemyKinds; row++ {
			y := 168 + row*45
			n := t.shown[i][row]
			render.DrawText(screen, fmt.Sprintf("%2d", n), face, c.kills, y, config.LabelColor)
			pts := n * defs.Enemy(defs.EnemyKind(row)).Points
			render.DrawText(screen, fmt.Sprintf("%4d PTS", pts), face, c.points, y, config.LabelColor)
		}
		if t.Tallied() {
			render.DrawText(screen, fmt.Sprintf("%2d", t.Total(i)), face, c.kills, 335, config.LabelColor)
		}
	}

	for row := 0; row < defs.EnemyKinds; row++ {
		y := float32(160 + row*45)
		vector.DrawFilledRect(screen, 226, y, 26, 26, config.EnemyColors[row%len(config.EnemyColors)], false)
	}
	render.DrawText(screen, "TOTAL", face, 70, 335, config.LabelColor)
	vector.StrokeLine(screen, 170, 330, 307, 330, 4, config.LabelColor, false)
}
