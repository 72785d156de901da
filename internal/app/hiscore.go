// internal/app/hiscore.go
package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"go-battle-city/internal/config"
)

// LoadHiscore читает рекорд из path. Отсутствующий или битый файл даёт
// рекорд по умолчанию, как и значение вне [DefaultHiscore, MaxHiscore).
func LoadHiscore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("hiscore: %v", err)
		}
		return config.DefaultHiscore
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		log.Printf("hiscore: malformed file %s: %v", path, err)
		return config.DefaultHiscore
	}
	if v < config.DefaultHiscore || v >= config.MaxHiscore {
		log.Printf("hiscore: rejecting tampered value %d", v)
		return config.DefaultHiscore
	}
	return v
}

// SaveHiscore записывает рекорд в path.
func SaveHiscore(path string, hiscore int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(hiscore)), 0o644); err != nil {
		return fmt.Errorf("failed to save hiscore: %w", err)
	}
	return nil
}

// RecordHiscore сравнивает счёт игроков с сохранённым рекордом,
// сохраняет новый и возвращает действующий.
func (g *Game) RecordHiscore() int {
	path := g.Settings.HiscoreFile
	best := LoadHiscore(path)
	beaten := false
	for _, p := range g.World.Players {
		if p.Player != nil && p.Player.Score > best {
			best = p.Player.Score
			beaten = true
		}
	}
	if beaten {
		if err := SaveHiscore(path, best); err != nil {
			log.Printf("Can't save hi-score: %v", err)
		}
	}
	return best
}
