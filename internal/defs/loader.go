// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// definitionsFile - формат файла с определениями.
type definitionsFile struct {
	Enemies []EnemyDefinition `json:"enemies"`
	Stages  []Roster          `json:"stages"`
	Bonuses []LootEntry       `json:"bonuses"`
}

// LoadDefinitions читает файл определений и переопределяет встроенные
// таблицы. Отсутствующие в файле разделы остаются встроенными.
func LoadDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read definitions file: %w", err)
	}
	return ParseDefinitions(file)
}

// ParseDefinitions разбирает JSON с определениями. При ошибке таблицы
// не меняются.
func ParseDefinitions(data []byte) error {
	var f definitionsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("failed to unmarshal definitions: %w", err)
	}

	enemies := EnemyLibrary
	for _, def := range f.Enemies {
		if def.Kind < 0 || int(def.Kind) >= EnemyKinds {
			return fmt.Errorf("enemy %q: unknown kind %d", def.Name, def.Kind)
		}
		if def.Health <= 0 || def.Speed <= 0 {
			return fmt.Errorf("enemy %q: health and speed must be positive", def.Name)
		}
		enemies[def.Kind] = def
	}
	for i, r := range f.Stages {
		if r.Total() == 0 {
			return fmt.Errorf("stage %d: empty roster", i+1)
		}
	}
	for _, e := range f.Bonuses {
		if e.Weight < 0 {
			return fmt.Errorf("bonus %v: negative weight", e.Bonus)
		}
	}

	EnemyLibrary = enemies
	if len(f.Stages) > 0 {
		StageRosters = f.Stages
	}
	if len(f.Bonuses) > 0 {
		BonusTable = f.Bonuses
	}
	log.Printf("Loaded %d enemy definitions, %d stage rosters", len(f.Enemies), len(StageRosters))
	return nil
}
