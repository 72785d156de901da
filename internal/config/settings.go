// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings - пользовательские настройки из TOML-файла.
type Settings struct {
	Sound       bool   `toml:"sound"`
	Players     int    `toml:"players"`
	Lives       int    `toml:"lives"`
	LevelsDir   string `toml:"levels_dir"`
	DefsFile    string `toml:"defs_file"`
	HiscoreFile string `toml:"hiscore_file"`
	StartStage  int    `toml:"start_stage"`
	Seed        int64  `toml:"seed"`
	Fullscreen  bool   `toml:"fullscreen"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		Sound:       true,
		Players:     1,
		Lives:       PlayerLives,
		LevelsDir:   "assets/levels",
		DefsFile:    "assets/defs/enemies.json",
		HiscoreFile: ".hiscore",
		StartStage:  1,
	}
}

// LoadSettings читает настройки из path. Отсутствующий файл не ошибка:
// возвращаются значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return DefaultSettings(), nil
		}
		return DefaultSettings(), fmt.Errorf("failed to decode settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), err
	}
	return s, nil
}

// Validate проверяет диапазоны значений.
func (s Settings) Validate() error {
	if s.Players < 1 || s.Players > 2 {
		return fmt.Errorf("settings: players must be 1 or 2, got %d", s.Players)
	}
	if s.Lives < 1 {
		return fmt.Errorf("settings: lives must be positive, got %d", s.Lives)
	}
	if s.StartStage < 1 {
		return fmt.Errorf("settings: start_stage must be positive, got %d", s.StartStage)
	}
	return nil
}

// WriteSettingsFile дополняет файл path значениями по умолчанию для
// отсутствующих ключей и записывает его обратно. Если файла нет, он
// создаётся.
func WriteSettingsFile(path string) (Settings, error) {
	s, err := LoadSettings(path)
	if err != nil {
		return s, err
	}
	if err := s.Save(path); err != nil {
		return s, err
	}
	return s, nil
}

// Save записывает настройки в path.
func (s Settings) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return nil
}
