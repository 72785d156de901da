// internal/app/bootstrap.go
package app

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	"go-battle-city/internal/audio"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
)

// Environment - всё, что нужно партии снаружи.
type Environment struct {
	Settings config.Settings
	Levels   fs.FS
	Sounds   audio.Player
	// Close освобождает звуковое устройство.
	Close func()
}

// Bootstrap читает настройки из settingsPath, определения врагов и
// открывает звук. Битый файл настроек - ошибка; отсутствие файла
// определений или звукового устройства только пишется в лог.
func Bootstrap(settingsPath string) (*Environment, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.DefsFile != "" {
		if err := defs.LoadDefinitions(settings.DefsFile); err != nil {
			log.Printf("Using built-in definitions: %v", err)
		}
	}

	env := &Environment{
		Settings: settings,
		Levels:   os.DirFS(settings.LevelsDir),
		Sounds:   audio.Nop{},
		Close:    func() {},
	}

	sm := audio.NewSoundManager()
	if err := audio.StartSpeaker(sm); err != nil {
		log.Printf("Sound disabled: %v", err)
		return env, nil
	}
	env.Sounds = sm
	env.Close = audio.CloseSpeaker
	return env, nil
}
