// internal/audio/manager.go
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// SampleRate - частота дискретизации, с которой инициализируется колонка.
const SampleRate = beep.SampleRate(44100)

// BufferSize - размер буфера колонки.
func BufferSize() int {
	return SampleRate.N(100 * time.Millisecond)
}

// SoundManager синтезирует звуки и сводит их в один поток. Поток отдаётся
// наружу через Streamer и проигрывается колонкой в отдельной горутине,
// поэтому микшер закрыт мьютексом.
type SoundManager struct {
	mu         sync.Mutex
	mixer      *beep.Mixer
	background *beep.Ctrl
	enabled    bool
}

// NewSoundManager создаёт менеджер. Пока Enable не вызван, звуки игнорируются.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Streamer возвращает сведённый поток для speaker.Play.
func (sm *SoundManager) Streamer() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		// Пустой микшер отдаёт тишину, поток не заканчивается
		return sm.mixer.Stream(samples)
	})
}

// Enable включает или выключает вывод. Выключение глушит всё, что звучит.
func (sm *SoundManager) Enable(on bool) {
	sm.mu.Lock()
	sm.enabled = on
	sm.mu.Unlock()
	if !on {
		sm.StopAll()
	}
}

// Play запускает звук s. Фоновый звук один: повторный вызов его не дублирует.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return
	}
	if s == SoundBackground {
		if sm.background != nil && !sm.background.Paused {
			return
		}
		sm.background = &beep.Ctrl{Streamer: Synthesize(s, SampleRate)}
		sm.mixer.Add(sm.background)
		return
	}
	sm.mixer.Add(Synthesize(s, SampleRate))
}

// StopAll останавливает все звуки.
func (sm *SoundManager) StopAll() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.background != nil {
		sm.background.Paused = true
		sm.background = nil
	}
	sm.mixer.Clear()
}

// Active возвращает число звучащих потоков.
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.mixer.Len()
}
