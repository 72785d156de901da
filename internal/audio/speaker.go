// internal/audio/speaker.go
package audio

import (
	"fmt"

	"github.com/gopxl/beep/speaker"
)

// StartSpeaker открывает звуковое устройство и пускает в него поток
// менеджера. При ошибке менеджер остаётся выключенным.
func StartSpeaker(sm *SoundManager) error {
	if err := speaker.Init(SampleRate, BufferSize()); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(sm.Streamer())
	sm.Enable(true)
	return nil
}

// CloseSpeaker закрывает звуковое устройство.
func CloseSpeaker() {
	speaker.Close()
}
