// internal/audio/sound.go
package audio

// Sound - звуковое событие, которое ядро просит проиграть.
type Sound int

const (
	SoundStart Sound = iota
	SoundEnd
	SoundScore
	SoundBackground
	SoundFire
	SoundBonus
	SoundExplosion
	SoundBrick
	SoundSteel
)

func (s Sound) String() string {
	switch s {
	case SoundStart:
		return "start"
	case SoundEnd:
		return "end"
	case SoundScore:
		return "score"
	case SoundBackground:
		return "bg"
	case SoundFire:
		return "fire"
	case SoundBonus:
		return "bonus"
	case SoundExplosion:
		return "explosion"
	case SoundBrick:
		return "brick"
	case SoundSteel:
		return "steel"
	}
	return "unknown"
}

// Player - приёмник звуков. Ядро только вызывает его и ничего не ждёт назад.
type Player interface {
	Play(s Sound)
	StopAll()
}

// Nop молча игнорирует все звуки.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) StopAll()   {}

// Recorder запоминает проигранные звуки. Используется в тестах.
type Recorder struct {
	Played  []Sound
	Stopped int
}

func (r *Recorder) Play(s Sound) { r.Played = append(r.Played, s) }
func (r *Recorder) StopAll()     { r.Stopped++ }

// Count возвращает, сколько раз прозвучал s.
func (r *Recorder) Count(s Sound) int {
	n := 0
	for _, p := range r.Played {
		if p == s {
			n++
		}
	}
	return n
}
