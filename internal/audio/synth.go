// internal/audio/synth.go
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// tone возвращает синусоиду freq длительностью d.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

// noise - белый шум с линейным затуханием.
func noise(rate beep.SampleRate, d time.Duration) beep.Streamer {
	total := rate.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			gain := 1 - float64(pos)/float64(total)
			v := (rand.Float64()*2 - 1) * gain
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// volume меняет громкость в разах (1 - без изменений).
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synthesize строит звук для события. Фоновая мелодия бесконечна,
// остальные звуки конечны.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch s {
	case SoundStart:
		return beep.Seq(
			tone(rate, 523, 120*ms),
			tone(rate, 659, 120*ms),
			tone(rate, 784, 120*ms),
			tone(rate, 1047, 240*ms),
		)
	case SoundEnd:
		return beep.Seq(
			tone(rate, 392, 200*ms),
			tone(rate, 330, 200*ms),
			tone(rate, 262, 400*ms),
		)
	case SoundScore:
		return volume(tone(rate, 660, 40*ms), 0.5)
	case SoundBackground:
		sine, err := generators.SineTone(rate, 110)
		if err != nil {
			return beep.Silence(-1)
		}
		return volume(sine, 0.08)
	case SoundFire:
		return volume(tone(rate, 880, 60*ms), 0.6)
	case SoundBonus:
		return beep.Seq(tone(rate, 988, 80*ms), tone(rate, 1319, 160*ms))
	case SoundExplosion:
		return noise(rate, 300*ms)
	case SoundBrick:
		return volume(noise(rate, 80*ms), 0.6)
	case SoundSteel:
		return volume(tone(rate, 1200, 50*ms), 0.5)
	}
	return beep.Silence(0)
}
