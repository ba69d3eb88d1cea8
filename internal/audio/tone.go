package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const (
	toneAmplitude = 0.4
	toneFade      = 15 * time.Millisecond
)

// Tone returns a stereo sine wave of freq Hz lasting d, with short linear
// fades at both ends to avoid clicks.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	fade := sr.N(toneFade)
	step := 2 * math.Pi * freq / float64(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				break
			}
			v := math.Sin(step*float64(pos)) * toneAmplitude * envelope(pos, total, fade)
			samples[i][0] = v
			samples[i][1] = v
			pos++
			n++
		}
		return n, true
	})
}

func envelope(pos, total, fade int) float64 {
	if fade <= 0 {
		return 1
	}
	if pos < fade {
		return float64(pos) / float64(fade)
	}
	if remaining := total - pos; remaining < fade {
		return float64(remaining) / float64(fade)
	}
	return 1
}

// ToneBuffer renders Tone into a buffer so it can be replayed and rewound.
func ToneBuffer(sr beep.SampleRate, freq float64, d time.Duration) *beep.Buffer {
	buffer := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buffer.Append(Tone(sr, freq, d))
	return buffer
}
