package audio

import (
	"os"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

const resampleQuality = 4

// LoadWAV decodes a WAV file into memory, resampled to rate.
func LoadWAV(path string, rate beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpError{Op: "open", Resource: path, Err: err}
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, &OpError{Op: "decode", Resource: path, Err: err}
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != rate {
		source = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
		format.SampleRate = rate
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(source)
	if buffer.Len() == 0 {
		return nil, &OpError{Op: "decode", Resource: path, Err: errEmptySound}
	}
	return buffer, nil
}
