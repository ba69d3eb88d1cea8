// Package audio provides the cues played when the clock changes phase:
// a speaker-backed player, the terminal bell and a silent cue.
package audio

import (
	"io"

	"github.com/akyairhashvil/pomodoro/internal/config"
	"github.com/akyairhashvil/pomodoro/internal/timer"
)

// Open builds the cue selected by settings. When the speaker cannot be used,
// the terminal bell on bell is returned together with the error so the caller
// can log it and carry on.
func Open(settings config.SoundSettings, bell io.Writer) (timer.Cue, error) {
	mode, err := config.ParseSoundMode(settings.Mode)
	if err != nil {
		return Silent{}, err
	}
	switch mode {
	case config.SoundOff:
		return Silent{}, nil
	case config.SoundBell:
		return NewBell(bell), nil
	}

	player, err := NewSpeakerPlayer(settings.File, settings.Volume)
	if err != nil {
		return NewBell(bell), err
	}
	return player, nil
}
