package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/akyairhashvil/pomodoro/internal/config"
)

// output is the mixer a Player streams into. Player state is only touched
// while the output is locked, which is also the case inside stream callbacks.
type output interface {
	Lock()
	Unlock()
	Play(s ...beep.Streamer)
}

type speakerOutput struct{}

func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }
func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }

var (
	speakerOnce sync.Once
	speakerErr  error
)

func initSpeaker(rate beep.SampleRate) error {
	speakerOnce.Do(func() {
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			speakerErr = &OpError{Op: "init", Resource: "speaker", Err: fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)}
		}
	})
	return speakerErr
}

// Player replays an in-memory sound. At most one playback is active: Play on
// a paused sound resumes it rather than starting a second copy.
type Player struct {
	buffer *beep.Buffer
	volume float64
	out    output

	stream beep.StreamSeeker
	ctrl   *beep.Ctrl
	active bool
}

// NewSpeakerPlayer opens the system speaker and loads the cue: the WAV at file,
// or a synthesized beep when file is empty.
func NewSpeakerPlayer(file string, volume float64) (*Player, error) {
	rate := beep.SampleRate(config.BeepSampleRate)
	if err := initSpeaker(rate); err != nil {
		return nil, err
	}

	buffer := ToneBuffer(rate, config.BeepFrequency, config.BeepDuration)
	if file != "" {
		loaded, err := LoadWAV(file, rate)
		if err != nil {
			return nil, err
		}
		buffer = loaded
	}
	return newPlayer(buffer, volume, speakerOutput{}), nil
}

func newPlayer(buffer *beep.Buffer, volume float64, out output) *Player {
	return &Player{
		buffer: buffer,
		volume: volume,
		out:    out,
	}
}

// Play starts the sound, or resumes it from its current position.
func (p *Player) Play() error {
	p.out.Lock()
	if p.active {
		p.ctrl.Paused = false
		p.out.Unlock()
		return nil
	}
	if p.stream == nil {
		p.stream = p.buffer.Streamer(0, p.buffer.Len())
	}
	ctrl := &beep.Ctrl{
		Streamer: &effects.Volume{
			Streamer: p.stream,
			Base:     2,
			Volume:   p.volume,
		},
	}
	p.ctrl = ctrl
	p.active = true
	p.out.Unlock()

	p.out.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.finished(ctrl)
	})))
	return nil
}

// Pause freezes playback at the current position.
func (p *Player) Pause() {
	p.out.Lock()
	defer p.out.Unlock()
	if p.ctrl != nil {
		p.ctrl.Paused = true
	}
}

// Rewind moves the playback position back to the start.
func (p *Player) Rewind() {
	p.out.Lock()
	defer p.out.Unlock()
	if p.stream != nil {
		_ = p.stream.Seek(0)
	}
}

// Playing reports whether sound is currently being produced.
func (p *Player) Playing() bool {
	p.out.Lock()
	defer p.out.Unlock()
	return p.active && !p.ctrl.Paused
}

// finished runs inside the mixer with the output locked.
func (p *Player) finished(ctrl *beep.Ctrl) {
	if p.ctrl != ctrl {
		return
	}
	p.active = false
	p.stream = nil
}
