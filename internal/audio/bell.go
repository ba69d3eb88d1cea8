package audio

import (
	"io"
	"sync"
)

const bellChar = "\a"

// Bell rings the terminal bell. It has no playback position, so Pause and
// Rewind do nothing and it never reports itself as playing.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play() error {
	if b.w == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.w, bellChar); err != nil {
		return &OpError{Op: "ring", Resource: "bell", Err: err}
	}
	return nil
}

func (b *Bell) Pause()        {}
func (b *Bell) Rewind()       {}
func (b *Bell) Playing() bool { return false }

// Silent is a cue that produces no sound.
type Silent struct{}

func (Silent) Play() error   { return nil }
func (Silent) Pause()        {}
func (Silent) Rewind()       {}
func (Silent) Playing() bool { return false }
