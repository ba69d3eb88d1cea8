package audio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/akyairhashvil/pomodoro/internal/config"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestBellRings(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)
	if err := bell.Play(); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	bell.Pause()
	bell.Rewind()
	if err := bell.Play(); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if buf.String() != "\a\a" {
		t.Fatalf("expected two bells, got %q", buf.String())
	}
	if bell.Playing() {
		t.Fatalf("bell never reports playing")
	}
}

func TestBellWriteError(t *testing.T) {
	err := NewBell(failingWriter{}).Play()
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Resource != "bell" {
		t.Fatalf("expected bell OpError, got %v", err)
	}
}

func TestBellNilWriter(t *testing.T) {
	if err := NewBell(nil).Play(); err != nil {
		t.Fatalf("nil writer should be silent, got %v", err)
	}
}

func TestOpenOffAndBell(t *testing.T) {
	cue, err := Open(config.SoundSettings{Mode: config.SoundOff}, nil)
	if err != nil {
		t.Fatalf("Open off failed: %v", err)
	}
	if _, ok := cue.(Silent); !ok {
		t.Fatalf("expected Silent cue, got %T", cue)
	}

	var buf bytes.Buffer
	cue, err = Open(config.SoundSettings{Mode: "bell"}, &buf)
	if err != nil {
		t.Fatalf("Open bell failed: %v", err)
	}
	if _, ok := cue.(*Bell); !ok {
		t.Fatalf("expected Bell cue, got %T", cue)
	}
	_ = cue.Play()
	if buf.String() != "\a" {
		t.Fatalf("expected bell output, got %q", buf.String())
	}
}

func TestOpenUnknownMode(t *testing.T) {
	cue, err := Open(config.SoundSettings{Mode: "kazoo"}, nil)
	if !errors.Is(err, config.ErrUnknownSoundMode) {
		t.Fatalf("expected ErrUnknownSoundMode, got %v", err)
	}
	if _, ok := cue.(Silent); !ok {
		t.Fatalf("expected Silent fallback, got %T", cue)
	}
}
