package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

func writeToneWAV(t *testing.T, rate beep.SampleRate, d time.Duration) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cue.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, Tone(rate, 440, d), format); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	return path
}

func TestLoadWAV(t *testing.T) {
	rate := beep.SampleRate(8000)
	path := writeToneWAV(t, rate, 100*time.Millisecond)
	buffer, err := LoadWAV(path, rate)
	if err != nil {
		t.Fatalf("LoadWAV failed: %v", err)
	}
	if buffer.Len() != rate.N(100*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", rate.N(100*time.Millisecond), buffer.Len())
	}
	if buffer.Format().SampleRate != rate {
		t.Fatalf("unexpected sample rate %d", buffer.Format().SampleRate)
	}
}

func TestLoadWAVResamples(t *testing.T) {
	path := writeToneWAV(t, beep.SampleRate(8000), 200*time.Millisecond)
	buffer, err := LoadWAV(path, beep.SampleRate(16000))
	if err != nil {
		t.Fatalf("LoadWAV failed: %v", err)
	}
	if buffer.Format().SampleRate != 16000 {
		t.Fatalf("expected resampled buffer, got rate %d", buffer.Format().SampleRate)
	}
	if buffer.Len() < 3000 || buffer.Len() > 3400 {
		t.Fatalf("expected roughly 3200 samples after resampling, got %d", buffer.Len())
	}
}

func TestLoadWAVMissingFile(t *testing.T) {
	_, err := LoadWAV(filepath.Join(t.TempDir(), "absent.wav"), beep.SampleRate(8000))
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "open" {
		t.Fatalf("expected open OpError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.wav")
	if err := os.WriteFile(path, []byte("definitely not RIFF"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	_, err := LoadWAV(path, beep.SampleRate(8000))
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "decode" {
		t.Fatalf("expected decode OpError, got %v", err)
	}
}
