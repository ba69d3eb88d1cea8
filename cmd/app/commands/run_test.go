package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
	"github.com/akyairhashvil/pomodoro/internal/testutil"
	"github.com/akyairhashvil/pomodoro/internal/timer"
)

func TestCountdownStopsAfterCycles(t *testing.T) {
	cue := &testutil.RecordingCue{}
	machine := timer.New(cue, timer.Options{})
	var out bytes.Buffer

	err := countdown(context.Background(), &out, machine, runOptions{
		cycles:   2,
		interval: time.Millisecond,
		session:  1,
		breakLen: 1,
	})
	if err != nil {
		t.Fatalf("countdown failed: %v", err)
	}
	text := out.String()
	for _, want := range []string{"Session started (01:00)", "Break started (01:00)", "2 phases completed"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if cue.Count("play") != 2 {
		t.Fatalf("expected two cues, got %d", cue.Count("play"))
	}
	if machine.Snapshot().Phase != models.PhaseSession {
		t.Fatalf("expected to end back in a session")
	}
}

func TestCountdownVerbosePrintsTicks(t *testing.T) {
	machine := timer.New(nil, timer.Options{})
	var out bytes.Buffer
	err := countdown(context.Background(), &out, machine, runOptions{
		cycles:   1,
		interval: time.Millisecond,
		session:  1,
		verbose:  true,
	})
	if err != nil {
		t.Fatalf("countdown failed: %v", err)
	}
	if !strings.Contains(out.String(), "Session 00:59 running") {
		t.Fatalf("expected tick lines in output:\n%s", out.String())
	}
}

func TestCountdownCancelled(t *testing.T) {
	machine := timer.New(nil, timer.Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := countdown(ctx, &out, machine, runOptions{interval: time.Hour}); err != nil {
		t.Fatalf("cancellation should end the countdown cleanly, got %v", err)
	}
	if !strings.Contains(out.String(), "No phases completed") {
		t.Fatalf("expected summary line, got %q", out.String())
	}
}

func TestCountdownReportsAudioWarning(t *testing.T) {
	cue := &testutil.RecordingCue{PlayErr: errors.New("device busy")}
	machine := timer.New(cue, timer.Options{})
	var out bytes.Buffer
	err := countdown(context.Background(), &out, machine, runOptions{cycles: 1, interval: time.Millisecond, session: 1})
	if err != nil {
		t.Fatalf("countdown failed: %v", err)
	}
	if !strings.Contains(out.String(), "warning: audio cue failed: device busy") {
		t.Fatalf("expected warning line, got:\n%s", out.String())
	}
}

func TestApplyLengths(t *testing.T) {
	machine := timer.New(nil, timer.Options{})
	if err := applyLengths(machine, runOptions{session: 40, breakLen: 2}); err != nil {
		t.Fatalf("applyLengths failed: %v", err)
	}
	state := machine.Snapshot()
	if state.SessionLength != 40 || state.BreakLength != 2 {
		t.Fatalf("unexpected lengths %+v", state)
	}
	if state.TimeLeftSeconds != 40*60 {
		t.Fatalf("expected time left to follow the session, got %d", state.TimeLeftSeconds)
	}
}

func TestApplyLengthsRejectsOutOfRange(t *testing.T) {
	for _, opts := range []runOptions{{session: 61}, {session: -1}, {breakLen: 90}} {
		machine := timer.New(nil, timer.Options{})
		if err := applyLengths(machine, opts); err == nil {
			t.Fatalf("expected error for %+v", opts)
		}
		if machine.Snapshot() != timer.DefaultState() {
			t.Fatalf("rejected options must not change the clock")
		}
	}
}
