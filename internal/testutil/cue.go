package testutil

// RecordingCue is an in-memory audio cue that records every call.
type RecordingCue struct {
	Calls   []string
	PlayErr error
	playing bool
}

func (c *RecordingCue) Play() error {
	c.Calls = append(c.Calls, "play")
	if c.PlayErr != nil {
		return c.PlayErr
	}
	c.playing = true
	return nil
}

func (c *RecordingCue) Pause() {
	c.Calls = append(c.Calls, "pause")
	c.playing = false
}

func (c *RecordingCue) Rewind() {
	c.Calls = append(c.Calls, "rewind")
}

func (c *RecordingCue) Playing() bool {
	return c.playing
}

// Count returns how many times the named call was made.
func (c *RecordingCue) Count(call string) int {
	n := 0
	for _, got := range c.Calls {
		if got == call {
			n++
		}
	}
	return n
}

// Finish simulates the sound reaching its end.
func (c *RecordingCue) Finish() {
	c.playing = false
}
