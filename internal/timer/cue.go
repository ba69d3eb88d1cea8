package timer

//go:generate mockgen -destination=../mocks/mock_cue.go -package=mocks github.com/akyairhashvil/pomodoro/internal/timer Cue

// Cue is the audio collaborator fired on phase transitions.
// Rewind moves the playback position back to the start without playing.
type Cue interface {
	Play() error
	Pause()
	Rewind()
	Playing() bool
}

type nopCue struct{}

func (nopCue) Play() error   { return nil }
func (nopCue) Pause()        {}
func (nopCue) Rewind()       {}
func (nopCue) Playing() bool { return false }
