package audio

import (
	"errors"
	"fmt"
)

// ErrSpeakerUnavailable indicates that no audio output could be opened.
var ErrSpeakerUnavailable = errors.New("audio output unavailable")

type OpError struct {
	Op       string
	Resource string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

var errEmptySound = errors.New("sound contains no samples")
