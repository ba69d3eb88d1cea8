package timer

import (
	"time"

	"github.com/akyairhashvil/pomodoro/internal/models"
)

// EventType defines the type of Machine event.
type EventType string

const (
	EventChange     EventType = "change"
	EventTick       EventType = "tick"
	EventTransition EventType = "transition"
	EventReset      EventType = "reset"
	EventWarning    EventType = "warning"
)

// Event represents a Machine update for observers.
type Event struct {
	Type    EventType
	State   models.TimerState
	Message string
	At      time.Time
}

// Listener receives events synchronously on the goroutine driving the Machine.
type Listener func(Event)
