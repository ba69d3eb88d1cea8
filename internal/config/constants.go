package config

import "time"

// Timer defaults. Reset always restores these values.
const (
	DefaultBreakMinutes   = 5
	DefaultSessionMinutes = 25
	SecondsPerMinute      = 60
	DefaultTimeLeft       = DefaultSessionMinutes * SecondsPerMinute
)

// Length bounds, in minutes, for both break and session.
const (
	MinLengthMinutes = 1
	MaxLengthMinutes = 60
)

// TickInterval is the cadence of the countdown.
const TickInterval = time.Second

// Sound modes accepted by settings and flags.
const (
	SoundBeep = "beep"
	SoundBell = "bell"
	SoundOff  = "off"
)

// Audio defaults for the synthesized cue.
const (
	BeepFrequency  = 880.0
	BeepDuration   = 600 * time.Millisecond
	BeepSampleRate = 44100
	// MinVolume and MaxVolume bound the exponential (base 2) gain applied to the cue.
	MinVolume = -6.0
	MaxVolume = 2.0
)

// Application settings.
const (
	AppName          = "pomodoro"
	AppTitle         = "Pomodoro Clock"
	SettingsFileName = "settings.yaml"
	DefaultTheme     = "default"
)
