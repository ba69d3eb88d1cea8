package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/pomodoro/internal/util"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSoundMode is returned when a sound mode is not beep, bell or off.
var ErrUnknownSoundMode = errors.New("unknown sound mode")

// SoundSettings selects and tunes the audio cue.
type SoundSettings struct {
	Mode   string  `yaml:"mode"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

// Settings contains user preferences read at start-up. They are never written back.
type Settings struct {
	Theme   string        `yaml:"theme"`
	Sound   SoundSettings `yaml:"sound"`
	LogFile string        `yaml:"log_file"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		Theme: DefaultTheme,
		Sound: SoundSettings{
			Mode: SoundBeep,
		},
	}
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		resolved, err := DefaultSettingsPath()
		if err != nil {
			return settings, err
		}
		path = resolved
	}

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData Settings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := settings.apply(fileData); err != nil {
		return DefaultSettings(), err
	}
	return settings, nil
}

// DefaultSettingsPath resolves settings.yaml under the user config directory.
func DefaultSettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, AppName, SettingsFileName), nil
}

// Validate normalizes the sound mode and clamps the volume into range.
func (s *Settings) Validate() error {
	mode, err := ParseSoundMode(s.Sound.Mode)
	if err != nil {
		return err
	}
	s.Sound.Mode = mode
	s.Sound.Volume = util.ClampFloat(s.Sound.Volume, MinVolume, MaxVolume)
	if strings.TrimSpace(s.Theme) == "" {
		s.Theme = DefaultTheme
	}
	return nil
}

// ParseSoundMode maps user input to one of the sound mode constants.
// An empty value selects the beep.
func ParseSoundMode(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", SoundBeep:
		return SoundBeep, nil
	case SoundBell:
		return SoundBell, nil
	case SoundOff, "none", "silent":
		return SoundOff, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSoundMode, raw)
	}
}

func (s *Settings) apply(fileData Settings) error {
	if fileData.Theme != "" {
		s.Theme = fileData.Theme
	}
	if fileData.Sound.Mode != "" {
		s.Sound.Mode = fileData.Sound.Mode
	}
	if fileData.Sound.File != "" {
		s.Sound.File = expandHome(fileData.Sound.File)
	}
	s.Sound.Volume = fileData.Sound.Volume
	if fileData.LogFile != "" {
		s.LogFile = expandHome(fileData.LogFile)
	}
	return s.Validate()
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, path[2:])
}
