package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configDirName = "serial-datalogger"
const settingsFileName = "settings.yaml"

// Settings is the persisted user configuration.
type Settings struct {
	Port            string    `yaml:"port,omitempty"`
	BaudRate        int       `yaml:"baud_rate"`
	Commands        []Command `yaml:"commands"`
	HeaderTemplates []string  `yaml:"header_templates,omitempty"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() Settings {
	return Settings{
		BaudRate: defaultBaudRate,
		Commands: append([]Command(nil), DefaultCommands...),
	}
}

// Validate checks the baud rate and the command table.
func (s Settings) Validate() error {
	if !IsSupportedBaudRate(s.BaudRate) {
		return fmt.Errorf("%w: unsupported baud rate %d", ErrInvalidParameter, s.BaudRate)
	}
	return validateCommands(s.Commands)
}

// configDir returns the path to the app's config directory.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config dir: %w", err)
	}
	return filepath.Join(dir, configDirName), nil
}

// defaultSettingsPath returns the settings file location under the user
// config directory.
func defaultSettingsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// LoadSettings reads settings from path. Returns defaults if the file doesn't exist.
// Fields missing from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	if len(s.Commands) == 0 {
		s.Commands = append([]Command(nil), DefaultCommands...)
	}
	if err := s.Validate(); err != nil {
		return DefaultSettings(), fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings writes settings to path, creating its directory if needed.
func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
