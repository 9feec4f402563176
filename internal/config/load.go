package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads, parses, normalizes, and validates a settings file.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	settings, err := Parse(data)
	if err != nil {
		return Settings{}, err
	}
	Normalize(&settings)
	if err := Validate(settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Parse decodes settings YAML. Unknown fields are rejected so typos fail
// loudly instead of silently falling back to defaults.
func Parse(data []byte) (Settings, error) {
	var settings Settings
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	var extra Settings
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("parse settings: expected a single YAML document")
	}
	return settings, nil
}
