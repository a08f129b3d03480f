package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads and validates a roster.
// Search order: customPath -> ~/.arena/rosters/default.yaml -> ./rosters/default.yaml -> embedded default
func Load(customPath string) (Roster, error) {
	// Custom path is an explicit request; failures there are errors.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Roster{}, fmt.Errorf("config: failed to read roster %s: %w", customPath, err)
		}
		return Parse(data)
	}

	// Try user roster directory
	if userPath := userRosterPath("default.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if roster, err := Parse(data); err == nil {
				return roster, nil
			}
		}
	}

	// Try local rosters directory
	if data, err := os.ReadFile(filepath.Join("rosters", "default.yaml")); err == nil {
		if roster, err := Parse(data); err == nil {
			return roster, nil
		}
	}

	return Parse(defaultRosterYAML)
}

// Parse unmarshals and validates one roster document.
func Parse(data []byte) (Roster, error) {
	var roster Roster
	if err := yaml.Unmarshal(data, &roster); err != nil {
		return Roster{}, fmt.Errorf("config: failed to parse roster: %w", err)
	}
	if err := roster.Validate(); err != nil {
		return Roster{}, err
	}
	return roster, nil
}

// userRosterPath returns the path to a user roster file, or empty if
// home is unavailable.
func userRosterPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arena", "rosters", filename)
}
