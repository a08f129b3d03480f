// Package config provides YAML-based roster loading and validation for
// the arena simulator. Malformed descriptors are caught here, at the
// load boundary; the simulation core assumes well-formed input.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Roster is the top-level roster file document.
type Roster struct {
	Name     string        `yaml:"name"`
	Tributes []TributeSpec `yaml:"tributes"`
}

// TributeSpec describes one tribute in a roster file. Traits are
// optional; when absent the engine assigns random ones. Both `trait`
// and `traits` keys are accepted, each taking a single string or a
// list.
type TributeSpec struct {
	Name     string    `yaml:"name"`
	District int       `yaml:"district"`
	Rank     int       `yaml:"rank"`
	Traits   TraitList `yaml:"traits"`
	Trait    TraitList `yaml:"trait"`
}

// TraitNames returns the effective trait list, whichever key was used.
func (s TributeSpec) TraitNames() []string {
	if len(s.Traits) > 0 {
		return s.Traits
	}
	return s.Trait
}

// TraitList unmarshals from either a single YAML scalar or a sequence
// of strings.
type TraitList []string

func (l *TraitList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = TraitList{s}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := value.Decode(&ss); err != nil {
			return err
		}
		*l = TraitList(ss)
		return nil
	}
	return fmt.Errorf("traits must be a string or a list of strings")
}

// Validate checks the roster for load-boundary errors: missing or
// duplicate names, bad districts, conflicting trait keys.
func (r *Roster) Validate() error {
	if len(r.Tributes) < 2 {
		return fmt.Errorf("config: a roster needs at least 2 tributes, got %d", len(r.Tributes))
	}
	seen := make(map[string]bool, len(r.Tributes))
	for i, t := range r.Tributes {
		if t.Name == "" {
			return fmt.Errorf("config: tribute %d: missing name", i+1)
		}
		if seen[t.Name] {
			return fmt.Errorf("config: tribute %d: duplicate name %q", i+1, t.Name)
		}
		seen[t.Name] = true
		if t.District < 1 {
			return fmt.Errorf("config: tribute %q: district must be >= 1, got %d", t.Name, t.District)
		}
		if len(t.Traits) > 0 && len(t.Trait) > 0 {
			return fmt.Errorf("config: tribute %q: use either trait or traits, not both", t.Name)
		}
	}
	return nil
}
