package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseScalarTrait(t *testing.T) {
	doc := []byte(`
tributes:
  - name: Aria
    district: 1
    rank: 5
    trait: Strong
  - name: Brom
    district: 3
    rank: 4
`)
	roster, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := roster.Tributes[0].TraitNames(); len(got) != 1 || got[0] != "Strong" {
		t.Errorf("expected scalar trait [Strong], got %v", got)
	}
	if got := roster.Tributes[1].TraitNames(); len(got) != 0 {
		t.Errorf("expected no traits, got %v", got)
	}
}

func TestParseTraitList(t *testing.T) {
	doc := []byte(`
tributes:
  - name: Aria
    district: 1
    rank: 5
    traits: [Career, Strong]
  - name: Brom
    district: 3
    rank: 4
`)
	roster, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got := roster.Tributes[0].TraitNames()
	if len(got) != 2 || got[0] != "Career" || got[1] != "Strong" {
		t.Errorf("expected [Career Strong], got %v", got)
	}
}

func TestParseRejectsTraitMapping(t *testing.T) {
	doc := []byte(`
tributes:
  - name: Aria
    district: 1
    rank: 5
    traits: {bad: mapping}
  - name: Brom
    district: 3
    rank: 4
`)
	if _, err := Parse(doc); err == nil {
		t.Fatal("expected an error for a mapping-valued traits key")
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			"too few tributes",
			"tributes:\n  - name: Aria\n    district: 1\n    rank: 5\n",
			"at least 2",
		},
		{
			"missing name",
			"tributes:\n  - district: 1\n    rank: 5\n  - name: Brom\n    district: 3\n    rank: 4\n",
			"missing name",
		},
		{
			"duplicate name",
			"tributes:\n  - name: Aria\n    district: 1\n    rank: 5\n  - name: Aria\n    district: 2\n    rank: 4\n",
			"duplicate name",
		},
		{
			"bad district",
			"tributes:\n  - name: Aria\n    district: 0\n    rank: 5\n  - name: Brom\n    district: 3\n    rank: 4\n",
			"district",
		},
		{
			"both trait keys",
			"tributes:\n  - name: Aria\n    district: 1\n    rank: 5\n    trait: Strong\n    traits: [Career]\n  - name: Brom\n    district: 3\n    rank: 4\n",
			"not both",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestEmbeddedDefaultRoster(t *testing.T) {
	roster, err := Parse(defaultRosterYAML)
	if err != nil {
		t.Fatalf("embedded default roster is invalid: %v", err)
	}
	if len(roster.Tributes) != 24 {
		t.Errorf("expected 24 tributes in the default roster, got %d", len(roster.Tributes))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := "tributes:\n  - name: Aria\n    district: 1\n    rank: 5\n  - name: Brom\n    district: 3\n    rank: 4\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	roster, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(roster.Tributes) != 2 {
		t.Errorf("expected 2 tributes, got %d", len(roster.Tributes))
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("an explicit roster path that does not exist must error")
	}
}
