package config

import (
	_ "embed"
)

// Embedded fallback used when no roster file is found anywhere.
//
//go:embed defaults/roster.yaml
var defaultRosterYAML []byte
