package embedded

import (
	_ "embed"
)

// Well-known progressions scored by the presets endpoint and CLI
//
//go:embed data/progressions.yaml
var ProgressionsYAML []byte
