// Package builtin registers the chapter packs shipped with the binary.
package builtin

import (
	_ "embed"

	"github.com/vovakirdan/word-runner/internal/content"
	"github.com/vovakirdan/word-runner/internal/registry"
)

// PackID is the ID of the default built-in pack.
const PackID = "cejm"

//go:embed cejm.yaml
var cejmYAML []byte

func init() {
	registry.Register(PackID, Load)
}

// Load parses the embedded default pack.
func Load() (content.Set, error) {
	set, _, err := content.Parse(cejmYAML, ".yaml")
	return set, err
}
