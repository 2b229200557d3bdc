package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/core"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in 2048 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Width:  core.DefaultBoardDimension,
			Height: core.DefaultBoardDimension,
		},
		Spawn: SpawnConfig{
			Values:     []int{2, 4, 8},
			InitialMin: 2,
			InitialMax: 4,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultT2048YAML
	default:
		return nil
	}
}
