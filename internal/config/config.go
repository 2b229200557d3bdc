// Package config provides YAML-based game configuration loading
// and board dimension parsing for the 2048 platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Sentinel errors for configuration validation.
var (
	ErrInvalidDimension = errors.New("config: invalid board dimension")
	ErrInvalidSpawn     = errors.New("config: invalid spawn settings")
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the default board size.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	Values     []int `yaml:"values"`
	InitialMin int   `yaml:"initial_min"`
	InitialMax int   `yaml:"initial_max"`
}

// Validate reports settings that cannot describe a playable board.
// Zero dimensions are allowed and mean "use the default".
func (c T2048Config) Validate() error {
	for _, d := range []struct {
		name  string
		value int
	}{{"width", c.Board.Width}, {"height", c.Board.Height}} {
		if d.value < 0 {
			return fmt.Errorf("%w: %s %d", ErrInvalidDimension, d.name, d.value)
		}
	}

	if len(c.Spawn.Values) == 0 {
		return fmt.Errorf("%w: values must not be empty", ErrInvalidSpawn)
	}
	for _, v := range c.Spawn.Values {
		if v < 2 || v&(v-1) != 0 {
			return fmt.Errorf("%w: %d is not a power of two >= 2", ErrInvalidSpawn, v)
		}
	}
	if c.Spawn.InitialMin < 1 || c.Spawn.InitialMin > c.Spawn.InitialMax {
		return fmt.Errorf("%w: initial range [%d, %d]", ErrInvalidSpawn, c.Spawn.InitialMin, c.Spawn.InitialMax)
	}
	return nil
}

// Normalize clamps the board size into the legal range.
func (c *T2048Config) Normalize() {
	c.Board.Width = core.ClampBoardDimension(c.Board.Width)
	c.Board.Height = core.ClampBoardDimension(c.Board.Height)
}
