package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Rules holds the tunable spawn parameters of a grid.
type Rules struct {
	SpawnValues []int // Values a new tile may take, picked uniformly
	InitialMin  int   // Fewest tiles placed on a fresh grid
	InitialMax  int   // Most tiles placed on a fresh grid (inclusive)
}

// DefaultRules returns the classic parameters: 2-4 starting tiles valued 2, 4 or 8.
func DefaultRules() Rules {
	return Rules{
		SpawnValues: []int{2, 4, 8},
		InitialMin:  2,
		InitialMax:  4,
	}
}

// RulesFromConfig converts the spawn section of a game config.
func RulesFromConfig(cfg config.T2048Config) Rules {
	return Rules{
		SpawnValues: cfg.Spawn.Values,
		InitialMin:  cfg.Spawn.InitialMin,
		InitialMax:  cfg.Spawn.InitialMax,
	}
}

// Validate checks that the rules can only ever produce legal tile values.
func (r Rules) Validate() error {
	if len(r.SpawnValues) == 0 {
		return fmt.Errorf("%w: no spawn values", ErrInvalidRules)
	}
	for _, v := range r.SpawnValues {
		if !isTileValue(v) {
			return fmt.Errorf("%w: spawn value %d is not a power of two >= 2", ErrInvalidRules, v)
		}
	}
	if r.InitialMin < 1 || r.InitialMin > r.InitialMax {
		return fmt.Errorf("%w: initial tile range [%d, %d]", ErrInvalidRules, r.InitialMin, r.InitialMax)
	}
	return nil
}

// isTileValue reports whether v is a power of two >= 2.
func isTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}
