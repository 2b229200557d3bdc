// Package t2048 implements the 2048 sliding-tile puzzle on a configurable grid.
package t2048

import "fmt"

// Preset is a named board size offered by the platform.
type Preset struct {
	ID     string
	Name   string
	Width  int
	Height int
}

// Presets lists the built-in board sizes, classic first.
var Presets = []Preset{
	{ID: BoardID(4, 4), Name: "Classic", Width: 4, Height: 4},
	{ID: BoardID(2, 2), Name: "Tiny", Width: 2, Height: 2},
	{ID: BoardID(3, 3), Name: "Small", Width: 3, Height: 3},
	{ID: BoardID(5, 5), Name: "Large", Width: 5, Height: 5},
	{ID: BoardID(6, 6), Name: "Huge", Width: 6, Height: 6},
	{ID: BoardID(8, 8), Name: "Giant", Width: 8, Height: 8},
}

// BoardID returns the identifier used for a board size.
// The classic 4x4 board is plain "2048"; every other size carries its dimensions.
func BoardID(width, height int) string {
	if width == 4 && height == 4 {
		return "2048"
	}
	return fmt.Sprintf("2048_%dx%d", width, height)
}

// FindPreset returns the preset with the given ID, or nil.
func FindPreset(id string) *Preset {
	for i := range Presets {
		if Presets[i].ID == id {
			return &Presets[i]
		}
	}
	return nil
}

// PresetNames returns display labels for all presets.
func PresetNames() []string {
	names := make([]string, len(Presets))
	for i, p := range Presets {
		names[i] = fmt.Sprintf("%s (%dx%d)", p.Name, p.Width, p.Height)
	}
	return names
}
