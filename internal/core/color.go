package core

// Color represents a foreground or background color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorBrightWhite
	ColorGray

	// Board surfaces.
	ColorBoard
	ColorTileEmpty
	ColorGameOver

	// Tile palette, one entry per power of two from 2 to 32768.
	ColorTile2
	ColorTile4
	ColorTile8
	ColorTile16
	ColorTile32
	ColorTile64
	ColorTile128
	ColorTile256
	ColorTile512
	ColorTile1024
	ColorTile2048
	ColorTile4096
	ColorTile8192
	ColorTile16384
	ColorTile32768

	// ColorTileOverflow is used for values above 32768.
	ColorTileOverflow
)

// TileColor returns the palette entry for a tile value.
// Zero maps to ColorTileEmpty; values past the palette map to ColorTileOverflow.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorTileEmpty
	}
	c := ColorTile2
	for v := 2; v < value; v *= 2 {
		c++
		if c > ColorTile32768 {
			return ColorTileOverflow
		}
	}
	return c
}
