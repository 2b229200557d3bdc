package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme contains all configurable visual styles.
type Theme struct {
	// Palette maps screen colors to terminal colors, used for both
	// foreground and background. Missing entries render unstyled.
	Palette map[core.Color]lipgloss.Color

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuError       lipgloss.Style

	// Scoreboard styles
	ScoreTitle    lipgloss.Style
	ScoreBorder   lipgloss.Color
	ScoreSelected lipgloss.Style
	ScoreHelp     lipgloss.Style
}

// DefaultTheme returns the classic blue/green/red tile ramp.
func DefaultTheme() Theme {
	return Theme{
		Palette: map[core.Color]lipgloss.Color{
			core.ColorRed:         lipgloss.Color("1"),
			core.ColorGreen:       lipgloss.Color("2"),
			core.ColorYellow:      lipgloss.Color("3"),
			core.ColorBlue:        lipgloss.Color("4"),
			core.ColorWhite:       lipgloss.Color("7"),
			core.ColorBrightWhite: lipgloss.Color("15"),
			core.ColorGray:        lipgloss.Color("245"),

			core.ColorBoard:     lipgloss.Color("#555555"),
			core.ColorTileEmpty: lipgloss.Color("#888888"),
			core.ColorGameOver:  lipgloss.Color("#ff0000"),

			// 2-32: blues
			core.ColorTile2:  lipgloss.Color("#8888ff"),
			core.ColorTile4:  lipgloss.Color("#6666ff"),
			core.ColorTile8:  lipgloss.Color("#4444ff"),
			core.ColorTile16: lipgloss.Color("#2222ff"),
			core.ColorTile32: lipgloss.Color("#0000ff"),

			// 64-1024: greens
			core.ColorTile64:   lipgloss.Color("#88ff88"),
			core.ColorTile128:  lipgloss.Color("#66ff66"),
			core.ColorTile256:  lipgloss.Color("#44ff44"),
			core.ColorTile512:  lipgloss.Color("#22ff22"),
			core.ColorTile1024: lipgloss.Color("#00ff00"),

			// 2048-32768: reds
			core.ColorTile2048:  lipgloss.Color("#ff8888"),
			core.ColorTile4096:  lipgloss.Color("#ff6666"),
			core.ColorTile8192:  lipgloss.Color("#ff4444"),
			core.ColorTile16384: lipgloss.Color("#ff2222"),
			core.ColorTile32768: lipgloss.Color("#ff0000"),

			core.ColorTileOverflow: lipgloss.Color("#000000"),
		},

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("#8888ff")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuError:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),

		ScoreTitle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),
		ScoreBorder:   lipgloss.Color("240"),
		ScoreSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		ScoreHelp:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without true color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Palette = map[core.Color]lipgloss.Color{
		core.ColorBrightWhite: lipgloss.Color("255"),
		core.ColorGray:        lipgloss.Color("245"),
		core.ColorBoard:       lipgloss.Color("236"),
		core.ColorTileEmpty:   lipgloss.Color("239"),
		core.ColorGameOver:    lipgloss.Color("232"),
	}
	// Darken one step per tile, 250 down to 235.
	for c := core.ColorTile2; c <= core.ColorTileOverflow; c++ {
		shade := 250 - int(c-core.ColorTile2)
		theme.Palette[c] = lipgloss.Color(fmt.Sprint(shade))
	}
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.ScoreSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(lipgloss.Color("250"))
	return theme
}

var themes = map[string]func() Theme{
	"classic": DefaultTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames returns the names accepted by ThemeByName, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName looks up a built-in theme.
func ThemeByName(name string) (Theme, error) {
	f, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("tui: unknown theme %q (available: %v)", name, ThemeNames())
	}
	return f(), nil
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
