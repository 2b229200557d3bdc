package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// BoardSize holds the dimensions chosen in the custom size form.
type BoardSize struct {
	Width  int
	Height int
}

const (
	fieldWidth = iota
	fieldHeight
	fieldCount
)

// CustomBoardModel lets users type an arbitrary board width and height.
// Empty or unusable input falls back to the placeholder shown in the field.
type CustomBoardModel struct {
	inputs   []textinput.Model
	focus    int
	width    int
	height   int
	config   core.RuntimeConfig
	choosing bool
	quitting bool
	back     bool
}

// NewCustomBoardModel creates the form with the given placeholder size.
func NewCustomBoardModel(cfg core.RuntimeConfig, placeholder BoardSize) CustomBoardModel {
	labels := []string{"Width:  ", "Height: "}
	values := []int{placeholder.Width, placeholder.Height}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = labels[i]
		in.Placeholder = strconv.Itoa(core.ClampBoardDimension(values[i]))
		in.CharLimit = 4
		in.Width = 6
		inputs[i] = in
	}
	inputs[fieldWidth].Focus()

	return CustomBoardModel{
		inputs:   inputs,
		focus:    fieldWidth,
		width:    cfg.ScreenW,
		height:   cfg.ScreenH,
		config:   cfg,
		choosing: true,
	}
}

// Init initializes the model.
func (m CustomBoardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m CustomBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.back = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			if m.focus == fieldWidth {
				return m, m.setFocus(fieldHeight)
			}
			m.choosing = false
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves the cursor to field i.
func (m *CustomBoardModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

// Size returns the board the current input resolves to.
func (m CustomBoardModel) Size() BoardSize {
	return BoardSize{
		Width:  config.ParseDimension(m.inputs[fieldWidth].Value(), m.inputs[fieldWidth].Placeholder),
		Height: config.ParseDimension(m.inputs[fieldHeight].Value(), m.inputs[fieldHeight].Placeholder),
	}
}

// View renders the form.
func (m CustomBoardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerStyled(theme.MenuTitle, "CUSTOM BOARD", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(theme.MenuDescription,
		fmt.Sprintf("Each side from %d to %d", core.MinBoardDimension, core.MaxBoardDimension), m.width))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		b.WriteString(centerText(in.View(), m.width))
		b.WriteString("\n")
	}

	size := m.Size()
	b.WriteString("\n")
	b.WriteString(centerStyled(theme.MenuItemActive, fmt.Sprintf("Board: %dx%d", size.Width, size.Height), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerStyled(theme.MenuDescription, "Tab: Next field  |  Enter: Start  |  Esc: Back", m.width))

	return b.String()
}

// Selected returns the chosen size, or nil if still choosing.
func (m CustomBoardModel) Selected() *BoardSize {
	if m.choosing {
		return nil
	}
	size := m.Size()
	return &size
}

// IsQuitting returns true if user wants to quit.
func (m CustomBoardModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m CustomBoardModel) WantsBack() bool {
	return m.back
}

// RunCustomBoardSelector runs the custom size form and returns the chosen size.
// A nil size with a nil error means the user backed out or quit.
func RunCustomBoardSelector(cfg core.RuntimeConfig, placeholder BoardSize) (*BoardSize, core.RuntimeConfig, error) {
	model := NewCustomBoardModel(cfg, placeholder)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(CustomBoardModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, m.config, nil
	}

	return m.Selected(), m.config, nil
}
