package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gelsim/internal/config"
)

const (
	stateMenu = iota
	stateSim
)

type app struct {
	state         int
	cursor        int
	presets       []string
	cfg           *config.Config
	live          Model
	width, height int
}

func newApp(cfg *config.Config) app {
	return app{
		state:   stateMenu,
		presets: config.ListPresets(),
		cfg:     cfg,
		width:   80,
		height:  24,
	}
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	}
	if a.state == stateSim {
		newLive, cmd := a.live.Update(msg)
		a.live = newLive.(Model)
		return a, cmd
	}
	return a, nil
}

func (a app) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == stateMenu {
		return a.menuKey(msg)
	}

	// esc backs out of the sim; everything pending dies with the loops.
	if msg.String() == "esc" {
		a.live.stopLoops()
		a.live.ctrl.Reset()
		a.state = stateMenu
		return a, nil
	}

	newLive, cmd := a.live.Update(msg)
	a.live = newLive.(Model)
	return a, cmd
}

func (a app) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(a.presets)-1 {
			a.cursor++
		}
	case "enter", " ":
		preset := config.GetPreset(a.presets[a.cursor])
		a.live = NewModel(a.cfg, preset)
		a.state = stateSim
		return a, a.live.Init()
	}
	return a, nil
}

func (a app) View() string {
	if a.state == stateSim {
		return a.live.View()
	}
	return a.viewMenu()
}

func (a app) viewMenu() string {
	var b strings.Builder
	h := lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	sub := lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	sel := lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	name := lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	desc := lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dimName := lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	dimDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))

	b.WriteString("\n\n    " + h.Render("GELSIM") + "\n    " + sub.Render("gel electrophoresis lab") + "\n    " + sub.Render("─────────────────────────") + "\n\n")

	for i, pname := range a.presets {
		p := config.GetPreset(pname)
		if i == a.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n", sel.Render("▸"), name.Render(fmt.Sprintf("%-16s", pname)), desc.Render(p.Description)))
		} else {
			b.WriteString(fmt.Sprintf("    %s  %s\n", dimName.Render(fmt.Sprintf("  %-16s", pname)), dimDesc.Render(p.Description)))
		}
	}

	key := lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	b.WriteString("\n    " + key.Render("j/k") + sub.Render(" navigate  ") + key.Render("enter") + sub.Render(" load gel  ") + key.Render("q") + sub.Render(" quit") + "\n")
	return b.String()
}

// RunInteractive launches the full-screen TUI.
func RunInteractive(cfg *config.Config) error {
	_, err := tea.NewProgram(newApp(cfg), tea.WithAltScreen()).Run()
	return err
}
