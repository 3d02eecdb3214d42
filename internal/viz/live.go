package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gelsim/internal/config"
	"github.com/san-kum/gelsim/internal/gel"
	"github.com/san-kum/gelsim/internal/sched"
)

const (
	canvasWidth  = 40
	canvasHeight = 24
	historyCap   = 600
	voltageStep  = 10
)

// frameMsg is one fired per-frame callback. at is the fire time, used for
// the measured delta.
type frameMsg struct {
	tok sched.Tick
	at  time.Time
}

// secondMsg is one fired elapsed-timer callback.
type secondMsg struct {
	tok sched.Tick
}

// LaneDefs converts configured lanes into registry lane definitions.
func LaneDefs(lanes []config.LaneConfig) []gel.LaneDef {
	defs := make([]gel.LaneDef, len(lanes))
	for i, l := range lanes {
		defs[i] = gel.LaneDef{Lane: l.Lane, Sizes: l.Sizes}
	}
	return defs
}

// Model is the live gel view. It owns the run controller and the two
// scheduling loops; the controller ignores Advance/TickSecond outside
// PhaseRunning, and the loops drop stale callbacks, so pause and reset
// deterministically stop all motion.
type Model struct {
	ctrl    *gel.Controller
	cfg     *config.Config
	preset  *config.Preset
	frames  *sched.Loop
	seconds *sched.Loop

	lastFrame time.Time
	canvas    *Canvas
	laneSlot  map[int]int
	history   []float64
	notice    string
	showHelp  bool

	width, height int
}

// NewModel builds a live view with the preset's lanes already loaded.
func NewModel(cfg *config.Config, preset *config.Preset) Model {
	reg := gel.NewRegistry(cfg.Gel.WellOffset)
	ctrl := gel.NewController(reg, gel.Params{
		TravelLimit: cfg.TravelLimit(),
		Voltage:     cfg.Voltage,
		MinVoltage:  cfg.MinVoltage,
		MaxVoltage:  cfg.MaxVoltage,
	})

	slots := make(map[int]int)
	if preset != nil {
		ctrl.LoadLanes(LaneDefs(preset.Lanes))
		for i, l := range preset.Lanes {
			slots[l.Lane] = i
		}
	}

	frameRate := cfg.FrameRate
	if frameRate <= 0 {
		frameRate = config.DefaultFrameRate
	}

	return Model{
		ctrl:     ctrl,
		cfg:      cfg,
		preset:   preset,
		frames:   sched.NewLoop(time.Second / time.Duration(frameRate)),
		seconds:  sched.NewLoop(time.Second),
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		laneSlot: slots,
		history:  make([]float64, 0, historyCap),
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles input and the two periodic callbacks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case frameMsg:
		tok, ok := m.frames.Next(msg.tok, msg.at)
		if !ok {
			return m, nil
		}
		dt := msg.at.Sub(m.lastFrame).Seconds()
		m.lastFrame = msg.at
		m.ctrl.Advance(dt)
		m.recordHistory()
		return m, m.frameCmd(tok)

	case secondMsg:
		tok, ok := m.seconds.Next(msg.tok, time.Now())
		if !ok {
			return m, nil
		}
		m.ctrl.TickSecond()
		return m, m.secondCmd(tok)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		return m.toggleRun()
	case "r":
		m.stopLoops()
		m.ctrl.Reset()
		m.history = m.history[:0]
		m.notice = ""
	case "l":
		m.load()
	case "up", "k":
		m.ctrl.SetVoltage(m.ctrl.Voltage() + voltageStep)
	case "down", "j":
		m.ctrl.SetVoltage(m.ctrl.Voltage() - voltageStep)
	case "t":
		names := ThemeNames()
		for i, name := range names {
			if name == CurrentTheme.Name {
				SetTheme(names[(i+1)%len(names)])
				break
			}
		}
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// toggleRun starts, resumes or pauses the run. On start/resume the frame
// baseline is reset to now, so the first delta is measured from resume
// time rather than from before the pause.
func (m Model) toggleRun() (tea.Model, tea.Cmd) {
	if m.ctrl.Phase() == gel.PhaseRunning {
		m.pause()
		return m, nil
	}

	if err := m.ctrl.Start(); err != nil {
		m.notice = "load samples first (press l)"
		return m, nil
	}
	m.notice = ""

	now := time.Now()
	m.lastFrame = now
	return m, tea.Batch(
		m.frameCmd(m.frames.Start(now)),
		m.secondCmd(m.seconds.Start(now)),
	)
}

func (m *Model) pause() {
	m.ctrl.Pause()
	m.stopLoops()
}

func (m *Model) stopLoops() {
	m.frames.Stop()
	m.seconds.Stop()
}

// load (re)loads the preset's lanes. The controller silently ignores this
// while running.
func (m *Model) load() {
	if m.preset == nil {
		return
	}
	m.ctrl.LoadLanes(LaneDefs(m.preset.Lanes))
	if m.ctrl.Phase() != gel.PhaseRunning {
		m.history = m.history[:0]
		m.notice = ""
	}
}

func (m Model) frameCmd(tok sched.Tick) tea.Cmd {
	return tea.Tick(m.frames.Interval(), func(now time.Time) tea.Msg {
		return frameMsg{tok: tok, at: now}
	})
}

func (m Model) secondCmd(tok sched.Tick) tea.Cmd {
	return tea.Tick(m.seconds.Interval(), func(time.Time) tea.Msg {
		return secondMsg{tok: tok}
	})
}

// recordHistory tracks the lead band's travel for the sparkline chart.
func (m *Model) recordHistory() {
	lead := 0.0
	for _, f := range m.ctrl.Fragments() {
		if d := f.Position - m.cfg.Gel.WellOffset; d > lead {
			lead = d
		}
	}
	m.history = append(m.history, lead)
	if len(m.history) > historyCap {
		m.history = m.history[1:]
	}
}

// draw renders the gel onto the braille canvas: outline, wells, and one
// band per fragment at its current position.
func (m *Model) draw() {
	m.canvas.Clear()
	cw, ch := m.canvas.Width*2, m.canvas.Height*4

	m.canvas.DrawLine(0, 0, cw-1, 0)
	m.canvas.DrawLine(0, ch-1, cw-1, ch-1)
	m.canvas.DrawLine(0, 0, 0, ch-1)
	m.canvas.DrawLine(cw-1, 0, cw-1, ch-1)

	n := len(m.laneSlot)
	if n == 0 {
		return
	}

	scaleY := float64(ch-2) / m.cfg.Gel.Length
	wellY := 1 + int(m.cfg.Gel.WellOffset*scaleY)
	half := cw / (n * 4)
	if half < 2 {
		half = 2
	}

	for slot := 0; slot < n; slot++ {
		cx := (slot + 1) * cw / (n + 1)
		m.canvas.DrawLine(cx-half, wellY-3, cx+half, wellY-3)
		m.canvas.Set(cx-half, wellY-2)
		m.canvas.Set(cx+half, wellY-2)
	}

	for _, f := range m.ctrl.Fragments() {
		slot, ok := m.laneSlot[f.Lane]
		if !ok {
			continue
		}
		cx := (slot + 1) * cw / (n + 1)
		y := 1 + int(f.Position*scaleY)
		if y > ch-2 {
			y = ch - 2
		}
		m.canvas.FillRect(cx-half, y, cx+half, y+1)
	}
}

// View renders the gel canvas next to the stats panel.
func (m Model) View() string {
	m.draw()

	gelStyle := lipgloss.NewStyle().Foreground(CurrentTheme.Band)
	canvasView := canvasStyle.Render(gelStyle.Render(m.canvas.String()))

	var s strings.Builder
	s.WriteString(headerStyle.Render("GEL ELECTROPHORESIS") + "\n")

	phase := m.ctrl.Phase().String()
	s.WriteString(statusStyle(phase).Render(phase) + "\n\n")

	s.WriteString(labelStyle.Render("Timer") + valueStyle.Render(m.ctrl.Clock()) + "\n")

	p := m.ctrl.Params()
	s.WriteString(labelStyle.Render("Voltage") + valueStyle.Render(fmt.Sprintf("%s %dV", voltageBar(m.ctrl.Voltage(), p.MinVoltage, p.MaxVoltage, 10), m.ctrl.Voltage())) + "\n")

	finished := 0
	for _, f := range m.ctrl.Fragments() {
		if f.Finished {
			finished++
		}
	}
	s.WriteString(labelStyle.Render("Bands") + valueStyle.Render(fmt.Sprintf("%d/%d done", finished, len(m.ctrl.Fragments()))) + "\n")

	if m.preset != nil {
		s.WriteString(labelStyle.Render("Samples") + valueStyle.Render(m.preset.Name) + "\n")
		for _, lane := range m.preset.Lanes {
			s.WriteString("  " + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(fmt.Sprintf("lane %d  %s", lane.Lane, lane.Label)) + "\n")
		}
	}

	if m.notice != "" {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Warning).Render(m.notice) + "\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(28), asciigraph.Caption("lead band travel"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Render(chart) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Run/Pause R:Reset L:Load\n↑↓:Voltage T:Theme Q:Quit ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/Pause the run      ║
║  R        - Reset gel                ║
║  L        - Load samples             ║
║  Up/K     - Raise voltage (+10V)     ║
║  Down/J   - Lower voltage (-10V)     ║
║  T        - Cycle stain themes       ║
║  Esc      - Back to sample menu      ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
