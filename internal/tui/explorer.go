package tui

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/tslab/internal/analysis"
	"github.com/san-kum/tslab/internal/config"
	"github.com/san-kum/tslab/internal/experiment"
	"github.com/san-kum/tslab/internal/sim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type state int

const (
	stateMenu state = iota
	stateExplore
)

const (
	minN = 20
	maxN = 1000
)

type model struct {
	reg *experiment.Registry

	state    state
	cursor   int
	models   []string
	selected string

	params      sim.Params
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string
	n           int
	seed        int64

	result *sim.Result
	err    error

	width  int
	height int
}

func NewExplorer(reg *experiment.Registry, seed int64) *model {
	return &model{
		reg:    reg,
		state:  stateMenu,
		models: reg.ListModels(),
		params: sim.DefaultParams(),
		seed:   seed,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateExplore:
		return m.exploreKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.models)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.models[m.cursor]
		cfg := config.DefaultConfigFor(m.selected)
		m.params = cfg.Params
		m.n = cfg.N
		m.paramNames = config.ParamNames(m.selected)
		m.paramCursor = 0
		m.state = stateExplore
		m.regenerate()
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) exploreKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.setParam(m.paramNames[m.paramCursor], v)
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
		m.result = nil
		m.err = nil
		return m, tea.ClearScreen
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "left", "h":
		m.nudge(-1)
	case "right", "l":
		m.nudge(1)
	case "enter", "e":
		if len(m.paramNames) > 0 {
			v, _ := m.params.Get(m.paramNames[m.paramCursor])
			m.editing = true
			m.editBuf = strconv.FormatFloat(v, 'f', -1, 64)
		}
	case "r":
		m.seed++
		m.regenerate()
	case "+", "=":
		m.n = min(m.n*2, maxN)
		m.regenerate()
	case "-", "_":
		m.n = max(m.n/2, minN)
		m.regenerate()
	}
	return m, nil
}

// nudge moves the selected parameter one step within its range.
func (m *model) nudge(dir float64) {
	if len(m.paramNames) == 0 {
		return
	}
	name := m.paramNames[m.paramCursor]
	v, err := m.params.Get(name)
	if err != nil {
		return
	}
	m.setParam(name, v+dir*config.Ranges[name].Step)
}

func (m *model) setParam(name string, v float64) {
	r, ok := config.Ranges[name]
	if ok {
		v = r.Clamp(v)
		if r.Step > 0 {
			// keep values on the step grid so repeated nudges do not drift
			v = math.Round(v/r.Step) * r.Step
			v = math.Round(v*1e6) / 1e6
		}
	}
	if err := m.params.Set(name, v); err != nil {
		m.err = err
		return
	}
	m.regenerate()
}

func (m *model) regenerate() {
	m.result, m.err = experiment.Execute(context.Background(), m.reg, experiment.Config{
		Model:  m.selected,
		N:      m.n,
		Seed:   m.seed,
		Params: m.params.Clone(),
	})
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateExplore:
		return m.viewExplore()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("            " + cyan.Render("t s l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.models {
		desc := m.reg.Describe(name)
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter explore   q quit") + "\n")

	return b.String()
}

func (m model) viewExplore() string {
	var b strings.Builder

	label := m.selected
	if m.result != nil {
		label = m.result.Label
	}
	b.WriteString("\n")
	b.WriteString("   " + cyan.Render(label) + "  " + dim.Render(fmt.Sprintf("n=%d seed=%d", m.n, m.seed)) + "\n")
	b.WriteString(dimmer.Render("   "+strings.Repeat("─", 40)) + "\n")

	if len(m.paramNames) == 0 {
		b.WriteString("     " + dim.Render("fixed parameters") + "\n")
	}
	for i, name := range m.paramNames {
		v, _ := m.params.Get(name)
		val := fmt.Sprintf("%8.2f", v)
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		r := config.Ranges[name]
		bar := slider(v, r, 20)
		if i == m.paramCursor {
			b.WriteString("   " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "  " + cyan.Render(bar) + "\n")
		} else {
			b.WriteString("     " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "  " + dimmer.Render(bar) + "\n")
		}
	}
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("   " + red.Render(m.err.Error()) + "\n")
	case m.result != nil && len(m.result.Series) > 0:
		w := m.width - 14
		if w < 30 {
			w = 30
		}
		h := m.height - len(m.paramNames) - 12
		if h < 6 {
			h = 6
		}
		chart := asciigraph.Plot(m.result.Series.Values(),
			asciigraph.Height(h),
			asciigraph.Width(w),
		)
		b.WriteString(chart + "\n\n")
		b.WriteString("   " + m.statsLine() + "\n")
	}

	b.WriteString("\n" + dim.Render("   ↑↓ param  ←→ adjust  e edit  r reseed  ±length  esc back") + "\n")

	return b.String()
}

func (m model) statsLine() string {
	mt := m.result.Metrics
	line := dim.Render(fmt.Sprintf("mean %.3f  sd %.3f  min %.3f  max %.3f  acf1 %.3f",
		mt["mean"], mt["stddev"], mt["min"], mt["max"], mt["acf1"]))

	switch m.selected {
	case "ar":
		if analysis.IsStationary(m.params.Phi) {
			line += "  " + green.Render("stationary")
		} else {
			line += "  " + red.Render("non-stationary")
		}
	case "seasonal", "sales":
		if p, ok := analysis.DominantPeriod(m.result.Series.Values()); ok {
			line += "  " + dim.Render(fmt.Sprintf("period≈%.1f", p))
		}
	}
	return line
}

// slider draws v's position within r as a bar of the given width.
func slider(v float64, r config.Range, width int) string {
	if r.Max <= r.Min {
		return ""
	}
	pos := int(math.Round((v - r.Min) / (r.Max - r.Min) * float64(width-1)))
	pos = max(0, min(pos, width-1))
	return strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-1-pos)
}

func RunExplorer(reg *experiment.Registry, seed int64) error {
	p := tea.NewProgram(NewExplorer(reg, seed), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
