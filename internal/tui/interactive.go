package tui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jakujobi/Math374Project1/internal/diff"
	"github.com/jakujobi/Math374Project1/internal/sweep"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

const (
	paramHMin = iota
	paramHMax
	paramPoints
	paramEps
	paramCount
)

var paramNames = [paramCount]string{"h min 10^-k", "h max 10^-k", "points", "epsilon"}

type formula int

const (
	formulaForward formula = iota
	formulaCentral
)

func (f formula) String() string {
	if f == formulaForward {
		return "forward difference"
	}
	return "central difference"
}

type model struct {
	minExp  int
	maxExp  int
	points  int
	eps     float64
	cursor  int
	formula formula
	theory  bool

	cache   *diff.Cache
	series  diff.Series
	optimal diff.OptimalPoints
	errMsg  string

	width  int
	height int
}

func NewApp() *model {
	return &model{
		minExp: sweep.DefaultMinExp,
		maxExp: sweep.DefaultMaxExp,
		points: sweep.DefaultPoints,
		eps:    sweep.DefaultEps,
		cache:  diff.NewCache(),
		width:  100,
		height: 32,
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
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "escape":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < paramCount-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "tab", " ":
		if m.formula == formulaForward {
			m.formula = formulaCentral
		} else {
			m.formula = formulaForward
		}
	case "t":
		m.theory = !m.theory
	case "r":
		m.minExp = sweep.DefaultMinExp
		m.maxExp = sweep.DefaultMaxExp
		m.points = sweep.DefaultPoints
		m.eps = sweep.DefaultEps
	}
	return m, nil
}

func (m *model) adjust(dir int) {
	switch m.cursor {
	case paramHMin:
		m.minExp = clampInt(m.minExp+dir, sweep.MinExp, m.maxExp)
	case paramHMax:
		m.maxExp = clampInt(m.maxExp+dir, m.minExp, sweep.MaxExp)
	case paramPoints:
		m.points = clampInt(m.points+dir*5, 10, 100)
	case paramEps:
		if dir > 0 {
			m.eps = sweep.ClampEps(m.eps * 10)
		} else {
			m.eps = sweep.ClampEps(m.eps / 10)
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// recompute refreshes the series and optimal points for the current
// parameters. The cache makes repeated views of unchanged parameters
// free.
func (m *model) recompute() {
	m.errMsg = ""

	hs, err := sweep.Logspace(m.minExp, m.maxExp, m.points)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	series, err := m.cache.ComputeSeries(hs, m.eps)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	optimal, err := diff.ComputeOptimalPoints(m.eps)
	if err != nil {
		m.errMsg = err.Error()
		return
	}

	m.series = series
	m.optimal = optimal
}

func (m model) View() string {
	m.recompute()

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("    " + cyan.Render("finite-difference error lab") + dim.Render("   f(x) = sin(x), x0 = 1") + "\n")
	b.WriteString(dimmer.Render("  ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	b.WriteString(m.viewParams())

	if m.errMsg != "" {
		b.WriteString("\n  " + red.Render("error: "+m.errMsg) + "\n")
		return b.String()
	}

	b.WriteString("\n" + m.viewPlot())
	b.WriteString("\n" + m.viewOptimal())

	if m.theory {
		b.WriteString("\n" + m.viewTheory())
	}

	b.WriteString("\n" + dim.Render("  ↑↓ select  ←→ adjust  tab formula  t theory  r reset  q quit") + "\n")
	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	values := [paramCount]string{
		fmt.Sprintf("%8d", m.minExp),
		fmt.Sprintf("%8d", m.maxExp),
		fmt.Sprintf("%8d", m.points),
		fmt.Sprintf("%8.2e", m.eps),
	}

	for i := 0; i < paramCount; i++ {
		name := fmt.Sprintf("%-12s", paramNames[i])
		if i == m.cursor {
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(name) + magenta.Render(values[i]) + "\n")
		} else {
			b.WriteString("      " + dim.Render(name) + dim.Render(values[i]) + "\n")
		}
	}

	return b.String()
}

func (m model) viewPlot() string {
	var actual, trunc, round []float64
	if m.formula == formulaForward {
		actual, trunc, round = m.series.ErrForward(), m.series.TruncForward(), m.series.RoundForward()
	} else {
		actual, trunc, round = m.series.ErrCentral(), m.series.TruncCentral(), m.series.RoundCentral()
	}

	plotW := clampInt(m.width-14, 40, 90)

	graph := asciigraph.PlotMany(
		[][]float64{logSeries(actual), logSeries(trunc), logSeries(round)},
		asciigraph.Height(12),
		asciigraph.Width(plotW),
		asciigraph.Caption(fmt.Sprintf("%s  log10(error) vs log10(h), h in [1e-%d, 1e-%d]", m.formula, m.maxExp, m.minExp)),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Red, asciigraph.Green),
	)

	legend := "  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("── actual") + "  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("── truncation") + "  " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("── rounding")

	return graph + "\n" + legend + "\n"
}

func (m model) viewOptimal() string {
	fwd := m.optimal.Forward
	ctr := m.optimal.Central

	var b strings.Builder
	b.WriteString("  " + yellow.Render("optimal step sizes") + "\n")
	b.WriteString(fmt.Sprintf("    forward  h = √(2ε)   ≈ %.4e   min error ≈ %.4e\n", fwd.H, fwd.MinError))
	b.WriteString(fmt.Sprintf("    central  h = ∛(3ε)   ≈ %.4e   min error ≈ %.4e\n", ctr.H, ctr.MinError))
	return b.String()
}

func (m model) viewTheory() string {
	var b strings.Builder
	b.WriteString("  " + yellow.Render("theory") + "\n")
	b.WriteString(dim.Render("    forward  f'(x) ≈ (f(x+h) - f(x)) / h        truncation O(h),  rounding O(ε/h)") + "\n")
	b.WriteString(dim.Render("    central  f'(x) ≈ (f(x+h) - f(x-h)) / (2h)   truncation O(h²), rounding O(ε/h)") + "\n")
	b.WriteString(dim.Render("    shrinking h reduces truncation error until cancellation noise takes over;") + "\n")
	b.WriteString(dim.Render("    the optimum balances the two bounds") + "\n")
	return b.String()
}

// logSeries maps values to log10 for plotting. Non-positive values have
// no log position and become NaN gaps.
func logSeries(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v <= 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = math.Log10(v)
	}
	return out
}

func Run() error {
	_, err := tea.NewProgram(*NewApp(), tea.WithAltScreen()).Run()
	return err
}
