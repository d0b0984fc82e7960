package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/oops"

	"github.com/go-i2p/go-monotime/lib/drift"
	"github.com/go-i2p/go-monotime/lib/monotonic"
)

// tickMsg asks the model to take a fresh clock sample.
type tickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(10)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// model holds the dashboard state between samples.
type model struct {
	clock    *monotonic.Clock
	tracker  *drift.Tracker
	interval time.Duration
	reading  float64
	sample   drift.Sample
	samples  int
	err      error
	quitting bool
}

// newModel resolves the platform clock, captures a drift baseline, and
// takes an initial sample so the first paint already has data.
func newModel(interval time.Duration) (model, error) {
	if interval <= 0 {
		interval = time.Second
	}
	clock, err := monotonic.Resolve()
	if err != nil {
		return model{}, err
	}
	tracker, err := drift.NewTracker(0)
	if err != nil {
		return model{}, err
	}
	m := model{clock: clock, tracker: tracker, interval: interval}
	m = m.refresh()
	if m.err != nil {
		return model{}, m.err
	}
	return m, nil
}

// refresh takes one clock sample and one drift measurement.
func (m model) refresh() model {
	reading, err := m.clock.Now()
	if err != nil {
		m.err = err
		return m
	}
	sample, err := m.tracker.Measure()
	if err != nil {
		m.err = err
		return m
	}
	m.reading = reading
	m.sample = sample
	m.samples++
	return m
}

func (m model) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init schedules the first periodic sample.
func (m model) Init() tea.Cmd {
	return m.scheduleTick()
}

// Update handles key presses and periodic samples.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if err := m.tracker.Reset(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.samples = 0
			return m, nil
		}

	case tickMsg:
		m = m.refresh()
		if m.err != nil {
			// A clock that fails after resolving is not coming back.
			return m, tea.Quit
		}
		return m, m.scheduleTick()
	}
	return m, nil
}

// View renders the dashboard.
func (m model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("monotonic clock failure: %v", m.err)) + "\n"
	}
	if m.quitting {
		return ""
	}

	rows := [][2]string{
		{"source", m.clock.Source()},
		{"reading", fmt.Sprintf("%.6f s", m.reading)},
		{"wall", m.sample.At.Format("2006-01-02 15:04:05.000")},
		{"drift", formatDrift(m.sample.Drift)},
		{"samples", fmt.Sprintf("%d", m.samples)},
	}

	out := titleStyle.Render("go-monotime watch") + "\n\n"
	for _, row := range rows {
		out += "  " + labelStyle.Render(row[0]) + " " + valueStyle.Render(row[1]) + "\n"
	}
	out += "\n" + helpStyle.Render(fmt.Sprintf(
		"  sampling every %v · r rebase drift · q quit", m.interval)) + "\n"
	return out
}

// formatDrift renders a duration with an explicit sign so forward and
// backward wall-clock movement are visually distinct.
func formatDrift(d time.Duration) string {
	if d >= 0 {
		return "+" + d.String()
	}
	return d.String()
}

// Run resolves the platform clock and displays a live dashboard that
// refreshes every interval until the user quits. A non-positive interval
// falls back to one second.
func Run(interval time.Duration) error {
	m, err := newModel(interval)
	if err != nil {
		return err
	}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return oops.Wrapf(err, "running watch display")
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
