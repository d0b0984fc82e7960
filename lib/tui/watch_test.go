package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	m, err := newModel(10 * time.Millisecond)
	require.NoError(t, err, "clock resolution should succeed on a supported platform")
	return m
}

func TestNewModelTakesInitialSample(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 1, m.samples)
	assert.Greater(t, m.reading, 0.0)
	assert.NotEmpty(t, m.clock.Source())
	assert.NoError(t, m.err)
}

func TestNewModelDefaultsInterval(t *testing.T) {
	m, err := newModel(0)
	require.NoError(t, err)

	assert.Equal(t, time.Second, m.interval)
}

func TestTickRefreshesAndReschedules(t *testing.T) {
	m := newTestModel(t)
	before := m.reading

	updated, cmd := m.Update(tickMsg(time.Now()))

	next := updated.(model)
	assert.Equal(t, 2, next.samples)
	assert.GreaterOrEqual(t, next.reading, before)
	assert.NotNil(t, cmd, "tick should schedule the next tick")
}

func TestQuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	}
	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			m := newTestModel(t)

			updated, cmd := m.Update(key)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, updated.(model).quitting)
		})
	}
}

func TestRebaseKeyResetsSampleCount(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tickMsg(time.Now()))
	m = updated.(model)
	require.Equal(t, 2, m.samples)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Nil(t, cmd, "rebase should not quit or reschedule")
	assert.Equal(t, 0, updated.(model).samples)
}

func TestUnhandledKeyIsIgnored(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
	assert.Equal(t, m.samples, updated.(model).samples)
}

func TestViewShowsClockState(t *testing.T) {
	m := newTestModel(t)

	view := m.View()

	assert.Contains(t, view, "go-monotime watch")
	assert.Contains(t, view, m.clock.Source())
	assert.Contains(t, view, "drift")
	assert.Contains(t, view, "q quit")
}

func TestViewAfterQuitIsEmpty(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Empty(t, updated.(model).View())
}

func TestViewShowsFailure(t *testing.T) {
	m := newTestModel(t)
	m.err = assert.AnError

	view := m.View()

	assert.Contains(t, view, "monotonic clock failure")
}

func TestFormatDriftCarriesSign(t *testing.T) {
	assert.True(t, strings.HasPrefix(formatDrift(1500*time.Microsecond), "+"))
	assert.True(t, strings.HasPrefix(formatDrift(-2*time.Millisecond), "-"))
	assert.Equal(t, "+0s", formatDrift(0))
}
