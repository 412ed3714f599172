package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/OneHot/internal/group"
	"github.com/piwi3910/OneHot/internal/model"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func checkedCount(m Model) int {
	n := 0
	for _, t := range m.items {
		if t.checked {
			n++
		}
	}
	return n
}

func TestNewAppliesInitialSelection(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	assert.Equal(t, "Medium", m.Selection("size"))
	assert.Equal(t, "", m.Selection("diet"))
	assert.Len(t, m.items, 8)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Groups[0].Options = nil

	_, err := New(cfg, nil)
	assert.Error(t, err)
}

func TestEnterChecksAndCascades(t *testing.T) {
	reg := group.NewRegistry()
	m, err := New(model.DefaultAppConfig(), reg)
	require.NoError(t, err)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Vegan", m.Selection("diet"))

	m = send(t, m, runeKey("j"), runeKey("j"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Pescatarian", m.Selection("diet"))
	assert.False(t, m.items[0].checked)
	assert.Equal(t, "Medium", m.Selection("size"), "other groups are untouched")
}

func TestUncheckDoesNotCascade(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)
	before := checkedCount(m)

	// Cursor on "Small", check it, then uncheck it.
	m = send(t, m, runeKey("j"), runeKey("j"), runeKey("j"), runeKey("j"))
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey("x"))

	assert.Equal(t, "", m.Selection("size"))
	assert.Equal(t, before-1, checkedCount(m))
}

func TestUngroupedToggle(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	for i := 0; i < len(m.items); i++ {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	last := m.items[len(m.items)-1]
	assert.True(t, last.checked)
	assert.Equal(t, "Medium", m.Selection("size"))
}

func TestCursorStaysInBounds(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp}, runeKey("k"))
	assert.Equal(t, 0, m.cursor)

	for i := 0; i < 20; i++ {
		m = send(t, m, runeKey("j"))
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestClearAll(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runeKey("c"))

	assert.Zero(t, checkedCount(m))
}

func TestQuitShowsSummary(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	view := next.(Model).View()
	assert.Contains(t, view, "Diet: — · Portion: Medium")
}

func TestViewListsEveryOption(t *testing.T) {
	m, err := New(model.DefaultAppConfig(), nil)
	require.NoError(t, err)

	view := m.View()
	for _, label := range []string{"Diet", "Portion", "Vegan", "Omnivore", "Large", "Extra napkins"} {
		assert.Contains(t, view, label)
	}
	assert.Contains(t, view, "> ")
}
