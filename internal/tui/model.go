// Package tui is a terminal front end for the same grouped toggles the
// desktop app shows. Every mutation happens inside bubbletea's Update, which
// gives the registry the single-goroutine access it expects.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/piwi3910/OneHot/internal/group"
	"github.com/piwi3910/OneHot/internal/model"
)

// toggle is the terminal counterpart of widgets.OneHotButton.
type toggle struct {
	id      string
	label   string
	checked bool
	reg     *group.Registry
}

func (t *toggle) ID() string { return t.id }

func (t *toggle) Uncheck() { t.checked = false }

func (t *toggle) setChecked(checked bool) {
	t.checked = checked
	if checked {
		t.reg.NotifyChecked(t)
	}
}

type section struct {
	name    string // registry group, "" for the ungrouped section
	title   string
	toggles []*toggle
}

type styles struct {
	title     lipgloss.Style
	heading   lipgloss.Style
	checked   lipgloss.Style
	unchecked lipgloss.Style
	footer    lipgloss.Style
}

func newStyles(s model.ButtonStyle) styles {
	d := model.DefaultButtonStyle()
	pick := func(v, def string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(def)
		}
		return lipgloss.Color(v)
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		heading: lipgloss.NewStyle().Bold(true).Underline(true),
		checked: lipgloss.NewStyle().Padding(0, 1).
			Foreground(pick(s.SelectedText, d.SelectedText)).
			Background(pick(s.SelectedBackground, d.SelectedBackground)),
		unchecked: lipgloss.NewStyle().Padding(0, 1).
			Foreground(pick(s.UnselectedText, d.UnselectedText)).
			Background(pick(s.UnselectedBackground, d.UnselectedBackground)),
		footer: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}

// Model is the bubbletea model.
type Model struct {
	registry *group.Registry
	sections []section
	items    []*toggle // navigation order across all sections
	cursor   int
	styles   styles
	quitting bool
}

// New builds the model for cfg's groups and ungrouped label. reg may be nil.
func New(cfg model.AppConfig, reg *group.Registry) (Model, error) {
	if err := cfg.Validate(); err != nil {
		return Model{}, fmt.Errorf("config: %w", err)
	}
	if reg == nil {
		reg = group.NewRegistry()
	}
	m := Model{registry: reg, styles: newStyles(cfg.Style)}

	for _, g := range cfg.Groups {
		sec := section{name: g.Name, title: g.DisplayTitle()}
		for _, opt := range g.Options {
			t := &toggle{id: uuid.NewString(), label: opt, reg: reg}
			reg.SetGroup(t, g.Name)
			sec.toggles = append(sec.toggles, t)
		}
		for _, t := range sec.toggles {
			if t.label == g.Selected {
				t.setChecked(true)
			}
		}
		m.addSection(sec)
	}
	if cfg.UngroupedLabel != "" {
		m.addSection(section{
			title:   "Independent",
			toggles: []*toggle{{id: uuid.NewString(), label: cfg.UngroupedLabel, reg: reg}},
		})
	}
	return m, nil
}

func (m *Model) addSection(s section) {
	m.sections = append(m.sections, s)
	m.items = append(m.items, s.toggles...)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j", "ctrl+n", "tab":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter", " ":
		if t := m.current(); t != nil {
			t.setChecked(true)
		}
	case "x", "backspace":
		if t := m.current(); t != nil {
			t.setChecked(false)
		}
	case "c":
		m.clearAll()
	}
	return m, nil
}

func (m Model) current() *toggle {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

func (m Model) clearAll() {
	for _, t := range m.items {
		t.setChecked(false)
	}
}

// Selection returns the checked label of the named group, or "".
func (m Model) Selection(name string) string {
	for _, mem := range m.registry.Members(name) {
		if t, ok := mem.(*toggle); ok && t.checked {
			return t.label
		}
	}
	return ""
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return m.summary() + "\n"
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("OneHot"))
	b.WriteString("\n")

	for _, sec := range m.sections {
		b.WriteString(m.styles.heading.Render(sec.title))
		b.WriteString("\n")
		for _, t := range sec.toggles {
			prefix := "  "
			if t == m.current() {
				prefix = "> "
			}
			style := m.styles.unchecked
			if t.checked {
				style = m.styles.checked
			}
			b.WriteString(prefix + style.Render(t.label) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.footer.Render("↑/↓ move · enter check · x uncheck · c clear · q quit"))
	return b.String()
}

func (m Model) summary() string {
	parts := make([]string, 0, len(m.sections))
	for _, sec := range m.sections {
		if sec.name == "" {
			continue
		}
		sel := m.Selection(sec.name)
		if sel == "" {
			sel = "—"
		}
		parts = append(parts, sec.title+": "+sel)
	}
	return strings.Join(parts, " · ")
}
